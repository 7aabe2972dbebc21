package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/zucenko/enclose/server"
)

const (
	cellSize  = 8
	hudHeight = 40
	dialWait  = 3 * time.Second
)

type ClientConfig struct {
	// ws://host:port/play, empty means an in-process session
	Server     string
	ConfigPath string
	Scale      float64
}

func parseFlags(args []string) (ClientConfig, error) {
	cc := ClientConfig{}
	fs := flag.NewFlagSet("enclose", flag.ContinueOnError)
	fs.StringVar(&cc.Server, "server", "", "websocket url of an enclose server, e.g. ws://localhost:8080/play")
	fs.StringVar(&cc.ConfigPath, "config", "", "env file with ENCLOSE_* settings for a local game")
	fs.Float64Var(&cc.Scale, "scale", 1, "window scale")
	if err := fs.Parse(args); err != nil {
		return cc, err
	}
	if cc.Scale <= 0 {
		return cc, fmt.Errorf("scale must be positive, got %v", cc.Scale)
	}
	return cc, nil
}

func (cc ClientConfig) Open() (Source, error) {
	if cc.Server != "" {
		return NewRemoteSource(cc.Server, dialWait)
	}
	cfg, err := server.LoadConfig(cc.ConfigPath)
	if err != nil {
		return nil, err
	}
	return NewLocalSource(cfg), nil
}
