package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/enclose/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func NewServer(cfg server.Config) *Server {
	s := &Server{GameServer: server.NewGameServer(cfg)}
	s.routes()
	return s
}

func main() {
	// .env is optional
	_ = godotenv.Load()
	if lvl, err := log.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}

	cfg, err := server.LoadConfig(os.Getenv("ENCLOSE_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	s := NewServer(cfg)
	go s.GameServer.Loop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.WithFields(log.Fields{"cols": cfg.Cols, "rows": cfg.Rows, "port": port}).Info("enclose server starting")
	err = http.ListenAndServe(":"+port, s.router)
	s.GameServer.Shutdown()
	log.Fatalln(err)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
