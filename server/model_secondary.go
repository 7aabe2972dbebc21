package server

import (
	"fmt"
	"sync/atomic"
)

const HTTP_SUCCESS = 200
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

type ResponseCode int

const (
	GAME_READY ResponseCode = iota
	GAME_FULL
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case GAME_READY:
		return HTTP_SUCCESS
	case GAME_FULL:
		return HTTP_SERVER_ERR
	default:
		panic(h)
	}
}

func (ps PlayerSessionState) Name() string {
	switch ps {
	case PS_NEW:
		return "NEW"
	case PS_PLAY:
		return "PLAY"
	case PS_OVER:
		return "OVER"
	case PS_ERR:
		return "ERR"
	default:
		return fmt.Sprintf("n/a:%d", ps)
	}
}

func (ps *PlayerSession) State() PlayerSessionState {
	return PlayerSessionState(atomic.LoadInt32(&ps.state))
}

func (ps *PlayerSession) setState(s PlayerSessionState) {
	atomic.StoreInt32(&ps.state, int32(s))
}

type GameContextAwaiting struct {
	ResponseCode ResponseCode
	GameSession  *GameSession
}

type GameRequest struct {
	GameContextAwaiting chan GameContextAwaiting
}
