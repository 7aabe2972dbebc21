package server

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/enclose/model"
)

type GameServer struct {
	cfg    Config
	nextId int32

	GameSessions   []*GameSession
	GameRequests   chan GameRequest
	GameReleases   chan *GameSession
	StatusRequests chan chan Status
	Upgrader       *websocket.Upgrader

	quit     chan struct{}
	quitOnce sync.Once
}

// GameSession is one single-player game: the field, the agents and the
// phase machine, plus the loop goroutine that drives them.
// Everything except the intent fields and the published snapshot belongs
// to the goroutine calling Update.
type GameSession struct {
	Id  int32
	cfg Config
	rng *rand.Rand

	grid    *model.Grid
	player  *model.Player
	enemies []model.Enemy
	lives   int
	score   int
	level   int
	phase   model.Phase
	frame   uint64

	// intents, last write wins, consumed on the next Update
	direction   int32
	pauseReq    int32
	restartReq  int32
	advanceReq  int32
	continueReq int32

	mu       sync.RWMutex
	snapshot model.Snapshot

	lifecycle sync.Mutex
	running   int32
	done      chan struct{}
	now       func() time.Time
}

type PlayerSessionState int32

const (
	PS_NEW PlayerSessionState = iota + 1
	PS_PLAY
	PS_OVER
	PS_ERR
)

type PlayerSession struct {
	state       int32
	Id          int32
	GameSession *GameSession
	Conn        *websocket.Conn
	Closed      chan struct{}
	closeOnce   sync.Once

	SendInterval time.Duration

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}

type Status struct {
	Sessions    int   `json:"sessions"`
	MaxSessions int   `json:"max_sessions"`
	SessionIds  []int `json:"session_ids"`
}
