package server

import (
	"encoding/gob"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/enclose/model"
)

func NewGameServer(cfg Config) *GameServer {
	return &GameServer{
		cfg:            cfg,
		GameSessions:   make([]*GameSession, 0),
		GameRequests:   make(chan GameRequest),
		GameReleases:   make(chan *GameSession),
		StatusRequests: make(chan chan Status),
		Upgrader:       &websocket.Upgrader{},
		quit:           make(chan struct{}),
	}
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("HandleHttpCall - connection received")

		gcas := make(chan GameContextAwaiting, 1)
		select {
		case s.GameRequests <- GameRequest{GameContextAwaiting: gcas}:
		case <-time.After(timeout):
			log.Warn("GameRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var gca GameContextAwaiting
		select {
		case gca = <-gcas:
			if gca.ResponseCode != GAME_READY {
				log.Warnf("HandleHttpCall refused, code:%d", gca.ResponseCode)
				w.WriteHeader(gca.ResponseCode.ToHttp())
				return
			}
		case <-time.After(timeout):
			log.Warn("HandleHttpCall GameContextAwaiting <- TIMEOUTED")
			go func() {
				// the loop still answers; give back whatever it created
				if late := <-gcas; late.GameSession != nil {
					s.release(late.GameSession)
				}
			}()
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		gs := gca.GameSession
		defer s.release(gs)

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already answered the client
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		ps := newPlayerSession(gs, con, time.Second/time.Duration(s.cfg.SendRate))
		go ps.LoopChannelRead()
		go ps.LoopChannelWrite()

		log.Infof("HandleHttpCall session %d playing", gs.Id)
		<-ps.Closed
		log.Infof("HandleHttpCall session %d over, state %s", gs.Id, ps.State().Name())
	}
}

func (s *GameServer) release(gs *GameSession) {
	select {
	case s.GameReleases <- gs:
	case <-s.quit:
	}
}

// Status asks the registry loop for the live session count.
func (s *GameServer) Status() (Status, bool) {
	reply := make(chan Status, 1)
	select {
	case s.StatusRequests <- reply:
	case <-s.quit:
		return Status{}, false
	}
	select {
	case st := <-reply:
		return st, true
	case <-s.quit:
		return Status{}, false
	}
}

// Loop owns GameSessions; every change to the registry goes through it.
func (s *GameServer) Loop() {
	log.Info("GameServer.Loop starting")
	for {
		select {
		case gameReq := <-s.GameRequests:
			if len(s.GameSessions) >= s.cfg.MaxSessions {
				log.Warnf("GameServer.Loop full, %d sessions", len(s.GameSessions))
				gameReq.GameContextAwaiting <- GameContextAwaiting{ResponseCode: GAME_FULL}
				continue
			}
			s.nextId++
			gs := NewGameSession(s.cfg)
			gs.Id = s.nextId
			gs.Start()
			s.GameSessions = append(s.GameSessions, gs)
			log.Infof("GameServer.Loop created GameSession %d", gs.Id)
			gameReq.GameContextAwaiting <- GameContextAwaiting{
				ResponseCode: GAME_READY,
				GameSession:  gs,
			}
		case gs := <-s.GameReleases:
			gs.Stop()
			for i, o := range s.GameSessions {
				if o == gs {
					s.GameSessions = append(s.GameSessions[:i], s.GameSessions[i+1:]...)
					break
				}
			}
			log.Infof("GameServer.Loop released GameSession %d", gs.Id)
		case reply := <-s.StatusRequests:
			ids := make([]int, 0, len(s.GameSessions))
			for _, gs := range s.GameSessions {
				ids = append(ids, int(gs.Id))
			}
			reply <- Status{Sessions: len(s.GameSessions), MaxSessions: s.cfg.MaxSessions, SessionIds: ids}
		case <-s.quit:
			for _, gs := range s.GameSessions {
				gs.Stop()
			}
			s.GameSessions = nil
			log.Info("GameServer.Loop ENDED")
			return
		}
	}
}

func (s *GameServer) Shutdown() {
	s.quitOnce.Do(func() { close(s.quit) })
}

func newPlayerSession(gs *GameSession, conn *websocket.Conn, sendInterval time.Duration) *PlayerSession {
	ps := &PlayerSession{
		state:        int32(PS_NEW),
		Id:           gs.Id,
		GameSession:  gs,
		Conn:         conn,
		Closed:       make(chan struct{}),
		SendInterval: sendInterval,
	}
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			ps.DebugLastPing = time.Now()
			ps.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Temporary() {
				return nil
			}
			return err
		})
	ps.setState(PS_PLAY)
	return ps
}

func (ps *PlayerSession) close(state PlayerSessionState) {
	ps.closeOnce.Do(func() {
		ps.setState(state)
		close(ps.Closed)
	})
}

// LoopChannelRead turns client messages into session intents.
func (ps *PlayerSession) LoopChannelRead() {
	log.Debugf("LoopChannelRead %d STARTED", ps.Id)
	for {
		_, r, err := ps.Conn.NextReader()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				ps.close(PS_OVER)
			} else {
				log.Warnf("LoopChannelRead err reading message from Conn %v", err)
				ps.close(PS_ERR)
			}
			break
		}
		cm := model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(&cm); err != nil {
			log.Warnf("LoopChannelRead cant decode %v", err)
			ps.close(PS_ERR)
			break
		}
		ps.DebugLastMessage = time.Now()
		ps.DebugInMessages++
		ps.GameSession.Apply(cm)
	}
	log.Debugf("LoopChannelRead %d ENDED", ps.Id)
}

// LoopChannelWrite pushes each new snapshot at most once per SendInterval.
func (ps *PlayerSession) LoopChannelWrite() {
	log.Debugf("LoopChannelWrite %d STARTED", ps.Id)
	ticker := time.NewTicker(ps.SendInterval)
	defer ticker.Stop()
	sent := false
	var lastFrame uint64
loop:
	for {
		select {
		case <-ps.Closed:
			break loop
		case <-ticker.C:
			snap := ps.GameSession.Snapshot()
			if sent && snap.Frame == lastFrame {
				continue
			}
			if err := ps.write(snap); err != nil {
				log.Warnf("LoopChannelWrite cant write %v", err)
				ps.close(PS_ERR)
				break loop
			}
			sent = true
			lastFrame = snap.Frame
			ps.DebugOutMessages++
		}
	}
	log.Debugf("LoopChannelWrite %d ENDED", ps.Id)
}

func (ps *PlayerSession) write(snap model.Snapshot) error {
	w, err := ps.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(snap); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
