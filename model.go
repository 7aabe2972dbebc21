package main

import (
	"encoding/gob"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/enclose/model"
	"github.com/zucenko/enclose/server"
)

// Source is where the renderer gets its frames and sends its intents.
type Source interface {
	Snapshot() model.Snapshot
	Send(cm model.ClientMessage)
	Close()
}

type localSource struct {
	session *server.GameSession
}

func NewLocalSource(cfg server.Config) Source {
	gs := server.NewGameSession(cfg)
	gs.Start()
	return &localSource{session: gs}
}

func (l *localSource) Snapshot() model.Snapshot {
	return l.session.Snapshot()
}

func (l *localSource) Send(cm model.ClientMessage) {
	l.session.Apply(cm)
}

func (l *localSource) Close() {
	if !l.session.Stop() {
		log.Warn("local session did not stop")
	}
}

type remoteSource struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	mu     sync.RWMutex
	snap   model.Snapshot
	closed bool

	first chan struct{}
	once  sync.Once
}

var ErrNoSnapshot = errors.New("server sent no snapshot")

// NewRemoteSource dials a server and waits for its first snapshot,
// the client needs the field size before it can open a window.
func NewRemoteSource(url string, wait time.Duration) (Source, error) {
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			log.Warnf("dial %s refused with %d", url, resp.StatusCode)
		}
		return nil, err
	}
	rs := &remoteSource{conn: conn, first: make(chan struct{})}
	go rs.loopRead()

	select {
	case <-rs.first:
		return rs, nil
	case <-time.After(wait):
		rs.Close()
		return nil, ErrNoSnapshot
	}
}

func (rs *remoteSource) loopRead() {
	for {
		_, r, err := rs.conn.NextReader()
		if err != nil {
			rs.mu.RLock()
			closed := rs.closed
			rs.mu.RUnlock()
			if !closed {
				log.Warnf("remote read %v", err)
			}
			return
		}
		snap := model.Snapshot{}
		if err := gob.NewDecoder(r).Decode(&snap); err != nil {
			log.Warnf("remote decode %v", err)
			return
		}
		rs.mu.Lock()
		rs.snap = snap
		rs.mu.Unlock()
		rs.once.Do(func() { close(rs.first) })
	}
}

func (rs *remoteSource) Snapshot() model.Snapshot {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.snap
}

func (rs *remoteSource) Send(cm model.ClientMessage) {
	rs.writeMu.Lock()
	defer rs.writeMu.Unlock()
	w, err := rs.conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		log.Warnf("remote send %s %v", cm.Intent.Name(), err)
		return
	}
	if err := gob.NewEncoder(w).Encode(cm); err != nil {
		log.Warnf("remote encode %v", err)
	}
	w.Close()
}

func (rs *remoteSource) Close() {
	rs.mu.Lock()
	rs.closed = true
	rs.mu.Unlock()

	rs.writeMu.Lock()
	_ = rs.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	rs.writeMu.Unlock()
	rs.conn.Close()
}
