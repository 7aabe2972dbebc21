package server

import (
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/enclose/model"
)

const (
	stopWait    = 100 * time.Millisecond
	stopRetries = 20
)

// Start runs the simulation loop on its own goroutine. Calling it on a
// running session, or before a stopping loop has exited, keeps that loop.
func (gs *GameSession) Start() {
	gs.lifecycle.Lock()
	defer gs.lifecycle.Unlock()
	atomic.StoreInt32(&gs.running, 1)
	if gs.done != nil {
		select {
		case <-gs.done:
		default:
			return
		}
	}
	gs.done = make(chan struct{})
	go gs.Loop(gs.done)
}

func (gs *GameSession) Resume() {
	gs.Start()
}

// Stop asks the loop to exit and waits for it with bounded retries.
// It reports whether the loop is gone.
func (gs *GameSession) Stop() bool {
	atomic.StoreInt32(&gs.running, 0)
	gs.lifecycle.Lock()
	done := gs.done
	gs.lifecycle.Unlock()
	if done == nil {
		return true
	}
	for i := 0; i < stopRetries; i++ {
		select {
		case <-done:
			return true
		case <-time.After(stopWait):
			log.Warnf("GameSession %d still stopping, retry %d", gs.Id, i+1)
		}
	}
	log.Errorf("GameSession %d loop did not stop", gs.Id)
	return false
}

func (gs *GameSession) Running() bool {
	return atomic.LoadInt32(&gs.running) == 1
}

func (gs *GameSession) Loop(done chan struct{}) {
	defer close(done)
	log.Infof("GameSession.Loop %d STARTED", gs.Id)
	ticker := time.NewTicker(time.Second / time.Duration(gs.cfg.FrameRate))
	defer ticker.Stop()

	last := gs.now()
	for gs.Running() {
		<-ticker.C
		now := gs.now()
		gs.Update(now.Sub(last).Seconds())
		last = now
	}
	log.Infof("GameSession.Loop %d ENDED", gs.Id)
}

// publish hands a copy of the current state to readers. The grid is only
// copied here, on the simulation goroutine; the lock covers the swap.
func (gs *GameSession) publish() {
	enemies := make([]model.EnemyView, 0, len(gs.enemies))
	for _, e := range gs.enemies {
		enemies = append(enemies, model.EnemyView{X: e.X, Y: e.Y})
	}
	snap := model.Snapshot{
		Frame:   gs.frame,
		Cols:    gs.grid.Cols,
		Rows:    gs.grid.Rows,
		Cells:   gs.grid.Copy(),
		Player:  model.PlayerView{Col: gs.player.Col, Row: gs.player.Row, Drawing: gs.player.Drawing()},
		Enemies: enemies,
		Lives:   gs.lives,
		Score:   gs.score,
		Level:   gs.level,
		Claimed: gs.grid.ClaimedPercent(),
		Target:  gs.cfg.TargetPercent,
		Phase:   gs.phase,
	}
	gs.mu.Lock()
	gs.snapshot = snap
	gs.mu.Unlock()
}

// Snapshot returns the latest published state. Callers must not modify it.
func (gs *GameSession) Snapshot() model.Snapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.snapshot
}
