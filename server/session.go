package server

import (
	"math/rand"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/enclose/model"
)

// NewGameSession builds a session in the Playing phase on level 1.
// cfg is expected to be valid, see Config.Validate.
func NewGameSession(cfg Config) *GameSession {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gs := &GameSession{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		grid:  model.NewGrid(cfg.Cols, cfg.Rows),
		lives: cfg.Lives,
		level: 1,
		phase: model.Playing,
		now:   time.Now,
	}
	gs.player = model.NewPlayer(gs.spawn())
	gs.startLevel()
	gs.publish()
	return gs
}

func (gs *GameSession) spawn() (int, int, model.Direction) {
	return gs.grid.Cols / 2, 0, model.Right
}

// SetDirection is safe to call from any goroutine.
func (gs *GameSession) SetDirection(d model.Direction) {
	atomic.StoreInt32(&gs.direction, int32(d.Index()+1))
}

func (gs *GameSession) TogglePause() {
	atomic.StoreInt32(&gs.pauseReq, 1)
}

func (gs *GameSession) Restart() {
	atomic.StoreInt32(&gs.restartReq, 1)
}

func (gs *GameSession) AdvanceLevel() {
	atomic.StoreInt32(&gs.advanceReq, 1)
}

// Continue restarts a finished game or advances a cleared level.
func (gs *GameSession) Continue() {
	atomic.StoreInt32(&gs.continueReq, 1)
}

func (gs *GameSession) Apply(cm model.ClientMessage) {
	switch cm.Intent {
	case model.IntentDirection:
		gs.SetDirection(model.DirectionFromIndex(cm.Direction))
	case model.IntentTogglePause:
		gs.TogglePause()
	case model.IntentRestart:
		gs.Restart()
	case model.IntentAdvance:
		gs.AdvanceLevel()
	case model.IntentContinue:
		gs.Continue()
	default:
		log.Warnf("GameSession %d unknown intent %s", gs.Id, cm.Intent.Name())
	}
}

func (gs *GameSession) applyIntents() {
	if d := atomic.SwapInt32(&gs.direction, 0); d > 0 {
		gs.player.Dir = model.DirectionFromIndex(int(d - 1))
	}
	if atomic.SwapInt32(&gs.pauseReq, 0) == 1 {
		gs.togglePause()
	}
	if atomic.SwapInt32(&gs.restartReq, 0) == 1 {
		gs.restart()
	}
	if atomic.SwapInt32(&gs.advanceReq, 0) == 1 {
		gs.advanceLevel()
	}
	if atomic.SwapInt32(&gs.continueReq, 0) == 1 {
		switch gs.phase {
		case model.GameOver:
			gs.restart()
		case model.LevelCleared:
			gs.advanceLevel()
		}
	}
}

// Update advances the simulation by one frame of delta seconds and
// publishes a fresh snapshot.
func (gs *GameSession) Update(delta float64) {
	if delta < 0 {
		delta = 0
	}
	if delta > gs.cfg.MaxFrameDelta {
		delta = gs.cfg.MaxFrameDelta
	}
	gs.applyIntents()

	if gs.phase == model.Playing {
		gs.stepPlayer(delta)
	}
	if gs.phase == model.Playing {
		gs.moveEnemies(delta)
	}
	if gs.phase == model.Playing && gs.grid.ClaimedPercent() >= gs.cfg.TargetPercent {
		gs.setPhase(model.LevelCleared)
	}
	gs.frame++
	gs.publish()
}

func (gs *GameSession) stepPlayer(delta float64) {
	gs.player.Accumulate(delta)
	for gs.player.TakeStep(gs.cfg.StepInterval()) {
		switch gs.player.Step(gs.grid) {
		case model.StepCrossed:
			gs.loseLife("crossed own trail")
		case model.StepClosed:
			gs.closeTrail()
		}
		if gs.phase != model.Playing {
			return
		}
	}
}

func (gs *GameSession) moveEnemies(delta float64) {
	for i := range gs.enemies {
		gs.enemies[i].Advance(gs.grid, delta)
		if gs.player.Drawing() && gs.enemies[i].OnTrail(gs.grid) {
			gs.loseLife("enemy hit trail")
		}
	}
}

func (gs *GameSession) closeTrail() {
	claimed := model.Claim(gs.grid, gs.enemies)
	gs.score += claimed
	log.WithFields(log.Fields{
		"session": gs.Id,
		"claimed": claimed,
		"score":   gs.score,
		"percent": gs.grid.ClaimedPercent(),
	}).Debug("trail closed")
}

func (gs *GameSession) loseLife(reason string) {
	gs.lives--
	gs.grid.ClearTrail()
	gs.player.Respawn(gs.spawn())
	log.WithFields(log.Fields{
		"session": gs.Id,
		"reason":  reason,
		"lives":   gs.lives,
	}).Debug("life lost")
	if gs.lives <= 0 {
		gs.lives = 0
		gs.setPhase(model.GameOver)
	}
}

func (gs *GameSession) togglePause() {
	switch gs.phase {
	case model.Playing:
		gs.setPhase(model.Paused)
	case model.Paused:
		gs.setPhase(model.Playing)
	default:
		log.Debugf("GameSession %d pause ignored in %s", gs.Id, gs.phase.Name())
	}
}

func (gs *GameSession) restart() {
	if gs.phase != model.GameOver {
		log.Debugf("GameSession %d restart ignored in %s", gs.Id, gs.phase.Name())
		return
	}
	gs.lives = gs.cfg.Lives
	gs.score = 0
	gs.level = 1
	gs.grid.Reset()
	gs.startLevel()
	gs.setPhase(model.Playing)
}

func (gs *GameSession) advanceLevel() {
	if gs.phase != model.LevelCleared {
		log.Debugf("GameSession %d advance ignored in %s", gs.Id, gs.phase.Name())
		return
	}
	gs.level++
	gs.grid.Reset()
	gs.startLevel()
	gs.setPhase(model.Playing)
}

// startLevel replaces the enemies and puts the player back on the border.
func (gs *GameSession) startLevel() {
	gs.enemies = gs.spawnEnemies(gs.cfg.EnemyCountFor(gs.level), gs.cfg.EnemySpeedFor(gs.level))
	gs.grid.ClearTrail()
	gs.player.Respawn(gs.spawn())
}

func (gs *GameSession) spawnEnemies(n int, speed float64) []model.Enemy {
	enemies := make([]model.Enemy, 0, n)
	colLo, colHi := spawnRange(gs.grid.Cols)
	rowLo, rowHi := spawnRange(gs.grid.Rows)
	for i := 0; i < n; i++ {
		c := colLo + gs.rng.Intn(colHi-colLo)
		r := rowLo + gs.rng.Intn(rowHi-rowLo)
		enemies = append(enemies, model.NewEnemy(
			float64(c)+0.5, float64(r)+0.5, speed,
			gs.coin(), gs.coin()))
	}
	return enemies
}

func (gs *GameSession) coin() int {
	if gs.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// spawnRange is the middle half of an axis, kept off the border.
func spawnRange(size int) (int, int) {
	lo, hi := size/4, size*3/4
	if lo < 1 {
		lo = 1
	}
	if hi > size-1 {
		hi = size - 1
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

func (gs *GameSession) setPhase(p model.Phase) {
	if gs.phase == p {
		return
	}
	log.WithFields(log.Fields{
		"session": gs.Id,
		"level":   gs.level,
		"lives":   gs.lives,
		"score":   gs.score,
	}).Infof("phase %s -> %s", gs.phase.Name(), p.Name())
	gs.phase = p
}
