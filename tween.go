package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const tweenStep = float32(1) / 60

type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// next queues t to start once the owning tween finishes.
func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	if a.nexts == nil {
		a.nexts = make([]func(g *Game), 0)
	}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return action
}

func (g *Game) updateTweens() {
	for t, a := range g.Tweens {
		curr, finished := t.Update(tweenStep)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

// countClaimed rolls the HUD percentage towards the new value.
func (g *Game) countClaimed(to float64) {
	if g.claimTween != nil {
		delete(g.Tweens, g.claimTween)
	}
	t := gween.New(g.shownClaimed, float32(to), .6, ease.OutCubic)
	g.claimTween = t
	a := &Action{onChange: func(v float32) { g.shownClaimed = v }}
	a.addOnFinish(func() { g.claimTween = nil })
	g.Tweens[t] = a
}

// flashLifeLost fades a red overlay in and back out.
func (g *Game) flashLifeLost() {
	in := gween.New(0, .6, .08, ease.OutQuad)
	a := &Action{onChange: func(v float32) { g.flash = v }}
	out := a.next(gween.New(.6, 0, .5, ease.InQuad))
	out.onChange = func(v float32) { g.flash = v }
	out.addOnFinish(func() { g.flash = 0 })
	g.Tweens[in] = a
}
