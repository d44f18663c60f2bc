package engine

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-raycaster/audio"
	"github.com/lixenwraith/vi-raycaster/input"
	"github.com/lixenwraith/vi-raycaster/render"
)

// Presenter draws a composed frame with its HUD
type Presenter interface {
	Present(f *render.FrameBuffer, s render.Status, m *render.Minimap)
	Sync()
}

// CommandSource yields at most one command per call, waiting up to timeout
type CommandSource interface {
	Next(timeout time.Duration) input.Command
}

// CueSink plays gameplay sounds
type CueSink interface {
	Play(c audio.Cue)
	ToggleMute() bool
	Muted() bool
}

// Game drives a Session at a fixed tick rate
type Game struct {
	session   *Session
	presenter Presenter
	source    CommandSource
	cues      CueSink

	tick    time.Duration
	poll    time.Duration
	showMap bool
}

// NewGame wires collaborators; cues may be nil for a silent game
func NewGame(s *Session, p Presenter, src CommandSource, cues CueSink, tick, poll time.Duration) *Game {
	return &Game{
		session:   s,
		presenter: p,
		source:    src,
		cues:      cues,
		tick:      tick,
		poll:      poll,
	}
}

// Run loops poll → tick → present → cues → wait until a quit command or ctx cancellation
// Returns ctx.Err() on cancellation, nil on quit
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	log := logrus.WithField("component", "game")
	log.WithFields(logrus.Fields{"tick": g.tick, "poll": g.poll}).Info("loop started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd := g.source.Next(g.poll)
		g.handleSystem(cmd)

		res := g.session.Tick(cmd)
		if res.Quit {
			log.WithField("ticks", res.Tick).Info("quit requested")
			return nil
		}

		g.present()
		g.playCues(res)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// handleSystem applies commands that affect the shell rather than the simulation
func (g *Game) handleSystem(cmd input.Command) {
	switch cmd {
	case input.CommandToggleMap:
		g.showMap = !g.showMap
	case input.CommandToggleMute:
		if g.cues != nil {
			muted := g.cues.ToggleMute()
			logrus.WithField("muted", muted).Debug("audio toggled")
		}
	case input.CommandResize:
		g.presenter.Sync()
	}
}

func (g *Game) present() {
	var m *render.Minimap
	if g.showMap {
		m = g.session.Minimap()
	}
	g.presenter.Present(g.session.Frame(), g.session.Status(g.muted()), m)
}

func (g *Game) playCues(res TickResult) {
	if g.cues == nil {
		return
	}
	if res.Bumped {
		g.cues.Play(audio.CueBump)
	}
	if res.Spotted {
		g.cues.Play(audio.CueSpotted)
	}
	if res.Caught {
		g.cues.Play(audio.CueCaught)
	}
}

func (g *Game) muted() bool {
	return g.cues == nil || g.cues.Muted()
}

// ShowingMap reports whether the minimap overlay is on
func (g *Game) ShowingMap() bool {
	return g.showMap
}
