// Package tetris runs the falling-block engine as a registry game.
package tetris

import (
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry identifier.
const ID = "tetris"

// Options configures new games.
type Options struct {
	Config     config.TetrisConfig
	FirstShape *core.Shape // Fixes the first piece of every session; nil picks randomly
	Logger     *log.Logger // nil discards
}

// DefaultOptions returns the built-in configuration with no logging.
func DefaultOptions() Options {
	return Options{Config: config.DefaultTetrisConfig()}
}

var (
	optsMu      sync.RWMutex
	defaultOpts = DefaultOptions()
)

// Configure sets the options used by games created through the registry.
// Call it before registry.Create.
func Configure(opts Options) {
	optsMu.Lock()
	defer optsMu.Unlock()
	defaultOpts = opts
}

func configured() Options {
	optsMu.RLock()
	defer optsMu.RUnlock()
	return defaultOpts
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(configured())
	})
}

// Game implements registry.Game around a core.Session.
type Game struct {
	opts       Options
	logger     *log.Logger
	difficulty *config.DifficultyManager

	rng     *rand.Rand
	session *core.Session
	dt      time.Duration // Session time per simulation tick

	tick         uint64 // Simulation ticks since Reset
	sessionTicks int    // Playing ticks in the current session
	sessions     int    // Sessions started since Reset, including restarts

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game with the given options. Reset must be called before Step.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{
		opts:       opts,
		logger:     logger,
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset discards any session and starts a new one in Startup.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	cfg = cfg.Normalize()

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.dt = time.Second / time.Duration(cfg.TickRate)
	g.tick = 0
	g.sessions = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.newSession()

	g.logger.Debug("game reset", "seed", cfg.Seed, "tick_rate", cfg.TickRate,
		"fall_period", g.session.FallPeriod())
}

// Resize updates the layout for a new terminal size. The session is untouched.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = !platformcore.NewRect(0, 0, MinScreenW, MinScreenH).Fits(w, h)
}

// newSession replaces the session. The RNG stream carries over, so a restart
// deals a different sequence than the first session.
func (g *Game) newSession() {
	g.session = core.NewSession(core.SessionConfig{
		Rand:       g.rng,
		FallPeriod: g.opts.Config.Gameplay.FallPeriod(),
		FirstShape: g.opts.FirstShape,
	})
	g.sessionTicks = 0
	g.sessions++
	g.applyDifficulty()
}

// Step applies the frame's actions in arrival order, then advances the
// session by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	for _, a := range in.Actions {
		g.apply(a)
	}

	before := g.session.Status()
	score := g.session.Score()

	if before == core.StatusPlaying {
		g.sessionTicks++
		g.applyDifficulty()
	}
	g.session.Tick(g.dt)

	if cleared := g.session.Score() - score; cleared > 0 {
		g.logger.Info("rows cleared", "rows", cleared, "score", g.session.Score())
	}
	if before != core.StatusGameOver && g.session.Status() == core.StatusGameOver {
		g.logger.Info("game over", "score", g.session.Score(), "ticks", g.sessionTicks)
	}

	return platformcore.StepResult{State: g.State()}
}

// apply routes one platform action to the session.
func (g *Game) apply(a platformcore.Action) {
	switch a {
	case platformcore.ActionConfirm:
		prev := g.session.Status()
		if next := g.session.Request(core.EventStart); next != prev {
			g.logger.Debug("session started", "session", g.sessions, "from", prev)
		}
	case platformcore.ActionPause:
		prev := g.session.Status()
		if next := g.session.Request(core.EventPause); next != prev {
			g.logger.Debug("pause toggled", "status", next)
		}
	case platformcore.ActionRestart:
		if g.session.Status() == core.StatusGameOver {
			g.logger.Debug("restart", "previous_score", g.session.Score())
			g.newSession()
		}
	case platformcore.ActionLeft:
		g.session.HandleInput(core.IntentMoveLeft)
	case platformcore.ActionRight:
		g.session.HandleInput(core.IntentMoveRight)
	case platformcore.ActionDown:
		g.session.HandleInput(core.IntentSoftDrop)
	case platformcore.ActionRotate:
		g.session.HandleInput(core.IntentRotate)
	}
}

// applyDifficulty feeds the progression level into the session's fall period.
func (g *Game) applyDifficulty() {
	gp := g.opts.Config.Gameplay
	period := g.difficulty.FallPeriod(gp.FallPeriod(), gp.MinFallPeriod(),
		int(g.session.Score()), g.sessionTicks)
	if period != g.session.FallPeriod() {
		g.session.SetFallPeriod(period)
	}
}

// State returns the platform view of the session.
func (g *Game) State() platformcore.GameState {
	status := g.session.Status()
	return platformcore.GameState{
		Score:    int(g.session.Score()),
		Started:  status != core.StatusStartup,
		GameOver: status == core.StatusGameOver,
		Paused:   status == core.StatusPaused,
	}
}

// Session exposes the running session for inspection.
func (g *Game) Session() *core.Session {
	return g.session
}
