package tycoon

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-tycoon/internal/actor"
	"github.com/vovakirdan/tui-tycoon/internal/config"
	"github.com/vovakirdan/tui-tycoon/internal/core"
	"github.com/vovakirdan/tui-tycoon/internal/events"
	"github.com/vovakirdan/tui-tycoon/internal/registry"
	"github.com/vovakirdan/tui-tycoon/internal/scene"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeVenture is the persistent idle game.
	ModeVenture Mode = "venture"
	// ModeSprint is a timed score attack with no persistence.
	ModeSprint Mode = "sprint"
)

const (
	minScreenW = 40

	autosaveSeconds      = 5.0
	offlineNoticeSeconds = 6.0
)

// Package-level injection points, set by the command layer before a
// game is created (like the other games' config setters).
var (
	activeConfig *config.TycoonConfig
	activeStore  actor.Store
)

// SetConfig overrides the built-in defaults for subsequently created
// games. The config should have passed Validate.
func SetConfig(cfg config.TycoonConfig) {
	activeConfig = &cfg
}

// SetStore sets the persistent save slot for subsequently created
// venture games. Without one, progress lives in memory for the
// process lifetime only. Sprint games never persist.
func SetStore(s actor.Store) {
	activeStore = s
}

// UseStore gives this game its own save slot, taking precedence over
// the package-level one. The SSH server uses it so concurrent
// sessions keep separate profiles.
func (g *Game) UseStore(s actor.Store) {
	g.store = s
}

// Game implements the venture tycoon for the platform's game loop.
type Game struct {
	mode  Mode
	cfg   config.TycoonConfig
	store actor.Store
	bus   *events.Bus
	bank  *Bank

	tick     uint64
	tickRate int
	dt       float64

	screenW, screenH int
	selected         int

	sprintLeft    float64
	saveTicker    float64
	offlineEarned float64
	offlineNotice float64

	gameOver bool
	paused   bool
	tooSmall bool

	now func() time.Time
}

// New creates a persistent venture game.
func New() *Game {
	return &Game{mode: ModeVenture, now: time.Now}
}

// NewSprint creates a timed sprint game.
func NewSprint() *Game {
	return &Game{mode: ModeSprint, now: time.Now}
}

func init() {
	registry.Register("venture", func() registry.Game {
		return New()
	})
	registry.Register("venture_sprint", func() registry.Game {
		return NewSprint()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSprint {
		return "venture_sprint"
	}
	return "venture"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSprint {
		return "Venture Tycoon (Sprint)"
	}
	return "Venture Tycoon"
}

// Reset builds the actor tree for the current window size and, in
// venture mode, restores saved progress. The simulation has no
// randomness, so the config seed is unused.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.bank != nil {
		// Keep progress across resizes.
		if g.mode == ModeVenture && g.store != nil {
			g.bank.Actor().Save(g.store)
		}
		g.bank.Actor().Destroy()
		g.bank = nil
	}

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 30
	}
	g.dt = 1.0 / float64(g.tickRate)

	g.tick = 0
	g.selected = 0
	g.gameOver = false
	g.paused = false
	g.saveTicker = 0
	g.offlineEarned = 0
	g.offlineNotice = 0

	if activeConfig != nil {
		g.cfg = *activeConfig
	} else {
		g.cfg = config.DefaultTycoonConfig()
	}

	if g.mode == ModeVenture {
		if g.store == nil {
			if activeStore != nil {
				g.store = activeStore
			} else {
				g.store = actor.NewMemStore()
			}
		}
	} else {
		g.store = actor.NewMemStore()
	}

	g.bus = events.NewBus()
	g.bank = NewBank(g.bus, g.cfg, g.screenW, g.screenH)
	g.bank.now = g.now

	requiredH := int(g.cfg.Bank.HeaderHeight) + 2*len(g.bank.Businesses()) + 2
	g.tooSmall = g.screenW < minScreenW || g.screenH < requiredH

	g.bank.Actor().Load()

	if g.mode == ModeVenture {
		g.bank.Actor().Restore(g.store)
		g.creditOfflineEarnings()
	} else {
		g.sprintLeft = g.cfg.Sprint.DurationSeconds
	}

	g.bank.Businesses()[g.selected].SetSelected(true)
}

// creditOfflineEarnings pays out what managed ventures produced since
// the last save, capped by the configured away-time limit.
func (g *Game) creditOfflineEarnings() {
	if !g.cfg.Offline.Enabled || g.bank.SavedAt() <= 0 {
		return
	}
	elapsed := float64(g.now().Unix()) - g.bank.SavedAt()
	limit := g.cfg.Offline.MaxHours * 3600
	if elapsed > limit {
		elapsed = limit
	}
	if elapsed <= 0 {
		return
	}
	if earned := g.bank.CreditOffline(elapsed); earned > 0 {
		g.offlineEarned = earned
		g.offlineNotice = offlineNoticeSeconds
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.handleSelection(input)

	selected := g.bank.Businesses()[g.selected]
	if input.Has(core.ActionConfirm) {
		selected.Press()
	}
	if input.Has(core.ActionBuy) {
		selected.Buy()
	}
	if input.Has(core.ActionHire) {
		selected.Hire()
	}

	g.bank.Actor().Update(g.dt)

	if g.offlineNotice > 0 {
		g.offlineNotice -= g.dt
	}

	if g.mode == ModeSprint {
		g.sprintLeft -= g.dt
		if g.sprintLeft <= 0 {
			g.sprintLeft = 0
			g.gameOver = true
		}
	} else {
		g.saveTicker += g.dt
		if g.saveTicker >= autosaveSeconds {
			g.saveTicker = 0
			g.bank.Actor().Save(g.store)
		}
	}

	return core.StepResult{State: g.State()}
}

// handleSelection moves the row selection.
func (g *Game) handleSelection(input core.InputFrame) {
	prev := g.selected
	if input.Has(core.ActionUp) && g.selected > 0 {
		g.selected--
	}
	if input.Has(core.ActionDown) && g.selected < len(g.bank.Businesses())-1 {
		g.selected++
	}
	if g.selected != prev {
		g.bank.Businesses()[prev].SetSelected(false)
		g.bank.Businesses()[g.selected].SetSelected(true)
	}
}

// Flush writes the venture state through to the store. The platform
// calls this when the player leaves the game.
func (g *Game) Flush() {
	if g.mode != ModeVenture || g.bank == nil || g.store == nil {
		return
	}
	g.bank.Actor().Save(g.store)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	scene.Render(g.bank.Actor().Node().Container(), dst)

	// Selection marker in the left margin
	pos := g.bank.Businesses()[g.selected].Actor().Node().Transform().Position.Get()
	dst.SetColored(0, int(pos.Y), '>', core.ColorBrightCyan)

	g.renderHUD(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Sprint over!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD fills the header rows the bank leaves free: worth and the
// sprint timer on the right, away-time notice and key hints below the
// balance. The venture rows own everything past the header.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.mode == ModeSprint {
		timer := "sprint " + formatClock(g.sprintLeft)
		color := core.ColorYellow
		if g.sprintLeft < 10 {
			color = core.ColorBrightRed
		}
		dst.DrawTextColored(dst.Width()-len(timer)-1, 0, timer, color)
	}

	worth := "worth " + FormatMoney(g.bank.Worth())
	dst.DrawTextColored(dst.Width()-len(worth)-1, 2, worth, core.ColorBrightCyan)

	if g.offlineNotice > 0 {
		dst.DrawTextColored(rowX, 3, "While you were away: +"+FormatMoney(g.offlineEarned), core.ColorGold)
	}

	hints := "↑/↓ select  enter work  b buy  h hire  p pause  q quit"
	dst.DrawTextColored(rowX, 4, hints, core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	boxW := len(line1)
	if len(line2) > boxW {
		boxW = len(line2)
	}
	boxW += 4
	boxH := 5

	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// formatClock renders remaining seconds as m:ss.
func formatClock(seconds float64) string {
	total := int(math.Ceil(seconds))
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// State returns the current game state. Score is the net worth.
func (g *Game) State() core.GameState {
	state := core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.bank != nil {
		state.Score = int(g.bank.Worth())
	}
	return state
}
