package tycoon

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-tycoon/internal/actor"
	"github.com/vovakirdan/tui-tycoon/internal/config"
	"github.com/vovakirdan/tui-tycoon/internal/core"
	"github.com/vovakirdan/tui-tycoon/internal/events"
	"github.com/vovakirdan/tui-tycoon/internal/observe"
	"github.com/vovakirdan/tui-tycoon/internal/scene"
)

// Row layout at natural scale: the button column on the left, text and
// gauge in a column to its right.
const (
	textGap  = 2
	statsRow = 0
	yieldRow = 2
	gaugeRow = 4
)

// unitMilestones are the owned-unit counts that double the profit
// multiplier when reached.
var unitMilestones = []int{10, 25, 50, 100, 200}

// Business is one venture row: a pressable button, live stats, a cycle
// gauge and the production logic behind them. Cycle completions are
// published on the bus; the balance is only ever touched through the
// shared observable.
type Business struct {
	actor.NopBehavior

	cfg     config.BusinessConfig
	bus     *events.Bus
	balance *observe.Value[float64]

	actor  *actor.Actor
	button *Button
	stats  *scene.Label
	yield  *scene.Label
	gauge  *scene.Gauge

	units    *observe.Value[int]
	progress *observe.Value[float64] // cycle fraction in [0, 1)

	unitCost   float64
	multiplier float64
	invested   float64
	managed    bool
	running    bool
}

// NewBusiness creates a venture row wired to the given bus and balance.
func NewBusiness(bus *events.Bus, balance *observe.Value[float64], cfg config.BusinessConfig, button config.ButtonConfig) *Business {
	b := &Business{
		cfg:        cfg,
		bus:        bus,
		balance:    balance,
		unitCost:   cfg.BaseCost,
		multiplier: 1,
		units:      observe.New(0),
		progress:   observe.New(0.0),
	}
	b.actor = actor.New(cfg.Name, cfg, b)

	b.button = NewButton("button", cfg.Name, cfg.Icon, button, b.Work)
	b.actor.AttachChild(b.button.Actor())

	buttonW, _ := b.button.NaturalSize()
	textX := float64(buttonW + textGap)

	b.stats = scene.NewLabel("", core.ColorGray)
	b.stats.Node().SetPosition(textX, statsRow)
	b.yield = scene.NewLabel("", core.ColorGray)
	b.yield.Node().SetPosition(textX, yieldRow)
	b.gauge = scene.NewGauge(button.GaugeWidth, core.ColorBrightGreen)
	b.gauge.Node().SetPosition(textX, gaugeRow)

	b.actor.AttachDisplay("stats", b.stats)
	b.actor.AttachDisplay("yield", b.yield)
	b.actor.AttachDisplay("gauge", b.gauge)

	b.units.Subscribe(b, func(int) { b.refresh() })
	b.balance.Subscribe(b, func(float64) { b.refresh() })
	b.progress.Subscribe(b, func(p float64) { b.gauge.SetProgress(p) })
	b.refresh()
	return b
}

// Actor returns the business's actor.
func (b *Business) Actor() *actor.Actor {
	return b.actor
}

// Name returns the configured venture name.
func (b *Business) Name() string {
	return b.cfg.Name
}

// Units returns the owned unit count.
func (b *Business) Units() int {
	return b.units.Get()
}

// UnitCost returns the cost of the next unit.
func (b *Business) UnitCost() float64 {
	return b.unitCost
}

// Multiplier returns the current profit multiplier.
func (b *Business) Multiplier() float64 {
	return b.multiplier
}

// Managed reports whether a manager automates the cycles.
func (b *Business) Managed() bool {
	return b.managed
}

// Running reports whether a production cycle is in progress.
func (b *Business) Running() bool {
	return b.running
}

// Progress returns the current cycle fraction in [0, 1).
func (b *Business) Progress() float64 {
	return b.progress.Get()
}

// Invested returns the total amount spent on this venture.
func (b *Business) Invested() float64 {
	return b.invested
}

// NaturalSize returns the unscaled row size.
func (b *Business) NaturalSize() (int, int) {
	buttonW, buttonH := b.button.NaturalSize()
	textX := buttonW + textGap

	colW := 0
	for _, d := range []scene.Display{b.stats, b.yield, b.gauge} {
		if w, _ := d.NaturalSize(); w > colW {
			colW = w
		}
	}

	h := buttonH
	if gaugeRow+1 > h {
		h = gaugeRow + 1
	}
	return textX + colW, h
}

// SetSelected toggles the selection highlight on the row's button.
func (b *Business) SetSelected(selected bool) {
	b.button.SetSelected(selected)
}

// Press gives press feedback and starts a cycle by hand.
func (b *Business) Press() {
	b.button.Press()
}

// Work starts a production cycle. Nothing happens with no units owned
// or while a cycle already runs.
func (b *Business) Work() {
	if b.units.Get() == 0 || b.running {
		return
	}
	b.running = true
}

// Buy purchases one unit if the balance covers the current cost.
// Reaching a unit milestone doubles the profit multiplier.
func (b *Business) Buy() bool {
	cost := b.unitCost
	if b.balance.Get() < cost {
		return false
	}
	observe.Adjust(b.balance, -cost)
	b.invested += cost
	b.unitCost = cost * b.cfg.CostGrowth

	n := b.units.Get() + 1
	for _, m := range unitMilestones {
		if n == m {
			b.multiplier *= 2
		}
	}
	b.units.Set(n)
	return true
}

// Hire buys the manager if affordable. Managed ventures restart their
// cycle automatically and keep earning while the game is closed.
func (b *Business) Hire() bool {
	if b.managed || b.balance.Get() < b.cfg.ManagerCost {
		return false
	}
	observe.Adjust(b.balance, -b.cfg.ManagerCost)
	b.invested += b.cfg.ManagerCost
	b.managed = true
	b.refresh()
	return true
}

// profitPerCycle is what one completed cycle pays out right now.
func (b *Business) profitPerCycle() float64 {
	return b.cfg.BaseProfit * float64(b.units.Get()) * b.multiplier
}

// OnUpdate advances a running cycle. Completions publish on the bus;
// managed ventures roll straight into the next cycle, carrying any
// overshoot so short cycles keep their cadence at coarse tick rates.
func (b *Business) OnUpdate(_ *actor.Actor, dt float64) {
	if b.managed && !b.running && b.units.Get() > 0 {
		b.running = true
	}
	if !b.running {
		return
	}
	p := b.progress.Get() + dt/b.cfg.CycleSeconds
	for p >= 1 && b.running {
		p--
		b.bus.Publish(EventCycleComplete, CycleResult{Business: b.cfg.Name, Profit: b.profitPerCycle()})
		if !b.managed {
			b.running = false
			p = 0
		}
	}
	b.progress.Set(p)
}

// AdvanceOffline runs a managed venture through away time and returns
// the profit earned. Unmanaged ventures idle while the game is closed.
func (b *Business) AdvanceOffline(seconds float64) float64 {
	if !b.managed || b.units.Get() == 0 || seconds <= 0 {
		return 0
	}
	total := b.progress.Get()*b.cfg.CycleSeconds + seconds
	completed := math.Floor(total / b.cfg.CycleSeconds)
	b.progress.Set((total - completed*b.cfg.CycleSeconds) / b.cfg.CycleSeconds)
	b.running = true
	return b.profitPerCycle() * completed
}

// OnSave writes the venture's state. Writes are best-effort; a failed
// one is retried by the next autosave.
func (b *Business) OnSave(_ *actor.Actor, s actor.Store) {
	s.SetNumber(b.key("units"), float64(b.units.Get()))
	s.SetNumber(b.key("cost"), b.unitCost)
	s.SetNumber(b.key("multiplier"), b.multiplier)
	s.SetNumber(b.key("managed"), boolToNum(b.managed))
	s.SetNumber(b.key("progress"), b.progress.Get())
	s.SetNumber(b.key("invested"), b.invested)
}

// OnRestore reads the venture's state back, starting fresh for
// anything the store does not have.
func (b *Business) OnRestore(_ *actor.Actor, s actor.Store) {
	b.unitCost = s.Number(b.key("cost"), b.cfg.BaseCost)
	b.multiplier = s.Number(b.key("multiplier"), 1)
	b.managed = s.Number(b.key("managed"), 0) != 0
	b.invested = s.Number(b.key("invested"), 0)
	b.units.Set(int(s.Number(b.key("units"), 0)))
	b.progress.Set(s.Number(b.key("progress"), 0))
	b.running = b.progress.Get() > 0 || (b.managed && b.units.Get() > 0)
	b.refresh()
}

// OnDestroy drops the row's observable subscriptions.
func (b *Business) OnDestroy(*actor.Actor) {
	b.units.Unsubscribe(b)
	b.progress.Unsubscribe(b)
	b.balance.Unsubscribe(b)
}

// refresh rewrites both text lines from current state.
func (b *Business) refresh() {
	b.stats.SetText(fmt.Sprintf("x%d  next %s", b.units.Get(), FormatMoney(b.unitCost)))
	if b.balance.Get() >= b.unitCost {
		b.stats.SetColor(core.ColorBrightGreen)
	} else {
		b.stats.SetColor(core.ColorGray)
	}

	line := fmt.Sprintf("+%s every %.1fs", FormatMoney(b.profitPerCycle()), b.cfg.CycleSeconds)
	if b.managed {
		line += "  [MGR]"
		b.yield.SetColor(core.ColorGold)
	} else {
		b.yield.SetColor(core.ColorGray)
	}
	b.yield.SetText(line)
}

func (b *Business) key(field string) string {
	return "biz." + slugify(b.cfg.Name) + "." + field
}

// slugify turns a venture name into a save-key segment.
func slugify(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

func boolToNum(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
