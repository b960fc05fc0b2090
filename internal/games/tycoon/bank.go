package tycoon

import (
	"time"

	"github.com/vovakirdan/tui-tycoon/internal/actor"
	"github.com/vovakirdan/tui-tycoon/internal/config"
	"github.com/vovakirdan/tui-tycoon/internal/core"
	"github.com/vovakirdan/tui-tycoon/internal/events"
	"github.com/vovakirdan/tui-tycoon/internal/observe"
	"github.com/vovakirdan/tui-tycoon/internal/scene"
)

// rowX indents the venture rows to line up with the header labels.
const rowX = 1

// Bank is the root venture actor: it owns the balance, the header and
// one business row per configured venture. Profits arrive through the
// bus subscription, never by direct calls from the businesses.
type Bank struct {
	actor.NopBehavior

	cfg config.TycoonConfig
	bus *events.Bus

	actor    *actor.Actor
	title    *scene.Label
	balLabel *scene.Label

	balance    *observe.Value[float64]
	businesses []*Business

	windowW, windowH int
	savedAt          float64 // unix seconds of the last save, 0 = never
	now              func() time.Time
}

// NewBank builds the full venture tree for the given window size.
// The config is expected to have passed validation.
func NewBank(bus *events.Bus, cfg config.TycoonConfig, windowW, windowH int) *Bank {
	b := &Bank{
		cfg:     cfg,
		bus:     bus,
		balance: observe.New(cfg.Bank.StartingBalance),
		windowW: windowW,
		windowH: windowH,
		now:     time.Now,
	}
	b.actor = actor.New("bank", cfg, b)

	b.title = scene.NewLabel("VENTURE TYCOON", core.ColorGold)
	b.title.Node().SetPosition(rowX, 0)
	b.balLabel = scene.NewLabel("", core.ColorBrightGreen)
	b.balLabel.Node().SetPosition(rowX, 2)
	b.actor.AttachDisplay("title", b.title)
	b.actor.AttachDisplay("balance", b.balLabel)

	b.balance.Subscribe(b, func(v float64) {
		b.balLabel.SetText("Balance " + FormatMoney(v))
	})
	b.balLabel.SetText("Balance " + FormatMoney(b.balance.Get()))

	bus.Subscribe(b, EventCycleComplete, func(payload any) {
		cycle, ok := payload.(CycleResult)
		if !ok {
			return
		}
		observe.Adjust(b.balance, cycle.Profit)
	})

	for _, bc := range cfg.Businesses {
		biz := NewBusiness(bus, b.balance, bc, cfg.Button)
		b.businesses = append(b.businesses, biz)
		b.actor.AttachChild(biz.Actor())
	}
	return b
}

// Actor returns the bank's actor.
func (b *Bank) Actor() *actor.Actor {
	return b.actor
}

// Balance returns the shared balance observable.
func (b *Bank) Balance() *observe.Value[float64] {
	return b.balance
}

// Businesses returns the venture rows in config order.
func (b *Bank) Businesses() []*Business {
	return b.businesses
}

// Worth returns the net worth: balance plus everything invested.
func (b *Bank) Worth() float64 {
	worth := b.balance.Get()
	for _, biz := range b.businesses {
		worth += biz.Invested()
	}
	return worth
}

// SavedAt returns the unix time of the last restored save, 0 if the
// store had none.
func (b *Bank) SavedAt() float64 {
	return b.savedAt
}

// CreditOffline advances every managed venture through away time and
// adds the combined profit to the balance. Returns the amount earned.
func (b *Bank) CreditOffline(seconds float64) float64 {
	var earned float64
	for _, biz := range b.businesses {
		earned += biz.AdvanceOffline(seconds)
	}
	if earned > 0 {
		observe.Adjust(b.balance, earned)
	}
	return earned
}

// OnLoad lays out the venture column: the space below the header is
// split evenly, and a uniform scale fits the first row's natural
// height into its slot. Config validation guarantees at least one
// venture.
func (b *Bank) OnLoad(*actor.Actor) {
	_, naturalH := b.businesses[0].NaturalSize()
	scale, ys := layoutRows(float64(b.windowH), b.cfg.Bank.HeaderHeight, len(b.businesses), float64(naturalH))
	for i, biz := range b.businesses {
		biz.Actor().Node().SetPosition(rowX, ys[i])
		biz.Actor().Node().SetScale(scale, scale)
	}
}

// OnSave writes the balance and stamps the save time.
func (b *Bank) OnSave(_ *actor.Actor, s actor.Store) {
	s.SetNumber("bank.balance", b.balance.Get())
	s.SetNumber("bank.saved_at", float64(b.now().Unix()))
}

// OnRestore reads the balance back, falling back to the configured
// starting balance on a fresh store.
func (b *Bank) OnRestore(_ *actor.Actor, s actor.Store) {
	b.balance.Set(s.Number("bank.balance", b.cfg.Bank.StartingBalance))
	b.savedAt = s.Number("bank.saved_at", 0)
}

// OnDestroy drops the bank's bus and observable subscriptions.
func (b *Bank) OnDestroy(*actor.Actor) {
	b.bus.Unsubscribe(b)
	b.balance.Unsubscribe(b)
}

// layoutRows splits the space below headerBottom into count equal
// slots and returns the uniform scale that fits naturalH into one
// slot, plus each row's Y offset. Exact division: no rounding or gap
// correction.
func layoutRows(windowH, headerBottom float64, count int, naturalH float64) (scale float64, ys []float64) {
	available := windowH - headerBottom
	slot := available / float64(count)
	scale = slot / naturalH
	ys = make([]float64, count)
	for i := range ys {
		ys[i] = headerBottom + float64(i)*slot
	}
	return scale, ys
}
