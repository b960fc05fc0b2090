package tycoon

import (
	"testing"

	"github.com/vovakirdan/tui-tycoon/internal/actor"
	"github.com/vovakirdan/tui-tycoon/internal/config"
	"github.com/vovakirdan/tui-tycoon/internal/events"
	"github.com/vovakirdan/tui-tycoon/internal/observe"
)

func testBusinessConfig() config.BusinessConfig {
	return config.BusinessConfig{
		Name:         "Lemonade Stand",
		Icon:         "lemonade",
		BaseCost:     10,
		BaseProfit:   4,
		CycleSeconds: 2,
		CostGrowth:   1.5,
		ManagerCost:  60,
	}
}

// newTestBusiness builds a venture on a fresh bus and balance, plus a
// counter of cycle publishes.
func newTestBusiness(t *testing.T, startBalance float64) (*Business, *observe.Value[float64], *[]CycleResult) {
	t.Helper()
	bus := events.NewBus()
	balance := observe.New(startBalance)
	b := NewBusiness(bus, balance, testBusinessConfig(), testButtonConfig())

	var cycles []CycleResult
	bus.Subscribe(t, EventCycleComplete, func(payload any) {
		if c, ok := payload.(CycleResult); ok {
			cycles = append(cycles, c)
		}
	})
	return b, balance, &cycles
}

func TestBuyDeductsAndGrowsCost(t *testing.T) {
	b, balance, _ := newTestBusiness(t, 100)

	if !b.Buy() {
		t.Fatal("First buy should succeed")
	}
	if balance.Get() != 90 {
		t.Errorf("Expected balance 90, got %v", balance.Get())
	}
	if b.Units() != 1 {
		t.Errorf("Expected 1 unit, got %d", b.Units())
	}
	if b.UnitCost() != 15 {
		t.Errorf("Expected next cost 15, got %v", b.UnitCost())
	}
	if b.Invested() != 10 {
		t.Errorf("Expected invested 10, got %v", b.Invested())
	}

	if !b.Buy() {
		t.Fatal("Second buy should succeed")
	}
	if balance.Get() != 75 {
		t.Errorf("Expected balance 75, got %v", balance.Get())
	}
	if b.UnitCost() != 22.5 {
		t.Errorf("Expected next cost 22.5, got %v", b.UnitCost())
	}
}

func TestBuyFailsWhenBroke(t *testing.T) {
	b, balance, _ := newTestBusiness(t, 5)

	if b.Buy() {
		t.Error("Buy should fail with balance below the cost")
	}
	if balance.Get() != 5 || b.Units() != 0 {
		t.Error("Failed buy should not change anything")
	}
}

func TestBuyMilestoneDoublesMultiplier(t *testing.T) {
	b, _, _ := newTestBusiness(t, 1e12)

	for i := 0; i < 9; i++ {
		b.Buy()
	}
	if b.Multiplier() != 1 {
		t.Errorf("Expected multiplier 1 at 9 units, got %v", b.Multiplier())
	}

	b.Buy() // unit 10
	if b.Multiplier() != 2 {
		t.Errorf("Expected multiplier 2 at 10 units, got %v", b.Multiplier())
	}

	for i := 0; i < 15; i++ {
		b.Buy() // up to 25
	}
	if b.Multiplier() != 4 {
		t.Errorf("Expected multiplier 4 at 25 units, got %v", b.Multiplier())
	}
}

func TestWorkRequiresUnits(t *testing.T) {
	b, _, _ := newTestBusiness(t, 100)

	b.Work()
	if b.Running() {
		t.Error("Work with no units should not start a cycle")
	}

	b.Buy()
	b.Work()
	if !b.Running() {
		t.Error("Work should start a cycle once a unit is owned")
	}
}

func TestCycleCompletionPublishesOnce(t *testing.T) {
	b, _, cycles := newTestBusiness(t, 100)
	b.Buy()
	b.Work()

	// 4 half-second updates complete one 2s cycle exactly.
	for i := 0; i < 4; i++ {
		b.OnUpdate(nil, 0.5)
	}

	if len(*cycles) != 1 {
		t.Fatalf("Expected exactly 1 cycle publish, got %d", len(*cycles))
	}
	got := (*cycles)[0]
	if got.Business != "Lemonade Stand" {
		t.Errorf("Expected business name in payload, got %q", got.Business)
	}
	if got.Profit != 4 {
		t.Errorf("Expected profit 4 (one unit, multiplier 1), got %v", got.Profit)
	}
	if b.Running() {
		t.Error("Unmanaged venture should stop after the cycle")
	}
	if b.Progress() != 0 {
		t.Errorf("Progress should reset to 0, got %v", b.Progress())
	}

	// Idle updates publish nothing further.
	b.OnUpdate(nil, 0.5)
	if len(*cycles) != 1 {
		t.Errorf("Idle venture should not publish, got %d publishes", len(*cycles))
	}
}

func TestHireManager(t *testing.T) {
	b, balance, _ := newTestBusiness(t, 100)
	b.Buy() // balance 90

	if !b.Hire() {
		t.Fatal("Hire should succeed with balance 90 and cost 60")
	}
	if balance.Get() != 30 {
		t.Errorf("Expected balance 30 after hire, got %v", balance.Get())
	}
	if !b.Managed() {
		t.Error("Venture should be managed after hire")
	}
	if b.Hire() {
		t.Error("Second hire should fail")
	}
}

func TestManagedAutoRestarts(t *testing.T) {
	b, _, cycles := newTestBusiness(t, 100)
	b.Buy()
	b.Hire()

	// Two full cycles of half-second updates. The manager starts and
	// restarts the cycle without any presses.
	for i := 0; i < 8; i++ {
		b.OnUpdate(nil, 0.5)
	}

	if len(*cycles) != 2 {
		t.Errorf("Expected 2 cycle publishes, got %d", len(*cycles))
	}
}

func TestManagedCarriesOvershoot(t *testing.T) {
	bus := events.NewBus()
	balance := observe.New(1000.0)
	cfg := testBusinessConfig()
	cfg.CycleSeconds = 0.5
	b := NewBusiness(bus, balance, cfg, testButtonConfig())

	count := 0
	bus.Subscribe(t, EventCycleComplete, func(any) { count++ })

	b.Buy()
	b.Hire()

	// One coarse 2s update covers four 0.5s cycles.
	b.OnUpdate(nil, 2.0)

	if count != 4 {
		t.Errorf("Expected 4 completions from one coarse update, got %d", count)
	}
}

func TestAdvanceOffline(t *testing.T) {
	b, _, cycles := newTestBusiness(t, 100)
	b.Buy()  // 1 unit, balance 90
	b.Hire() // balance 30

	// 5 seconds away on a 2s cycle: 2 completions, half a cycle left.
	earned := b.AdvanceOffline(5)
	if earned != 8 {
		t.Errorf("Expected 8 earned (2 cycles x profit 4), got %v", earned)
	}
	if b.Progress() != 0.5 {
		t.Errorf("Expected leftover progress 0.5, got %v", b.Progress())
	}

	// Offline credit must not go through the bus.
	if len(*cycles) != 0 {
		t.Errorf("AdvanceOffline should not publish, got %d publishes", len(*cycles))
	}
}

func TestAdvanceOfflineUnmanaged(t *testing.T) {
	b, _, _ := newTestBusiness(t, 100)
	b.Buy()

	if earned := b.AdvanceOffline(100); earned != 0 {
		t.Errorf("Unmanaged venture should earn nothing offline, got %v", earned)
	}
}

func TestBusinessSaveRestore(t *testing.T) {
	store := actor.NewMemStore()

	b, _, _ := newTestBusiness(t, 1e12)
	for i := 0; i < 10; i++ {
		b.Buy()
	}
	b.Hire()
	b.Work()
	b.OnUpdate(nil, 0.5)
	b.OnSave(nil, store)

	fresh, _, _ := newTestBusiness(t, 100)
	fresh.OnRestore(nil, store)

	if fresh.Units() != 10 {
		t.Errorf("Expected 10 units restored, got %d", fresh.Units())
	}
	if fresh.Multiplier() != 2 {
		t.Errorf("Expected multiplier 2 restored, got %v", fresh.Multiplier())
	}
	if fresh.UnitCost() != b.UnitCost() {
		t.Errorf("Expected cost %v restored, got %v", b.UnitCost(), fresh.UnitCost())
	}
	if !fresh.Managed() {
		t.Error("Manager should be restored")
	}
	if fresh.Progress() != 0.25 {
		t.Errorf("Expected progress 0.25 restored, got %v", fresh.Progress())
	}
	if !fresh.Running() {
		t.Error("Mid-cycle venture should resume running")
	}
	if fresh.Invested() != b.Invested() {
		t.Errorf("Expected invested %v restored, got %v", b.Invested(), fresh.Invested())
	}
}

func TestBusinessRestoreDefaults(t *testing.T) {
	b, _, _ := newTestBusiness(t, 100)
	b.OnRestore(nil, actor.NewMemStore())

	if b.Units() != 0 {
		t.Errorf("Fresh store should restore 0 units, got %d", b.Units())
	}
	if b.Multiplier() != 1 {
		t.Errorf("Fresh store should restore multiplier 1, got %v", b.Multiplier())
	}
	if b.UnitCost() != 10 {
		t.Errorf("Fresh store should restore base cost, got %v", b.UnitCost())
	}
	if b.Managed() || b.Running() {
		t.Error("Fresh store should restore an idle, unmanaged venture")
	}
}

func TestBusinessNaturalHeight(t *testing.T) {
	b, _, _ := newTestBusiness(t, 100)

	_, h := b.NaturalSize()
	if h != 6 {
		t.Errorf("Expected natural height 6 (button column), got %d", h)
	}
}
