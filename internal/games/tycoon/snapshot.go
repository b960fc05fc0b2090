package tycoon

// BusinessSnapshot captures one venture row's state.
type BusinessSnapshot struct {
	Name       string
	Units      int
	UnitCost   float64
	Multiplier float64
	Managed    bool
	Running    bool
	Progress   float64
	Invested   float64
}

// Snapshot captures the complete game state for determinism testing
// and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Balance    float64
	Worth      float64
	Selected   int
	SprintLeft float64
	GameOver   bool
	Paused     bool
	Businesses []BusinessSnapshot
}

// Snapshot returns the current game snapshot for determinism
// verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Selected:   g.selected,
		SprintLeft: g.sprintLeft,
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
	if g.bank == nil {
		return snap
	}

	snap.Balance = g.bank.Balance().Get()
	snap.Worth = g.bank.Worth()
	for _, b := range g.bank.Businesses() {
		snap.Businesses = append(snap.Businesses, BusinessSnapshot{
			Name:       b.Name(),
			Units:      b.Units(),
			UnitCost:   b.UnitCost(),
			Multiplier: b.Multiplier(),
			Managed:    b.Managed(),
			Running:    b.Running(),
			Progress:   b.Progress(),
			Invested:   b.Invested(),
		})
	}
	return snap
}
