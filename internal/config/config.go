// Package config provides YAML-based game configuration loading and
// validation for the tycoon platform.
package config

import (
	"fmt"
)

// TycoonConfig contains all configuration for the venture tycoon game.
type TycoonConfig struct {
	Bank       BankConfig       `yaml:"bank"`
	Button     ButtonConfig     `yaml:"button"`
	Businesses []BusinessConfig `yaml:"businesses"`
	Offline    OfflineConfig    `yaml:"offline"`
	Sprint     SprintConfig     `yaml:"sprint"`
}

// BankConfig defines the bank header and opening state.
type BankConfig struct {
	StartingBalance float64 `yaml:"starting_balance"`
	HeaderHeight    float64 `yaml:"header_height"` // rows reserved above the venture column
}

// ButtonConfig defines the shared venture button presentation.
type ButtonConfig struct {
	GaugeWidth   int     `yaml:"gauge_width"`   // progress bar width in cells
	FlashSeconds float64 `yaml:"flash_seconds"` // press feedback duration
}

// BusinessConfig defines one venture.
type BusinessConfig struct {
	Name         string  `yaml:"name"`
	Icon         string  `yaml:"icon"`
	BaseCost     float64 `yaml:"base_cost"`     // cost of the first unit
	BaseProfit   float64 `yaml:"base_profit"`   // profit per unit per cycle
	CycleSeconds float64 `yaml:"cycle_seconds"` // duration of one production cycle
	CostGrowth   float64 `yaml:"cost_growth"`   // unit cost multiplier per purchase, >= 1
	ManagerCost  float64 `yaml:"manager_cost"`  // one-time cost to automate cycles
}

// OfflineConfig defines earnings accrued while the game is closed.
type OfflineConfig struct {
	Enabled  bool    `yaml:"enabled"`
	MaxHours float64 `yaml:"max_hours"` // cap on credited away time
}

// SprintConfig defines the timed score-attack mode.
type SprintConfig struct {
	DurationSeconds float64 `yaml:"duration_seconds"`
}

// Validate checks the configuration and returns a descriptive error for
// the first problem found. iconExists reports whether an icon name is
// known to the asset table; pass nil to skip icon checks.
func (c TycoonConfig) Validate(iconExists func(name string) bool) error {
	if c.Bank.StartingBalance < 0 {
		return fmt.Errorf("config: bank starting_balance must not be negative, got %v", c.Bank.StartingBalance)
	}
	if c.Bank.HeaderHeight < 0 {
		return fmt.Errorf("config: bank header_height must not be negative, got %v", c.Bank.HeaderHeight)
	}
	if c.Button.GaugeWidth <= 0 {
		return fmt.Errorf("config: button gauge_width must be positive, got %d", c.Button.GaugeWidth)
	}
	if c.Button.FlashSeconds < 0 {
		return fmt.Errorf("config: button flash_seconds must not be negative, got %v", c.Button.FlashSeconds)
	}

	if len(c.Businesses) == 0 {
		return fmt.Errorf("config: no businesses defined")
	}
	seen := make(map[string]bool, len(c.Businesses))
	for i, b := range c.Businesses {
		if b.Name == "" {
			return fmt.Errorf("config: business %d has no name", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("config: duplicate business name %q", b.Name)
		}
		seen[b.Name] = true

		if b.BaseCost <= 0 {
			return fmt.Errorf("config: business %q: base_cost must be positive, got %v", b.Name, b.BaseCost)
		}
		if b.BaseProfit <= 0 {
			return fmt.Errorf("config: business %q: base_profit must be positive, got %v", b.Name, b.BaseProfit)
		}
		if b.CycleSeconds <= 0 {
			return fmt.Errorf("config: business %q: cycle_seconds must be positive, got %v", b.Name, b.CycleSeconds)
		}
		if b.CostGrowth < 1 {
			return fmt.Errorf("config: business %q: cost_growth must be at least 1, got %v", b.Name, b.CostGrowth)
		}
		if b.ManagerCost <= 0 {
			return fmt.Errorf("config: business %q: manager_cost must be positive, got %v", b.Name, b.ManagerCost)
		}
		if iconExists != nil && !iconExists(b.Icon) {
			return fmt.Errorf("config: business %q: unknown icon %q", b.Name, b.Icon)
		}
	}

	if c.Offline.MaxHours < 0 {
		return fmt.Errorf("config: offline max_hours must not be negative, got %v", c.Offline.MaxHours)
	}
	if c.Sprint.DurationSeconds <= 0 {
		return fmt.Errorf("config: sprint duration_seconds must be positive, got %v", c.Sprint.DurationSeconds)
	}
	return nil
}
