package config

import (
	_ "embed"
)

//go:embed defaults/venture.yaml
var defaultVentureYAML []byte

// DefaultTycoonConfig returns the default venture tycoon configuration.
func DefaultTycoonConfig() TycoonConfig {
	return TycoonConfig{
		Bank: BankConfig{
			StartingBalance: 100,
			HeaderHeight:    6,
		},
		Button: ButtonConfig{
			GaugeWidth:   12,
			FlashSeconds: 0.25,
		},
		Businesses: []BusinessConfig{
			{
				Name:         "Lemonade Stand",
				Icon:         "lemonade",
				BaseCost:     10,
				BaseProfit:   4,
				CycleSeconds: 2,
				CostGrowth:   1.12,
				ManagerCost:  120,
			},
			{
				Name:         "Pixel Arcade",
				Icon:         "arcade",
				BaseCost:     120,
				BaseProfit:   36,
				CycleSeconds: 6,
				CostGrowth:   1.15,
				ManagerCost:  900,
			},
			{
				Name:         "Rocket Lab",
				Icon:         "rocket",
				BaseCost:     1500,
				BaseProfit:   320,
				CycleSeconds: 18,
				CostGrowth:   1.18,
				ManagerCost:  8000,
			},
		},
		Offline: OfflineConfig{
			Enabled:  true,
			MaxHours: 8,
		},
		Sprint: SprintConfig{
			DurationSeconds: 180,
		},
	}
}

// DefaultYAML returns the embedded default venture YAML.
func DefaultYAML() []byte {
	return defaultVentureYAML
}
