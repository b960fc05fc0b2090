// Package tycoon implements Venture Tycoon, an incremental idle game.
// A bank actor owns the balance and one business row per configured
// venture; cycle completions flow through an injected event bus back
// into the balance. The package registers two modes: "venture"
// (persistent) and "venture_sprint" (timed score attack).
package tycoon

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/tui-tycoon/internal/core"
)

// iconAsset is one entry of the icon table: character art plus the
// color it renders in. Spaces in the art are transparent.
type iconAsset struct {
	rows  []string
	color core.Color
}

var icons = map[string]iconAsset{
	"lemonade": {
		rows: []string{
			`    /   `,
			` __/__  `,
			`|     | `,
			`| ~~~ | `,
			`|_____| `,
		},
		color: core.ColorBrightYellow,
	},
	"arcade": {
		rows: []string{
			` ______ `,
			`|  __  |`,
			`| |__| |`,
			`| o  o |`,
			`|______|`,
		},
		color: core.ColorBrightMagenta,
	},
	"rocket": {
		rows: []string{
			`   /\   `,
			`  /  \  `,
			` | () | `,
			` |    | `,
			` /_/\_\ `,
		},
		color: core.ColorBrightRed,
	},
}

// IconExists reports whether the icon table knows the given name.
// Config validation uses this to reject unknown icons up front.
func IconExists(name string) bool {
	_, ok := icons[name]
	return ok
}

// IconNames returns the known icon names, sorted.
func IconNames() []string {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IconArt returns the art rows and color for an icon. Panics on an
// unknown name; config validation is expected to have run first.
func IconArt(name string) ([]string, core.Color) {
	asset, ok := icons[name]
	if !ok {
		panic(fmt.Sprintf("tycoon: unknown icon %q", name))
	}
	return asset.rows, asset.color
}

// FormatMoney renders an amount the way idle games do: two decimals
// with a K/M/B/T suffix once the magnitude calls for one.
func FormatMoney(v float64) string {
	abs := math.Abs(v)
	var s string
	switch {
	case abs >= 1e12:
		s = fmt.Sprintf("$%.2fT", abs/1e12)
	case abs >= 1e9:
		s = fmt.Sprintf("$%.2fB", abs/1e9)
	case abs >= 1e6:
		s = fmt.Sprintf("$%.2fM", abs/1e6)
	case abs >= 1e3:
		s = fmt.Sprintf("$%.2fK", abs/1e3)
	default:
		s = fmt.Sprintf("$%.2f", abs)
	}
	if v < 0 {
		return "-" + s
	}
	return s
}
