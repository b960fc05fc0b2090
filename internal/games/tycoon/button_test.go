package tycoon

import (
	"testing"

	"github.com/vovakirdan/tui-tycoon/internal/config"
)

func testButtonConfig() config.ButtonConfig {
	return config.ButtonConfig{GaugeWidth: 12, FlashSeconds: 0.25}
}

func TestButtonNaturalSize(t *testing.T) {
	b := NewButton("button", "Lemonade Stand", "lemonade", testButtonConfig(), nil)

	w, h := b.NaturalSize()
	// Icon is 5 rows, caption one more below it.
	if h != 6 {
		t.Errorf("Expected natural height 6, got %d", h)
	}
	// The caption is wider than the 8-cell icon art.
	if w != len("Lemonade Stand") {
		t.Errorf("Expected natural width %d, got %d", len("Lemonade Stand"), w)
	}
}

func TestButtonPressRunsAction(t *testing.T) {
	pressed := 0
	b := NewButton("button", "Buy", "arcade", testButtonConfig(), func() { pressed++ })

	b.Press()
	b.Press()

	if pressed != 2 {
		t.Errorf("Expected 2 presses, got %d", pressed)
	}
}

func TestButtonFlashDecays(t *testing.T) {
	b := NewButton("button", "Buy", "rocket", testButtonConfig(), nil)

	b.Press()
	if !b.Pressing() {
		t.Fatal("Button should flash right after a press")
	}

	b.OnUpdate(nil, 0.1)
	if !b.Pressing() {
		t.Error("Flash should still be showing after 0.1s")
	}

	b.OnUpdate(nil, 0.2)
	if b.Pressing() {
		t.Error("Flash should have decayed after 0.3s total")
	}
}

func TestButtonDisplays(t *testing.T) {
	b := NewButton("button", "Buy", "lemonade", testButtonConfig(), nil)

	if b.Actor().Display("icon") == nil {
		t.Error("Button should attach an icon display")
	}
	if b.Actor().Display("caption") == nil {
		t.Error("Button should attach a caption display")
	}
}
