package tycoon

import (
	"github.com/vovakirdan/tui-tycoon/internal/actor"
	"github.com/vovakirdan/tui-tycoon/internal/config"
	"github.com/vovakirdan/tui-tycoon/internal/core"
	"github.com/vovakirdan/tui-tycoon/internal/scene"
)

// Button is a pressable actor: icon art with a caption underneath.
// Pressing invokes the injected action and flashes the caption for the
// configured duration. Selection and flash only recolor the caption;
// the icon keeps its asset color.
type Button struct {
	actor.NopBehavior

	actor   *actor.Actor
	icon    *scene.Sprite
	caption *scene.Label

	flashFor  float64
	flashLeft float64
	selected  bool
	onPress   func()
}

// NewButton creates a button with the given caption and icon. onPress
// may be nil for a purely decorative button.
func NewButton(name, caption, icon string, cfg config.ButtonConfig, onPress func()) *Button {
	b := &Button{
		flashFor: cfg.FlashSeconds,
		onPress:  onPress,
	}
	b.actor = actor.New(name, cfg, b)

	art, color := IconArt(icon)
	b.icon = scene.NewSprite(art, color)
	b.caption = scene.NewLabel(caption, core.ColorWhite)
	_, iconH := b.icon.NaturalSize()
	b.caption.Node().SetPosition(0, float64(iconH))

	b.actor.AttachDisplay("icon", b.icon)
	b.actor.AttachDisplay("caption", b.caption)
	return b
}

// Actor returns the button's actor.
func (b *Button) Actor() *actor.Actor {
	return b.actor
}

// NaturalSize returns the unscaled size: icon above caption.
func (b *Button) NaturalSize() (int, int) {
	iw, ih := b.icon.NaturalSize()
	cw, ch := b.caption.NaturalSize()
	w := iw
	if cw > w {
		w = cw
	}
	return w, ih + ch
}

// Press runs the press action and starts the caption flash.
func (b *Button) Press() {
	b.flashLeft = b.flashFor
	b.applyColor()
	if b.onPress != nil {
		b.onPress()
	}
}

// SetSelected toggles the selection highlight.
func (b *Button) SetSelected(selected bool) {
	b.selected = selected
	b.applyColor()
}

// Pressing returns whether the press flash is still showing.
func (b *Button) Pressing() bool {
	return b.flashLeft > 0
}

func (b *Button) applyColor() {
	switch {
	case b.flashLeft > 0:
		b.caption.SetColor(core.ColorBrightYellow)
	case b.selected:
		b.caption.SetColor(core.ColorBrightCyan)
	default:
		b.caption.SetColor(core.ColorWhite)
	}
}

// OnUpdate runs down the press flash.
func (b *Button) OnUpdate(_ *actor.Actor, dt float64) {
	if b.flashLeft <= 0 {
		return
	}
	b.flashLeft -= dt
	if b.flashLeft <= 0 {
		b.flashLeft = 0
		b.applyColor()
	}
}
