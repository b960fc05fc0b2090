package scene

import (
	"github.com/vovakirdan/tui-tycoon/internal/core"
)

// Painter supplies a container's drawable content as a cell grid in
// natural (unscaled) size. Displays install themselves as the painter of
// their node's container.
type Painter interface {
	Grid() [][]core.Cell
}

// Container is a node of the backend display tree. It carries placement
// state, an ordered child list and an optional painter for its own
// content. Children render after (on top of) their parent, in list
// order.
type Container struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	Visible        bool

	parent   *Container
	children []*Container
	painter  Painter
}

// NewContainer creates an empty, visible container with unit scale.
func NewContainer() *Container {
	return &Container{ScaleX: 1, ScaleY: 1, Visible: true}
}

// Parent returns the container this one is attached to, or nil.
func (c *Container) Parent() *Container {
	return c.parent
}

// Children returns the ordered child list. Callers must not mutate it.
func (c *Container) Children() []*Container {
	return c.children
}

// SetPainter installs the painter for this container's own content.
func (c *Container) SetPainter(p Painter) {
	c.painter = p
}

// Painter returns the installed painter, or nil.
func (c *Container) Painter() Painter {
	return c.painter
}

// AddChild appends child to the end of the child list. A child that is
// already attached somewhere is detached from its old parent first, so
// re-adding an existing child moves it to the end (topmost). Adding nil
// or the container itself is a no-op.
func (c *Container) AddChild(child *Container) {
	if child == nil || child == c {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = c
	c.children = append(c.children, child)
}

// RemoveChild detaches child, preserving the order of the remaining
// children. Reports whether the child was found.
func (c *Container) RemoveChild(child *Container) bool {
	for i, cc := range c.children {
		if cc == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Destroy detaches the container from its parent, destroys all children
// and clears the painter. A destroyed container renders nothing.
func (c *Container) Destroy() {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	for len(c.children) > 0 {
		c.children[0].Destroy()
	}
	c.painter = nil
	c.Visible = false
}
