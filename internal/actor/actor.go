// Package actor provides the logical game tree built on top of the
// scene package.
//
// An Actor owns one scene node, an ordered list of child actors and a
// set of uniquely named displays. Domain logic lives in an injected
// Behavior; the actor itself only walks the tree. Lifecycle walks
// (Load, Save, Restore, Update) run pre-order: the actor first, then its
// children in attach order, so a parent always acts before anything
// below it.
package actor

import (
	"fmt"

	"github.com/vovakirdan/tui-tycoon/internal/scene"
)

// Actor is a node in the game's logical tree.
type Actor struct {
	name     string
	config   any
	behavior Behavior
	node     *scene.Node

	parent   *Actor
	children []*Actor

	displays     map[string]scene.Display
	displayOrder []string
}

// New creates a detached actor with the given name, opaque config
// payload and behavior. A nil behavior gets NopBehavior.
func New(name string, config any, b Behavior) *Actor {
	if b == nil {
		b = NopBehavior{}
	}
	return &Actor{
		name:     name,
		config:   config,
		behavior: b,
		node:     scene.NewNode(),
		displays: make(map[string]scene.Display),
	}
}

// Name returns the actor's name.
func (a *Actor) Name() string {
	return a.name
}

// Config returns the opaque config payload supplied at construction.
func (a *Actor) Config() any {
	return a.config
}

// Node returns the actor's scene node.
func (a *Actor) Node() *scene.Node {
	return a.node
}

// Parent returns the actor this one is attached to, or nil.
func (a *Actor) Parent() *Actor {
	return a.parent
}

// Children returns the ordered child list. Callers must not mutate it.
func (a *Actor) Children() []*Actor {
	return a.children
}

// AttachChild appends child to the end of the child list and mounts its
// container under this actor's container. Panics on nil, on a child
// that is already attached, and on an attach that would create a cycle;
// all three are programmer errors.
func (a *Actor) AttachChild(child *Actor) {
	if child == nil {
		panic("actor: attach nil child")
	}
	if child.parent != nil {
		panic(fmt.Sprintf("actor: %q is already attached to %q", child.name, child.parent.name))
	}
	for anc := a; anc != nil; anc = anc.parent {
		if anc == child {
			panic(fmt.Sprintf("actor: attaching %q to %q would create a cycle", child.name, a.name))
		}
	}
	child.parent = a
	a.children = append(a.children, child)
	a.node.Container().AddChild(child.node.Container())
}

// DetachChild removes child from the child list and unmounts its
// container, preserving the order of the remaining children. Reports
// whether the child was found.
func (a *Actor) DetachChild(child *Actor) bool {
	for i, c := range a.children {
		if c == child {
			a.children = append(a.children[:i], a.children[i+1:]...)
			child.parent = nil
			a.node.Container().RemoveChild(child.node.Container())
			return true
		}
	}
	return false
}

// AttachDisplay registers a display under a unique name and mounts its
// container under this actor's container. Panics on a duplicate name or
// a nil display; both are programmer errors.
func (a *Actor) AttachDisplay(name string, d scene.Display) {
	if d == nil {
		panic(fmt.Sprintf("actor: nil display %q on %q", name, a.name))
	}
	if _, exists := a.displays[name]; exists {
		panic(fmt.Sprintf("actor: display %q already attached to %q", name, a.name))
	}
	a.displays[name] = d
	a.displayOrder = append(a.displayOrder, name)
	a.node.Container().AddChild(d.Node().Container())
}

// Display returns the display registered under name, or nil.
func (a *Actor) Display(name string) scene.Display {
	return a.displays[name]
}

// Displays returns the displays in attach order.
func (a *Actor) Displays() []scene.Display {
	out := make([]scene.Display, 0, len(a.displayOrder))
	for _, name := range a.displayOrder {
		out = append(out, a.displays[name])
	}
	return out
}

// Load runs the OnLoad hooks over the subtree, the actor before its
// children.
func (a *Actor) Load() {
	a.behavior.OnLoad(a)
	for _, c := range a.children {
		c.Load()
	}
}

// Save runs the OnSave hooks over the subtree, the actor before its
// children.
func (a *Actor) Save(s Store) {
	a.behavior.OnSave(a, s)
	for _, c := range a.children {
		c.Save(s)
	}
}

// Restore runs the OnRestore hooks over the subtree, the actor before
// its children.
func (a *Actor) Restore(s Store) {
	a.behavior.OnRestore(a, s)
	for _, c := range a.children {
		c.Restore(s)
	}
}

// Update advances the subtree by dt seconds, the actor before its
// children.
func (a *Actor) Update(dt float64) {
	a.behavior.OnUpdate(a, dt)
	for _, c := range a.children {
		c.Update(dt)
	}
}

// Destroy tears the actor down: the OnDestroy hook first, then the
// children, then the displays, then the actor's own node. After destroy
// the actor is detached and renders nothing. At most once per actor.
func (a *Actor) Destroy() {
	a.behavior.OnDestroy(a)
	for len(a.children) > 0 {
		a.children[0].Destroy()
	}
	if a.parent != nil {
		a.parent.DetachChild(a)
	}
	for _, name := range a.displayOrder {
		a.displays[name].Destroy()
	}
	a.displays = make(map[string]scene.Display)
	a.displayOrder = nil
	a.node.Destroy()
}
