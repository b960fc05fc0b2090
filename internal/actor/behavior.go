package actor

// Behavior supplies the domain hooks of an actor. Actors delegate their
// lifecycle to an injected behavior instead of being subclassed, so a
// behavior can be swapped or tested on its own. Embed NopBehavior to
// implement only the hooks a domain needs.
type Behavior interface {
	// OnLoad runs after the actor's subtree is constructed. Layout and
	// subscriptions belong here.
	OnLoad(a *Actor)
	// OnSave writes the actor's persistent state into the store.
	OnSave(a *Actor, s Store)
	// OnRestore reads the actor's persistent state back, using defaults
	// for anything the store does not have.
	OnRestore(a *Actor, s Store)
	// OnUpdate advances the actor by dt seconds of simulated time.
	OnUpdate(a *Actor, dt float64)
	// OnDestroy runs before the actor's subtree is torn down. Undo
	// external registrations (event bus, observables) here.
	OnDestroy(a *Actor)
}

// NopBehavior implements Behavior with no-ops.
type NopBehavior struct{}

// OnLoad does nothing.
func (NopBehavior) OnLoad(*Actor) {}

// OnSave does nothing.
func (NopBehavior) OnSave(*Actor, Store) {}

// OnRestore does nothing.
func (NopBehavior) OnRestore(*Actor, Store) {}

// OnUpdate does nothing.
func (NopBehavior) OnUpdate(*Actor, float64) {}

// OnDestroy does nothing.
func (NopBehavior) OnDestroy(*Actor) {}
