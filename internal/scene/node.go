package scene

// Node ties one Transform to one Container and keeps them in sync.
// Assigning any of the transform's values copies the new state onto the
// container before the assignment returns, so the next render pass sees
// it without an explicit flush.
type Node struct {
	container *Container
	transform *Transform
}

// NewNode allocates a fresh container and transform and wires the three
// sync subscriptions (position, scale, rotation).
func NewNode() *Node {
	n := &Node{
		container: NewContainer(),
		transform: NewTransform(),
	}
	n.transform.Position.Subscribe(n, func(p Vec2) {
		n.container.X, n.container.Y = p.X, p.Y
	})
	n.transform.Scale.Subscribe(n, func(s Vec2) {
		n.container.ScaleX, n.container.ScaleY = s.X, s.Y
	})
	n.transform.Rotation.Subscribe(n, func(r float64) {
		n.container.Rotation = r
	})
	return n
}

// Container returns the node's backend container.
func (n *Node) Container() *Container {
	return n.container
}

// Transform returns the node's observable transform.
func (n *Node) Transform() *Transform {
	return n.transform
}

// SetPosition assigns the transform position.
func (n *Node) SetPosition(x, y float64) {
	n.transform.Position.Set(Vec2{X: x, Y: y})
}

// SetScale assigns the transform scale.
func (n *Node) SetScale(sx, sy float64) {
	n.transform.Scale.Set(Vec2{X: sx, Y: sy})
}

// SetRotation assigns the transform rotation in radians.
func (n *Node) SetRotation(r float64) {
	n.transform.Rotation.Set(r)
}

// Destroy releases the container first, then the transform.
// Callers own the lifecycle: destroy a node at most once.
func (n *Node) Destroy() {
	n.container.Destroy()
	n.transform.Destroy()
}
