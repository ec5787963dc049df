package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// defaultRestitution is the elasticity applied to every created shape.
const defaultRestitution = 0.7

// World owns a Chipmunk space with downward gravity. It is an isolated
// subsystem; nothing in the frame loop steps it implicitly, the host decides
// when and how often to call Step.
type World struct {
	space *cp.Space
}

// NewWorld creates a physics world with gravity (0, -9.81).
//
// Returns:
//   - *World: the empty world
func NewWorld() *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0.0, Y: -9.81})
	return &World{space: space}
}

// Space returns the underlying Chipmunk space for direct access.
func (w *World) Space() *cp.Space {
	return w.space
}

// Step advances the simulation by dt seconds.
//
// Parameters:
//   - dt: the timestep in seconds
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// Object is a rigid body plus its collision shape, both owned by a World.
type Object struct {
	body  *cp.Body
	shape *cp.Shape
}

// Body returns the object's rigid body.
func (o *Object) Body() *cp.Body {
	return o.body
}

// Shape returns the object's collision shape.
func (o *Object) Shape() *cp.Shape {
	return o.shape
}

// Position returns the body's current position.
//
// Returns:
//   - cp.Vector: the world-space position
func (o *Object) Position() cp.Vector {
	return o.body.Position()
}

// NewBox creates a box-shaped rigid body and adds it to the world.
// Mass derives from density times the box area; static bodies ignore density.
//
// Parameters:
//   - w: the world the object joins
//   - density: mass per unit area
//   - width: box width
//   - height: box height
//   - position: initial world-space position
//   - angle: initial rotation in radians
//   - static: true for an immovable body
//
// Returns:
//   - *Object: the created object
func NewBox(w *World, density, width, height float64, position cp.Vector, angle float64, static bool) *Object {
	var body *cp.Body
	if static {
		body = cp.NewStaticBody()
	} else {
		mass := density * width * height
		body = cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	}
	body.SetPosition(position)
	body.SetAngle(angle)
	w.space.AddBody(body)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetElasticity(defaultRestitution)
	w.space.AddShape(shape)

	return &Object{body: body, shape: shape}
}

// NewCircle creates a circle-shaped rigid body and adds it to the world.
// Mass derives from density times the circle area; static bodies ignore density.
//
// Parameters:
//   - w: the world the object joins
//   - density: mass per unit area
//   - radius: circle radius
//   - position: initial world-space position
//   - angle: initial rotation in radians
//   - static: true for an immovable body
//
// Returns:
//   - *Object: the created object
func NewCircle(w *World, density, radius float64, position cp.Vector, angle float64, static bool) *Object {
	var body *cp.Body
	if static {
		body = cp.NewStaticBody()
	} else {
		mass := density * math.Pi * radius * radius
		body = cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	}
	body.SetPosition(position)
	body.SetAngle(angle)
	w.space.AddBody(body)

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetElasticity(defaultRestitution)
	w.space.AddShape(shape)

	return &Object{body: body, shape: shape}
}
