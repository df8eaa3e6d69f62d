package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Box is an axis-aligned solid. Its resolv object covers the XZ footprint.
type Box struct {
	Min, Max mgl64.Vec3
	// Data links the box back to its owner, typically a *donburi.Entry.
	Data any

	world *World
	obj   *resolv.Object
}

// AddBox registers a solid box spanning lo..hi. Extra tags are added to
// its resolv object next to TagSolid.
func (w *World) AddBox(lo, hi mgl64.Vec3, tags ...string) *Box {
	b := &Box{Min: lo, Max: hi, world: w}
	b.obj = w.newObject(lo.X(), lo.Z(), hi.X(), hi.Z(), append([]string{TagSolid}, tags...)...)
	b.obj.Data = b
	w.boxes = append(w.boxes, b)
	return b
}

// RemoveBox drops the box. Bodies resting on it start falling next step.
func (w *World) RemoveBox(b *Box) {
	w.space.Remove(b.obj)
	for i, other := range w.boxes {
		if other == b {
			w.boxes = append(w.boxes[:i], w.boxes[i+1:]...)
			break
		}
	}
	for _, body := range w.bodies {
		if body.ground == b {
			body.ground = nil
		}
	}
}

// MoveTo translates the box so its minimum corner sits at corner. Bodies
// resting on it move along.
func (b *Box) MoveTo(corner mgl64.Vec3) {
	delta := corner.Sub(b.Min)
	if delta == (mgl64.Vec3{}) {
		return
	}
	b.Min = corner
	b.Max = b.Max.Add(delta)
	place(b.obj, b.Min.X(), b.Min.Z(), b.Max.X(), b.Max.Z())

	for _, body := range b.world.bodies {
		if body.ground == b {
			body.pos = body.pos.Add(delta)
			body.sync()
		}
	}
}

func (b *Box) Size() mgl64.Vec3   { return b.Max.Sub(b.Min) }
func (b *Box) Center() mgl64.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }
func (b *Box) Top() float64       { return b.Max.Y() }

// Object is the box's broadphase object.
func (b *Box) Object() *resolv.Object { return b.obj }
