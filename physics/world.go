// Package physics is a small box-world rigid body simulation. Static and
// moving boxes live in a resolv.Space laid over the XZ plane, which serves as
// the broadphase for ray casts, body collision and projectile hits.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Resolv tags
const (
	TagSolid    = "solid"
	TagPlatform = "platform"
	TagBody     = "body"
	TagPlayer   = "player"
	TagEnemy    = "enemy"
	tagProbe    = "probe"
)

const (
	// UnitsPerMeter is the resolv grid resolution. resolv treats coordinates
	// as whole pixels, so metres are scaled up before they reach it.
	UnitsPerMeter = 16
	// skin is the overlap tolerance between touching boxes.
	skin = 1e-4
	// groundSnap is how far below its feet a body looks for a supporting box.
	groundSnap = 0.02
)

// World owns every box and body. Coordinates on the XZ plane must lie inside
// [0, width) x [0, depth); Y is unbounded. cellSize is in metres.
type World struct {
	space  *resolv.Space
	probe  *resolv.Object
	boxes  []*Box
	bodies []*Body

	Gravity float64
	// KillY marks bodies below it as out of bounds.
	KillY float64
}

func NewWorld(width, depth float64, cellSize int, gravity float64) *World {
	cell := cellSize * UnitsPerMeter
	// One spare cell per axis: NewSpace floors the cell count.
	cols := int(math.Ceil(width/float64(cellSize))) + 1
	rows := int(math.Ceil(depth/float64(cellSize))) + 1
	w := &World{
		space:   resolv.NewSpace(cols*cell, rows*cell, cell, cell),
		Gravity: gravity,
		KillY:   -50,
	}
	w.probe = w.newObject(0, 0, 0, 0, tagProbe)
	return w
}

// footprint converts an XZ rectangle in metres to resolv units. resolv
// takes X+W-1 as an object's last pixel, so the rectangle is padded by one
// unit per side; a zero-width rectangle still covers the cell it sits in.
func footprint(minX, minZ, maxX, maxZ float64) (x, y, w, h float64) {
	return minX*UnitsPerMeter - 1, minZ*UnitsPerMeter - 1,
		(maxX-minX)*UnitsPerMeter + 2, (maxZ-minZ)*UnitsPerMeter + 2
}

func (w *World) newObject(minX, minZ, maxX, maxZ float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(footprint(minX, minZ, maxX, maxZ))
	obj.AddTags(tags...)
	w.space.Add(obj)
	return obj
}

// place moves obj to cover the XZ rectangle and refreshes its cells.
func place(obj *resolv.Object, minX, minZ, maxX, maxZ float64) {
	obj.X, obj.Y, obj.W, obj.H = footprint(minX, minZ, maxX, maxZ)
	obj.Update()
}

// Space exposes the broadphase, mainly for debug drawing.
func (w *World) Space() *resolv.Space { return w.space }

func (w *World) Boxes() []*Box   { return w.boxes }
func (w *World) Bodies() []*Body { return w.bodies }

// query returns the objects with any of tags whose cells overlap the XZ rectangle.
func (w *World) query(minX, minZ, maxX, maxZ float64, tags ...string) []*resolv.Object {
	place(w.probe, minX, minZ, maxX, maxZ)
	check := w.probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tags...)
}

// solidsIn returns the solid boxes whose broadphase cells overlap the XZ rectangle.
func (w *World) solidsIn(minX, minZ, maxX, maxZ float64) []*Box {
	objs := w.query(minX, minZ, maxX, maxZ, TagSolid)
	boxes := make([]*Box, 0, len(objs))
	for _, o := range objs {
		if b, ok := o.Data.(*Box); ok {
			boxes = append(boxes, b)
		}
	}
	return boxes
}

// Step advances every body by dt: gravity, then movement resolved one axis
// at a time against solid boxes.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		w.stepBody(b, dt)
	}
}

func (w *World) stepBody(b *Body, dt float64) {
	if b.UseGravity {
		b.vel[1] += w.Gravity * dt
	}
	if b.ground != nil && b.Drag > 0 {
		k := math.Max(0, 1-b.Drag*dt)
		b.vel[0] *= k
		b.vel[2] *= k
	}

	half := b.HalfExtents()
	moveMin := b.pos.Sub(half).Add(minVec(b.vel.Mul(dt), mgl64.Vec3{}))
	moveMax := b.pos.Add(half).Add(maxVec(b.vel.Mul(dt), mgl64.Vec3{}))
	candidates := w.solidsIn(moveMin.X(), moveMin.Z(), moveMax.X(), moveMax.Z())

	landed := false
	for axis := 0; axis < 3; axis++ {
		delta := b.vel[axis] * dt
		if delta == 0 {
			continue
		}
		b.pos[axis] += delta
		for _, box := range candidates {
			if !overlaps(b.pos.Sub(half), b.pos.Add(half), box.Min, box.Max) {
				continue
			}
			if delta > 0 {
				b.pos[axis] = box.Min[axis] - half[axis] - skin
			} else {
				b.pos[axis] = box.Max[axis] + half[axis] + skin
				if axis == 1 {
					landed = true
					b.ground = box
				}
			}
			b.vel[axis] = 0
		}
	}

	if !landed {
		b.ground = w.support(b, candidates)
	}
	b.sync()
}

// support finds a box directly under the body's feet.
func (w *World) support(b *Body, candidates []*Box) *Box {
	if b.vel.Y() > 0 {
		return nil
	}
	half := b.HalfExtents()
	feet := b.pos.Y() - half.Y()
	lo, hi := b.pos.Sub(half), b.pos.Add(half)
	for _, box := range candidates {
		gap := feet - box.Max.Y()
		if gap < -skin*2 || gap > groundSnap {
			continue
		}
		if lo.X() < box.Max.X()-skin && hi.X() > box.Min.X()+skin &&
			lo.Z() < box.Max.Z()-skin && hi.Z() > box.Min.Z()+skin {
			return box
		}
	}
	return nil
}

// overlaps reports whether two AABBs intersect by more than skin on every axis.
func overlaps(aMin, aMax, bMin, bMax mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if aMin[i] >= bMax[i]-skin || aMax[i] <= bMin[i]+skin {
			return false
		}
	}
	return true
}

func minVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

func maxVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}
