package physics

import (
	"math"

	"github.com/automoto/firstperson/locomotion"
	"github.com/go-gl/mathgl/mgl64"
)

// CastRay returns the closest solid box surface hit by the ray within
// maxDist. Boxes containing the origin are ignored.
func (w *World) CastRay(origin, dir mgl64.Vec3, maxDist float64) (locomotion.RayHit, bool) {
	end := origin.Add(dir.Mul(maxDist))
	lo, hi := minVec(origin, end), maxVec(origin, end)

	best := locomotion.RayHit{Distance: math.Inf(1)}
	found := false
	for _, box := range w.solidsIn(lo.X(), lo.Z(), hi.X(), hi.Z()) {
		t, normal, ok := intersectRay(origin, dir, box.Min, box.Max)
		if !ok || t > maxDist || t >= best.Distance {
			continue
		}
		best = locomotion.RayHit{Point: origin.Add(dir.Mul(t)), Normal: normal, Distance: t}
		found = true
	}
	return best, found
}

// BodiesNear returns bodies carrying all of tags whose AABB comes within
// radius of p.
func (w *World) BodiesNear(p mgl64.Vec3, radius float64, tags ...string) []*Body {
	objs := w.query(p.X()-radius, p.Z()-radius, p.X()+radius, p.Z()+radius, TagBody)
	var out []*Body
	for _, o := range objs {
		b, ok := o.Data.(*Body)
		if !ok || (len(tags) > 0 && !o.HasTags(tags...)) {
			continue
		}
		lo, hi := b.Bounds()
		closest := mgl64.Vec3{
			mgl64.Clamp(p.X(), lo.X(), hi.X()),
			mgl64.Clamp(p.Y(), lo.Y(), hi.Y()),
			mgl64.Clamp(p.Z(), lo.Z(), hi.Z()),
		}
		if closest.Sub(p).LenSqr() <= radius*radius {
			out = append(out, b)
		}
	}
	return out
}

// intersectRay is the slab test. It returns the entry distance and the
// normal of the entered face.
func intersectRay(origin, dir, lo, hi mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	tEnter, tExit := math.Inf(-1), math.Inf(1)
	var normal mgl64.Vec3
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, normal, false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		var n mgl64.Vec3
		n[i] = -1
		if t1 > t2 {
			t1, t2 = t2, t1
			n[i] = 1
		}
		if t1 > tEnter {
			tEnter = t1
			normal = n
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter > tExit {
			return 0, normal, false
		}
	}
	if tEnter < 0 {
		return 0, normal, false
	}
	return tEnter, normal, true
}
