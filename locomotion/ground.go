package locomotion

import "github.com/go-gl/mathgl/mgl64"

var down = mgl64.Vec3{0, -1, 0}

// GroundProbe classifies the body as grounded from three parallel downward
// rays: centre, left and right of the body's lower half.
type GroundProbe struct {
	castDistance  float64
	lateralOffset float64

	grounded bool
	hits     [3]bool
}

func NewGroundProbe(castDistance, lateralOffset float64) *GroundProbe {
	return &GroundProbe{castDistance: castDistance, lateralOffset: lateralOffset}
}

// Probe casts the rays and stores the result. right is the body's local
// lateral axis in world space.
func (g *GroundProbe) Probe(q SpatialQuery, position, scale, right mgl64.Vec3) bool {
	origin := position.Sub(mgl64.Vec3{0, scale.Y() * 0.5, 0})
	offset := right.Mul(g.lateralOffset)
	origins := [3]mgl64.Vec3{origin, origin.Sub(offset), origin.Add(offset)}

	g.grounded = false
	for i, o := range origins {
		_, g.hits[i] = q.CastRay(o, down, g.castDistance)
		g.grounded = g.grounded || g.hits[i]
	}
	return g.grounded
}

func (g *GroundProbe) Grounded() bool { return g.grounded }

// Hits reports the centre, left and right results of the last probe.
func (g *GroundProbe) Hits() [3]bool { return g.hits }

// Clear marks the body airborne until the next probe.
func (g *GroundProbe) Clear() { g.grounded = false }
