package cubeworld

import "math"

const (
	// groups farther than this from the camera's cell are not considered
	pickRadius = 6.0
	// reach of the view ray
	pickReach = 5.0
)

// Intersect returns where the view ray meets the plane f lies in.
func (c *Camera) Intersect(f *Face) (Vector3, bool) {
	p, _, ok := f.Plane().LineIntersect(c.cameraPosition, c.DirectionVector())
	return p, ok
}

// LookingAt returns the distance from the camera to where its view ray
// crosses f, or false if the ray misses f.
func (c *Camera) LookingAt(f *Face) (float64, bool) {
	p, ok := c.Intersect(f)
	if !ok || !f.Contains(p) {
		return 0, false
	}
	return c.cameraPosition.DistanceTo(p), true
}

// LookedAtFace picks the nearest face hit by the camera's view ray among the
// groups close to the camera. Ties go to the first face in group order.
func LookedAtFace(c *Camera, groups []FaceGroup) *Face {
	var best *Face
	bestDistance := math.Inf(1)
	for _, g := range groups {
		if g.Distance > pickRadius {
			continue
		}
		for _, f := range g.Faces {
			d, ok := c.LookingAt(f)
			if !ok || d >= pickReach {
				continue
			}
			if d < bestDistance {
				best = f
				bestDistance = d
			}
		}
	}
	return best
}

// UpdateLookedAtFace recomputes the looked-at face from the cached visible
// faces. Call it every tick.
func (c *Camera) UpdateLookedAtFace() {
	c.lookedAt = LookedAtFace(c, c.visible.Groups())
}

// GetFaceLookedAt returns nil when nothing is in reach.
func (c *Camera) GetFaceLookedAt() *Face {
	return c.lookedAt
}
