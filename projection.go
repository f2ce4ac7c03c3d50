package cubeworld

// TransformPoint moves p into camera space: translated so the eye is at the
// origin, then rotated so the view direction is +X.
func (c *Camera) TransformPoint(p Vector3) Vector3 {
	return c.matrix.RotateVector3(p.Sub(c.cameraPosition))
}

// WindowCoords projects f onto the camera's projection plane. A vertex at or
// behind the eye is replaced by where its edges to in-front neighbours cross
// the projection plane, so the result has between zero and five points.
func (c *Camera) WindowCoords(f *Face) []Vector2 {
	d := c.distance
	vertices := f.Vertices()
	pnts := NewClist(len(vertices))
	for _, v := range vertices {
		pnts.AddPoint(c.TransformPoint(v))
	}

	coords := make([]Vector2, 0, len(vertices)+1)
	for i := 0; i < pnts.Len(); i++ {
		p := pnts.At(i)
		if p.X > 0 {
			coords = append(coords, Vector2{X: d * p.Y / p.X, Y: d * p.Z / p.X})
			continue
		}
		if prev := pnts.Prev(i); prev.X > d {
			y, z := p.Intersect(prev, d)
			coords = append(coords, Vector2{X: y, Y: z})
		}
		if next := pnts.Next(i); next.X > d {
			y, z := p.Intersect(next, d)
			coords = append(coords, Vector2{X: y, Y: z})
		}
	}
	return coords
}
