package cubeworld

// Clist is a fixed-size circular list of camera-space points, used to walk a
// polygon's edges in winding order.
type Clist struct {
	points []Vector3
	max    int
	end    int
}

func NewClist(size int) *Clist {
	return &Clist{
		points: make([]Vector3, size),
		max:    size,
	}
}

func (c *Clist) AddPoint(p Vector3) {
	if c.end < c.max {
		c.points[c.end] = p
		c.end++
	}
}

func (c *Clist) Len() int {
	return c.end
}

func (c *Clist) At(i int) Vector3 {
	return c.points[i]
}

// Prev returns the point before i, wrapping at the start.
func (c *Clist) Prev(i int) Vector3 {
	i--
	if i < 0 {
		i = c.end - 1
	}
	return c.points[i]
}

// Next returns the point after i, wrapping at the end.
func (c *Clist) Next(i int) Vector3 {
	i++
	if i >= c.end {
		i = 0
	}
	return c.points[i]
}
