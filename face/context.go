package face

import "tickface/gfx"

// Context carries the cached dial geometry between redraws. The host owns
// it and calls it from a single goroutine.
type Context struct {
	shape Shape

	vp    gfx.Rect
	geom  Geometry
	ticks TickTable
	valid bool

	recomputes int
}

func NewContext(shape Shape) *Context {
	return &Context{shape: shape}
}

func (c *Context) Shape() Shape       { return c.shape }
func (c *Context) Viewport() gfx.Rect { return c.vp }
func (c *Context) Geometry() Geometry { return c.geom }
func (c *Context) Ticks() *TickTable  { return &c.ticks }
func (c *Context) Recomputes() int    { return c.recomputes }
func (c *Context) Invalidate()        { c.valid = false }

// SetViewport recomputes the geometry if vp differs from the cached one.
// It reports whether a recompute happened.
func (c *Context) SetViewport(vp gfx.Rect) bool {
	if c.valid && vp == c.vp {
		return false
	}
	c.vp = vp
	c.geom, c.ticks = Recompute(c.shape, vp)
	c.valid = true
	c.recomputes++
	return true
}

// Draw renders the dial for the cached viewport.
func (c *Context) Draw(s *gfx.Surface) {
	if !c.valid {
		c.SetViewport(c.vp)
	}
	Render(s, c.shape, c.vp, c.geom, &c.ticks)
}
