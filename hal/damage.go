package hal

import "hash/fnv"

// rowDamage remembers a hash per framebuffer row so a slow panel link only
// has to carry the rows that changed since the last present.
type rowDamage struct {
	sums []uint64
	seen bool
}

func newRowDamage(rows int) *rowDamage {
	return &rowDamage{sums: make([]uint64, rows)}
}

// update rehashes buf and returns the changed row span [y0, y1). An empty
// span means nothing changed. The first call reports every row.
func (d *rowDamage) update(buf []byte, stride int) (y0, y1 int) {
	y0, y1 = len(d.sums), 0
	for y := range d.sums {
		off := y * stride
		if off+stride > len(buf) {
			break
		}
		h := fnv.New64a()
		h.Write(buf[off : off+stride])
		sum := h.Sum64()
		if !d.seen || sum != d.sums[y] {
			if y < y0 {
				y0 = y
			}
			y1 = y + 1
		}
		d.sums[y] = sum
	}
	d.seen = true
	if y1 <= y0 {
		return 0, 0
	}
	return y0, y1
}
