package hal

func (s Screen) shapeName() string {
	if s.Round {
		return "round"
	}
	return "rect"
}

// glassMask marks the pixels a round panel can show, row-major. It returns
// nil for rectangular panels.
func glassMask(s Screen) []bool {
	if !s.Round || s.Width <= 0 || s.Height <= 0 {
		return nil
	}
	mask := make([]bool, s.Width*s.Height)
	d := s.Width
	if s.Height < d {
		d = s.Height
	}
	r2 := float64(d) * float64(d) / 4
	cx := float64(s.Width) / 2
	cy := float64(s.Height) / 2
	for y := 0; y < s.Height; y++ {
		dy := float64(y) + 0.5 - cy
		for x := 0; x < s.Width; x++ {
			dx := float64(x) + 0.5 - cx
			mask[y*s.Width+x] = dx*dx+dy*dy <= r2
		}
	}
	return mask
}
