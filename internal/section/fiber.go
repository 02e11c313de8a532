package section

// fiberLayer is one horizontal concrete slice of the discretized
// compression zone. Slices are generated fresh per evaluation and
// never mutated during integration.
type fiberLayer struct {
	Y         float64 // center ordinate from the compressed edge (mm)
	Thickness float64 // mm
}

// discretize partitions a section of height h into n equal-thickness
// slices centered at (i+0.5)·h/n. The slice order, from the compressed
// edge (y = 0) toward y = h, is relied on by the integrator's sign
// convention.
func discretize(h float64, n int) []fiberLayer {
	dy := h / float64(n)
	fibers := make([]fiberLayer, n)
	for i := range fibers {
		fibers[i] = fiberLayer{
			Y:         (float64(i) + 0.5) * dy,
			Thickness: dy,
		}
	}
	return fibers
}
