package statics

// Closed-form Euler–Bernoulli deflection cases. Loads in N/m or N, spans
// in m, E in Pa, I in m⁴; results in m.

// UniformDeflection is the midspan deflection of a simply supported beam
// under a uniform load: 5·q·L⁴ / (384·E·I).
func UniformDeflection(q, l, e, i float64) float64 {
	if e <= 0 || i <= 0 {
		return 0
	}
	return 5 * q * l * l * l * l / (384 * e * i)
}

// PointDeflection is the midspan deflection of a simply supported beam
// under a midspan point load: P·L³ / (48·E·I).
func PointDeflection(p, l, e, i float64) float64 {
	if e <= 0 || i <= 0 {
		return 0
	}
	return p * l * l * l / (48 * e * i)
}

// CantileverDeflection is the tip deflection of a cantilever under a
// uniform load: q·L⁴ / (8·E·I).
func CantileverDeflection(q, l, e, i float64) float64 {
	if e <= 0 || i <= 0 {
		return 0
	}
	return q * l * l * l * l / (8 * e * i)
}
