package text

// Metrics are the vertical font metrics of a face, in pixels. Descent is a
// positive distance below the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// LineHeight returns the distance between the baselines of consecutive
// lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
