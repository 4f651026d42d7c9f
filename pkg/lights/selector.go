package lights

// Selector picks lights for direct lighting with probability proportional
// to emitted power, so a bright ceiling panel is sampled more often than a
// dim filler light
type Selector struct {
	lights  []Light
	weights []float64
}

// NewSelector builds a selector over the given lights. Weights are
// normalized to sum to 1.0; if every light reports zero power the
// distribution falls back to uniform.
func NewSelector(lightList []Light) *Selector {
	if len(lightList) == 0 {
		return &Selector{}
	}

	weights := make([]float64, len(lightList))
	totalPower := 0.0
	for i, light := range lightList {
		weights[i] = light.Power()
		totalPower += weights[i]
	}

	if totalPower == 0 {
		uniform := 1.0 / float64(len(lightList))
		for i := range weights {
			weights[i] = uniform
		}
	} else {
		for i := range weights {
			weights[i] /= totalPower
		}
	}

	return &Selector{lights: lightList, weights: weights}
}

// Pick selects a light from the cumulative weight distribution using a
// uniform random number u in [0,1). Returns the light and its selection
// probability; a nil light means there is nothing to sample.
func (s *Selector) Pick(u float64) (Light, float64) {
	if len(s.lights) == 0 {
		return nil, 0.0
	}

	cumulative := 0.0
	for i, light := range s.lights {
		cumulative += s.weights[i]
		if u <= cumulative {
			return light, s.weights[i]
		}
	}

	// Rounding in the cumulative sum can leave u just past the end
	last := len(s.lights) - 1
	return s.lights[last], s.weights[last]
}
