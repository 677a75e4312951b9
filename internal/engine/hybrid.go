package engine

import "gonum.org/v1/gonum/floats"

// combineScores fuses the two branches after rescaling each to [0, 1] so
// neither dominates purely by numeric range. A nil branch donates its whole
// weight to the other, so thin collaborative data never drags books down.
func (e *Engine) combineScores(content, collaborative []float64) []float64 {
	switch {
	case content == nil:
		return rescale(collaborative)
	case collaborative == nil:
		return rescale(content)
	}
	c := rescale(content)
	b := rescale(collaborative)
	out := make([]float64, len(c))
	for i := range out {
		out[i] = e.cfg.ContentWeight*c[i] + e.cfg.CollaborativeWeight*b[i]
	}
	return out
}

// rescale min-max normalizes to [0, 1]. A constant input carries no ranking
// signal and maps to all zeros.
func rescale(scores []float64) []float64 {
	out := make([]float64, len(scores))
	lo, hi := floats.Min(scores), floats.Max(scores)
	if hi-lo < 1e-12 {
		return out
	}
	for i, s := range scores {
		out[i] = (s - lo) / (hi - lo)
	}
	return out
}
