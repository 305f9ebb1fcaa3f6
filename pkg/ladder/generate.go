package ladder

// Generate produces a rung layout for the given configuration, drawing
// randomness from src. If src is nil, [DefaultSource] is used.
//
// Each level is filled independently by a single left-to-right scan over the
// gap positions 0..Players-2. At each gap one value is drawn; if it falls
// below cfg.Probability a rung is placed and the scan skips the next gap,
// so adjacent gaps can never both hold a rung. Otherwise the scan advances
// by one and the next gap stays eligible.
//
// The scan is intentionally a greedy pass, not a uniform sample over all
// valid non-adjacent configurations: earlier gaps have a structural
// advantage. This matches the classic pencil-and-paper procedure of drawing
// rungs left to right and is the specified behavior, not a sampling defect.
//
// Generate returns an error with code [errors.ErrCodeInvalidConfig] if the
// configuration is out of range.
func Generate(cfg Config, src Source) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}
	if src == nil {
		src = DefaultSource()
	}

	rungs := make([][]bool, cfg.Levels)
	gaps := cfg.Players - 1
	for c := range rungs {
		level := make([]bool, gaps)
		for i := 0; i < gaps; {
			if src.Float64() < cfg.Probability {
				level[i] = true
				i += 2 // the neighboring gap must stay empty
			} else {
				i++
			}
		}
		rungs[c] = level
	}
	return Layout{Rungs: rungs}, nil
}
