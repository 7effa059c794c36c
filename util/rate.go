package util

// Delta returns curr - prev, or 0 if curr < prev (counter reset).
func Delta(prev, curr uint64) uint64 {
	if curr < prev {
		return 0
	}
	return curr - prev
}

// DeltaF returns curr - prev for cumulative-time accumulators, or 0 if
// the accumulator went backwards.
func DeltaF(prev, curr float64) float64 {
	if curr < prev {
		return 0
	}
	return curr - prev
}

// Rate computes the per-second rate of a counter delta over etime
// seconds. Returns 0 when etime <= 0 or on counter reset.
func Rate(prev, curr uint64, etime float64) float64 {
	if etime <= 0 || curr < prev {
		return 0
	}
	return float64(curr-prev) / etime
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
