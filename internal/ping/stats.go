package ping

import "math"

// Jitter returns the mean absolute difference between consecutive latency
// samples. Fewer than two samples give 0.
func Jitter(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(samples); i++ {
		sum += math.Abs(samples[i] - samples[i-1])
	}
	return sum / float64(len(samples)-1)
}

// JitterRatio returns jitter relative to the average RTT. The denominator is
// floored at 1ms so loopback targets don't blow up the ratio.
func JitterRatio(jitter, avgMs float64) float64 {
	if jitter == 0 {
		return 0
	}
	return jitter / math.Max(avgMs, 1.0)
}

// StdDev returns the population standard deviation of the samples
func StdDev(samples []float64) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}
	var mean float64
	for _, s := range samples {
		mean += s
	}
	mean /= float64(n)

	var sq float64
	for _, s := range samples {
		d := s - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(n))
}
