package geom

import (
	"fmt"
	"math"
)

// DistanceFunc ranks how close the trailing point of a left Line is to the
// leading point of a right Line. Smaller is closer. +Inf marks a pair that
// must never be merged.
type DistanceFunc func(left, right Point) float64

// Distance strategy names accepted by [DistanceByName].
const (
	DistanceEndpoint = "endpoint"
	DistanceSampled  = "sampled"
)

// DefaultSamples is the sample count used by the sampled strategy when none
// is configured.
const DefaultSamples = 4

// EndpointDistance is the Euclidean distance between the two points, each
// placed at the center of its vertical interval.
func EndpointDistance(left, right Point) float64 {
	if !left.Interval.Overlaps(right.Interval) {
		return math.Inf(1)
	}
	return math.Hypot(right.N-left.N, right.Interval.Center()-left.Interval.Center())
}

// SampledDistance returns a strategy that walks both vertical intervals in
// lockstep at the given number of evenly spaced samples and averages the
// Euclidean distance between the paired samples. Fewer than two samples are
// raised to two.
func SampledDistance(samples int) DistanceFunc {
	if samples < 2 {
		samples = 2
	}
	return func(left, right Point) float64 {
		if !left.Interval.Overlaps(right.Interval) {
			return math.Inf(1)
		}
		dx := right.N - left.N
		var sum float64
		for i := range samples {
			t := float64(i) / float64(samples-1)
			yl := left.Interval.Top + t*left.Interval.Height()
			yr := right.Interval.Top + t*right.Interval.Height()
			sum += math.Hypot(dx, yr-yl)
		}
		return sum / float64(samples)
	}
}

// DistanceByName resolves a strategy name. An empty name selects the
// endpoint strategy. samples only applies to the sampled strategy.
func DistanceByName(name string, samples int) (DistanceFunc, error) {
	switch name {
	case "", DistanceEndpoint:
		return EndpointDistance, nil
	case DistanceSampled:
		if samples == 0 {
			samples = DefaultSamples
		}
		return SampledDistance(samples), nil
	default:
		return nil, fmt.Errorf("unknown distance strategy %q", name)
	}
}

// LineDistance applies fn to the trailing point of left and the leading
// point of right. Empty Lines are infinitely far apart.
func LineDistance(fn DistanceFunc, left, right Line) float64 {
	last, ok := left.Last()
	if !ok {
		return math.Inf(1)
	}
	first, ok := right.First()
	if !ok {
		return math.Inf(1)
	}
	return fn(last, first)
}
