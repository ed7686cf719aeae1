package calculation

import (
	"math"
	"math/rand"
)

// UniformSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type UniformSource interface {
	Float64() float64
}

// NormalSampler draws one normally distributed value
type NormalSampler interface {
	Sample(mean, stdDev float64) float64
}

// BoxMuller turns pairs of uniform draws into normal deviates.
// It keeps no state besides its source, so it is as deterministic as the source.
type BoxMuller struct {
	src UniformSource
}

// NewBoxMuller wraps a uniform source
func NewBoxMuller(src UniformSource) *BoxMuller {
	return &BoxMuller{src: src}
}

// NewSeededSampler returns a Box-Muller sampler over a private seeded source
func NewSeededSampler(seed int64) *BoxMuller {
	return NewBoxMuller(rand.New(rand.NewSource(seed)))
}

// Sample returns z*stdDev + mean with z = sqrt(-2 ln u) * cos(2 pi v).
// u is redrawn while it is exactly 0 so the logarithm stays finite.
func (b *BoxMuller) Sample(mean, stdDev float64) float64 {
	u := b.src.Float64()
	for u == 0 {
		u = b.src.Float64()
	}
	v := b.src.Float64()
	z := math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
	return z*stdDev + mean
}

// MeanSampler always returns the mean. Useful for deterministic projections.
type MeanSampler struct{}

func (MeanSampler) Sample(mean, _ float64) float64 { return mean }
