package random

import (
	"fmt"

	"github.com/pkg/errors"
)

// DistributionKind selects the statistical distribution to sample from.
type DistributionKind int

// Supported distributions.
const (
	KindStandard DistributionKind = iota
	KindUniform
	KindBernoulli
	KindNormal
)

// String returns a human-readable distribution name.
func (k DistributionKind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindUniform:
		return "uniform"
	case KindBernoulli:
		return "bernoulli"
	case KindNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// ErrInvalidDistribution is returned for distributions with invalid parameters.
var ErrInvalidDistribution = errors.New("invalid distribution")

// Distribution describes how tensor values are drawn.
// Build one with Standard, Uniform, Bernoulli or Normal.
type Distribution struct {
	Kind DistributionKind

	Low, High float64 // Uniform bounds, [Low, High)
	Prob      float64 // Bernoulli success probability
	Mean, Std float64 // Normal parameters
}

// Standard is the uniform distribution over [0, 1).
func Standard() Distribution {
	return Distribution{Kind: KindStandard, Low: 0, High: 1}
}

// Uniform is the uniform distribution over [low, high).
func Uniform(low, high float64) Distribution {
	return Distribution{Kind: KindUniform, Low: low, High: high}
}

// Bernoulli draws 1 with probability prob and 0 otherwise.
func Bernoulli(prob float64) Distribution {
	return Distribution{Kind: KindBernoulli, Prob: prob}
}

// Normal is the Gaussian distribution with the given mean and standard deviation.
func Normal(mean, std float64) Distribution {
	return Distribution{Kind: KindNormal, Mean: mean, Std: std}
}

// Validate checks the distribution parameters.
func (d Distribution) Validate() error {
	switch d.Kind {
	case KindStandard:
		return nil
	case KindUniform:
		if !(d.Low < d.High) {
			return errors.Wrapf(ErrInvalidDistribution, "uniform: low %g must be below high %g", d.Low, d.High)
		}
	case KindBernoulli:
		if d.Prob < 0 || d.Prob > 1 {
			return errors.Wrapf(ErrInvalidDistribution, "bernoulli: probability %g outside [0, 1]", d.Prob)
		}
	case KindNormal:
		if !(d.Std >= 0) {
			return errors.Wrapf(ErrInvalidDistribution, "normal: std %g must be >= 0", d.Std)
		}
	default:
		return errors.Wrapf(ErrInvalidDistribution, "unknown kind %d", int(d.Kind))
	}
	return nil
}

// String formats the distribution with its parameters.
func (d Distribution) String() string {
	switch d.Kind {
	case KindUniform:
		return fmt.Sprintf("uniform(%g, %g)", d.Low, d.High)
	case KindBernoulli:
		return fmt.Sprintf("bernoulli(%g)", d.Prob)
	case KindNormal:
		return fmt.Sprintf("normal(%g, %g)", d.Mean, d.Std)
	default:
		return d.Kind.String()
	}
}
