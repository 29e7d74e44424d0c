package signal

import "fmt"

// Transformation describes a DSC-like measurement: a pre-transformation
// linear trend, a post-transformation linear trend, a sigmoidal switch
// between them and a Gaussian transformation peak on top.
type Transformation struct {
	LeftSlope      float64
	LeftIntercept  float64
	RightSlope     float64
	RightIntercept float64

	Center float64 // peak position
	Sigma  float64 // peak width
	Height float64 // peak height; negative for a downward (exothermic) peak
}

// DefaultTransformation returns the parameters used by the synth command:
// a downward crystallization-like peak near x=900 on a drifting baseline.
func DefaultTransformation() Transformation {
	return Transformation{
		LeftSlope:      0.002,
		LeftIntercept:  -1.2,
		RightSlope:     0.001,
		RightIntercept: -0.7,
		Center:         900,
		Sigma:          25,
		Height:         -1.5,
	}
}

// Curve evaluates the transformation at every x and adds white noise of the
// given amplitude. The sigmoid switches between the flank trends over the
// peak width, so the underlying baseline is itself non-linear.
func (g *Generator) Curve(x []float64, t Transformation, noise float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("transformation curve needs samples")
	}

	left := Linear(x, t.LeftSlope, t.LeftIntercept)
	right := Linear(x, t.RightSlope, t.RightIntercept)

	base, err := Blend(left, right, Logistic(x, t.Center, t.Sigma/2))
	if err != nil {
		return nil, err
	}

	parts := [][]float64{base, Gaussian(x, t.Center, t.Sigma, t.Height)}

	if noise > 0 {
		n, err := g.WhiteNoise(noise, len(x))
		if err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}

	return Sum(parts...)
}
