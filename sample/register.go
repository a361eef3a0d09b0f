package sample

import "github.com/randalmurphal/linekit/step"

func init() {
	step.Register(Op, newFromStepConfig)
}

// newFromStepConfig creates a Sampler from a step.Config.
func newFromStepConfig(cfg step.Config) (step.Transform, error) {
	s, err := New(cfg.Stride)
	if err != nil {
		return nil, err
	}
	return s, nil
}
