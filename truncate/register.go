package truncate

import "github.com/randalmurphal/linekit/step"

func init() {
	step.Register(Op, newFromStepConfig)
}

// newFromStepConfig creates a Truncator from a step.Config.
// An empty marker falls back to DefaultMarker.
func newFromStepConfig(cfg step.Config) (step.Transform, error) {
	if cfg.Marker == "" {
		return NewDefault(), nil
	}
	return New(cfg.Marker), nil
}
