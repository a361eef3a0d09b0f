// Package step defines the transform registry used by pipelines.
//
// Transform packages register a Factory under their op name in init():
//
//	func init() {
//	    step.Register("truncate", newFromStepConfig)
//	}
//
// Import the transforms package to make every built-in op available:
//
//	import _ "github.com/randalmurphal/linekit/transforms"
//
//	t, err := step.New(step.Config{Op: "sample", Stride: 4})
package step
