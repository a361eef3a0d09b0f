// Package linekit provides line-oriented transforms for text files.
//
// Each subpackage can be used independently:
//
//   - lineio: line reading and writing with exact terminators and UTF-8 checks
//   - truncate: cut each line at the first occurrence of a marker
//   - sample: keep every Nth line
//   - step: op names, step configuration, and the transform registry
//   - template: {{variable}} rendering for intermediate file names
//   - pipeline: chain steps from YAML, TOML or JSON files, and re-run on change
//
// # Quick Start
//
// Truncate an access log at the user agent:
//
//	import "github.com/randalmurphal/linekit/truncate"
//	err := truncate.File("ramakarl_master.txt", "ramakarl_new.txt")
//
// Keep every 4th line:
//
//	import "github.com/randalmurphal/linekit/sample"
//	err := sample.EveryNth("ramakarl_new.txt", "ramakarl_new2.txt", 4)
//
// Run a pipeline file:
//
//	import "github.com/randalmurphal/linekit/pipeline"
//	cfg, err := pipeline.Load("fixup.yaml")
//	report, err := pipeline.Run(ctx, cfg)
//
// The linekit command in cmd/linekit exposes the same operations.
package linekit
