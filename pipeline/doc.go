// Package pipeline chains line transforms over files.
//
// A pipeline reads one input file and applies its steps in order, each
// step reading the file the previous one wrote. The transforms themselves
// know nothing about each other; naming the files in between is the
// pipeline's job.
//
// # Configuration
//
// Pipelines are described by a Config, usually loaded from YAML, TOML or
// JSON:
//
//	input: ramakarl_master.txt
//	output: ramakarl_new2.txt
//	steps:
//	  - op: truncate
//	    marker: Mozilla
//	    output: ramakarl_new.txt
//	  - op: sample
//	    stride: 4
//
//	cfg, err := pipeline.Load("fixup.yaml")
//	report, err := pipeline.Run(ctx, cfg)
//
// Schema returns the JSON Schema of the config file.
//
// # Intermediate Files
//
// Steps without an explicit output are named by the Intermediate template
// (DefaultIntermediate: "{{stem}}.{{index}}-{{step}}{{ext}}") next to the
// input, so the example above without output paths writes
// ramakarl_master.1-truncate.txt and ramakarl_master.2-sample.txt.
// Set KeepIntermediate to false to delete all but the last step's output
// after a successful run.
//
// # Watching
//
// Watch re-runs a pipeline whenever its input changes, using fsnotify with
// a polling fallback.
package pipeline
