package pipeline

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of the pipeline config file, suitable for
// editor validation of YAML, TOML and JSON configs.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
		// pipeline.Config and step.Config share a name.
		Namer: func(t reflect.Type) string {
			return t.PkgPath() + "." + t.Name()
		},
	}
	s := r.Reflect(&Config{})
	s.Title = "linekit pipeline"
	s.Description = "Line transforms applied in order to one input file."
	return json.MarshalIndent(s, "", "  ")
}
