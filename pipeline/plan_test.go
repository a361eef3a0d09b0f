package pipeline

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/linekit/step"
)

func TestConfig_Plan_DefaultNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = "/logs/ramakarl_master.txt"
	cfg.Steps = []step.Config{{Op: "truncate"}, {Op: "sample", Stride: 4}}

	plans, err := cfg.Plan()
	require.NoError(t, err)
	require.Len(t, plans, 2)

	assert.Equal(t, 1, plans[0].Index)
	assert.Equal(t, "truncate", plans[0].Op)
	assert.Equal(t, "/logs/ramakarl_master.txt", plans[0].Input)
	assert.Equal(t, "/logs/ramakarl_master.1-truncate.txt", plans[0].Output)
	assert.True(t, plans[0].Intermediate)

	assert.Equal(t, 2, plans[1].Index)
	assert.Equal(t, plans[0].Output, plans[1].Input, "steps chain through files")
	assert.Equal(t, "/logs/ramakarl_master.2-sample.txt", plans[1].Output)
	assert.False(t, plans[1].Intermediate)
}

func TestConfig_Plan_ExplicitOutputs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorkDir = "/work"
	cfg.Input = "ramakarl_master.txt"
	cfg.Output = "final/ramakarl_new2.txt"
	cfg.Steps = []step.Config{
		{Op: "truncate", Output: "ramakarl_new.txt"},
		{Op: "sample", Stride: 4},
	}

	plans, err := cfg.Plan()
	require.NoError(t, err)

	assert.Equal(t, "/work/ramakarl_master.txt", plans[0].Input)
	assert.Equal(t, "/work/ramakarl_new.txt", plans[0].Output)
	assert.Equal(t, "/work/final/ramakarl_new2.txt", plans[1].Output)
}

func TestConfig_Plan_StepOutputBeatsFinalOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = "/a/in.txt"
	cfg.Output = "/a/final.txt"
	cfg.Steps = []step.Config{{Op: "truncate", Output: "/a/explicit.txt"}}

	plans, err := cfg.Plan()
	require.NoError(t, err)
	assert.Equal(t, "/a/explicit.txt", plans[0].Output)
}

func TestConfig_Plan_CustomTemplate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = "/a/access.log"
	cfg.Intermediate = "work/{{upper step}}_{{pad index 2}}_{{input}}"
	cfg.Steps = []step.Config{{Op: "truncate"}, {Op: "sample", Stride: 2}}

	plans, err := cfg.Plan()
	require.NoError(t, err)
	assert.Equal(t, "/a/work/TRUNCATE_01_access.log", plans[0].Output)
	assert.Equal(t, "/a/work/SAMPLE_02_access.log", plans[1].Output)
}

func TestConfig_Plan_PathConflicts(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "output equals input",
			cfg: Config{
				Input:  "/a/in.txt",
				Output: "/a/in.txt",
				Steps:  []step.Config{{Op: "truncate"}},
			},
		},
		{
			name: "step writes its own input",
			cfg: Config{
				Input: "/a/in.txt",
				Steps: []step.Config{
					{Op: "truncate", Output: "/a/mid.txt"},
					{Op: "sample", Stride: 2, Output: "/a/mid.txt"},
				},
			},
		},
		{
			name: "later step overwrites pipeline input",
			cfg: Config{
				Input: "/a/in.txt",
				Steps: []step.Config{
					{Op: "truncate", Output: "/a/mid.txt"},
					{Op: "sample", Stride: 2, Output: "/a/in.txt"},
				},
			},
		},
		{
			name: "two steps write the same file",
			cfg: Config{
				Input: "/a/in.txt",
				Steps: []step.Config{
					{Op: "truncate", Output: "/a/x.txt"},
					{Op: "sample", Stride: 2, Output: "/a/y.txt"},
					{Op: "sample", Stride: 2, Output: "/a/x.txt"},
				},
			},
		},
		{
			name: "template renders input name",
			cfg: Config{
				Input:        "/a/in.txt",
				Intermediate: "{{input}}",
				Steps:        []step.Config{{Op: "truncate"}},
			},
		},
		{
			name: "template renders empty name",
			cfg: Config{
				Input:        "/a/in.txt",
				Intermediate: `{{replace stem "in" ""}}`,
				Steps:        []step.Config{{Op: "truncate"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Plan()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestConfig_Plan_RelativeInputWithoutWorkDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = "in.txt"
	cfg.Steps = []step.Config{{Op: "truncate"}}

	plans, err := cfg.Plan()
	require.NoError(t, err)
	assert.Equal(t, "in.txt", plans[0].Input)
	assert.Equal(t, filepath.Clean("in.1-truncate.txt"), plans[0].Output)
}
