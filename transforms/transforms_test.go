package transforms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/linekit/step"
	_ "github.com/randalmurphal/linekit/transforms"
)

func TestBuiltinsRegistered(t *testing.T) {
	available := step.Available()
	assert.Contains(t, available, "truncate")
	assert.Contains(t, available, "sample")
}
