// Package transforms registers all built-in line transforms.
// Import this package to make every op available via step.New():
//
//	import _ "github.com/randalmurphal/linekit/transforms"
package transforms

import (
	_ "github.com/randalmurphal/linekit/sample"
	_ "github.com/randalmurphal/linekit/truncate"
)
