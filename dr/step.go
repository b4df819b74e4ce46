package dr

import "github.com/katalvlaran/dram/target"

// Step pairs a position with the DR stage id at which it was proposed.
// Index 0 of a ladder is always the current (pre-step) position at stage
// id 0; index m is the latest candidate.
type Step struct {
	Position target.Position
	StageID  int
}
