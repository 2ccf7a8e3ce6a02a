package splitter

import (
	"fmt"
	"math"

	splitz "github.com/splitz-go/splitz"
)

// resolveOverlap converts a configured overlap into an absolute unit count.
// Values >= 1 with no fractional part are absolute; values in [0, 1) are a
// fraction of chunkSize, floored and clamped to chunkSize-1. The resolved
// overlap must be smaller than chunkSize.
func resolveOverlap(chunkSize int, overlap float64) (int, error) {
	if chunkSize < 1 {
		return 0, &splitz.ErrConfig{Param: "chunk_size", Reason: "must be an integer >= 1"}
	}
	if overlap < 0 {
		return 0, &splitz.ErrConfig{Param: "chunk_overlap", Reason: "must be >= 0"}
	}
	if overlap >= 1 {
		if overlap != math.Trunc(overlap) {
			return 0, &splitz.ErrConfig{Param: "chunk_overlap", Reason: "fractional overlap must be in [0, 1)"}
		}
		abs := int(overlap)
		if abs >= chunkSize {
			return 0, &splitz.ErrConfig{
				Param:  "chunk_overlap",
				Reason: fmt.Sprintf("must be smaller than chunk_size (%d >= %d)", abs, chunkSize),
			}
		}
		return abs, nil
	}
	abs := int(math.Floor(overlap * float64(chunkSize)))
	if abs > chunkSize-1 {
		abs = chunkSize - 1
	}
	return abs, nil
}

// stride returns the window advance for the linear splitters, never < 1.
func stride(chunkSize, overlap int) int {
	s := chunkSize - overlap
	if s < 1 {
		return 1
	}
	return s
}
