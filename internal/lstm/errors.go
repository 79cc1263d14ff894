package lstm

import "errors"

// MaxRangeLength is the largest chunk BreakWord accepts in one call. It
// bounds working-memory allocation (O(L·H) floats for the stored backward
// hidden states) to a fixed multiple of the hidden size.
const MaxRangeLength = 2048

// ErrRangeTooLong is returned when a chunk handed to BreakWord exceeds
// MaxRangeLength code points.
var ErrRangeTooLong = errors.New("lstm: range too long")
