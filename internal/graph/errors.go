package graph

import "fmt"

// ErrStoreUnavailable indicates the interaction store is unreachable or a
// call to it timed out. It is fatal to a recommendation run: the pipeline
// aborts rather than substituting partial or stale data.
type ErrStoreUnavailable struct {
	Op  string
	Err error
}

func (e *ErrStoreUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("interaction store unavailable (%s): %v", e.Op, e.Err)
	}
	return fmt.Sprintf("interaction store unavailable (%s)", e.Op)
}

func (e *ErrStoreUnavailable) Unwrap() error { return e.Err }
