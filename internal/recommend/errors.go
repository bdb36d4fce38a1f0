package recommend

import (
	"fmt"
	"strings"
)

// ErrInvalidTopicReference indicates a ranked topic does not exist in the
// reference catalog. It is an internal consistency fault: the topic ranker
// only emits catalog topics, so hitting this means a bug upstream rather
// than bad user input. It guards against silently empty candidate sets.
type ErrInvalidTopicReference struct {
	Topics []string
}

func (e *ErrInvalidTopicReference) Error() string {
	return fmt.Sprintf("topics not in reference catalog: %s", strings.Join(e.Topics, ", "))
}

// ErrHistoryPersistence indicates the recommendation computation succeeded
// but the history write afterwards failed. The recommendations are still
// returned alongside this error so the result is not discarded over
// bookkeeping.
type ErrHistoryPersistence struct {
	Err error
}

func (e *ErrHistoryPersistence) Error() string {
	return fmt.Sprintf("recommendation history not persisted: %v", e.Err)
}

func (e *ErrHistoryPersistence) Unwrap() error { return e.Err }
