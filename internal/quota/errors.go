package quota

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnknownCheck   = errors.New("unknown check")
	ErrDuplicateCheck = errors.New("duplicate check key")
	// ErrInstanceNotFound is returned by usage functions when the instance
	// they were asked about no longer exists.
	ErrInstanceNotFound = errors.New("instance not found")
)

// CheckError is a failed evaluation. Err is the underlying service error.
type CheckError struct {
	Key        string
	Region     string
	InstanceID string
	Err        error
}

func (e *CheckError) Error() string {
	where := e.Region
	if e.InstanceID != "" {
		where += "/" + e.InstanceID
	}
	return fmt.Sprintf("check %s failed (%s): %v", e.Key, where, e.Err)
}

func (e *CheckError) Unwrap() error { return e.Err }

// InstanceNotFoundError means an enumerated instance vanished before it was
// evaluated. Callers usually drop such results.
type InstanceNotFoundError struct {
	Key        string
	InstanceID string
	Err        error
}

func (e *InstanceNotFoundError) Error() string {
	return fmt.Sprintf("check %s: instance %q not found", e.Key, e.InstanceID)
}

func (e *InstanceNotFoundError) Unwrap() error { return e.Err }

func (e *InstanceNotFoundError) Is(target error) bool {
	return target == ErrInstanceNotFound
}
