package rowjoin

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hupe1980/rowjoin/core"
	"github.com/hupe1980/rowjoin/internal/rowid"
	"github.com/hupe1980/rowjoin/resource"
)

var (
	// ErrNilBatch is returned when a nil *Batch is passed where a batch is required.
	ErrNilBatch = errors.New("nil batch")

	// ErrBatchTooLarge is returned by Engine when a fetched batch exceeds the
	// configured row budget.
	ErrBatchTooLarge = errors.New("batch exceeds row budget")
)

// ErrLengthMismatch indicates that row ids and values differ in length.
type ErrLengthMismatch struct {
	Component core.ComponentName
	Values    int
	RowIDs    int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("component %q: length mismatch: %d values, %d row ids", e.Component, e.Values, e.RowIDs)
}

// ErrDuplicateComponent indicates a component name already present in a view.
type ErrDuplicateComponent struct {
	Component core.ComponentName
}

func (e *ErrDuplicateComponent) Error() string {
	return fmt.Sprintf("duplicate component: %q", e.Component)
}

// ErrComponentNotFound indicates a component name absent from a view or source.
type ErrComponentNotFound struct {
	Entity    core.EntityPath
	Component core.ComponentName
}

func (e *ErrComponentNotFound) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("component %q not found for entity %q", e.Component, e.Entity)
	}
	return fmt.Sprintf("component not found: %q", e.Component)
}

// ErrTypeMismatch indicates a typed access with a native type other than the
// one the batch was built from.
type ErrTypeMismatch struct {
	Component core.ComponentName
	Stored    reflect.Type
	Requested reflect.Type
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("component %q: type mismatch: stored %v, requested %v", e.Component, e.Stored, e.Requested)
}

// ErrInvalidRowIDs indicates row ids that are not strictly ascending.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidRowIDs struct {
	Component core.ComponentName
	Index     int
	cause     error
}

func (e *ErrInvalidRowIDs) Error() string {
	return fmt.Sprintf("component %q: invalid row ids: %v", e.Component, e.cause)
}

func (e *ErrInvalidRowIDs) Unwrap() error { return e.cause }

// translateError maps errors from internal packages onto the public error set.
func translateError(name core.ComponentName, err error) error {
	if err == nil {
		return nil
	}

	var unsorted *rowid.ErrUnsorted
	if errors.As(err, &unsorted) {
		return &ErrInvalidRowIDs{Component: name, Index: unsorted.Index, cause: err}
	}
	var dup *rowid.ErrDuplicate
	if errors.As(err, &dup) {
		return &ErrInvalidRowIDs{Component: name, Index: dup.Index, cause: err}
	}
	if errors.Is(err, resource.ErrRowBudgetExceeded) {
		return fmt.Errorf("component %q: %w: %w", name, ErrBatchTooLarge, err)
	}

	return err
}
