package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrBudgetExceeded means an increment costs more AP than is available.
	ErrBudgetExceeded = errors.New("not enough AP")
	// ErrBoundaryReached means the attribute is already at its floor or ceiling.
	ErrBoundaryReached = errors.New("attribute at limit")

	ErrUnknownAttribute  = errors.New("unknown attribute")
	ErrUnknownArchetype  = errors.New("unknown archetype")
	ErrBuildNotFound     = errors.New("build not found")
	ErrSerialization     = errors.New("build serialization failed")
	ErrInvalidBuildName  = errors.New("build name is required")
	ErrNoRepository      = errors.New("no build repository configured")
	ErrBadSpecialization = errors.New("unknown specialization")
)

// BudgetError carries the rejected cost for display.
type BudgetError struct {
	Attribute string
	Cost      int
	Available int
}

func (e BudgetError) Error() string {
	return fmt.Sprintf("%s: next step costs %d AP (%d available)", e.Attribute, e.Cost, e.Available)
}

func (e BudgetError) Unwrap() error { return ErrBudgetExceeded }

// BoundaryError reports which limit stopped a mutation.
type BoundaryError struct {
	Attribute string
	Limit     int
	Stars     bool
}

func (e BoundaryError) Error() string {
	unit := "value"
	if e.Stars {
		unit = "stars"
	}
	return fmt.Sprintf("%s already at %s limit %d", e.Attribute, unit, e.Limit)
}

func (e BoundaryError) Unwrap() error { return ErrBoundaryReached }

// PersistenceError wraps a storage or encoding failure on a build. It is never
// fatal: in-memory state is left untouched.
type PersistenceError struct {
	Op   string
	Name string
	Err  error
}

func (e PersistenceError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s builds: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s build %q: %v", e.Op, e.Name, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }
