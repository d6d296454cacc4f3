package shared

import (
	"gigbook/internal/pkg/errs"
)

var (
	// ErrResolutionStore marks failures to list or create resolutions.
	ErrResolutionStore = errs.New("resolution store failure")
	// ErrMutationConflict marks a booking changed or removed by another actor
	// between the snapshot and the write.
	ErrMutationConflict = errs.New("booking was modified concurrently")
)
