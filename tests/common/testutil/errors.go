//go:build unit || e2e

package testutil

import (
	"testing"

	"gigbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// AssertErrorIs is assert.ErrorIs that also follows marks added by errs.Mark.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...any) bool {
	t.Helper()
	if errs.Is(err, target) {
		return true
	}
	return assert.Fail(t, "error does not match target", append([]any{"err: %v\ntarget: %v", err, target}, msgAndArgs...)...)
}
