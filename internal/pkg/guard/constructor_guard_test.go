package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used in
// a domain value object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type proofRef struct {
		ref   string
		guard guard.ConstructorGuard
	}

	var errProofRefNotConstructed = errors.New("proofRef must be created via newProofRef")

	newProofRef := func(ref string) (proofRef, error) {
		if ref == "" {
			return proofRef{}, errors.New("ref is required")
		}
		return proofRef{ref: ref, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		p, err := newProofRef("uploads/proof-1.jpg")

		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errProofRefNotConstructed))
		assert.Equal(t, "uploads/proof-1.jpg", p.ref)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p proofRef

		err := p.guard.Validate(errProofRefNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errProofRefNotConstructed, err)
	})
}
