//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"gas-booking/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errKind   = errs.New("invalid state transition")
	errDomain = errs.New("payment already refunded")
	errOther  = errs.New("invalid state transition")
)

func TestMark(t *testing.T) {
	t.Run("visible to errors.Is", func(t *testing.T) {
		err := errs.Mark(errDomain, errKind)

		require.ErrorIs(t, err, errKind)
		require.ErrorIs(t, err, errDomain)
		assert.Equal(t, "payment already refunded", err.Error())
	})

	t.Run("distinct sentinel with same message does not match", func(t *testing.T) {
		err := errs.Mark(errDomain, errKind)

		assert.False(t, errors.Is(err, errOther))
	})

	t.Run("survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errDomain, errKind), "refund payment")

		assert.ErrorIs(t, err, errKind)
		assert.True(t, cr.Is(err, errKind))
	})

	t.Run("nested marks", func(t *testing.T) {
		inner := errs.New("inner kind")
		err := errs.Mark(errs.Mark(errDomain, inner), errKind)

		assert.ErrorIs(t, err, inner)
		assert.ErrorIs(t, err, errKind)
	})

	t.Run("nil error yields the mark", func(t *testing.T) {
		assert.Equal(t, errKind, errs.Mark(nil, errKind))
	})
}
