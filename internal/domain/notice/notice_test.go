//go:build unit

package notice_test

import (
	"strings"
	"testing"
	"time"

	"gas-booking/internal/domain/notice"
	"gas-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		in    string
		want  notice.Type
		errIs error
	}{
		{in: "", want: notice.TypeGeneral},
		{in: "general", want: notice.TypeGeneral},
		{in: " IMPORTANT ", want: notice.TypeImportant},
		{in: "urgent", errIs: notice.ErrInvalidType},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := notice.ParseType(c.in)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestNewMessage(t *testing.T) {
	_, err := notice.NewMessage("   ")
	assert.ErrorIs(t, err, notice.ErrInvalidMessage)

	_, err = notice.NewMessage(strings.Repeat("x", 2001))
	assert.ErrorIs(t, err, notice.ErrInvalidMessage)

	m, err := notice.NewMessage(" Office closed ")
	require.NoError(t, err)
	assert.Equal(t, "Office closed", m.Value())
}

func TestNotice_Apply(t *testing.T) {
	later := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("only the message changes", func(t *testing.T) {
		n := builder.NewNoticeBuilder().BuildDomain()
		msg, _ := notice.NewMessage("Updated text")

		require.NoError(t, n.Apply(&msg, nil, later))

		assert.Equal(t, "Updated text", n.Message().Value())
		assert.Equal(t, notice.TypeGeneral, n.Type())
		assert.Equal(t, later, n.UpdatedAt())
	})

	t.Run("only the type changes", func(t *testing.T) {
		n := builder.NewNoticeBuilder().BuildDomain()
		original := n.Message().Value()
		typ := notice.TypeImportant

		require.NoError(t, n.Apply(nil, &typ, later))

		assert.Equal(t, original, n.Message().Value())
		assert.Equal(t, notice.TypeImportant, n.Type())
	})

	t.Run("nothing to apply", func(t *testing.T) {
		n := builder.NewNoticeBuilder().BuildDomain()
		assert.ErrorIs(t, n.Apply(nil, nil, later), notice.ErrEmptyUpdate)
	})
}
