package kernel_test

import (
	"strings"
	"testing"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateText(t *testing.T) {
	t.Run("accepts text within limit", func(t *testing.T) {
		require.NoError(t, kernel.ValidateText("name", "Bob", kernel.NameMaxLength))
	})

	t.Run("accepts text exactly at limit", func(t *testing.T) {
		require.NoError(t, kernel.ValidateText("car", strings.Repeat("a", kernel.CarMaxLength), kernel.CarMaxLength))
	})

	t.Run("counts runes rather than bytes", func(t *testing.T) {
		require.NoError(t, kernel.ValidateText("name", strings.Repeat("ж", kernel.NameMaxLength), kernel.NameMaxLength))
	})

	t.Run("rejects empty text", func(t *testing.T) {
		err := kernel.ValidateText("address_from", "", kernel.AddressMaxLength)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "address_from")
	})

	t.Run("rejects text over limit", func(t *testing.T) {
		err := kernel.ValidateText("address_to", strings.Repeat("x", kernel.AddressMaxLength+1), kernel.AddressMaxLength)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "address_to length")
	})
}
