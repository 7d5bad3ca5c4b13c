package inventory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Name:         "Widget",
		CostPrice:    floatPtr(10),
		SellingPrice: floatPtr(15),
		Description:  "A widget",
		Images:       []string{},
	}
}

func fieldErrors(t *testing.T, err error) []FieldError {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func hasField(fields []FieldError, name string) bool {
	for _, f := range fields {
		if f.Field == name {
			return true
		}
	}
	return false
}

func TestValidate(t *testing.T) {
	t.Run("accepts a valid draft", func(t *testing.T) {
		assert.NoError(t, Validate(validDraft()))
	})

	t.Run("accepts zero prices", func(t *testing.T) {
		d := validDraft()
		d.CostPrice = floatPtr(0)
		d.SellingPrice = floatPtr(0)
		assert.NoError(t, Validate(d))
	})

	t.Run("accepts up to three images", func(t *testing.T) {
		d := validDraft()
		d.Images = []string{"a", "b", "c"}
		assert.NoError(t, Validate(d))
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		fields := fieldErrors(t, Validate(Draft{}))
		assert.True(t, hasField(fields, "name"))
		assert.True(t, hasField(fields, "costPrice"))
		assert.True(t, hasField(fields, "sellingPrice"))
		assert.True(t, hasField(fields, "description"))
	})

	t.Run("rejects name over 60 characters", func(t *testing.T) {
		d := validDraft()
		d.Name = strings.Repeat("x", 61)
		fields := fieldErrors(t, Validate(d))
		require.Len(t, fields, 1)
		assert.Equal(t, "name", fields[0].Field)
		assert.Contains(t, fields[0].Message, "60")
	})

	t.Run("accepts name of exactly 60 characters", func(t *testing.T) {
		d := validDraft()
		d.Name = strings.Repeat("x", 60)
		assert.NoError(t, Validate(d))
	})

	t.Run("rejects description over 1000 characters", func(t *testing.T) {
		d := validDraft()
		d.Description = strings.Repeat("x", 1001)
		fields := fieldErrors(t, Validate(d))
		require.Len(t, fields, 1)
		assert.Equal(t, "description", fields[0].Field)
	})

	t.Run("rejects negative prices", func(t *testing.T) {
		d := validDraft()
		d.CostPrice = floatPtr(-1)
		d.SellingPrice = floatPtr(-0.5)
		fields := fieldErrors(t, Validate(d))
		assert.True(t, hasField(fields, "costPrice"))
		assert.True(t, hasField(fields, "sellingPrice"))
	})

	t.Run("rejects more than three images", func(t *testing.T) {
		d := validDraft()
		d.Images = []string{"a", "b", "c", "d"}
		fields := fieldErrors(t, Validate(d))
		require.Len(t, fields, 1)
		assert.Equal(t, "images", fields[0].Field)
	})

	t.Run("rejects empty image entries", func(t *testing.T) {
		d := validDraft()
		d.Images = []string{"a", ""}
		err := Validate(d)
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.NotEmpty(t, verr.Fields)
	})

	t.Run("error message names the failing fields", func(t *testing.T) {
		d := validDraft()
		d.Name = ""
		err := Validate(d)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})
}
