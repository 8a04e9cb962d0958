package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntry(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		entry, err := validateEntry("  Holiday ", "1/7/2024", "\nSunny\n")
		require.NoError(t, err)

		assert.Equal(t, "Holiday", entry.Title)
		assert.Equal(t, "01/07/2024", entry.Date)
		assert.Equal(t, "Sunny", entry.Content)
		assert.Zero(t, entry.Id)
		assert.False(t, entry.HasImage())
	})

	tests := []struct {
		name    string
		title   string
		date    string
		content string
		field   string
	}{
		{"empty title", "", "01/07/2024", "Sunny", "Title"},
		{"blank title", "   ", "01/07/2024", "Sunny", "Title"},
		{"empty content", "Holiday", "01/07/2024", "", "Content"},
		{"blank content", "Holiday", "01/07/2024", " \n\t", "Content"},
		{"empty date", "Holiday", "", "Sunny", "Date"},
		{"wrong date order", "Holiday", "2024/07/01", "Sunny", "Date"},
		{"impossible date", "Holiday", "31/02/2024", "Sunny", "Date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateEntry(tt.title, tt.date, tt.content)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}
