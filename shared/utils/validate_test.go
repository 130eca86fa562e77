package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{"positive", "5", 5, true},
		{"with spaces", "  12 ", 12, true},
		{"zero", "0", 0, false},
		{"negative", "-3", 0, false},
		{"fractional", "2.5", 0, false},
		{"words", "abc", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuantity(tt.input)
			if tt.ok {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.ErrorIs(t, err, ErrInvalidQuantity)
			}
		})
	}
}

// The quantity message is shown to the user as-is; its wording is part of the
// contract.
func TestInvalidQuantityMessage(t *testing.T) {
	assert.Equal(t, "Please enter a valid quantity", ErrInvalidQuantity.Error())
}

func TestParsePrice(t *testing.T) {
	p, err := ParsePrice("19.99")
	assert.NoError(t, err)
	assert.Equal(t, 19.99, p)

	_, err = ParsePrice("-1")
	assert.Error(t, err)

	_, err = ParsePrice("free")
	assert.Error(t, err)

	p, err = ParsePrice("0")
	assert.NoError(t, err)
	assert.Zero(t, p)
}

func TestValidUUID(t *testing.T) {
	assert.True(t, ValidUUID(uuid.New().String()))
	assert.False(t, ValidUUID("not-a-uuid"))
	assert.False(t, ValidUUID(""))
}
