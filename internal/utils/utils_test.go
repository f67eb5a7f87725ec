package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/family-task-api/internal/constants"
)

func TestNewWorkspaceCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := NewWorkspaceCode()
		_, err := uuid.Parse(code)
		require.NoError(t, err)

		_, dup := seen[code]
		require.False(t, dup, "duplicate workspace code %s", code)
		seen[code] = struct{}{}
	}
}

func TestNewPasscode(t *testing.T) {
	code, err := NewPasscode(0)
	require.NoError(t, err)
	assert.Len(t, code, constants.DefaultPasscodeLength)

	code, err = NewPasscode(12)
	require.NoError(t, err)
	assert.Len(t, code, 12)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(constants.PasscodeAlphabet, r), "unexpected rune %q", r)
	}
}

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"rfc3339 utc", "2030-05-01T09:00:00Z", time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)},
		{"rfc3339 offset", "2030-05-01T11:00:00+02:00", time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)},
		{"naive timestamp", "2030-05-01T09:00:00", time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)},
		{"naive fractional", "2030-05-01T09:00:00.250", time.Date(2030, 5, 1, 9, 0, 0, 250000000, time.UTC)},
		{"space separated", "2030-05-01 09:00:00", time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)},
		{"date only", " 2030-05-01 ", time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDueDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	for _, input := range []string{"", "tomorrow", "01/05/2030", "2030-13-01"} {
		_, err := ParseDueDate(input)
		assert.ErrorIs(t, err, ErrInvalidDueDate, input)
	}
}
