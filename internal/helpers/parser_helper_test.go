package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *time.Time
	}{
		{
			name:  "rfc3339",
			input: "2026-03-14T09:30:00Z",
			want:  timePtr(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)),
		},
		{
			name:  "no timezone",
			input: "2026-03-14T09:30:00",
			want:  timePtr(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)),
		},
		{
			name:  "date only",
			input: "2026-03-14",
			want:  timePtr(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)),
		},
		{name: "empty", input: "", want: nil},
		{name: "whitespace", input: "   ", want: nil},
		{name: "garbage", input: "next tuesday", want: nil},
		{name: "partial", input: "2026-03", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.input)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.True(t, tt.want.Equal(*got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestParseBoolFilter(t *testing.T) {
	truthy := []string{"true", "1", "yes", "TRUE", "Yes"}
	for _, s := range truthy {
		got := ParseBoolFilter(s)
		require.NotNil(t, got, "input %q", s)
		require.True(t, *got, "input %q", s)
	}

	falsy := []string{"false", "0", "no", "FALSE", "No"}
	for _, s := range falsy {
		got := ParseBoolFilter(s)
		require.NotNil(t, got, "input %q", s)
		require.False(t, *got, "input %q", s)
	}

	ignored := []string{"", "banana", "2", "truee", "si"}
	for _, s := range ignored {
		require.Nil(t, ParseBoolFilter(s), "input %q", s)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
