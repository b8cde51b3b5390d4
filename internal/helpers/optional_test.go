package helpers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type optionalPayload struct {
	Title    Optional[string] `json:"title"`
	Location Optional[string] `json:"location"`
	Checked  Optional[bool]   `json:"checked"`
}

func TestOptionalTriState(t *testing.T) {
	var p optionalPayload
	err := json.Unmarshal([]byte(`{"title": "Launch", "location": null}`), &p)
	require.NoError(t, err)

	// Value supplied.
	require.True(t, p.Title.Set)
	require.True(t, p.Title.Valid)
	require.Equal(t, "Launch", p.Title.Value)

	// Explicit null: set but not valid.
	require.True(t, p.Location.Set)
	require.False(t, p.Location.Valid)

	// Absent: untouched.
	require.False(t, p.Checked.Set)
	require.False(t, p.Checked.Valid)
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var p optionalPayload
	err := json.Unmarshal([]byte(`{"checked": "yes"}`), &p)
	require.Error(t, err)
}

func TestOptionalMarshal(t *testing.T) {
	p := optionalPayload{
		Title: Optional[string]{Set: true, Valid: true, Value: "Launch"},
	}
	out, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"title": "Launch", "location": null, "checked": null}`, string(out))
}
