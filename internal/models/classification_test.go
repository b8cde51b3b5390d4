package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassificationValid(t *testing.T) {
	for _, c := range Classifications() {
		require.True(t, c.Valid(), "expected %q to be valid", c)
	}

	require.False(t, Classification("Intern").Valid())
	require.False(t, Classification("general").Valid())
	require.False(t, Classification("").Valid())
}

func TestClassificationList(t *testing.T) {
	require.Equal(t, "Sponsor, VIP, Platino, General", ClassificationList())
}

func TestAttendeeBeforeCreateDefaults(t *testing.T) {
	attendee := Attendee{}
	require.NoError(t, attendee.BeforeCreate(nil))

	require.NotEqual(t, attendee.ID.String(), "00000000-0000-0000-0000-000000000000")
	require.Equal(t, ClassificationGeneral, attendee.Classification)
}

func TestEventBeforeCreateAssignsID(t *testing.T) {
	event := Event{}
	require.NoError(t, event.BeforeCreate(nil))
	require.NotEqual(t, event.ID.String(), "00000000-0000-0000-0000-000000000000")

	// An already-assigned ID must survive the hook.
	fixed := event.ID
	require.NoError(t, event.BeforeCreate(nil))
	require.Equal(t, fixed, event.ID)
}
