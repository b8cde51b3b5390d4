package models

import "strings"

// Classification is the closed set of attendee tiers. Values are stored
// as-is in the attendees table.
type Classification string

const (
	ClassificationSponsor Classification = "Sponsor"
	ClassificationVIP     Classification = "VIP"
	ClassificationPlatino Classification = "Platino"
	ClassificationGeneral Classification = "General"
)

func Classifications() []Classification {
	return []Classification{
		ClassificationSponsor,
		ClassificationVIP,
		ClassificationPlatino,
		ClassificationGeneral,
	}
}

func (c Classification) Valid() bool {
	switch c {
	case ClassificationSponsor, ClassificationVIP, ClassificationPlatino, ClassificationGeneral:
		return true
	}
	return false
}

// ClassificationList renders the allowed values for validation messages.
func ClassificationList() string {
	values := Classifications()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
