package models

// RSVPStatus is the closed set of responses an invitation can carry.
// Raw values from storage are collapsed into this set exactly once, at scan
// time, so the rest of the code never branches on free-form strings.
type RSVPStatus string

const (
	RSVPAttending  RSVPStatus = "Attending"
	RSVPDeclined   RSVPStatus = "Declined"
	RSVPNoResponse RSVPStatus = "No Response"
)

// ParseRSVPStatus maps a raw stored value onto the closed status set.
// Anything that isn't exactly "Attending" or "Declined" (including the
// empty string) counts as no response.
func ParseRSVPStatus(raw string) RSVPStatus {
	switch raw {
	case string(RSVPAttending):
		return RSVPAttending
	case string(RSVPDeclined):
		return RSVPDeclined
	default:
		return RSVPNoResponse
	}
}
