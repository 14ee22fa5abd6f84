package domain

import (
	"strings"
	"time"
)

// ClientStatus is derived from a client's access window each time it is
// read. It is never stored.
type ClientStatus string

const (
	StatusFuture       ClientStatus = "future"
	StatusActive       ClientStatus = "active"
	StatusExpiringSoon ClientStatus = "expiring_soon"
	StatusExpired      ClientStatus = "expired"
)

// ExpiringSoonDays is the warning window, in calendar days.
const ExpiringSoonDays = 7

// AllStatuses lists statuses in display order.
var AllStatuses = []ClientStatus{StatusActive, StatusExpiringSoon, StatusExpired, StatusFuture}

func ParseClientStatus(s string) (ClientStatus, error) {
	switch st := ClientStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusFuture, StatusActive, StatusExpiringSoon, StatusExpired:
		return st, nil
	}
	return "", Validationf("unknown client status %q", s)
}

// StatusReport is the classifier output.
type StatusReport struct {
	Status        ClientStatus `json:"status"`
	DaysRemaining int          `json:"days_remaining"`
}

// CanBrowse reports whether the client may open demos.
func (r StatusReport) CanBrowse() bool {
	return r.Status == StatusActive || r.Status == StatusExpiringSoon
}

// CanRequestRenewal reports whether a renewal request may be raised.
func (r StatusReport) CanRequestRenewal() bool {
	return r.Status == StatusExpiringSoon || r.Status == StatusExpired
}

// Classify derives the status of an access window as seen at now.
//
// All three instants are reduced to calendar days in now's location before
// comparing, so the time of day never matters. days_remaining is the
// expiration day minus today and may be negative. Rules apply in order:
// registration after today is future; zero or fewer days left is expired;
// up to ExpiringSoonDays left is expiring_soon; anything else is active.
func Classify(now, registration, expiration time.Time) StatusReport {
	loc := now.Location()
	today := civilDay(now, loc)
	days := daysBetween(today, civilDay(expiration, loc))

	switch {
	case civilDay(registration, loc).After(today):
		return StatusReport{Status: StatusFuture, DaysRemaining: days}
	case days <= 0:
		return StatusReport{Status: StatusExpired, DaysRemaining: days}
	case days <= ExpiringSoonDays:
		return StatusReport{Status: StatusExpiringSoon, DaysRemaining: days}
	default:
		return StatusReport{Status: StatusActive, DaysRemaining: days}
	}
}

// ClassifyStrings parses ISO-8601 inputs and classifies them. Inputs
// without an offset are read in now's location.
func ClassifyStrings(now time.Time, registration, expiration string) (StatusReport, error) {
	reg, err := ParseTimestampIn(registration, now.Location())
	if err != nil {
		return StatusReport{}, err
	}
	exp, err := ParseTimestampIn(expiration, now.Location())
	if err != nil {
		return StatusReport{}, err
	}
	return Classify(now, reg, exp), nil
}

// civilDay returns midnight UTC of t's calendar date in loc. Using UTC for
// the result keeps day arithmetic free of DST gaps.
func civilDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// ParseTimestamp accepts ISO-8601 date-times (with or without an offset)
// and plain dates. Values without an offset are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	return ParseTimestampIn(s, time.UTC)
}

// ParseTimestampIn is ParseTimestamp with offset-less values read in loc.
func ParseTimestampIn(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, Validationf("timestamp is empty")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, Validationf("malformed timestamp %q", s)
}
