package domain

import (
	"strings"
	"time"
)

type ActivityType string

const (
	ActivityLogin         ActivityType = "login"
	ActivityLogout        ActivityType = "logout"
	ActivityDemoOpened    ActivityType = "demo_opened"
	ActivityDemoClosed    ActivityType = "demo_closed"
	ActivityAccessGranted ActivityType = "access_granted"
	ActivityAccessRevoked ActivityType = "access_revoked"
	ActivityError         ActivityType = "error"
	ActivityWarning       ActivityType = "warning"
)

var activityTypes = []ActivityType{
	ActivityLogin, ActivityLogout, ActivityDemoOpened, ActivityDemoClosed,
	ActivityAccessGranted, ActivityAccessRevoked, ActivityError, ActivityWarning,
}

func ParseActivityType(s string) (ActivityType, error) {
	t := ActivityType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range activityTypes {
		if t == known {
			return t, nil
		}
	}
	return "", Validationf("unknown activity type %q", s)
}

// ViewerRecordable reports whether a viewer may post this type themselves.
func (t ActivityType) ViewerRecordable() bool {
	return t == ActivityDemoOpened || t == ActivityDemoClosed
}

// Activity is one audit-log entry.
type Activity struct {
	ID        string
	ClientID  string // empty for system events
	DemoID    string
	Type      ActivityType
	Message   string
	CreatedAt time.Time
}

// Activity listing bounds.
const (
	DefaultActivityLimit = 100
	MaxActivityLimit     = 1000
)

// ActivityFilter narrows an activity listing. Results are newest first.
type ActivityFilter struct {
	ClientID string
	DemoID   string
	Type     ActivityType
	Limit    int
}

// Normalize applies the default limit and rejects out-of-range values.
func (f ActivityFilter) Normalize() (ActivityFilter, error) {
	if f.Limit == 0 {
		f.Limit = DefaultActivityLimit
	}
	if f.Limit < 1 || f.Limit > MaxActivityLimit {
		return f, Validationf("limit must be between 1 and %d", MaxActivityLimit)
	}
	return f, nil
}

// ActivityStats summarises the log for the admin dashboard.
type ActivityStats struct {
	Total  int                  `json:"total"`
	ByType map[ActivityType]int `json:"by_type"`
	Last24 int                  `json:"last_24h"`
}

// ClientUsage summarises one client's activity. LastActivity is zero when the
// client has no entries.
type ClientUsage struct {
	ClientID     string
	Name         string
	Email        string
	DemosOpened  int // distinct demos
	TotalOpens   int
	TotalLogins  int
	LastActivity time.Time
}
