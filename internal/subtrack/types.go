package subtrack

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// BillingCycle enumerates how often a subscription renews.
type BillingCycle string

const (
	CycleWeekly    BillingCycle = "weekly"
	CycleMonthly   BillingCycle = "monthly"
	CycleQuarterly BillingCycle = "quarterly"
	CycleYearly    BillingCycle = "yearly"
)

// Status enumerates the subscription lifecycle states.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Date is a calendar date with no time component, transported as "YYYY-MM-DD".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Empty and null values produce the
// zero date rather than an error.
func (d *Date) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	if trimmed == "" || trimmed == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(trimmed)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Subscription mirrors a subscription record as returned by the subtrack API.
type Subscription struct {
	ID              int64        `json:"id"`
	UserID          int64        `json:"user_id"`
	Name            string       `json:"name"`
	Cost            float64      `json:"cost"`
	Currency        string       `json:"currency"`
	BillingCycle    BillingCycle `json:"billing_cycle"`
	NextBillingDate Date         `json:"next_billing_date"`
	CategoryID      *int64       `json:"category_id,omitempty"`
	ReminderDays    int          `json:"reminder_days"`
	Status          Status       `json:"status"`
	CancelledAt     *time.Time   `json:"cancelled_at,omitempty"`
	CancelReason    string       `json:"cancel_reason,omitempty"`
	CancelEffective *Date        `json:"cancel_effective,omitempty"`
	IsTrial         bool         `json:"is_trial"`
	LastUsedAt      *time.Time   `json:"last_used_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// MonthlyCost normalizes the subscription cost to a per-month figure.
func (s Subscription) MonthlyCost() float64 {
	switch s.BillingCycle {
	case CycleWeekly:
		return s.Cost * 52 / 12
	case CycleQuarterly:
		return s.Cost / 3
	case CycleYearly:
		return s.Cost / 12
	default:
		return s.Cost
	}
}

// ListPage mirrors the payload returned by GET /subscriptions.
type ListPage struct {
	Items         []Subscription     `json:"items"`
	Total         int                `json:"total"`
	MonthlyTotals map[string]float64 `json:"monthly_totals"`
}

// SubscriptionInput carries the writable fields for create and update calls.
type SubscriptionInput struct {
	Name            string       `json:"name"`
	Cost            float64      `json:"cost"`
	Currency        string       `json:"currency"`
	BillingCycle    BillingCycle `json:"billing_cycle"`
	NextBillingDate Date         `json:"next_billing_date"`
	CategoryID      *int64       `json:"category_id,omitempty"`
	ReminderDays    int          `json:"reminder_days"`
	IsTrial         bool         `json:"is_trial"`
}

// CancelInput carries the optional cancellation metadata for Cancel calls.
type CancelInput struct {
	Reason    string `json:"reason,omitempty"`
	Effective *Date  `json:"effective,omitempty"`
}
