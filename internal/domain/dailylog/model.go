package dailylog

import "time"

// Mood labels offered by the log form.
const (
	MoodVeryLow   = "very-low"
	MoodLow       = "low"
	MoodNeutral   = "neutral"
	MoodGood      = "good"
	MoodExcellent = "excellent"
)

// DailyLog is one calendar day's recorded metrics. Date is unique within the
// collection.
type DailyLog struct {
	ID            string             `json:"id"`
	Date          string             `json:"date"`
	SleepHours    float64            `json:"sleepHours"`
	Mood          string             `json:"mood"`
	Energy        float64            `json:"energy"`
	Notes         string             `json:"notes"`
	Protocols     map[string]bool    `json:"protocols"`
	CustomMetrics map[string]float64 `json:"customMetrics,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// UpsertRequest holds the fields of a log saved for Date.
type UpsertRequest struct {
	Date          string             `validate:"required,datetime=2006-01-02"`
	SleepHours    float64            `validate:"gte=0,lte=24"`
	Mood          string             `validate:"omitempty,oneof=very-low low neutral good excellent"`
	Energy        float64            `validate:"gte=1,lte=10"`
	Notes         string
	Protocols     map[string]bool
	CustomMetrics map[string]float64
}

// Normalize gives a log read from storage a non-nil protocol map.
func (l *DailyLog) Normalize() {
	if l.Protocols == nil {
		l.Protocols = map[string]bool{}
	}
}
