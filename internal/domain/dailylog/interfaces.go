package dailylog

import "context"

// Repository provides persistence for daily logs.
type Repository interface {
	List(ctx context.Context) ([]DailyLog, error)
	GetByDate(ctx context.Context, date string) (*DailyLog, error)
	// Upsert stores log keyed by its date. When a log for that date exists its
	// ID and CreatedAt are kept and the other fields replaced. The stored
	// record is returned along with whether it was newly created.
	Upsert(ctx context.Context, log *DailyLog) (*DailyLog, bool, error)
}
