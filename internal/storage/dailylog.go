package storage

import (
	"context"

	"github.com/rpggio/selflab/internal/domain/dailylog"
	"github.com/rpggio/selflab/internal/kvstore"
	"github.com/rpggio/selflab/internal/repository"
)

// DailyLogRepository implements dailylog.Repository.
type DailyLogRepository struct {
	col *repository.Collection[dailylog.DailyLog]
}

// NewDailyLogRepository creates a daily log repository.
func NewDailyLogRepository(store *kvstore.Store) *DailyLogRepository {
	col := repository.NewCollection[dailylog.DailyLog](store, kvstore.KeyDailyLogs).
		WithNormalize((*dailylog.DailyLog).Normalize)
	return &DailyLogRepository{col: col}
}

func (r *DailyLogRepository) List(ctx context.Context) ([]dailylog.DailyLog, error) {
	return r.col.Load(ctx), nil
}

func (r *DailyLogRepository) GetByDate(ctx context.Context, date string) (*dailylog.DailyLog, error) {
	for _, log := range r.col.Load(ctx) {
		if log.Date == date {
			return &log, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *DailyLogRepository) Upsert(ctx context.Context, log *dailylog.DailyLog) (*dailylog.DailyLog, bool, error) {
	saved := *log
	created := false
	err := r.col.Mutate(ctx, func(items []dailylog.DailyLog) ([]dailylog.DailyLog, bool, error) {
		idx := indexOf(items, func(l dailylog.DailyLog) bool { return l.Date == log.Date })
		if idx < 0 {
			created = true
			return append(items, saved), true, nil
		}
		saved.ID = items[idx].ID
		saved.CreatedAt = items[idx].CreatedAt
		items[idx] = saved
		return items, true, nil
	})
	if err != nil {
		return nil, false, err
	}
	return &saved, created, nil
}
