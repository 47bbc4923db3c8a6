// Package storage implements the domain repositories on top of the JSON
// collections kept in a kvstore.Store.
package storage

import (
	"github.com/rpggio/selflab/internal/kvstore"
)

// Repositories bundles one repository per collection sharing a store.
type Repositories struct {
	Experiments *ExperimentRepository
	DailyLogs   *DailyLogRepository
	Templates   *TemplateRepository
	Wiki        *WikiRepository
}

// New binds every repository to its fixed key in store.
func New(store *kvstore.Store) *Repositories {
	return &Repositories{
		Experiments: NewExperimentRepository(store),
		DailyLogs:   NewDailyLogRepository(store),
		Templates:   NewTemplateRepository(store),
		Wiki:        NewWikiRepository(store),
	}
}
