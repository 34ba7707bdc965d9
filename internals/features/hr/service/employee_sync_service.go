package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	hrModel "ftms_backend/internals/features/hr/model"
	"ftms_backend/internals/integrations/hrapi"
)

// Syncer keeps the employee cache aligned with the HR roster. Employee data
// is supplementary, so upstream failures degrade to the cached rows rather
// than erroring the request.
type Syncer struct {
	DB     *gorm.DB
	Client *hrapi.Client
	Log    zerolog.Logger
}

func NewSyncer(db *gorm.DB, client *hrapi.Client, log zerolog.Logger) *Syncer {
	return &Syncer{DB: db, Client: client, Log: log.With().Str("sync", "hr").Logger()}
}

// SyncEmployees pulls the roster and upserts by external id. The client
// already retried 3 times with linear backoff before any error lands here.
func (s *Syncer) SyncEmployees(ctx context.Context) (int, error) {
	rows, err := s.Client.ListEmployees(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for _, e := range rows {
		row := hrModel.EmployeeCache{
			EmployeeExternalID: e.ExternalID,
			EmployeeFullName:   e.FullName,
			EmployeePosition:   e.Position,
			EmployeeIsActive:   e.IsActive,
			LastSyncedAt:       now,
		}
		err := s.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"employee_full_name", "employee_position",
				"employee_is_active", "employee_last_synced_at",
			}),
		}).Create(&row).Error
		if err != nil {
			return 0, err
		}
	}
	s.Log.Info().Int("count", len(rows)).Msg("✅ employee cache synced")
	return len(rows), nil
}

// CachedEmployees serves whatever the cache holds.
func (s *Syncer) CachedEmployees(activeOnly bool) ([]hrModel.EmployeeCache, error) {
	q := s.DB.Order("employee_full_name ASC")
	if activeOnly {
		q = q.Where("employee_is_active = TRUE")
	}
	var list []hrModel.EmployeeCache
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// SetEmployeeActive flips the lifecycle flag from a webhook push.
func (s *Syncer) SetEmployeeActive(externalID string, active bool) error {
	return s.DB.Model(&hrModel.EmployeeCache{}).
		Where("employee_external_id = ?", externalID).
		Update("employee_is_active", active).Error
}
