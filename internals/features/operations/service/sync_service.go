package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	opsModel "ftms_backend/internals/features/operations/model"
	"ftms_backend/internals/integrations/opsapi"
)

// Syncer pulls the Operations projection into the local cache tables. The
// upstream system owns the data; this side only upserts by external id.
type Syncer struct {
	DB     *gorm.DB
	Client *opsapi.Client
	Log    zerolog.Logger
}

func NewSyncer(db *gorm.DB, client *opsapi.Client, log zerolog.Logger) *Syncer {
	return &Syncer{DB: db, Client: client, Log: log.With().Str("sync", "operations").Logger()}
}

// SyncAssignments refreshes the assignment cache from the upstream roster.
func (s *Syncer) SyncAssignments(ctx context.Context) (int, error) {
	rows, err := s.Client.ListAssignments(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for _, a := range rows {
		row := opsModel.AssignmentCache{
			AssignmentExternalID:          a.ExternalID,
			AssignmentBusRoute:            a.BusRoute,
			AssignmentType:                a.AssignmentType,
			AssignmentValue:               a.AssignmentValue,
			AssignmentDriverExternalID:    a.DriverExternalID,
			AssignmentConductorExternalID: a.ConductorExternalID,
			AssignmentIsActive:            a.IsActive,
			LastSyncedAt:                  now,
		}
		err := s.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "assignment_external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"assignment_bus_route", "assignment_type", "assignment_value",
				"assignment_driver_external_id", "assignment_conductor_external_id",
				"assignment_is_active", "assignment_last_synced_at",
			}),
		}).Create(&row).Error
		if err != nil {
			return 0, err
		}
	}
	s.Log.Info().Int("count", len(rows)).Msg("✅ assignment cache synced")
	return len(rows), nil
}

// SyncBusTrips refreshes the trip cache for trips since the given date. Trips
// referencing an assignment not yet cached are skipped and retried next poll.
func (s *Syncer) SyncBusTrips(ctx context.Context, since time.Time) (int, error) {
	rows, err := s.Client.ListBusTrips(ctx, since)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	synced := 0
	for _, t := range rows {
		var assignment opsModel.AssignmentCache
		if err := s.DB.First(&assignment, "assignment_external_id = ?", t.AssignmentExternalID).Error; err != nil {
			s.Log.Warn().Str("trip", t.ExternalID).Str("assignment", t.AssignmentExternalID).
				Msg("⚠️ trip references unknown assignment, skipping")
			continue
		}

		row := opsModel.BusTripCache{
			BusTripExternalID: t.ExternalID,
			AssignmentCacheID: assignment.AssignmentCacheID,
			BusTripDate:       t.TripDate,
			TripRevenue:       t.TripRevenue,
			TripFuelExpense:   t.TripFuelExpense,
			TripPaymentMethod: t.PaymentMethod,
			BusTripIsActive:   t.IsActive,
			LastSyncedAt:      now,
		}
		err := s.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "bus_trip_external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"bus_trip_assignment_cache_id", "bus_trip_date", "bus_trip_revenue",
				"bus_trip_fuel_expense", "bus_trip_payment_method",
				"bus_trip_is_active", "bus_trip_last_synced_at",
			}),
		}).Create(&row).Error
		if err != nil {
			return synced, err
		}
		synced++
	}
	s.Log.Info().Int("count", synced).Msg("✅ bus trip cache synced")
	return synced, nil
}

// SetAssignmentActive flips the lifecycle flag from a webhook push.
func (s *Syncer) SetAssignmentActive(externalID string, active bool) error {
	return s.DB.Model(&opsModel.AssignmentCache{}).
		Where("assignment_external_id = ?", externalID).
		Update("assignment_is_active", active).Error
}

// SetBusTripActive flips the lifecycle flag from a webhook push.
func (s *Syncer) SetBusTripActive(externalID string, active bool) error {
	return s.DB.Model(&opsModel.BusTripCache{}).
		Where("bus_trip_external_id = ?", externalID).
		Update("bus_trip_is_active", active).Error
}
