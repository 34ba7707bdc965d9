package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	opsModel "ftms_backend/internals/features/operations/model"
	opsService "ftms_backend/internals/features/operations/service"
	refService "ftms_backend/internals/features/reference/service"
	helper "ftms_backend/internals/helpers"
)

type Handler struct {
	DB         *gorm.DB
	Syncer     *opsService.Syncer
	Reconciler *opsService.Reconciler
}

func NewHandler(db *gorm.DB, store *refService.Store, syncer *opsService.Syncer) *Handler {
	return &Handler{
		DB:         db,
		Syncer:     syncer,
		Reconciler: opsService.NewReconciler(db, store),
	}
}

/* ===================== Cache reads ===================== */

// GET /operations/assignments
func (h *Handler) ListAssignments(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "synced_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&opsModel.AssignmentCache{})
	if c.Query("active") == "true" {
		q = q.Where("assignment_is_active = TRUE")
	}
	if t := c.Query("type"); t != "" {
		q = q.Where("assignment_type = ?", t)
	}

	allowed := map[string]string{
		"synced_at": "assignment_last_synced_at",
		"route":     "assignment_bus_route",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "synced_at")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var list []opsModel.AssignmentCache
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "assignments", list, helper.BuildMeta(total, p))
}

// GET /operations/bus-trips
func (h *Handler) ListBusTrips(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "trip_date", "desc", helper.DefaultOpts)

	q := h.DB.Model(&opsModel.BusTripCache{})
	if c.Query("unrecorded") == "true" {
		q = q.Where("bus_trip_is_revenue_recorded = FALSE")
	}

	allowed := map[string]string{
		"trip_date": "bus_trip_date",
		"synced_at": "bus_trip_last_synced_at",
		"revenue":   "bus_trip_revenue",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "trip_date")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var list []opsModel.BusTripCache
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "bus trips", list, helper.BuildMeta(total, p))
}

/* ===================== Sync & reconciliation ===================== */

// POST /operations/sync — pulls assignments then trips of the last 30 days.
func (h *Handler) SyncNow(c *fiber.Ctx) error {
	if !h.Syncer.Client.Enabled() {
		return helper.JsonError(c, http.StatusServiceUnavailable, "operations API is not configured")
	}

	assignments, err := h.Syncer.SyncAssignments(c.Context())
	if err != nil {
		return helper.JsonError(c, http.StatusBadGateway, err.Error())
	}
	since := time.Now().AddDate(0, 0, -30)
	trips, err := h.Syncer.SyncBusTrips(c.Context(), since)
	if err != nil {
		return helper.JsonError(c, http.StatusBadGateway, err.Error())
	}
	return helper.JsonOK(c, "sync complete", fiber.Map{
		"assignments_synced": assignments,
		"bus_trips_synced":   trips,
	})
}

// GET /operations/bus-trips/:id/reimbursement — preview the crew split.
func (h *Handler) PreviewReimbursement(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var trip opsModel.BusTripCache
	if err := h.DB.First(&trip, "bus_trip_cache_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "bus trip not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var assignment opsModel.AssignmentCache
	if err := h.DB.First(&assignment, "assignment_cache_id = ?", trip.AssignmentCacheID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "assignment not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	split := opsService.CalculateReimbursement(trip, assignment)
	return helper.JsonOK(c, "reimbursement preview", split)
}

// POST /operations/bus-trips/:id/revenue
func (h *Handler) CreateRevenueFromTrip(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	record, created, err := h.Reconciler.CreateRevenueFromBusTrip(id, actorID)
	switch {
	case errors.Is(err, opsService.ErrTripNotFound), errors.Is(err, opsService.ErrAssignmentNotFound):
		return helper.JsonError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, opsService.ErrPendingStatusMissing):
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	case err != nil:
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if !created {
		return helper.JsonOK(c, "revenue already recorded for this trip", record)
	}
	return helper.JsonCreated(c, "revenue created from bus trip", record)
}

// POST /operations/bus-trips/:id/expense
func (h *Handler) CreateExpenseFromTrip(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	exp, created, err := h.Reconciler.CreateExpenseFromBusTrip(id, actorID)
	switch {
	case errors.Is(err, opsService.ErrTripNotFound), errors.Is(err, opsService.ErrAssignmentNotFound):
		return helper.JsonError(c, http.StatusNotFound, err.Error())
	case err != nil:
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if !created {
		return helper.JsonOK(c, "expense already recorded for this trip", exp)
	}
	return helper.JsonCreated(c, "expense created from bus trip", exp)
}
