package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	opsController "ftms_backend/internals/features/operations/controller"
	opsService "ftms_backend/internals/features/operations/service"
	refService "ftms_backend/internals/features/reference/service"
)

// Staff portal: read the cache, preview splits.
func OperationsUserRoutes(user fiber.Router, db *gorm.DB, store *refService.Store, syncer *opsService.Syncer) {
	h := opsController.NewHandler(db, store, syncer)

	grp := user.Group("/operations")
	grp.Get("/assignments", h.ListAssignments)
	grp.Get("/bus-trips", h.ListBusTrips)
	grp.Get("/bus-trips/:id/reimbursement", h.PreviewReimbursement)
}

// Admin portal: sync and derive financial records.
func OperationsAdminRoutes(admin fiber.Router, db *gorm.DB, store *refService.Store, syncer *opsService.Syncer) {
	h := opsController.NewHandler(db, store, syncer)

	grp := admin.Group("/operations")
	grp.Get("/assignments", h.ListAssignments)
	grp.Get("/bus-trips", h.ListBusTrips)
	grp.Get("/bus-trips/:id/reimbursement", h.PreviewReimbursement)
	grp.Post("/sync", h.SyncNow)
	grp.Post("/bus-trips/:id/revenue", h.CreateRevenueFromTrip)
	grp.Post("/bus-trips/:id/expense", h.CreateExpenseFromTrip)
}

// Public webhook receivers; guarded upstream by the webhook rate limiter.
func OperationsWebhookRoutes(public fiber.Router, db *gorm.DB, store *refService.Store, syncer *opsService.Syncer) {
	h := opsController.NewHandler(db, store, syncer)

	grp := public.Group("/webhooks/operations")
	grp.Post("/assignments", h.AssignmentLifecycleWebhook)
	grp.Post("/bus-trips", h.BusTripLifecycleWebhook)
}
