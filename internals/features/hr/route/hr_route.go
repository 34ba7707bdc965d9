package route

import (
	"github.com/gofiber/fiber/v2"

	hrController "ftms_backend/internals/features/hr/controller"
	hrService "ftms_backend/internals/features/hr/service"
)

// Staff portal: employee dropdown for reimbursement claims.
func HRUserRoutes(user fiber.Router, syncer *hrService.Syncer) {
	h := &hrController.Handler{Syncer: syncer}

	grp := user.Group("/hr")
	grp.Get("/employees", h.ListEmployees)
}

// Admin portal: adds the explicit sync trigger.
func HRAdminRoutes(admin fiber.Router, syncer *hrService.Syncer) {
	h := &hrController.Handler{Syncer: syncer}

	grp := admin.Group("/hr")
	grp.Get("/employees", h.ListEmployees)
	grp.Post("/sync", h.SyncNow)
}

// Public webhook receivers; guarded upstream by the webhook rate limiter.
func HRWebhookRoutes(public fiber.Router, syncer *hrService.Syncer) {
	h := &hrController.Handler{Syncer: syncer}

	grp := public.Group("/webhooks/hr")
	grp.Post("/employees", h.EmployeeLifecycleWebhook)
}
