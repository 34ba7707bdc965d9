package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	refService "ftms_backend/internals/features/reference/service"
	revenueController "ftms_backend/internals/features/revenues/controller"
)

// Staff portal: record and settle revenue.
func RevenueUserRoutes(user fiber.Router, db *gorm.DB, store *refService.Store) {
	h := revenueController.NewHandler(db, store)

	grp := user.Group("/revenues")
	grp.Get("/", h.ListRevenues)
	grp.Get("/:id", h.GetRevenue)
	grp.Post("/", h.CreateRevenue)
	grp.Patch("/:id", h.UpdateRevenue)
	grp.Post("/:id/payments", h.RecordPayment)
}

// Admin portal: everything the staff portal has, plus delete.
func RevenueAdminRoutes(admin fiber.Router, db *gorm.DB, store *refService.Store) {
	h := revenueController.NewHandler(db, store)

	grp := admin.Group("/revenues")
	grp.Get("/", h.ListRevenues)
	grp.Get("/:id", h.GetRevenue)
	grp.Post("/", h.CreateRevenue)
	grp.Patch("/:id", h.UpdateRevenue)
	grp.Post("/:id/payments", h.RecordPayment)
	grp.Delete("/:id", h.DeleteRevenue)
}
