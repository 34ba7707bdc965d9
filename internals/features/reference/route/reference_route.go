package route

import (
	"github.com/gofiber/fiber/v2"

	refController "ftms_backend/internals/features/reference/controller"
	refService "ftms_backend/internals/features/reference/service"
)

// Staff portal: read-only dropdown data.
func ReferenceUserRoutes(user fiber.Router, store *refService.Store) {
	h := &refController.Handler{Store: store}

	grp := user.Group("/reference")
	grp.Get("/categories", h.ListCategories)
	grp.Get("/payment-methods", h.ListPaymentMethods)
	grp.Get("/sources", h.ListSources)
	grp.Get("/payment-statuses", h.ListPaymentStatuses)
}

// Admin portal: full CRUD.
func ReferenceAdminRoutes(admin fiber.Router, store *refService.Store) {
	h := &refController.Handler{Store: store}

	grp := admin.Group("/reference")
	grp.Get("/categories", h.ListCategories)
	grp.Post("/categories", h.CreateCategory)
	grp.Delete("/categories/:id", h.DeleteCategory)

	grp.Get("/payment-methods", h.ListPaymentMethods)
	grp.Post("/payment-methods", h.CreatePaymentMethod)
	grp.Delete("/payment-methods/:id", h.DeletePaymentMethod)

	grp.Get("/sources", h.ListSources)
	grp.Post("/sources", h.CreateSource)
	grp.Delete("/sources/:id", h.DeleteSource)

	grp.Get("/payment-statuses", h.ListPaymentStatuses)
}
