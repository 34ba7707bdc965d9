package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coaController "ftms_backend/internals/features/accounting/chart_of_accounts/controller"
)

// Admin portal: chart-of-accounts maintenance.
func ChartOfAccountsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &coaController.Handler{DB: db}

	grp := admin.Group("/accounts")
	grp.Get("/", h.ListAccounts)
	grp.Get("/:id", h.GetAccount)
	grp.Post("/", h.CreateAccount)
	grp.Patch("/:id", h.UpdateAccount)
	grp.Post("/:id/archive", h.ArchiveAccount)
}

// Staff portal: read-only lookups for journal entry forms.
func ChartOfAccountsUserRoutes(user fiber.Router, db *gorm.DB) {
	h := &coaController.Handler{DB: db}

	grp := user.Group("/accounts")
	grp.Get("/", h.ListAccounts)
	grp.Get("/:id", h.GetAccount)
}
