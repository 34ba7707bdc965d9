package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	journalController "ftms_backend/internals/features/accounting/journal/controller"
)

// Admin portal: full journal maintenance.
func JournalAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &journalController.Handler{DB: db}

	grp := admin.Group("/journal-entries")
	grp.Get("/", h.ListEntries)
	grp.Get("/:id", h.GetEntry)
	grp.Post("/", h.CreateEntry)
	grp.Post("/:id/post", h.PostEntry)
	grp.Post("/:id/reverse", h.ReverseEntry)
}

// Staff portal: draft entry + read.
func JournalUserRoutes(user fiber.Router, db *gorm.DB) {
	h := &journalController.Handler{DB: db}

	grp := user.Group("/journal-entries")
	grp.Get("/", h.ListEntries)
	grp.Get("/:id", h.GetEntry)
	grp.Post("/", h.CreateEntry)
}
