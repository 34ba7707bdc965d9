package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attachController "ftms_backend/internals/features/attachments/controller"
	attachService "ftms_backend/internals/features/attachments/service"
)

// Staff portal: upload and browse receipts.
func AttachmentUserRoutes(user fiber.Router, db *gorm.DB, storage attachService.Storage) {
	h := &attachController.Handler{DB: db, Storage: storage}

	grp := user.Group("/attachments")
	grp.Post("/:module/:record_id", h.Upload)
	grp.Get("/:module/:record_id", h.ListForRecord)
}

// Admin portal: adds delete.
func AttachmentAdminRoutes(admin fiber.Router, db *gorm.DB, storage attachService.Storage) {
	h := &attachController.Handler{DB: db, Storage: storage}

	grp := admin.Group("/attachments")
	grp.Post("/:module/:record_id", h.Upload)
	grp.Get("/:module/:record_id", h.ListForRecord)
	grp.Delete("/:id", h.Delete)
}
