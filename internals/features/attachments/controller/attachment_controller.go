package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attachModel "ftms_backend/internals/features/attachments/model"
	attachService "ftms_backend/internals/features/attachments/service"
	helper "ftms_backend/internals/helpers"
)

// Owning modules that accept attachments.
var attachableModules = map[string]bool{
	"expenses":       true,
	"revenues":       true,
	"reimbursements": true,
	"loans":          true,
}

type Handler struct {
	DB      *gorm.DB
	Storage attachService.Storage
}

// POST /attachments/:module/:record_id — multipart batch under field "files".
// The whole batch is validated up front; nothing is stored on a failed batch.
func (h *Handler) Upload(c *fiber.Ctx) error {
	module := c.Params("module")
	if !attachableModules[module] {
		return helper.JsonError(c, http.StatusBadRequest, "unknown attachment module")
	}
	recordID, err := helper.ParseUUIDParam(c, "record_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid record id")
	}
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "expected multipart form")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return helper.JsonValidationErrors(c, []string{"no files in upload"})
	}

	if errs := attachService.ValidateBatch(files); len(errs) > 0 {
		return helper.JsonValidationErrors(c, errs)
	}

	var saved []attachModel.Attachment
	for _, f := range files {
		contentType, _ := attachService.ContentTypeFor(f.Filename)

		src, err := f.Open()
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		path, err := h.Storage.Save(c.Context(), module, recordID, f.Filename, contentType, src)
		src.Close()
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}

		row := attachModel.Attachment{
			AttachmentModule:         module,
			AttachmentRecordID:       recordID,
			AttachmentFileName:       f.Filename,
			AttachmentContentType:    contentType,
			AttachmentSizeBytes:      f.Size,
			AttachmentStorageBackend: h.Storage.Backend(),
			AttachmentStoragePath:    path,
			AttachmentUploadedBy:     actorID,
		}
		if err := h.DB.Create(&row).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		saved = append(saved, row)
	}
	return helper.JsonCreated(c, "attachments uploaded", saved)
}

// GET /attachments/:module/:record_id
func (h *Handler) ListForRecord(c *fiber.Ctx) error {
	module := c.Params("module")
	if !attachableModules[module] {
		return helper.JsonError(c, http.StatusBadRequest, "unknown attachment module")
	}
	recordID, err := helper.ParseUUIDParam(c, "record_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid record id")
	}

	var list []attachModel.Attachment
	if err := h.DB.Where("attachment_module = ? AND attachment_record_id = ?", module, recordID).
		Order("attachment_created_at DESC").Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "attachments", list)
}

// DELETE /attachments/:id — metadata soft delete; stored bodies are retained
// for audit until a cleanup job reaps them.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.Delete(&attachModel.Attachment{}, "attachment_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "attachment not found")
	}
	return helper.JsonDeleted(c, "attachment deleted", fiber.Map{"attachment_id": id})
}
