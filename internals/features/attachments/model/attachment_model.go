package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attachment is the metadata row for one stored file. The file itself lives
// on local disk or in the GCS bucket, addressed by AttachmentStoragePath.
type Attachment struct {
	AttachmentID uuid.UUID `gorm:"column:attachment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attachment_id"`

	// Owning record, e.g. module "expenses" + the expense id.
	AttachmentModule   string    `gorm:"column:attachment_module;type:varchar(40);not null;index:idx_attachments_owner" json:"attachment_module"`
	AttachmentRecordID uuid.UUID `gorm:"column:attachment_record_id;type:uuid;not null;index:idx_attachments_owner" json:"attachment_record_id"`

	AttachmentFileName    string `gorm:"column:attachment_file_name;type:varchar(255);not null" json:"attachment_file_name"`
	AttachmentContentType string `gorm:"column:attachment_content_type;type:varchar(100);not null" json:"attachment_content_type"`
	AttachmentSizeBytes   int64  `gorm:"column:attachment_size_bytes;not null" json:"attachment_size_bytes"`

	AttachmentStorageBackend string `gorm:"column:attachment_storage_backend;type:varchar(10);not null" json:"attachment_storage_backend"` // local|gcs
	AttachmentStoragePath    string `gorm:"column:attachment_storage_path;type:text;not null" json:"attachment_storage_path"`

	AttachmentUploadedBy uuid.UUID `gorm:"column:attachment_uploaded_by;type:uuid;not null" json:"attachment_uploaded_by"`

	CreatedAt time.Time      `gorm:"column:attachment_created_at;autoCreateTime" json:"attachment_created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:attachment_deleted_at;index" json:"attachment_deleted_at,omitempty"`
}

func (Attachment) TableName() string { return "attachments" }
