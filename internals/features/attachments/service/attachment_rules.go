package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxBatchBytes caps the aggregate size of one upload batch at 50MB.
const MaxBatchBytes = 50 * 1024 * 1024

// allowedExtensions maps the 8 accepted extensions to their MIME types.
var allowedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ContentTypeFor returns the MIME type for an allowed file name.
func ContentTypeFor(fileName string) (string, bool) {
	ct, ok := allowedExtensions[strings.ToLower(filepath.Ext(fileName))]
	return ct, ok
}

// ValidateBatch checks every file's extension and the aggregate size cap,
// accumulating all problems in one pass.
func ValidateBatch(files []*multipart.FileHeader) []string {
	var errs []string
	var total int64
	for _, f := range files {
		if _, ok := ContentTypeFor(f.Filename); !ok {
			errs = append(errs, fmt.Sprintf("file type of %q is not allowed", f.Filename))
		}
		total += f.Size
	}
	if total > MaxBatchBytes {
		errs = append(errs, fmt.Sprintf("upload batch is %d bytes, the limit is %d", total, MaxBatchBytes))
	}
	return errs
}
