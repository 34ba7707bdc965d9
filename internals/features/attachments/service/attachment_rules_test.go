package service

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestContentTypeFor(t *testing.T) {
	allowed := []string{"receipt.pdf", "photo.JPG", "scan.jpeg", "img.png", "img.webp",
		"note.doc", "note.docx", "sheet.xlsx"}
	for _, name := range allowed {
		_, ok := ContentTypeFor(name)
		assert.True(t, ok, "%s should be allowed", name)
	}

	for _, name := range []string{"script.exe", "archive.zip", "plain.txt", "noext"} {
		_, ok := ContentTypeFor(name)
		assert.False(t, ok, "%s should be rejected", name)
	}
}

func TestValidateBatch(t *testing.T) {
	t.Run("valid batch", func(t *testing.T) {
		errs := ValidateBatch([]*multipart.FileHeader{
			header("a.pdf", 1024),
			header("b.png", 2048),
		})
		assert.Empty(t, errs)
	})

	t.Run("disallowed extension", func(t *testing.T) {
		errs := ValidateBatch([]*multipart.FileHeader{header("virus.exe", 10)})
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "not allowed")
	})

	t.Run("aggregate size cap", func(t *testing.T) {
		errs := ValidateBatch([]*multipart.FileHeader{
			header("a.pdf", 30*1024*1024),
			header("b.pdf", 21*1024*1024),
		})
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "limit")
	})

	t.Run("exactly at the cap passes", func(t *testing.T) {
		errs := ValidateBatch([]*multipart.FileHeader{header("a.pdf", MaxBatchBytes)})
		assert.Empty(t, errs)
	})

	t.Run("errors accumulate", func(t *testing.T) {
		errs := ValidateBatch([]*multipart.FileHeader{
			header("a.exe", 40*1024*1024),
			header("b.zip", 20*1024*1024),
		})
		assert.Len(t, errs, 3) // two extensions plus the cap
	})
}
