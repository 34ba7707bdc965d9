package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Storage writes one attachment body and returns its storage path.
type Storage interface {
	Backend() string
	Save(ctx context.Context, module string, recordID uuid.UUID, fileName string, contentType string, body io.Reader) (string, error)
}

/* ===================== Local disk ===================== */

// LocalStorage writes under uploads/<module>/<record_id>/.
type LocalStorage struct {
	Root string
}

func NewLocalStorage() *LocalStorage { return &LocalStorage{Root: "uploads"} }

func (s *LocalStorage) Backend() string { return "local" }

func (s *LocalStorage) Save(_ context.Context, module string, recordID uuid.UUID, fileName string, _ string, body io.Reader) (string, error) {
	dir := filepath.Join(s.Root, module, recordID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	// Prefix with a fresh uuid so repeated uploads of the same name never clash.
	path := filepath.Join(dir, uuid.NewString()+"_"+filepath.Base(fileName))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

/* ===================== Google Cloud Storage ===================== */

type GCSStorage struct {
	Client *storage.Client
	Bucket string
}

func NewGCSStorage(ctx context.Context, bucket string) (*GCSStorage, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("init GCS client: %w", err)
	}
	return &GCSStorage{Client: client, Bucket: bucket}, nil
}

func (s *GCSStorage) Backend() string { return "gcs" }

func (s *GCSStorage) Save(ctx context.Context, module string, recordID uuid.UUID, fileName string, contentType string, body io.Reader) (string, error) {
	object := fmt.Sprintf("%s/%s/%s_%s", module, recordID, uuid.NewString(), filepath.Base(fileName))

	w := s.Client.Bucket(s.Bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, body); err != nil {
		w.Close()
		return "", fmt.Errorf("write GCS object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize GCS object: %w", err)
	}
	return fmt.Sprintf("gs://%s/%s", s.Bucket, object), nil
}
