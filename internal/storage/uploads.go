// Package storage persists uploaded cover images on the local filesystem and
// hands back the URLs under which the static file mount serves them.
package storage

import (
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Uploads writes attachment files into a directory served at <baseURL>/uploads.
type Uploads struct {
	dir     string
	baseURL string
}

// NewUploads creates the upload directory if needed.
func NewUploads(dir, baseURL string) (*Uploads, error) {
	if err := os.MkdirAll(dir, fs.ModePerm); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &Uploads{dir: dir, baseURL: baseURL}, nil
}

// Dir returns the directory files are written to.
func (u *Uploads) Dir() string {
	return u.dir
}

// Save stores the uploaded file under a collision-resistant name built from
// the current timestamp, a random suffix and the original extension, and
// returns the absolute URL of the stored file. Nothing cleans the file up if
// a later database write fails.
func (u *Uploads) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(header.Filename))

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return u.baseURL + "/uploads/" + name, nil
}
