package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// ErrRejected marks an upload refused by validation rather than a storage
// failure.
var ErrRejected = errors.New("upload rejected")

// Marker distinguishes media stored by this service from externally hosted
// URLs. Only URLs carrying it are ever deleted.
const Marker = "/uploads/"

// Store persists uploaded binaries and deletes them when their owning
// document supersedes or drops them.
type Store interface {
	// Save stores the object and returns its public URL.
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
	// Remove deletes a previously stored object by its public URL. URLs the
	// store does not own are ignored.
	Remove(ctx context.Context, url string) error
	// Owns reports whether the URL points into this store.
	Owns(url string) bool
}

// ValidateUpload enforces the size cap and content-type whitelist before
// anything is stored.
func ValidateUpload(fh *multipart.FileHeader, maxBytes int64, allowedTypes []string) error {
	if maxBytes > 0 && fh.Size > maxBytes {
		return fmt.Errorf("%w: file %s exceeds the %d byte limit", ErrRejected, fh.Filename, maxBytes)
	}
	ct := fh.Header.Get("Content-Type")
	for _, a := range allowedTypes {
		if ct == a {
			return nil
		}
	}
	return fmt.Errorf("%w: content type %q is not allowed", ErrRejected, ct)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// ObjectName builds a collision-free object key from an original filename.
func ObjectName(filename string, now time.Time) string {
	base := unsafeChars.ReplaceAllString(filepath.Base(filename), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s", now.UnixNano(), base)
}
