package media

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"
)

func header(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestValidateUpload(t *testing.T) {
	allowed := []string{"image/png", "image/jpeg"}

	if err := ValidateUpload(header("a.png", "image/png", 100), 1<<20, allowed); err != nil {
		t.Fatalf("expected png to pass: %v", err)
	}
	if err := ValidateUpload(header("a.exe", "application/octet-stream", 100), 1<<20, allowed); err == nil {
		t.Fatal("expected content-type rejection")
	}
	if err := ValidateUpload(header("big.png", "image/png", 2<<20), 1<<20, allowed); err == nil {
		t.Fatal("expected size rejection")
	}
}

func TestObjectName(t *testing.T) {
	now := time.Unix(0, 1700000000000000000)
	got := ObjectName("../weird name!.png", now)
	if strings.Contains(got, "/") || strings.Contains(got, "!") || strings.Contains(got, " ") {
		t.Fatalf("unsafe characters survived: %q", got)
	}
	if !strings.HasSuffix(got, ".png") {
		t.Fatalf("extension lost: %q", got)
	}
	if ObjectName("", now) == "" {
		t.Fatal("empty filename should still produce a name")
	}
}

func TestMinIOKeyFromURL(t *testing.T) {
	s := &MinIOStore{bucket: "fitness-media", baseURL: "http://minio:9000/fitness-media"}

	if !s.Owns("http://minio:9000/fitness-media/uploads/123-a.png") {
		t.Fatal("expected stored URL to be owned")
	}
	if s.Owns("https://images.unsplash.com/photo-1") {
		t.Fatal("external URL must not be owned")
	}
	if s.Owns("http://minio:9000/fitness-media/other/123-a.png") {
		t.Fatal("non-uploads key must not be owned")
	}

	key, ok := s.keyFromURL("http://minio:9000/fitness-media/uploads/123-a.png")
	if !ok || key != "uploads/123-a.png" {
		t.Fatalf("unexpected key %q ok=%v", key, ok)
	}
}
