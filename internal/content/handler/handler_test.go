package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/wolverinesfitness/backend/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testCtx() context.Context { return context.Background() }

// fakeMedia records saves and removes so tests can assert on the media
// lifecycle without MinIO.
type fakeMedia struct {
	baseURL string
	saved   []string
	removed []string
}

func newFakeMedia() *fakeMedia {
	return &fakeMedia{baseURL: "http://media.test/fitness-media"}
}

func (f *fakeMedia) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	url := f.baseURL + "/uploads/" + name
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeMedia) Remove(ctx context.Context, url string) error {
	f.removed = append(f.removed, url)
	return nil
}

func (f *fakeMedia) Owns(url string) bool {
	return strings.HasPrefix(url, f.baseURL+"/uploads/")
}

func testUploads() config.UploadsConfig {
	return config.UploadsConfig{
		MaxBytes:     10 << 20,
		AllowedTypes: []string{"image/png", "image/jpeg", "video/mp4"},
	}
}

func doJSON(t *testing.T, g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	g.ServeHTTP(w, req)
	return w
}

func httptestPostForm(t *testing.T, g *gin.Engine, path string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	g.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func dataMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "expected data object in %s", w.Body.String())
	return data
}

func docID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	id, ok := dataMap(t, w)["id"].(string)
	require.True(t, ok)
	return id
}

func errorFields(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	body := decodeBody(t, w)
	raw, ok := body["errors"].([]interface{})
	require.True(t, ok, "expected errors array in %s", w.Body.String())
	fields := make([]string, 0, len(raw))
	for _, e := range raw {
		m := e.(map[string]interface{})
		if f, ok := m["field"].(string); ok {
			fields = append(fields, f)
		}
	}
	return fields
}
