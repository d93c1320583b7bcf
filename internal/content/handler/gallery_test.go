package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
)

func galleryEngine(fm *fakeMedia) *gin.Engine {
	g := gin.New()
	api := g.Group("/api")
	RegisterGallery(api, repository.NewMemory[*content.Gallery](), fm, testUploads())
	return g
}

func TestGallery_ViewsIncrementPerGet(t *testing.T) {
	g := galleryEngine(newFakeMedia())

	w := doJSON(t, g, http.MethodPost, "/api/gallery", `{"title":"Squat Rack","type":"image","category":"equipment"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := docID(t, w)

	for i := 1; i <= 3; i++ {
		w = doJSON(t, g, http.MethodGet, "/api/gallery/"+id, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, float64(i), dataMap(t, w)["views"])
	}
}

func TestGallery_FeaturedFirstThenOrder(t *testing.T) {
	g := galleryEngine(newFakeMedia())

	for _, body := range []string{
		`{"title":"Plain","type":"image","category":"facility","order":1}`,
		`{"title":"Star","type":"image","category":"facility","order":9,"isFeatured":true}`,
	} {
		w := doJSON(t, g, http.MethodPost, "/api/gallery", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, g, http.MethodGet, "/api/gallery", "")
	require.Equal(t, http.StatusOK, w.Code)
	docs := decodeBody(t, w)["data"].([]interface{})
	require.Equal(t, "Star", docs[0].(map[string]interface{})["title"])
}

func TestGallery_FilterAndLimit(t *testing.T) {
	g := galleryEngine(newFakeMedia())

	for _, body := range []string{
		`{"title":"A","type":"image","category":"equipment"}`,
		`{"title":"B","type":"video","category":"classes","mediaUrl":"https://cdn.example.com/b.mp4"}`,
		`{"title":"C","type":"image","category":"classes"}`,
	} {
		w := doJSON(t, g, http.MethodPost, "/api/gallery", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, g, http.MethodGet, "/api/gallery?category=classes", "")
	require.Equal(t, float64(2), decodeBody(t, w)["count"])

	w = doJSON(t, g, http.MethodGet, "/api/gallery?type=video", "")
	require.Equal(t, float64(1), decodeBody(t, w)["count"])

	w = doJSON(t, g, http.MethodGet, "/api/gallery?limit=1", "")
	require.Equal(t, float64(1), decodeBody(t, w)["count"])
}

func TestGallery_CategoriesList(t *testing.T) {
	g := galleryEngine(newFakeMedia())

	for _, body := range []string{
		`{"title":"A","type":"image","category":"equipment"}`,
		`{"title":"B","type":"image","category":"events"}`,
		`{"title":"C","type":"image","category":"events","isActive":false}`,
	} {
		w := doJSON(t, g, http.MethodPost, "/api/gallery", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, g, http.MethodGet, "/api/gallery/categories/list", "")
	require.Equal(t, http.StatusOK, w.Code)
	cats := decodeBody(t, w)["data"].([]interface{})
	require.ElementsMatch(t, []interface{}{"equipment", "events"}, cats)
}

func TestGallery_TypeValidation(t *testing.T) {
	g := galleryEngine(newFakeMedia())

	w := doJSON(t, g, http.MethodPost, "/api/gallery", `{"title":"X","type":"gif","category":"memes"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := errorFields(t, w)
	require.Contains(t, fields, "type")
	require.Contains(t, fields, "category")
}

func TestGallery_ImageThumbnailNeverStored(t *testing.T) {
	fm := newFakeMedia()
	g := galleryEngine(fm)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"title":    "Deadlift PR",
		"type":     "image",
		"category": "training",
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, field := range []string{"media", "thumbnail"} {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+field+`.png"`)
		hdr.Set("Content-Type", "image/png")
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gallery", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	g.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	data := dataMap(t, w)
	thumb, _ := data["thumbnail"].(map[string]interface{})
	require.Empty(t, thumb["url"])

	// Only the media file reaches the store; the thumbnail slot of an image
	// item is skipped before anything is written.
	require.Len(t, fm.saved, 1)
	m := data["media"].(map[string]interface{})
	require.Equal(t, fm.saved[0], m["url"])
}

func TestGallery_SwitchToImageDropsThumbnail(t *testing.T) {
	fm := newFakeMedia()
	g := galleryEngine(fm)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"title":    "Workout Reel",
		"type":     "video",
		"category": "classes",
		"mediaUrl": "https://cdn.example.com/reel.mp4",
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="thumbnail"; filename="reel.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gallery", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, fm.saved, 1)
	id := docID(t, w)

	w2 := doJSON(t, g, http.MethodPut, "/api/gallery/"+id, `{"type":"image"}`)
	require.Equal(t, http.StatusOK, w2.Code)
	thumb, _ := dataMap(t, w2)["thumbnail"].(map[string]interface{})
	require.Empty(t, thumb["url"])
	require.Equal(t, []string{fm.saved[0]}, fm.removed)
}
