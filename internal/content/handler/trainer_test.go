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

func trainerEngine(fm *fakeMedia) *gin.Engine {
	g := gin.New()
	api := g.Group("/api")
	RegisterTrainers(api, repository.NewMemory[*content.Trainer](), fm, testUploads())
	return g
}

func TestTrainer_CreateValidation(t *testing.T) {
	g := trainerEngine(newFakeMedia())

	w := doJSON(t, g, http.MethodPost, "/api/trainers", `{"email":"bad","rating":9}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := errorFields(t, w)
	require.Contains(t, fields, "name")
	require.Contains(t, fields, "specialty")
	require.Contains(t, fields, "experience")
	require.Contains(t, fields, "bio")
	require.Contains(t, fields, "certifications")
	require.Contains(t, fields, "email")
	require.Contains(t, fields, "rating")
}

func TestTrainer_DefaultRating(t *testing.T) {
	g := trainerEngine(newFakeMedia())

	w := doJSON(t, g, http.MethodPost, "/api/trainers", `{"name":"Kaya","specialty":"Strength","experience":"8 years","bio":"Lifting coach","certifications":["NSCA"]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, float64(5), dataMap(t, w)["rating"])
}

func TestTrainer_SpecialtyFilter(t *testing.T) {
	g := trainerEngine(newFakeMedia())

	for _, body := range []string{
		`{"name":"Kaya","specialty":"Strength","experience":"8 years","bio":"b","certifications":["NSCA"]}`,
		`{"name":"Eda","specialty":"Yoga","experience":"5 years","bio":"b","certifications":["RYT"]}`,
	} {
		w := doJSON(t, g, http.MethodPost, "/api/trainers", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, g, http.MethodGet, "/api/trainers?specialty=Yoga", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1), decodeBody(t, w)["count"])
}

func TestTrainer_MultipartUpload(t *testing.T) {
	fm := newFakeMedia()
	g := trainerEngine(fm)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"name":           "Kaya",
		"specialty":      "Strength",
		"experience":     "8 years",
		"bio":            "Lifting coach",
		"certifications": `["NSCA"]`,
		"socialLinks":    `{"instagram":"@kaya"}`,
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="kaya.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trainers", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	g.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, fm.saved, 1)
	data := dataMap(t, w)
	img := data["image"].(map[string]interface{})
	require.Equal(t, fm.saved[0], img["url"])
	social := data["socialLinks"].(map[string]interface{})
	require.Equal(t, "@kaya", social["instagram"])
}
