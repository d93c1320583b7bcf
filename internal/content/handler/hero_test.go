package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
)

func heroEngine(fm *fakeMedia) (*gin.Engine, *repository.Memory[*content.Hero]) {
	g := gin.New()
	st := repository.NewMemory[*content.Hero]()
	api := g.Group("/api")
	RegisterHero(api, st, fm, testUploads())
	return g, st
}

func TestHero_CRUD(t *testing.T) {
	g, _ := heroEngine(newFakeMedia())

	w := doJSON(t, g, http.MethodPost, "/api/hero", `{"title":"Push Harder","subtitle":"No excuses","order":2,"buttons":[{"text":"Join","link":"/join"}]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := docID(t, w)

	w = doJSON(t, g, http.MethodGet, "/api/hero/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, w)
	require.Equal(t, "Push Harder", data["title"])
	require.Equal(t, true, data["isActive"])

	w = doJSON(t, g, http.MethodPut, "/api/hero/"+id, `{"order":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	data = dataMap(t, w)
	require.Equal(t, float64(5), data["order"])
	require.Equal(t, "Push Harder", data["title"])
	require.Equal(t, "No excuses", data["subtitle"])

	w = doJSON(t, g, http.MethodDelete, "/api/hero/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, g, http.MethodGet, "/api/hero/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHero_CreateValidation(t *testing.T) {
	g, _ := heroEngine(newFakeMedia())

	w := doJSON(t, g, http.MethodPost, "/api/hero", `{"subtitle":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := errorFields(t, w)
	require.Contains(t, fields, "title")
	require.Contains(t, fields, "subtitle")
}

func TestHero_ListOnlyActiveOrdered(t *testing.T) {
	g, _ := heroEngine(newFakeMedia())

	for _, body := range []string{
		`{"title":"B","subtitle":"s","order":2}`,
		`{"title":"A","subtitle":"s","order":1}`,
		`{"title":"Hidden","subtitle":"s","isActive":false}`,
	} {
		w := doJSON(t, g, http.MethodPost, "/api/hero", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, g, http.MethodGet, "/api/hero", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(2), body["count"])
	docs := body["data"].([]interface{})
	require.Equal(t, "A", docs[0].(map[string]interface{})["title"])
	require.Equal(t, "B", docs[1].(map[string]interface{})["title"])
}

func TestHero_ListHonorsIsActiveAndLimit(t *testing.T) {
	g, _ := heroEngine(newFakeMedia())

	for _, body := range []string{
		`{"title":"Live","subtitle":"s","order":1}`,
		`{"title":"Also Live","subtitle":"s","order":2}`,
		`{"title":"Retired","subtitle":"s","isActive":false}`,
	} {
		w := doJSON(t, g, http.MethodPost, "/api/hero", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, g, http.MethodGet, "/api/hero?isActive=false", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(1), body["count"])
	docs := body["data"].([]interface{})
	require.Equal(t, "Retired", docs[0].(map[string]interface{})["title"])

	w = doJSON(t, g, http.MethodGet, "/api/hero?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	require.Equal(t, float64(1), body["count"])
	require.Equal(t, "Live", body["data"].([]interface{})[0].(map[string]interface{})["title"])
}

func TestHero_MalformedEmbeddedJSONRejected(t *testing.T) {
	g, st := heroEngine(newFakeMedia())

	w := doJSON(t, g, http.MethodPost, "/api/hero", `{"title":"T","subtitle":"S","buttons":"{not json"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	docs, err := st.List(testCtx(), repository.ListQuery{Filter: map[string]interface{}{}})
	require.NoError(t, err)
	require.Empty(t, docs, "a rejected payload must not write")
}

func TestHero_MediaURLReplacementDeletesStored(t *testing.T) {
	fm := newFakeMedia()
	g, st := heroEngine(fm)

	w := doJSON(t, g, http.MethodPost, "/api/hero", `{"title":"T","subtitle":"S"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := docID(t, w)

	// hand the document a stored image, then swap it for an external URL
	doc, err := st.Get(testCtx(), id)
	require.NoError(t, err)
	stored := fm.baseURL + "/uploads/old.png"
	doc.BackgroundImage = content.Media{URL: stored, Alt: "old"}
	require.NoError(t, st.Replace(testCtx(), doc))

	w = doJSON(t, g, http.MethodPut, "/api/hero/"+id, `{"backgroundImageUrl":"https://cdn.example.com/new.png"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{stored}, fm.removed)

	// an external prior URL is never deleted
	w = doJSON(t, g, http.MethodPut, "/api/hero/"+id, `{"backgroundImageUrl":"https://cdn.example.com/other.png"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, fm.removed, 1)
}
