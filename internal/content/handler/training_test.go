package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
)

func trainingEngine() *gin.Engine {
	g := gin.New()
	api := g.Group("/api")
	RegisterTraining(api, repository.NewMemory[*content.Training](), newFakeMedia(), testUploads())
	return g
}

func TestTraining_InvalidCategoryAggregated(t *testing.T) {
	g := trainingEngine()

	w := doJSON(t, g, http.MethodPost, "/api/training", `{"category":"crossfit","difficulty":"insane","price":-5}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := errorFields(t, w)
	require.Contains(t, fields, "title")
	require.Contains(t, fields, "description")
	require.Contains(t, fields, "category")
	require.Contains(t, fields, "difficulty")
	require.Contains(t, fields, "price")
}

func TestTraining_CreateDefaultsAndFilter(t *testing.T) {
	g := trainingEngine()

	w := doJSON(t, g, http.MethodPost, "/api/training", `{"title":"Yoga Flow","description":"Stretch","category":"yoga","features":["mats"]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "beginner", dataMap(t, w)["difficulty"])

	w = doJSON(t, g, http.MethodPost, "/api/training", `{"title":"HIIT Blast","description":"Sweat","category":"hiit-training","features":["timer"],"difficulty":"advanced"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, g, http.MethodGet, "/api/training?category=yoga", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(1), body["count"])

	w = doJSON(t, g, http.MethodGet, "/api/training?difficulty=advanced", "")
	require.Equal(t, float64(1), decodeBody(t, w)["count"])
}

func TestTraining_CategoriesList(t *testing.T) {
	g := trainingEngine()

	for _, body := range []string{
		`{"title":"A","description":"d","category":"yoga","features":["x"]}`,
		`{"title":"B","description":"d","category":"yoga","features":["x"]}`,
		`{"title":"C","description":"d","category":"weight-loss","features":["x"]}`,
		`{"title":"D","description":"d","category":"hiit-training","features":["x"],"isActive":false}`,
	} {
		w := doJSON(t, g, http.MethodPost, "/api/training", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, g, http.MethodGet, "/api/training/categories/list", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	cats := body["data"].([]interface{})
	require.ElementsMatch(t, []interface{}{"yoga", "weight-loss"}, cats)
}

func TestTraining_FormPayload(t *testing.T) {
	g := trainingEngine()

	w := httptestPostForm(t, g, "/api/training", map[string]string{
		"title":       "Strength 101",
		"description": "Lift",
		"category":    "muscle-building",
		"features":    `["bars","plates"]`,
		"price":       "49.90",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := dataMap(t, w)
	require.Equal(t, 49.90, data["price"])
	require.Equal(t, []interface{}{"bars", "plates"}, data["features"])
}
