package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
)

func pricingEngine() (*gin.Engine, *repository.Memory[*content.Pricing]) {
	g := gin.New()
	st := repository.NewMemory[*content.Pricing]()
	api := g.Group("/api")
	RegisterPricing(api, st)
	return g, st
}

func TestPricing_CreateDefaults(t *testing.T) {
	g, _ := pricingEngine()

	w := doJSON(t, g, http.MethodPost, "/api/pricing", `{"name":"Basic","price":29,"period":"month","description":"d","features":["gym"],"buttonText":"Go"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	data := dataMap(t, w)
	require.Equal(t, "#EAA620", data["color"])
	require.Equal(t, float64(7), data["trialDays"])
	require.Equal(t, false, data["isPopular"])
}

func TestPricing_PopularIsExclusive(t *testing.T) {
	g, st := pricingEngine()

	w := doJSON(t, g, http.MethodPost, "/api/pricing", `{"name":"Basic","price":29,"period":"month","description":"d","features":["gym"],"buttonText":"Go","isPopular":true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	first := docID(t, w)

	w = doJSON(t, g, http.MethodPost, "/api/pricing", `{"name":"Pro","price":59,"period":"month","description":"d","features":["gym","sauna"],"buttonText":"Go","isPopular":true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	second := docID(t, w)

	old, err := st.Get(testCtx(), first)
	require.NoError(t, err)
	require.False(t, old.IsPopular, "creating a new popular plan must clear the old one")

	// flipping the flag back via update clears the second plan
	w = doJSON(t, g, http.MethodPut, "/api/pricing/"+first, `{"isPopular":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	cur, err := st.Get(testCtx(), second)
	require.NoError(t, err)
	require.False(t, cur.IsPopular)
}

func TestPricing_Validation(t *testing.T) {
	g, _ := pricingEngine()

	w := doJSON(t, g, http.MethodPost, "/api/pricing", `{"price":-1,"period":"decade","trialDays":-3}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := errorFields(t, w)
	require.Contains(t, fields, "name")
	require.Contains(t, fields, "price")
	require.Contains(t, fields, "period")
	require.Contains(t, fields, "description")
	require.Contains(t, fields, "features")
	require.Contains(t, fields, "buttonText")
	require.Contains(t, fields, "trialDays")
}

func TestPricing_Delete(t *testing.T) {
	g, _ := pricingEngine()

	w := doJSON(t, g, http.MethodPost, "/api/pricing", `{"name":"Basic","price":29,"period":"month","description":"d","features":["gym"],"buttonText":"Go"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := docID(t, w)

	w = doJSON(t, g, http.MethodDelete, "/api/pricing/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, g, http.MethodDelete, "/api/pricing/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
