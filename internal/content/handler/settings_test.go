package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
)

func settingsEngine() (*gin.Engine, *repository.Memory[*content.Settings]) {
	g := gin.New()
	st := repository.NewMemory[*content.Settings]()
	api := g.Group("/api")
	RegisterSettings(api, st, newFakeMedia(), testUploads())
	return g, st
}

func TestSettings_GetOrCreateWithDefaults(t *testing.T) {
	g, st := settingsEngine()

	w := doJSON(t, g, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, w)
	site := data["site"].(map[string]interface{})
	require.Equal(t, "Wolverines Fitness Studio", site["name"])
	theme := data["theme"].(map[string]interface{})
	require.Equal(t, "#EAA620", theme["primaryColor"])

	// the read materialized exactly one document
	doc, err := st.First(testCtx())
	require.NoError(t, err)
	require.NotNil(t, doc)
}

func TestSettings_PublicProjectionRedactsSecrets(t *testing.T) {
	g, st := settingsEngine()

	doc := content.DefaultSettings()
	doc.Email.SMTPPassword = "hunter2"
	doc.SEO.GoogleAnalyticsID = "G-SECRET"
	require.NoError(t, st.Insert(testCtx(), doc))

	w := doJSON(t, g, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.NotContains(t, body, "hunter2")
	require.NotContains(t, body, "G-SECRET")
	require.NotContains(t, body, "smtp")

	// the admin surface keeps the full document
	w = doJSON(t, g, http.MethodGet, "/api/settings/admin", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "hunter2")
}

func TestSettings_ThemeUpdate(t *testing.T) {
	g, _ := settingsEngine()

	w := doJSON(t, g, http.MethodPut, "/api/settings/theme", `{"primaryColor":"red"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, errorFields(t, w), "primaryColor")

	w = doJSON(t, g, http.MethodPut, "/api/settings/theme", `{"primaryColor":"#112233","fontPrimary":"Inter"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, w)
	require.Equal(t, "#112233", data["primaryColor"])
	require.Equal(t, "Inter", data["fontPrimary"])
	// untouched colors keep their defaults
	require.Equal(t, "#F3CE4D", data["secondaryColor"])
}

func TestSettings_MaintenanceToggle(t *testing.T) {
	g, _ := settingsEngine()

	w := doJSON(t, g, http.MethodPut, "/api/settings/maintenance", `{"message":"back soon"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, errorFields(t, w), "enabled")

	w = doJSON(t, g, http.MethodPut, "/api/settings/maintenance", `{"enabled":true,"message":"Back at noon","estimatedCompletion":"2026-09-01T12:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, "Maintenance mode enabled successfully", body["message"])
	data := body["data"].(map[string]interface{})
	require.Equal(t, true, data["enabled"])
	require.Equal(t, "Back at noon", data["message"])

	w = doJSON(t, g, http.MethodPut, "/api/settings/maintenance", `{"enabled":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Maintenance mode disabled successfully", decodeBody(t, w)["message"])
}

func TestSettings_PartialSiteUpdate(t *testing.T) {
	g, _ := settingsEngine()

	// A name-only site payload keeps every other site key.
	w := doJSON(t, g, http.MethodPut, "/api/settings", `{"site":{"name":"New Name"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	site := dataMap(t, w)["site"].(map[string]interface{})
	require.Equal(t, "New Name", site["name"])
	require.Equal(t, "Transform your body, transform your life", site["tagline"])
	require.Equal(t, "Transform your body and mind at our premium fitness studio", site["description"])

	// And the merge compounds across updates.
	w = doJSON(t, g, http.MethodPut, "/api/settings", `{"site":{"tagline":"New tagline"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	site = dataMap(t, w)["site"].(map[string]interface{})
	require.Equal(t, "New Name", site["name"])
	require.Equal(t, "New tagline", site["tagline"])

	w = doJSON(t, g, http.MethodPut, "/api/settings", `{"site":{"name":""}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, errorFields(t, w), "site.name")
}

func TestSettings_PartialSEOUpdate(t *testing.T) {
	g, _ := settingsEngine()

	w := doJSON(t, g, http.MethodPut, "/api/settings", `{"seo":{"metaDescription":"Fresh copy"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	seo := dataMap(t, w)["seo"].(map[string]interface{})
	require.Equal(t, "Fresh copy", seo["metaDescription"])
	require.Equal(t, "Fitness Studio - Transform Your Body", seo["metaTitle"])

	w = doJSON(t, g, http.MethodPut, "/api/settings", `{"seo":{"metaTitle":"  "}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, errorFields(t, w), "seo.metaTitle")
}
