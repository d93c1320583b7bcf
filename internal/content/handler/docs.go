package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterDocs serves a minimal Swagger UI plus the OpenAPI JSON describing
// the content API.
func RegisterDocs(r *gin.Engine) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})
	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>fitness-studio-api — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document for the public and editorial surface. Kept by hand;
// extend alongside route changes.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "fitness-studio-api", "version": "v1.0.0" },
  "paths": {
    "/api/hero": {
      "get": { "summary": "List active hero sections", "responses": { "200": { "description": "envelope with count and data" } } },
      "post": { "summary": "Create hero section (editor/admin)", "responses": { "201": { "description": "created" }, "400": { "description": "validation failed" } } }
    },
    "/api/hero/{id}": {
      "get": { "summary": "Get hero section", "responses": { "200": { "description": "ok" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update hero section (editor/admin)", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete hero section (editor/admin)", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/about": {
      "get": { "summary": "Get the about section (singleton)", "responses": { "200": { "description": "ok" }, "404": { "description": "not found" } } },
      "post": { "summary": "Create about section, conflicts when one exists (editor/admin)", "responses": { "201": { "description": "created" }, "400": { "description": "validation failed or already exists" } } }
    },
    "/api/training": {
      "get": { "summary": "List training programs (category, difficulty, isActive filters)", "responses": { "200": { "description": "ok" } } },
      "post": { "summary": "Create training program (editor/admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/training/categories/list": {
      "get": { "summary": "Distinct categories of active training programs", "responses": { "200": { "description": "ok" } } }
    },
    "/api/trainers": {
      "get": { "summary": "List trainers (specialty, isActive filters)", "responses": { "200": { "description": "ok" } } },
      "post": { "summary": "Create trainer (editor/admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/gallery": {
      "get": { "summary": "List gallery items (category, type, isFeatured, isActive, limit)", "responses": { "200": { "description": "ok" } } },
      "post": { "summary": "Create gallery item (editor/admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/gallery/categories/list": {
      "get": { "summary": "Distinct categories of active gallery items", "responses": { "200": { "description": "ok" } } }
    },
    "/api/testimonials": {
      "get": { "summary": "List testimonials (program, rating minimum, isFeatured, isActive, limit)", "responses": { "200": { "description": "ok" } } },
      "post": { "summary": "Create testimonial (editor/admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/pricing": {
      "get": { "summary": "List pricing plans", "responses": { "200": { "description": "ok" } } },
      "post": { "summary": "Create pricing plan (editor/admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/contact": {
      "get": { "summary": "Get contact information (singleton)", "responses": { "200": { "description": "ok" }, "404": { "description": "not found" } } },
      "post": { "summary": "Create contact information, conflicts when one exists (editor/admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/settings": {
      "get": { "summary": "Public settings projection", "responses": { "200": { "description": "ok" } } },
      "put": { "summary": "Update settings (admin)", "responses": { "200": { "description": "updated" } } }
    },
    "/api/settings/admin": {
      "get": { "summary": "Full settings document (admin)", "responses": { "200": { "description": "ok" } } }
    },
    "/api/settings/theme": {
      "put": { "summary": "Update theme colors and fonts (admin)", "responses": { "200": { "description": "updated" } } }
    },
    "/api/settings/maintenance": {
      "put": { "summary": "Toggle maintenance mode (admin)", "responses": { "200": { "description": "updated" } } }
    }
  }
}`
