package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wolverinesfitness/backend/internal/config"
	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
	"github.com/wolverinesfitness/backend/internal/media"
)

type aboutHandler struct {
	base
	store repository.Store[*content.About]
}

// RegisterAbout mounts the about section routes. The section is a singleton:
// GET / returns the single live document and POST conflicts once one exists.
func RegisterAbout(r *gin.RouterGroup, st repository.Store[*content.About], ms media.Store, up config.UploadsConfig, write ...gin.HandlerFunc) {
	h := &aboutHandler{base: base{entity: "about", media: ms, uploads: up}, store: st}
	r.GET("/about", h.get)
	g := r.Group("/about", write...)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

type aboutPayload struct {
	Title    *string                                  `json:"title"`
	Subtitle *string                                  `json:"subtitle"`
	Desc     content.Encoded[[]string]                `json:"description"`
	Features content.Encoded[[]content.Feature]       `json:"features"`
	Overlay  content.Encoded[content.OverlayContent]  `json:"overlayContent"`
	IsActive content.OptBool                          `json:"isActive"`
	ImageURL *string                                  `json:"imageUrl"`
	ImageAlt *string                                  `json:"imageAlt"`
}

func (h *aboutHandler) get(c *gin.Context) {
	h.count("get")
	doc, err := h.store.First(c.Request.Context())
	if err == content.ErrNotFound {
		notFound(c, "About section not found")
		return
	}
	if err != nil {
		h.serverError(c, "fetching about section", err)
		return
	}
	ok(c, doc)
}

func (h *aboutHandler) create(c *gin.Context) {
	h.count("create")
	ctx := c.Request.Context()

	if _, err := h.store.First(ctx); err == nil {
		conflict(c, "About section already exists. Use PUT to update.")
		return
	} else if err != content.ErrNotFound {
		h.serverError(c, "creating about section", err)
		return
	}

	var p aboutPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.Title != nil && strings.TrimSpace(*p.Title) != "", "title", "Title is required")
	v.Check(p.Subtitle != nil && strings.TrimSpace(*p.Subtitle) != "", "subtitle", "Subtitle is required")
	v.Check(p.Desc.Present && len(p.Desc.Value) > 0, "description", "At least one description paragraph is required")
	v.Check(p.Features.Present && len(p.Features.Value) > 0, "features", "At least one feature is required")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	doc := &content.About{
		Title:       strings.TrimSpace(*p.Title),
		Subtitle:    strings.TrimSpace(*p.Subtitle),
		Description: p.Desc.Value,
		Features:    p.Features.Value,
		Overlay:     p.Overlay.Value,
		IsActive:    true,
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}

	img, _, err := h.resolveMedia(c, "image", content.Media{}, p.ImageURL, p.ImageAlt, "About us image")
	if err != nil {
		h.mediaError(c, "image", err)
		return
	}
	doc.Image = img

	if err := h.store.Insert(ctx, doc); err != nil {
		h.serverError(c, "creating about section", err)
		return
	}
	createdMsg(c, "About section created successfully", doc)
}

func (h *aboutHandler) update(c *gin.Context) {
	h.count("update")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "About section not found")
		return
	}
	if err != nil {
		h.serverError(c, "updating about section", err)
		return
	}

	var p aboutPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.Title == nil || strings.TrimSpace(*p.Title) != "", "title", "Title cannot be empty")
	v.Check(p.Subtitle == nil || strings.TrimSpace(*p.Subtitle) != "", "subtitle", "Subtitle cannot be empty")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	if p.Title != nil {
		doc.Title = strings.TrimSpace(*p.Title)
	}
	if p.Subtitle != nil {
		doc.Subtitle = strings.TrimSpace(*p.Subtitle)
	}
	if p.Desc.Present {
		doc.Description = p.Desc.Value
	}
	if p.Features.Present {
		doc.Features = p.Features.Value
	}
	if p.Overlay.Present {
		doc.Overlay = p.Overlay.Value
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}

	prior := doc.Image
	img, replaced, err := h.resolveMedia(c, "image", prior, p.ImageURL, p.ImageAlt, "About us image")
	if err != nil {
		h.mediaError(c, "image", err)
		return
	}
	doc.Image = img

	if err := h.store.Replace(ctx, doc); err != nil {
		h.serverError(c, "updating about section", err)
		return
	}
	if replaced {
		h.discardStored(ctx, prior)
	}
	okMsg(c, "About section updated successfully", doc)
}

func (h *aboutHandler) remove(c *gin.Context) {
	h.count("delete")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "About section not found")
		return
	}
	if err != nil {
		h.serverError(c, "deleting about section", err)
		return
	}

	if err := h.store.Remove(ctx, doc.DocID()); err != nil {
		h.serverError(c, "deleting about section", err)
		return
	}
	h.discardStored(ctx, doc.Image)
	deletedMsg(c, "About section deleted successfully")
}
