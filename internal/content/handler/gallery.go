package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wolverinesfitness/backend/internal/config"
	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
	"github.com/wolverinesfitness/backend/internal/media"
	"github.com/wolverinesfitness/backend/pkg/logger"
)

type galleryHandler struct {
	base
	store repository.Store[*content.Gallery]
}

// RegisterGallery mounts the gallery routes. Items carry a primary media
// object plus an optional thumbnail for videos.
func RegisterGallery(r *gin.RouterGroup, st repository.Store[*content.Gallery], ms media.Store, up config.UploadsConfig, write ...gin.HandlerFunc) {
	h := &galleryHandler{base: base{entity: "gallery", media: ms, uploads: up}, store: st}
	r.GET("/gallery", h.list)
	r.GET("/gallery/categories/list", h.categories)
	r.GET("/gallery/:id", h.get)
	g := r.Group("/gallery", write...)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

type galleryPayload struct {
	Title        *string                   `json:"title"`
	Type         *string                   `json:"type"`
	Category     *string                   `json:"category"`
	Description  *string                   `json:"description"`
	Tags         content.Encoded[[]string] `json:"tags"`
	IsActive     content.OptBool           `json:"isActive"`
	IsFeatured   content.OptBool           `json:"isFeatured"`
	Order        content.OptInt            `json:"order"`
	MediaURL     *string                   `json:"mediaUrl"`
	MediaAlt     *string                   `json:"mediaAlt"`
	ThumbnailURL *string                   `json:"thumbnailUrl"`
	ThumbnailAlt *string                   `json:"thumbnailAlt"`
}

func (h *galleryHandler) list(c *gin.Context) {
	h.count("list")
	docs, err := h.store.List(c.Request.Context(), repository.ListQuery{
		Filter: queryFilter(c, []string{"category", "type"}, []string{"isFeatured"}),
		Limit:  queryLimit(c),
	})
	if err != nil {
		h.serverError(c, "fetching gallery items", err)
		return
	}
	listOK(c, docs, len(docs))
}

func (h *galleryHandler) categories(c *gin.Context) {
	h.count("categories")
	cats, err := h.store.Distinct(c.Request.Context(), "category", repository.ListQuery{
		Filter: map[string]interface{}{"isActive": true},
	})
	if err != nil {
		h.serverError(c, "fetching gallery categories", err)
		return
	}
	ok(c, cats)
}

// get returns one item and bumps its view counter. A failed counter write is
// logged, the read still succeeds.
func (h *galleryHandler) get(c *gin.Context) {
	h.count("get")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Gallery item not found")
		return
	}
	if err != nil {
		h.serverError(c, "fetching gallery item", err)
		return
	}

	doc.Views++
	if err := h.store.Replace(ctx, doc); err != nil {
		logger.Warnf("gallery: persisting view count for %s: %v", doc.DocID(), err)
	}
	ok(c, doc)
}

func (h *galleryHandler) create(c *gin.Context) {
	h.count("create")
	var p galleryPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.Title != nil && strings.TrimSpace(*p.Title) != "", "title", "Title is required")
	v.Check(p.Type != nil && content.OneOf(*p.Type, content.GalleryTypes), "type", "Type must be image or video")
	v.Check(p.Category != nil && content.OneOf(*p.Category, content.GalleryCategories), "category", "Invalid category")
	v.Check(p.Description == nil || len(*p.Description) <= 200, "description", "Description must be under 200 characters")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	doc := &content.Gallery{
		Title:    strings.TrimSpace(*p.Title),
		Type:     *p.Type,
		Category: *p.Category,
		Tags:     p.Tags.Value,
		IsActive: true,
	}
	if p.Description != nil {
		doc.Description = *p.Description
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}
	if p.IsFeatured.Present {
		doc.IsFeatured = p.IsFeatured.Value
	}
	if p.Order.Present {
		doc.Order = p.Order.Value
	}

	m, _, err := h.resolveMedia(c, "media", content.Media{}, p.MediaURL, p.MediaAlt, doc.Title)
	if err != nil {
		h.mediaError(c, "media", err)
		return
	}
	doc.Media = m

	// Only videos carry a thumbnail; for images the slot is skipped before
	// anything is stored.
	if doc.Type == "video" {
		thumb, _, err := h.resolveMedia(c, "thumbnail", content.Media{}, p.ThumbnailURL, p.ThumbnailAlt, doc.Title+" thumbnail")
		if err != nil {
			h.mediaError(c, "thumbnail", err)
			return
		}
		doc.Thumbnail = thumb
	}

	if err := h.store.Insert(c.Request.Context(), doc); err != nil {
		h.serverError(c, "creating gallery item", err)
		return
	}
	createdMsg(c, "Gallery item created successfully", doc)
}

func (h *galleryHandler) update(c *gin.Context) {
	h.count("update")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Gallery item not found")
		return
	}
	if err != nil {
		h.serverError(c, "updating gallery item", err)
		return
	}

	var p galleryPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.Title == nil || strings.TrimSpace(*p.Title) != "", "title", "Title cannot be empty")
	v.Check(p.Type == nil || content.OneOf(*p.Type, content.GalleryTypes), "type", "Type must be image or video")
	v.Check(p.Category == nil || content.OneOf(*p.Category, content.GalleryCategories), "category", "Invalid category")
	v.Check(p.Description == nil || len(*p.Description) <= 200, "description", "Description must be under 200 characters")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	if p.Title != nil {
		doc.Title = strings.TrimSpace(*p.Title)
	}
	if p.Type != nil {
		doc.Type = *p.Type
	}
	if p.Category != nil {
		doc.Category = *p.Category
	}
	if p.Description != nil {
		doc.Description = *p.Description
	}
	if p.Tags.Present {
		doc.Tags = p.Tags.Value
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}
	if p.IsFeatured.Present {
		doc.IsFeatured = p.IsFeatured.Value
	}
	if p.Order.Present {
		doc.Order = p.Order.Value
	}

	priorMedia := doc.Media
	m, mediaReplaced, err := h.resolveMedia(c, "media", priorMedia, p.MediaURL, p.MediaAlt, doc.Title)
	if err != nil {
		h.mediaError(c, "media", err)
		return
	}
	doc.Media = m

	priorThumb := doc.Thumbnail
	thumbReplaced := false
	if doc.Type == "video" {
		thumb, replaced, err := h.resolveMedia(c, "thumbnail", priorThumb, p.ThumbnailURL, p.ThumbnailAlt, doc.Title+" thumbnail")
		if err != nil {
			h.mediaError(c, "thumbnail", err)
			return
		}
		doc.Thumbnail = thumb
		thumbReplaced = replaced
	} else if !priorThumb.IsZero() {
		// Switching a video to an image drops its thumbnail.
		doc.Thumbnail = content.Media{}
		thumbReplaced = true
	}

	if err := h.store.Replace(ctx, doc); err != nil {
		h.serverError(c, "updating gallery item", err)
		return
	}
	if mediaReplaced {
		h.discardStored(ctx, priorMedia)
	}
	if thumbReplaced {
		h.discardStored(ctx, priorThumb)
	}
	okMsg(c, "Gallery item updated successfully", doc)
}

func (h *galleryHandler) remove(c *gin.Context) {
	h.count("delete")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Gallery item not found")
		return
	}
	if err != nil {
		h.serverError(c, "deleting gallery item", err)
		return
	}

	if err := h.store.Remove(ctx, doc.DocID()); err != nil {
		h.serverError(c, "deleting gallery item", err)
		return
	}
	h.discardStored(ctx, doc.Media, doc.Thumbnail)
	deletedMsg(c, "Gallery item deleted successfully")
}
