package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wolverinesfitness/backend/internal/config"
	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
	"github.com/wolverinesfitness/backend/internal/media"
)

type heroHandler struct {
	base
	store repository.Store[*content.Hero]
}

// RegisterHero mounts the hero section routes. Reads are public, writes run
// behind the supplied middleware chain.
func RegisterHero(r *gin.RouterGroup, st repository.Store[*content.Hero], ms media.Store, up config.UploadsConfig, write ...gin.HandlerFunc) {
	h := &heroHandler{base: base{entity: "hero", media: ms, uploads: up}, store: st}
	r.GET("/hero", h.list)
	r.GET("/hero/:id", h.get)
	g := r.Group("/hero", write...)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

type heroPayload struct {
	Title              *string                           `json:"title"`
	Subtitle           *string                           `json:"subtitle"`
	Buttons            content.Encoded[[]content.Button] `json:"buttons"`
	Stats              content.Encoded[[]content.Stat]   `json:"stats"`
	IsActive           content.OptBool                   `json:"isActive"`
	Order              content.OptInt                    `json:"order"`
	BackgroundImageURL *string                           `json:"backgroundImageUrl"`
	BackgroundImageAlt *string                           `json:"backgroundImageAlt"`
}

func (h *heroHandler) list(c *gin.Context) {
	h.count("list")
	docs, err := h.store.List(c.Request.Context(), repository.ListQuery{
		Filter: queryFilter(c, nil, nil),
		Limit:  queryLimit(c),
	})
	if err != nil {
		h.serverError(c, "fetching hero sections", err)
		return
	}
	listOK(c, docs, len(docs))
}

func (h *heroHandler) get(c *gin.Context) {
	h.count("get")
	doc, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Hero section not found")
		return
	}
	if err != nil {
		h.serverError(c, "fetching hero section", err)
		return
	}
	ok(c, doc)
}

func (h *heroHandler) create(c *gin.Context) {
	h.count("create")
	var p heroPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.Title != nil && strings.TrimSpace(*p.Title) != "", "title", "Title is required")
	v.Check(p.Subtitle != nil && strings.TrimSpace(*p.Subtitle) != "", "subtitle", "Subtitle is required")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	doc := &content.Hero{
		Title:    strings.TrimSpace(*p.Title),
		Subtitle: strings.TrimSpace(*p.Subtitle),
		Buttons:  p.Buttons.Value,
		Stats:    p.Stats.Value,
		IsActive: true,
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}
	if p.Order.Present {
		doc.Order = p.Order.Value
	}

	img, _, err := h.resolveMedia(c, "backgroundImage", content.Media{}, p.BackgroundImageURL, p.BackgroundImageAlt, doc.Title+" background image")
	if err != nil {
		h.mediaError(c, "backgroundImage", err)
		return
	}
	doc.BackgroundImage = img

	if err := h.store.Insert(c.Request.Context(), doc); err != nil {
		h.serverError(c, "creating hero section", err)
		return
	}
	createdMsg(c, "Hero section created successfully", doc)
}

func (h *heroHandler) update(c *gin.Context) {
	h.count("update")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Hero section not found")
		return
	}
	if err != nil {
		h.serverError(c, "updating hero section", err)
		return
	}

	var p heroPayload
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
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}
	if p.Order.Present {
		doc.Order = p.Order.Value
	}
	if p.Buttons.Present {
		doc.Buttons = p.Buttons.Value
	}
	if p.Stats.Present {
		doc.Stats = p.Stats.Value
	}

	prior := doc.BackgroundImage
	img, replaced, err := h.resolveMedia(c, "backgroundImage", prior, p.BackgroundImageURL, p.BackgroundImageAlt, doc.Title+" background image")
	if err != nil {
		h.mediaError(c, "backgroundImage", err)
		return
	}
	doc.BackgroundImage = img

	if err := h.store.Replace(ctx, doc); err != nil {
		h.serverError(c, "updating hero section", err)
		return
	}
	if replaced {
		h.discardStored(ctx, prior)
	}
	okMsg(c, "Hero section updated successfully", doc)
}

func (h *heroHandler) remove(c *gin.Context) {
	h.count("delete")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Hero section not found")
		return
	}
	if err != nil {
		h.serverError(c, "deleting hero section", err)
		return
	}

	if err := h.store.Remove(ctx, doc.DocID()); err != nil {
		h.serverError(c, "deleting hero section", err)
		return
	}
	h.discardStored(ctx, doc.BackgroundImage)
	deletedMsg(c, "Hero section deleted successfully")
}
