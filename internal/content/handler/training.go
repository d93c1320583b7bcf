package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wolverinesfitness/backend/internal/config"
	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
	"github.com/wolverinesfitness/backend/internal/media"
)

type trainingHandler struct {
	base
	store repository.Store[*content.Training]
}

// RegisterTraining mounts the training program routes. /categories/list is
// registered before /:id so gin does not shadow it.
func RegisterTraining(r *gin.RouterGroup, st repository.Store[*content.Training], ms media.Store, up config.UploadsConfig, write ...gin.HandlerFunc) {
	h := &trainingHandler{base: base{entity: "training", media: ms, uploads: up}, store: st}
	r.GET("/training", h.list)
	r.GET("/training/categories/list", h.categories)
	r.GET("/training/:id", h.get)
	g := r.Group("/training", write...)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

type trainingPayload struct {
	Title       *string                   `json:"title"`
	Description *string                   `json:"description"`
	Category    *string                   `json:"category"`
	Features    content.Encoded[[]string] `json:"features"`
	Duration    *string                   `json:"duration"`
	Difficulty  *string                   `json:"difficulty"`
	Price       content.OptFloat          `json:"price"`
	IsActive    content.OptBool           `json:"isActive"`
	Order       content.OptInt            `json:"order"`
	ImageURL    *string                   `json:"imageUrl"`
	ImageAlt    *string                   `json:"imageAlt"`
}

func (h *trainingHandler) list(c *gin.Context) {
	h.count("list")
	docs, err := h.store.List(c.Request.Context(), repository.ListQuery{
		Filter: queryFilter(c, []string{"category", "difficulty"}, nil),
	})
	if err != nil {
		h.serverError(c, "fetching training programs", err)
		return
	}
	listOK(c, docs, len(docs))
}

func (h *trainingHandler) categories(c *gin.Context) {
	h.count("categories")
	cats, err := h.store.Distinct(c.Request.Context(), "category", repository.ListQuery{
		Filter: map[string]interface{}{"isActive": true},
	})
	if err != nil {
		h.serverError(c, "fetching categories", err)
		return
	}
	ok(c, cats)
}

func (h *trainingHandler) get(c *gin.Context) {
	h.count("get")
	doc, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Training program not found")
		return
	}
	if err != nil {
		h.serverError(c, "fetching training program", err)
		return
	}
	ok(c, doc)
}

func (h *trainingHandler) create(c *gin.Context) {
	h.count("create")
	var p trainingPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.Title != nil && strings.TrimSpace(*p.Title) != "", "title", "Title is required")
	v.Check(p.Description != nil && strings.TrimSpace(*p.Description) != "", "description", "Description is required")
	v.Check(p.Category != nil && content.OneOf(*p.Category, content.ProgramCategories), "category", "Invalid category")
	v.Check(p.Features.Present && len(p.Features.Value) > 0, "features", "At least one feature is required")
	v.Check(p.Difficulty == nil || content.OneOf(*p.Difficulty, content.Difficulties), "difficulty", "Invalid difficulty level")
	v.Check(!p.Price.Present || p.Price.Value >= 0, "price", "Price must be a positive number")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	doc := &content.Training{
		Title:       strings.TrimSpace(*p.Title),
		Description: strings.TrimSpace(*p.Description),
		Category:    *p.Category,
		Features:    p.Features.Value,
		Difficulty:  "beginner",
		IsActive:    true,
	}
	if p.Duration != nil {
		doc.Duration = *p.Duration
	}
	if p.Difficulty != nil {
		doc.Difficulty = *p.Difficulty
	}
	if p.Price.Present {
		doc.Price = p.Price.Value
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}
	if p.Order.Present {
		doc.Order = p.Order.Value
	}

	img, _, err := h.resolveMedia(c, "image", content.Media{}, p.ImageURL, p.ImageAlt, doc.Title+" training program")
	if err != nil {
		h.mediaError(c, "image", err)
		return
	}
	doc.Image = img

	if err := h.store.Insert(c.Request.Context(), doc); err != nil {
		h.serverError(c, "creating training program", err)
		return
	}
	createdMsg(c, "Training program created successfully", doc)
}

func (h *trainingHandler) update(c *gin.Context) {
	h.count("update")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Training program not found")
		return
	}
	if err != nil {
		h.serverError(c, "updating training program", err)
		return
	}

	var p trainingPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.Title == nil || strings.TrimSpace(*p.Title) != "", "title", "Title cannot be empty")
	v.Check(p.Description == nil || strings.TrimSpace(*p.Description) != "", "description", "Description cannot be empty")
	v.Check(p.Category == nil || content.OneOf(*p.Category, content.ProgramCategories), "category", "Invalid category")
	v.Check(p.Difficulty == nil || content.OneOf(*p.Difficulty, content.Difficulties), "difficulty", "Invalid difficulty level")
	v.Check(!p.Price.Present || p.Price.Value >= 0, "price", "Price must be a positive number")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	if p.Title != nil {
		doc.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		doc.Description = strings.TrimSpace(*p.Description)
	}
	if p.Category != nil {
		doc.Category = *p.Category
	}
	if p.Duration != nil {
		doc.Duration = *p.Duration
	}
	if p.Difficulty != nil {
		doc.Difficulty = *p.Difficulty
	}
	if p.Price.Present {
		doc.Price = p.Price.Value
	}
	if p.Features.Present {
		doc.Features = p.Features.Value
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}
	if p.Order.Present {
		doc.Order = p.Order.Value
	}

	prior := doc.Image
	img, replaced, err := h.resolveMedia(c, "image", prior, p.ImageURL, p.ImageAlt, doc.Title+" training program")
	if err != nil {
		h.mediaError(c, "image", err)
		return
	}
	doc.Image = img

	if err := h.store.Replace(ctx, doc); err != nil {
		h.serverError(c, "updating training program", err)
		return
	}
	if replaced {
		h.discardStored(ctx, prior)
	}
	okMsg(c, "Training program updated successfully", doc)
}

func (h *trainingHandler) remove(c *gin.Context) {
	h.count("delete")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Training program not found")
		return
	}
	if err != nil {
		h.serverError(c, "deleting training program", err)
		return
	}

	if err := h.store.Remove(ctx, doc.DocID()); err != nil {
		h.serverError(c, "deleting training program", err)
		return
	}
	h.discardStored(ctx, doc.Image)
	deletedMsg(c, "Training program deleted successfully")
}
