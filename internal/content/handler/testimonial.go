package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wolverinesfitness/backend/internal/config"
	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
	"github.com/wolverinesfitness/backend/internal/media"
)

type testimonialHandler struct {
	base
	store repository.Store[*content.Testimonial]
}

// RegisterTestimonials mounts the testimonial routes.
func RegisterTestimonials(r *gin.RouterGroup, st repository.Store[*content.Testimonial], ms media.Store, up config.UploadsConfig, write ...gin.HandlerFunc) {
	h := &testimonialHandler{base: base{entity: "testimonial", media: ms, uploads: up}, store: st}
	r.GET("/testimonials", h.list)
	r.GET("/testimonials/:id", h.get)
	g := r.Group("/testimonials", write...)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

type testimonialPayload struct {
	Name           *string         `json:"name"`
	Role           *string         `json:"role"`
	Text           *string         `json:"text"`
	Rating         content.OptInt  `json:"rating"`
	Result         *string         `json:"result"`
	Program        *string         `json:"program"`
	Duration       *string         `json:"duration"`
	IsActive       content.OptBool `json:"isActive"`
	IsFeatured     content.OptBool `json:"isFeatured"`
	Order          content.OptInt  `json:"order"`
	ImageURL       *string         `json:"imageUrl"`
	ImageAlt       *string         `json:"imageAlt"`
	BeforeImageURL *string         `json:"beforeImageUrl"`
	BeforeImageAlt *string         `json:"beforeImageAlt"`
	AfterImageURL  *string         `json:"afterImageUrl"`
	AfterImageAlt  *string         `json:"afterImageAlt"`
}

func (h *testimonialHandler) list(c *gin.Context) {
	h.count("list")
	filter := queryFilter(c, []string{"program"}, []string{"isFeatured"})
	if v := c.Query("rating"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter["rating"] = repository.Min{Value: n}
		}
	}
	docs, err := h.store.List(c.Request.Context(), repository.ListQuery{
		Filter: filter,
		Limit:  queryLimit(c),
	})
	if err != nil {
		h.serverError(c, "fetching testimonials", err)
		return
	}
	listOK(c, docs, len(docs))
}

func (h *testimonialHandler) get(c *gin.Context) {
	h.count("get")
	doc, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Testimonial not found")
		return
	}
	if err != nil {
		h.serverError(c, "fetching testimonial", err)
		return
	}
	ok(c, doc)
}

func (h *testimonialHandler) create(c *gin.Context) {
	h.count("create")
	var p testimonialPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.Name != nil && strings.TrimSpace(*p.Name) != "", "name", "Name is required")
	v.Check(p.Role != nil && strings.TrimSpace(*p.Role) != "", "role", "Role is required")
	v.Check(p.Text != nil && strings.TrimSpace(*p.Text) != "" && len(*p.Text) <= 500, "text", "Testimonial text is required and must be under 500 characters")
	v.Check(p.Rating.Present && p.Rating.Value >= 1 && p.Rating.Value <= 5, "rating", "Rating must be between 1 and 5")
	v.Check(p.Result != nil && strings.TrimSpace(*p.Result) != "", "result", "Result is required")
	v.Check(p.Program != nil && content.OneOf(*p.Program, content.ProgramCategories), "program", "Invalid program")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	doc := &content.Testimonial{
		Name:     strings.TrimSpace(*p.Name),
		Role:     strings.TrimSpace(*p.Role),
		Text:     strings.TrimSpace(*p.Text),
		Rating:   p.Rating.Value,
		Result:   strings.TrimSpace(*p.Result),
		Program:  *p.Program,
		IsActive: true,
	}
	if p.Duration != nil {
		doc.Duration = *p.Duration
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

	img, _, err := h.resolveMedia(c, "image", content.Media{}, p.ImageURL, p.ImageAlt, doc.Name+" photo")
	if err != nil {
		h.mediaError(c, "image", err)
		return
	}
	doc.Image = img

	before, _, err := h.resolveMedia(c, "beforeImage", content.Media{}, p.BeforeImageURL, p.BeforeImageAlt, doc.Name+" before photo")
	if err != nil {
		h.mediaError(c, "beforeImage", err)
		return
	}
	doc.BeforeImage = before

	after, _, err := h.resolveMedia(c, "afterImage", content.Media{}, p.AfterImageURL, p.AfterImageAlt, doc.Name+" after photo")
	if err != nil {
		h.mediaError(c, "afterImage", err)
		return
	}
	doc.AfterImage = after

	if err := h.store.Insert(c.Request.Context(), doc); err != nil {
		h.serverError(c, "creating testimonial", err)
		return
	}
	createdMsg(c, "Testimonial created successfully", doc)
}

func (h *testimonialHandler) update(c *gin.Context) {
	h.count("update")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Testimonial not found")
		return
	}
	if err != nil {
		h.serverError(c, "updating testimonial", err)
		return
	}

	var p testimonialPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(!p.Rating.Present || (p.Rating.Value >= 1 && p.Rating.Value <= 5), "rating", "Rating must be between 1 and 5")
	v.Check(p.Text == nil || len(*p.Text) <= 500, "text", "Testimonial text must be under 500 characters")
	v.Check(p.Program == nil || content.OneOf(*p.Program, content.ProgramCategories), "program", "Invalid program")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	if p.Name != nil {
		doc.Name = strings.TrimSpace(*p.Name)
	}
	if p.Role != nil {
		doc.Role = strings.TrimSpace(*p.Role)
	}
	if p.Text != nil {
		doc.Text = strings.TrimSpace(*p.Text)
	}
	if p.Rating.Present {
		doc.Rating = p.Rating.Value
	}
	if p.Result != nil {
		doc.Result = strings.TrimSpace(*p.Result)
	}
	if p.Program != nil {
		doc.Program = *p.Program
	}
	if p.Duration != nil {
		doc.Duration = *p.Duration
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

	priorImage := doc.Image
	img, imgReplaced, err := h.resolveMedia(c, "image", priorImage, p.ImageURL, p.ImageAlt, doc.Name+" photo")
	if err != nil {
		h.mediaError(c, "image", err)
		return
	}
	doc.Image = img

	priorBefore := doc.BeforeImage
	before, beforeReplaced, err := h.resolveMedia(c, "beforeImage", priorBefore, p.BeforeImageURL, p.BeforeImageAlt, doc.Name+" before photo")
	if err != nil {
		h.mediaError(c, "beforeImage", err)
		return
	}
	doc.BeforeImage = before

	priorAfter := doc.AfterImage
	after, afterReplaced, err := h.resolveMedia(c, "afterImage", priorAfter, p.AfterImageURL, p.AfterImageAlt, doc.Name+" after photo")
	if err != nil {
		h.mediaError(c, "afterImage", err)
		return
	}
	doc.AfterImage = after

	if err := h.store.Replace(ctx, doc); err != nil {
		h.serverError(c, "updating testimonial", err)
		return
	}
	if imgReplaced {
		h.discardStored(ctx, priorImage)
	}
	if beforeReplaced {
		h.discardStored(ctx, priorBefore)
	}
	if afterReplaced {
		h.discardStored(ctx, priorAfter)
	}
	okMsg(c, "Testimonial updated successfully", doc)
}

func (h *testimonialHandler) remove(c *gin.Context) {
	h.count("delete")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Testimonial not found")
		return
	}
	if err != nil {
		h.serverError(c, "deleting testimonial", err)
		return
	}

	if err := h.store.Remove(ctx, doc.DocID()); err != nil {
		h.serverError(c, "deleting testimonial", err)
		return
	}
	h.discardStored(ctx, doc.Image, doc.BeforeImage, doc.AfterImage)
	deletedMsg(c, "Testimonial deleted successfully")
}
