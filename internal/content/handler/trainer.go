package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wolverinesfitness/backend/internal/config"
	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
	"github.com/wolverinesfitness/backend/internal/media"
)

type trainerHandler struct {
	base
	store repository.Store[*content.Trainer]
}

// RegisterTrainers mounts the trainer profile routes.
func RegisterTrainers(r *gin.RouterGroup, st repository.Store[*content.Trainer], ms media.Store, up config.UploadsConfig, write ...gin.HandlerFunc) {
	h := &trainerHandler{base: base{entity: "trainer", media: ms, uploads: up}, store: st}
	r.GET("/trainers", h.list)
	r.GET("/trainers/:id", h.get)
	g := r.Group("/trainers", write...)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

type trainerPayload struct {
	Name           *string                                 `json:"name"`
	Specialty      *string                                 `json:"specialty"`
	Experience     *string                                 `json:"experience"`
	Bio            *string                                 `json:"bio"`
	Certifications content.Encoded[[]string]               `json:"certifications"`
	SocialLinks    content.Encoded[content.SocialLinks]    `json:"socialLinks"`
	Email          *string                                 `json:"email"`
	Phone          *string                                 `json:"phone"`
	Availability   content.Encoded[[]content.Availability] `json:"availability"`
	Rating         content.OptFloat                        `json:"rating"`
	IsActive       content.OptBool                         `json:"isActive"`
	Order          content.OptInt                          `json:"order"`
	ImageURL       *string                                 `json:"imageUrl"`
	ImageAlt       *string                                 `json:"imageAlt"`
}

func (h *trainerHandler) list(c *gin.Context) {
	h.count("list")
	docs, err := h.store.List(c.Request.Context(), repository.ListQuery{
		Filter: queryFilter(c, []string{"specialty"}, nil),
	})
	if err != nil {
		h.serverError(c, "fetching trainers", err)
		return
	}
	listOK(c, docs, len(docs))
}

func (h *trainerHandler) get(c *gin.Context) {
	h.count("get")
	doc, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Trainer not found")
		return
	}
	if err != nil {
		h.serverError(c, "fetching trainer", err)
		return
	}
	ok(c, doc)
}

func (h *trainerHandler) create(c *gin.Context) {
	h.count("create")
	var p trainerPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.Name != nil && strings.TrimSpace(*p.Name) != "", "name", "Name is required")
	v.Check(p.Specialty != nil && strings.TrimSpace(*p.Specialty) != "", "specialty", "Specialty is required")
	v.Check(p.Experience != nil && strings.TrimSpace(*p.Experience) != "", "experience", "Experience is required")
	v.Check(p.Bio != nil && strings.TrimSpace(*p.Bio) != "" && len(*p.Bio) <= 500, "bio", "Bio is required and must be under 500 characters")
	v.Check(p.Certifications.Present && len(p.Certifications.Value) > 0, "certifications", "At least one certification is required")
	v.Check(p.Email == nil || content.ValidEmail(*p.Email), "email", "Valid email is required")
	v.Check(!p.Rating.Present || (p.Rating.Value >= 0 && p.Rating.Value <= 5), "rating", "Rating must be between 0 and 5")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	doc := &content.Trainer{
		Name:           strings.TrimSpace(*p.Name),
		Specialty:      strings.TrimSpace(*p.Specialty),
		Experience:     strings.TrimSpace(*p.Experience),
		Bio:            strings.TrimSpace(*p.Bio),
		Certifications: p.Certifications.Value,
		SocialLinks:    p.SocialLinks.Value,
		Availability:   p.Availability.Value,
		Rating:         5,
		IsActive:       true,
	}
	if p.Email != nil {
		doc.Email = *p.Email
	}
	if p.Phone != nil {
		doc.Phone = *p.Phone
	}
	if p.Rating.Present {
		doc.Rating = p.Rating.Value
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}
	if p.Order.Present {
		doc.Order = p.Order.Value
	}

	img, _, err := h.resolveMedia(c, "image", content.Media{}, p.ImageURL, p.ImageAlt, doc.Name+" profile photo")
	if err != nil {
		h.mediaError(c, "image", err)
		return
	}
	doc.Image = img

	if err := h.store.Insert(c.Request.Context(), doc); err != nil {
		h.serverError(c, "creating trainer", err)
		return
	}
	createdMsg(c, "Trainer created successfully", doc)
}

func (h *trainerHandler) update(c *gin.Context) {
	h.count("update")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Trainer not found")
		return
	}
	if err != nil {
		h.serverError(c, "updating trainer", err)
		return
	}

	var p trainerPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.Email == nil || content.ValidEmail(*p.Email), "email", "Valid email is required")
	v.Check(!p.Rating.Present || (p.Rating.Value >= 0 && p.Rating.Value <= 5), "rating", "Rating must be between 0 and 5")
	v.Check(p.Bio == nil || len(*p.Bio) <= 500, "bio", "Bio must be under 500 characters")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	if p.Name != nil {
		doc.Name = strings.TrimSpace(*p.Name)
	}
	if p.Specialty != nil {
		doc.Specialty = strings.TrimSpace(*p.Specialty)
	}
	if p.Experience != nil {
		doc.Experience = strings.TrimSpace(*p.Experience)
	}
	if p.Bio != nil {
		doc.Bio = strings.TrimSpace(*p.Bio)
	}
	if p.Email != nil {
		doc.Email = *p.Email
	}
	if p.Phone != nil {
		doc.Phone = *p.Phone
	}
	if p.Rating.Present {
		doc.Rating = p.Rating.Value
	}
	if p.Certifications.Present {
		doc.Certifications = p.Certifications.Value
	}
	if p.SocialLinks.Present {
		doc.SocialLinks = p.SocialLinks.Value
	}
	if p.Availability.Present {
		doc.Availability = p.Availability.Value
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}
	if p.Order.Present {
		doc.Order = p.Order.Value
	}

	prior := doc.Image
	img, replaced, err := h.resolveMedia(c, "image", prior, p.ImageURL, p.ImageAlt, doc.Name+" profile photo")
	if err != nil {
		h.mediaError(c, "image", err)
		return
	}
	doc.Image = img

	if err := h.store.Replace(ctx, doc); err != nil {
		h.serverError(c, "updating trainer", err)
		return
	}
	if replaced {
		h.discardStored(ctx, prior)
	}
	okMsg(c, "Trainer updated successfully", doc)
}

func (h *trainerHandler) remove(c *gin.Context) {
	h.count("delete")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Trainer not found")
		return
	}
	if err != nil {
		h.serverError(c, "deleting trainer", err)
		return
	}

	if err := h.store.Remove(ctx, doc.DocID()); err != nil {
		h.serverError(c, "deleting trainer", err)
		return
	}
	h.discardStored(ctx, doc.Image)
	deletedMsg(c, "Trainer deleted successfully")
}
