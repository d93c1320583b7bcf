package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wolverinesfitness/backend/internal/config"
	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
	"github.com/wolverinesfitness/backend/internal/media"
)

type contactHandler struct {
	base
	store repository.Store[*content.Contact]
}

// RegisterContact mounts the contact information routes. Like the about
// section this is a singleton document.
func RegisterContact(r *gin.RouterGroup, st repository.Store[*content.Contact], ms media.Store, up config.UploadsConfig, write ...gin.HandlerFunc) {
	h := &contactHandler{base: base{entity: "contact", media: ms, uploads: up}, store: st}
	r.GET("/contact", h.get)
	g := r.Group("/contact", write...)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

type contactPayload struct {
	Gym            content.Encoded[content.GymInfo]          `json:"gym"`
	Address        content.Encoded[content.Address]          `json:"address"`
	Details        content.Encoded[content.ContactDetails]   `json:"contact"`
	Hours          content.Encoded[content.Hours]            `json:"hours"`
	Location       content.Encoded[content.LocationInfo]     `json:"location"`
	SocialMedia    content.Encoded[content.SocialMedia]      `json:"socialMedia"`
	Amenities      content.Encoded[[]string]                 `json:"amenities"`
	Transportation content.Encoded[[]content.Transportation] `json:"transportation"`
	IsActive       content.OptBool                           `json:"isActive"`
	LogoURL        *string                                   `json:"logoUrl"`
	LogoAlt        *string                                   `json:"logoAlt"`
}

func (h *contactHandler) get(c *gin.Context) {
	h.count("get")
	doc, err := h.store.First(c.Request.Context())
	if err == content.ErrNotFound {
		notFound(c, "Contact information not found")
		return
	}
	if err != nil {
		h.serverError(c, "fetching contact information", err)
		return
	}
	ok(c, doc)
}

func (h *contactHandler) create(c *gin.Context) {
	h.count("create")
	ctx := c.Request.Context()

	if _, err := h.store.First(ctx); err == nil {
		conflict(c, "Contact information already exists. Use PUT to update.")
		return
	} else if err != content.ErrNotFound {
		h.serverError(c, "creating contact information", err)
		return
	}

	var p contactPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.Gym.Present && strings.TrimSpace(p.Gym.Value.Name) != "", "gym.name", "Gym name is required")
	v.Check(p.Address.Present && strings.TrimSpace(p.Address.Value.Street) != "", "address.street", "Street address is required")
	v.Check(p.Address.Present && strings.TrimSpace(p.Address.Value.City) != "", "address.city", "City is required")
	v.Check(p.Address.Present && strings.TrimSpace(p.Address.Value.State) != "", "address.state", "State is required")
	v.Check(p.Address.Present && strings.TrimSpace(p.Address.Value.ZipCode) != "", "address.zipCode", "Zip code is required")
	v.Check(p.Details.Present && strings.TrimSpace(p.Details.Value.Phone) != "", "contact.phone", "Phone number is required")
	v.Check(p.Details.Present && content.ValidEmail(p.Details.Value.Email), "contact.email", "Valid email is required")
	v.Check(p.Location.Present, "location.coordinates", "Valid coordinates are required")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	doc := &content.Contact{
		Gym:            p.Gym.Value,
		Address:        p.Address.Value,
		Details:        p.Details.Value,
		Hours:          p.Hours.Value,
		Location:       p.Location.Value,
		SocialMedia:    p.SocialMedia.Value,
		Amenities:      p.Amenities.Value,
		Transportation: p.Transportation.Value,
		IsActive:       true,
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}

	logo, _, err := h.resolveMedia(c, "logo", content.Media{}, p.LogoURL, p.LogoAlt, doc.Gym.Name+" logo")
	if err != nil {
		h.mediaError(c, "logo", err)
		return
	}
	doc.Gym.Logo = logo

	if err := h.store.Insert(ctx, doc); err != nil {
		h.serverError(c, "creating contact information", err)
		return
	}
	createdMsg(c, "Contact information created successfully", doc)
}

func (h *contactHandler) update(c *gin.Context) {
	h.count("update")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Contact information not found")
		return
	}
	if err != nil {
		h.serverError(c, "updating contact information", err)
		return
	}

	var p contactPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(!p.Details.Present || p.Details.Value.Email == "" || content.ValidEmail(p.Details.Value.Email), "contact.email", "Valid email is required")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	if p.Gym.Present {
		// Logo is managed separately; a gym sub-tree update never drops it.
		logo := doc.Gym.Logo
		doc.Gym = p.Gym.Value
		doc.Gym.Logo = logo
	}
	if p.Address.Present {
		doc.Address = p.Address.Value
	}
	if p.Details.Present {
		doc.Details = p.Details.Value
	}
	if p.Hours.Present {
		doc.Hours = p.Hours.Value
	}
	if p.Location.Present {
		doc.Location = p.Location.Value
	}
	if p.SocialMedia.Present {
		doc.SocialMedia = p.SocialMedia.Value
	}
	if p.Amenities.Present {
		doc.Amenities = p.Amenities.Value
	}
	if p.Transportation.Present {
		doc.Transportation = p.Transportation.Value
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}

	prior := doc.Gym.Logo
	logo, replaced, err := h.resolveMedia(c, "logo", prior, p.LogoURL, p.LogoAlt, doc.Gym.Name+" logo")
	if err != nil {
		h.mediaError(c, "logo", err)
		return
	}
	doc.Gym.Logo = logo

	if err := h.store.Replace(ctx, doc); err != nil {
		h.serverError(c, "updating contact information", err)
		return
	}
	if replaced {
		h.discardStored(ctx, prior)
	}
	okMsg(c, "Contact information updated successfully", doc)
}

func (h *contactHandler) remove(c *gin.Context) {
	h.count("delete")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Contact information not found")
		return
	}
	if err != nil {
		h.serverError(c, "deleting contact information", err)
		return
	}

	if err := h.store.Remove(ctx, doc.DocID()); err != nil {
		h.serverError(c, "deleting contact information", err)
		return
	}
	h.discardStored(ctx, doc.Gym.Logo)
	deletedMsg(c, "Contact information deleted successfully")
}
