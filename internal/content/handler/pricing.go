package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
)

type pricingHandler struct {
	base
	store repository.Store[*content.Pricing]
}

// RegisterPricing mounts the membership plan routes. Plans carry no media, so
// the handler shares the base without an upload config.
func RegisterPricing(r *gin.RouterGroup, st repository.Store[*content.Pricing], write ...gin.HandlerFunc) {
	h := &pricingHandler{base: base{entity: "pricing"}, store: st}
	r.GET("/pricing", h.list)
	r.GET("/pricing/:id", h.get)
	g := r.Group("/pricing", write...)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

type pricingPayload struct {
	Name         *string                                 `json:"name"`
	Price        content.OptFloat                        `json:"price"`
	Period       *string                                 `json:"period"`
	Description  *string                                 `json:"description"`
	Features     content.Encoded[[]string]               `json:"features"`
	IsPopular    content.OptBool                         `json:"isPopular"`
	ButtonText   *string                                 `json:"buttonText"`
	Color        *string                                 `json:"color"`
	MaxMembers   content.OptInt                          `json:"maxMembers"`
	TrialDays    content.OptInt                          `json:"trialDays"`
	Benefits     content.Encoded[[]content.BenefitGroup] `json:"benefits"`
	Restrictions content.Encoded[[]string]               `json:"restrictions"`
	IsActive     content.OptBool                         `json:"isActive"`
	Order        content.OptInt                          `json:"order"`
}

func (h *pricingHandler) list(c *gin.Context) {
	h.count("list")
	docs, err := h.store.List(c.Request.Context(), repository.ListQuery{
		Filter: queryFilter(c, nil, nil),
	})
	if err != nil {
		h.serverError(c, "fetching pricing plans", err)
		return
	}
	listOK(c, docs, len(docs))
}

func (h *pricingHandler) get(c *gin.Context) {
	h.count("get")
	doc, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Pricing plan not found")
		return
	}
	if err != nil {
		h.serverError(c, "fetching pricing plan", err)
		return
	}
	ok(c, doc)
}

func (h *pricingHandler) create(c *gin.Context) {
	h.count("create")
	ctx := c.Request.Context()

	var p pricingPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.Name != nil && strings.TrimSpace(*p.Name) != "", "name", "Plan name is required")
	v.Check(p.Price.Present && p.Price.Value >= 0, "price", "Price must be a positive number")
	v.Check(p.Period != nil && content.OneOf(*p.Period, content.PricingPeriods), "period", "Invalid billing period")
	v.Check(p.Description != nil && strings.TrimSpace(*p.Description) != "", "description", "Description is required")
	v.Check(p.Features.Present && len(p.Features.Value) > 0, "features", "At least one feature is required")
	v.Check(p.ButtonText != nil && strings.TrimSpace(*p.ButtonText) != "", "buttonText", "Button text is required")
	v.Check(!p.MaxMembers.Present || p.MaxMembers.Value >= 0, "maxMembers", "Max members must be a positive integer")
	v.Check(!p.TrialDays.Present || p.TrialDays.Value >= 0, "trialDays", "Trial days must be a positive integer")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	doc := &content.Pricing{
		Name:         strings.TrimSpace(*p.Name),
		Price:        p.Price.Value,
		Period:       *p.Period,
		Description:  strings.TrimSpace(*p.Description),
		Features:     p.Features.Value,
		ButtonText:   strings.TrimSpace(*p.ButtonText),
		Color:        "#EAA620",
		TrialDays:    7,
		Benefits:     p.Benefits.Value,
		Restrictions: p.Restrictions.Value,
		IsActive:     true,
	}
	if p.IsPopular.Present {
		doc.IsPopular = p.IsPopular.Value
	}
	if p.Color != nil && *p.Color != "" {
		doc.Color = *p.Color
	}
	if p.MaxMembers.Present {
		doc.MaxMembers = p.MaxMembers.Value
	}
	if p.TrialDays.Present {
		doc.TrialDays = p.TrialDays.Value
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}
	if p.Order.Present {
		doc.Order = p.Order.Value
	}

	if err := h.store.Insert(ctx, doc); err != nil {
		h.serverError(c, "creating pricing plan", err)
		return
	}
	if doc.IsPopular {
		if err := h.store.UnsetFlagExcept(ctx, "isPopular", doc.DocID()); err != nil {
			h.serverError(c, "creating pricing plan", err)
			return
		}
	}
	createdMsg(c, "Pricing plan created successfully", doc)
}

func (h *pricingHandler) update(c *gin.Context) {
	h.count("update")
	ctx := c.Request.Context()

	doc, err := h.store.Get(ctx, c.Param("id"))
	if err == content.ErrNotFound {
		notFound(c, "Pricing plan not found")
		return
	}
	if err != nil {
		h.serverError(c, "updating pricing plan", err)
		return
	}

	var p pricingPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(!p.Price.Present || p.Price.Value >= 0, "price", "Price must be a positive number")
	v.Check(p.Period == nil || content.OneOf(*p.Period, content.PricingPeriods), "period", "Invalid billing period")
	v.Check(!p.MaxMembers.Present || p.MaxMembers.Value >= 0, "maxMembers", "Max members must be a positive integer")
	v.Check(!p.TrialDays.Present || p.TrialDays.Value >= 0, "trialDays", "Trial days must be a positive integer")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	if p.Name != nil {
		doc.Name = strings.TrimSpace(*p.Name)
	}
	if p.Price.Present {
		doc.Price = p.Price.Value
	}
	if p.Period != nil {
		doc.Period = *p.Period
	}
	if p.Description != nil {
		doc.Description = strings.TrimSpace(*p.Description)
	}
	if p.Features.Present {
		doc.Features = p.Features.Value
	}
	if p.IsPopular.Present {
		doc.IsPopular = p.IsPopular.Value
	}
	if p.ButtonText != nil {
		doc.ButtonText = strings.TrimSpace(*p.ButtonText)
	}
	if p.Color != nil && *p.Color != "" {
		doc.Color = *p.Color
	}
	if p.MaxMembers.Present {
		doc.MaxMembers = p.MaxMembers.Value
	}
	if p.TrialDays.Present {
		doc.TrialDays = p.TrialDays.Value
	}
	if p.Benefits.Present {
		doc.Benefits = p.Benefits.Value
	}
	if p.Restrictions.Present {
		doc.Restrictions = p.Restrictions.Value
	}
	if p.IsActive.Present {
		doc.IsActive = p.IsActive.Value
	}
	if p.Order.Present {
		doc.Order = p.Order.Value
	}

	if err := h.store.Replace(ctx, doc); err != nil {
		h.serverError(c, "updating pricing plan", err)
		return
	}
	// Popularity is exclusive: the write wins and every sibling loses the flag.
	if p.IsPopular.Present && doc.IsPopular {
		if err := h.store.UnsetFlagExcept(ctx, "isPopular", doc.DocID()); err != nil {
			h.serverError(c, "updating pricing plan", err)
			return
		}
	}
	okMsg(c, "Pricing plan updated successfully", doc)
}

func (h *pricingHandler) remove(c *gin.Context) {
	h.count("delete")
	ctx := c.Request.Context()

	if _, err := h.store.Get(ctx, c.Param("id")); err != nil {
		if err == content.ErrNotFound {
			notFound(c, "Pricing plan not found")
			return
		}
		h.serverError(c, "deleting pricing plan", err)
		return
	}
	if err := h.store.Remove(ctx, c.Param("id")); err != nil {
		h.serverError(c, "deleting pricing plan", err)
		return
	}
	deletedMsg(c, "Pricing plan deleted successfully")
}
