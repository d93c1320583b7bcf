package handler

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wolverinesfitness/backend/internal/config"
	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/content/repository"
	"github.com/wolverinesfitness/backend/internal/media"
)

type settingsHandler struct {
	base
	store repository.Store[*content.Settings]
}

// RegisterSettings mounts the site settings routes. The public GET serves a
// redacted projection; everything else is admin-only.
func RegisterSettings(r *gin.RouterGroup, st repository.Store[*content.Settings], ms media.Store, up config.UploadsConfig, admin ...gin.HandlerFunc) {
	h := &settingsHandler{base: base{entity: "settings", media: ms, uploads: up}, store: st}
	r.GET("/settings", h.getPublic)
	g := r.Group("/settings", admin...)
	g.GET("/admin", h.getAdmin)
	g.PUT("", h.update)
	g.PUT("/theme", h.updateTheme)
	g.PUT("/maintenance", h.updateMaintenance)
}

type settingsPayload struct {
	Site        content.Encoded[content.SiteSettings]     `json:"site"`
	Theme       content.Encoded[content.ThemeSettings]    `json:"theme"`
	SEO         content.Encoded[content.SEOSettings]      `json:"seo"`
	Email       content.Encoded[content.EmailSettings]    `json:"email"`
	Business    content.Encoded[content.BusinessSettings] `json:"business"`
	Features    content.Encoded[content.FeatureFlags]     `json:"features"`
	Maintenance content.Encoded[content.MaintenanceMode]  `json:"maintenance"`
	LogoAlt     *string                                   `json:"logoAlt"`
	OGImageAlt  *string                                   `json:"ogImageAlt"`
}

// load materializes the settings singleton, inserting the defaults on first
// read.
func (h *settingsHandler) load(ctx context.Context) (*content.Settings, error) {
	doc, err := h.store.First(ctx)
	if err == content.ErrNotFound {
		doc = content.DefaultSettings()
		if err := h.store.Insert(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	return doc, err
}

func (h *settingsHandler) getPublic(c *gin.Context) {
	h.count("get")
	doc, err := h.load(c.Request.Context())
	if err != nil {
		h.serverError(c, "fetching settings", err)
		return
	}
	ok(c, doc.PublicView())
}

func (h *settingsHandler) getAdmin(c *gin.Context) {
	h.count("get_admin")
	doc, err := h.load(c.Request.Context())
	if err != nil {
		h.serverError(c, "fetching admin settings", err)
		return
	}
	ok(c, doc)
}

func (h *settingsHandler) update(c *gin.Context) {
	h.count("update")
	ctx := c.Request.Context()

	doc, err := h.load(ctx)
	if err != nil {
		h.serverError(c, "updating settings", err)
		return
	}

	var p settingsPayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	// Each sub-tree merges key-wise over the stored document, so a payload
	// carrying only site.name leaves the other site fields untouched.
	site, theme, seo := doc.Site, doc.Theme, doc.SEO
	email, business := doc.Email, doc.Business
	features, maintenance := doc.Features, doc.Maintenance
	for _, err := range []error{
		p.Site.MergeInto(&site),
		p.Theme.MergeInto(&theme),
		p.SEO.MergeInto(&seo),
		p.Email.MergeInto(&email),
		p.Business.MergeInto(&business),
		p.Features.MergeInto(&features),
		p.Maintenance.MergeInto(&maintenance),
	} {
		if err != nil {
			badPayload(c, err)
			return
		}
	}

	var v content.Violations
	v.Check(!p.Site.Present || strings.TrimSpace(site.Name) != "", "site.name", "Site name cannot be empty")
	v.Check(!p.SEO.Present || strings.TrimSpace(seo.MetaTitle) != "", "seo.metaTitle", "Meta title cannot be empty")
	v.Check(email.FromEmail == "" || content.ValidEmail(email.FromEmail), "email.fromEmail", "Valid from email is required")
	v.Check(email.ReplyToEmail == "" || content.ValidEmail(email.ReplyToEmail), "email.replyToEmail", "Valid reply-to email is required")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	// Media slots survive even an explicit empty value; uploads replace them
	// below.
	if site.Logo.IsZero() {
		site.Logo = doc.Site.Logo
	}
	if site.Favicon.IsZero() {
		site.Favicon = doc.Site.Favicon
	}
	if seo.OGImage.IsZero() {
		seo.OGImage = doc.SEO.OGImage
	}
	doc.Site, doc.Theme, doc.SEO = site, theme, seo
	doc.Email, doc.Business = email, business
	doc.Features, doc.Maintenance = features, maintenance

	var superseded []content.Media

	if m, found, err := h.takeUpload(c, "logo", doc.Site.Name+" logo"); err != nil {
		h.mediaError(c, "logo", err)
		return
	} else if found {
		if p.LogoAlt != nil {
			m.Alt = *p.LogoAlt
		}
		superseded = append(superseded, doc.Site.Logo)
		doc.Site.Logo = m
	}

	if m, found, err := h.takeUpload(c, "favicon", ""); err != nil {
		h.mediaError(c, "favicon", err)
		return
	} else if found {
		superseded = append(superseded, doc.Site.Favicon)
		doc.Site.Favicon = m
	}

	if m, found, err := h.takeUpload(c, "ogImage", doc.Site.Name+" social media image"); err != nil {
		h.mediaError(c, "ogImage", err)
		return
	} else if found {
		if p.OGImageAlt != nil {
			m.Alt = *p.OGImageAlt
		}
		superseded = append(superseded, doc.SEO.OGImage)
		doc.SEO.OGImage = m
	}

	if err := h.store.Replace(ctx, doc); err != nil {
		h.serverError(c, "updating settings", err)
		return
	}
	h.discardStored(ctx, superseded...)
	okMsg(c, "Settings updated successfully", doc)
}

type themePayload struct {
	PrimaryColor   *string `json:"primaryColor"`
	SecondaryColor *string `json:"secondaryColor"`
	DarkColor      *string `json:"darkColor"`
	LightColor     *string `json:"lightColor"`
	FontPrimary    *string `json:"fontPrimary"`
	FontSecondary  *string `json:"fontSecondary"`
}

func (h *settingsHandler) updateTheme(c *gin.Context) {
	h.count("update_theme")
	ctx := c.Request.Context()

	var p themePayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var v content.Violations
	v.Check(p.PrimaryColor == nil || content.ValidHexColor(*p.PrimaryColor), "primaryColor", "Primary color must be a valid hex color")
	v.Check(p.SecondaryColor == nil || content.ValidHexColor(*p.SecondaryColor), "secondaryColor", "Secondary color must be a valid hex color")
	v.Check(p.DarkColor == nil || content.ValidHexColor(*p.DarkColor), "darkColor", "Dark color must be a valid hex color")
	v.Check(p.LightColor == nil || content.ValidHexColor(*p.LightColor), "lightColor", "Light color must be a valid hex color")
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	doc, err := h.load(ctx)
	if err != nil {
		h.serverError(c, "updating theme settings", err)
		return
	}

	if p.PrimaryColor != nil {
		doc.Theme.PrimaryColor = *p.PrimaryColor
	}
	if p.SecondaryColor != nil {
		doc.Theme.SecondaryColor = *p.SecondaryColor
	}
	if p.DarkColor != nil {
		doc.Theme.DarkColor = *p.DarkColor
	}
	if p.LightColor != nil {
		doc.Theme.LightColor = *p.LightColor
	}
	if p.FontPrimary != nil && *p.FontPrimary != "" {
		doc.Theme.FontPrimary = *p.FontPrimary
	}
	if p.FontSecondary != nil && *p.FontSecondary != "" {
		doc.Theme.FontSecondary = *p.FontSecondary
	}

	if err := h.store.Replace(ctx, doc); err != nil {
		h.serverError(c, "updating theme settings", err)
		return
	}
	okMsg(c, "Theme settings updated successfully", doc.Theme)
}

type maintenancePayload struct {
	Enabled             content.OptBool `json:"enabled"`
	Message             *string         `json:"message"`
	EstimatedCompletion *string         `json:"estimatedCompletion"`
}

func (h *settingsHandler) updateMaintenance(c *gin.Context) {
	h.count("update_maintenance")
	ctx := c.Request.Context()

	var p maintenancePayload
	if err := bindPayload(c, &p); err != nil {
		badPayload(c, err)
		return
	}

	var eta *time.Time
	var v content.Violations
	v.Check(p.Enabled.Present, "enabled", "Enabled must be a boolean")
	v.Check(p.Message == nil || strings.TrimSpace(*p.Message) != "", "message", "Message cannot be empty")
	if p.EstimatedCompletion != nil {
		t, err := time.Parse(time.RFC3339, *p.EstimatedCompletion)
		if err != nil {
			v.Add("estimatedCompletion", "Estimated completion must be a valid date")
		} else {
			eta = &t
		}
	}
	if !v.OK() {
		h.failValidation(c, v)
		return
	}

	doc, err := h.load(ctx)
	if err != nil {
		h.serverError(c, "updating maintenance settings", err)
		return
	}

	doc.Maintenance.Enabled = p.Enabled.Value
	if p.Message != nil {
		doc.Maintenance.Message = strings.TrimSpace(*p.Message)
	}
	if eta != nil {
		doc.Maintenance.EstimatedCompletion = eta
	}

	if err := h.store.Replace(ctx, doc); err != nil {
		h.serverError(c, "updating maintenance settings", err)
		return
	}

	state := "disabled"
	if doc.Maintenance.Enabled {
		state = "enabled"
	}
	okMsg(c, "Maintenance mode "+state+" successfully", doc.Maintenance)
}
