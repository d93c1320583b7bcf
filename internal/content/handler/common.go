package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wolverinesfitness/backend/internal/config"
	"github.com/wolverinesfitness/backend/internal/content"
	"github.com/wolverinesfitness/backend/internal/media"
	"github.com/wolverinesfitness/backend/pkg/logger"
	"github.com/wolverinesfitness/backend/pkg/metrics"
)

// base carries the collaborators every section handler shares.
type base struct {
	entity  string
	media   media.Store
	uploads config.UploadsConfig
}

// --- response envelope ---

func listOK(c *gin.Context, docs interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": docs})
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func okMsg(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": data})
}

func createdMsg(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message, "data": data})
}

func deletedMsg(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": message})
}

func conflict(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

func badPayload(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload", "errors": []gin.H{{"message": err.Error()}}})
}

// failValidation reports every violated constraint at once.
func (b *base) failValidation(c *gin.Context, v content.Violations) {
	metrics.ValidationFailures.WithLabelValues(b.entity).Inc()
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": v})
}

// serverError logs the triggering operation and withholds detail from the caller.
func (b *base) serverError(c *gin.Context, op string, err error) {
	logger.Errorf("%s %s: %v", b.entity, op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error " + op})
}

func (b *base) count(op string) {
	metrics.SectionRequests.WithLabelValues(b.entity, op).Inc()
}

// --- payload binding ---

// bindPayload decodes a write payload from a JSON body or a multipart /
// urlencoded form. Form payloads are converted to a JSON object first so both
// transports run through the same Encoded/Opt field decoding.
func bindPayload(c *gin.Context, dst interface{}) error {
	ct := c.ContentType()
	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		form, err := c.MultipartForm()
		if err != nil {
			return err
		}
		raw, err := content.FormToJSON(form.Value)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dst)
	case ct == "application/x-www-form-urlencoded":
		if err := c.Request.ParseForm(); err != nil {
			return err
		}
		raw, err := content.FormToJSON(c.Request.PostForm)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dst)
	default:
		return c.ShouldBindJSON(dst)
	}
}

// queryFilter builds the list filter from the query string. Enumerated fields
// are exact matches; isActive defaults to true when the caller omits it.
func queryFilter(c *gin.Context, stringFields, boolFields []string) map[string]interface{} {
	f := map[string]interface{}{}
	for _, name := range stringFields {
		if v := c.Query(name); v != "" {
			f[name] = v
		}
	}
	for _, name := range boolFields {
		if v, ok := c.GetQuery(name); ok {
			f[name] = v == "true"
		}
	}
	if _, ok := f["isActive"]; !ok {
		if v, ok := c.GetQuery("isActive"); ok {
			f["isActive"] = v == "true"
		} else {
			f["isActive"] = true
		}
	}
	return f
}

func queryLimit(c *gin.Context) int64 {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// mediaError maps a failed upload to a validation failure or a storage error.
func (b *base) mediaError(c *gin.Context, field string, err error) {
	if errors.Is(err, media.ErrRejected) {
		b.failValidation(c, content.Violations{{Field: field, Message: err.Error()}})
		return
	}
	b.serverError(c, "storing uploaded media", err)
}

// --- media lifecycle ---

// takeUpload stores one uploaded form file and returns its media reference.
// ok is false when the field carries no file.
func (b *base) takeUpload(c *gin.Context, field, alt string) (content.Media, bool, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return content.Media{}, false, nil
		}
		// no multipart form at all
		return content.Media{}, false, nil
	}
	if err := media.ValidateUpload(fh, b.uploads.MaxBytes, b.uploads.AllowedTypes); err != nil {
		return content.Media{}, false, err
	}
	f, err := fh.Open()
	if err != nil {
		return content.Media{}, false, err
	}
	defer f.Close()

	name := media.ObjectName(fh.Filename, time.Now())
	url, err := b.media.Save(c.Request.Context(), name, f, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		return content.Media{}, false, err
	}
	return content.Media{URL: url, Alt: alt, PublicID: name}, true, nil
}

// resolveMedia applies the upload > explicit URL > existing precedence for one
// media slot. The returned value is the slot's next state; replaced reports
// whether the prior value was superseded.
func (b *base) resolveMedia(c *gin.Context, field string, existing content.Media, urlVal, altVal *string, defaultAlt string) (content.Media, bool, error) {
	if m, found, err := b.takeUpload(c, field, defaultAlt); err != nil {
		return existing, false, err
	} else if found {
		if altVal != nil {
			m.Alt = *altVal
		}
		return m, true, nil
	}
	if urlVal != nil && *urlVal != "" {
		next := content.Media{URL: *urlVal, Alt: defaultAlt}
		if altVal != nil {
			next.Alt = *altVal
		} else if existing.Alt != "" {
			next.Alt = existing.Alt
		}
		return next, *urlVal != existing.URL, nil
	}
	if altVal != nil {
		existing.Alt = *altVal
	}
	return existing, false, nil
}

// discardStored deletes a superseded or orphaned media object, after the
// owning document write has committed. Externally hosted URLs are left alone;
// failures are logged and never fail the request.
func (b *base) discardStored(ctx context.Context, items ...content.Media) {
	for _, m := range items {
		if m.URL == "" || !b.media.Owns(m.URL) {
			continue
		}
		if err := b.media.Remove(ctx, m.URL); err != nil {
			logger.Warnf("%s: deleting stored media %s: %v", b.entity, m.URL, err)
			continue
		}
		metrics.MediaDeleted.Inc()
	}
}
