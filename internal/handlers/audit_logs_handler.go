package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/httpresp"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
	"github.com/BruksfildServices01/restaurant-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
	tz string
}

func NewAuditLogsHandler(db *gorm.DB, tz string) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, tz: tz}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if raw := c.Query("entity_id"); raw != "" {
		id, err := parseOptionalUint(raw)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		q = q.Where("entity_id = ?", id)
	}
	if raw := c.Query("from"); raw != "" {
		if from, err := timezone.ParseDate(h.tz, raw); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := timezone.ParseDate(h.tz, raw); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {

		httperr.Respond(c, err)
		return
	}

	httpresp.Paged(c, page, limit, total, logs)
}
