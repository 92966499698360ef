package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/httpresp"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

const auditLogsPageSize = 50

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	q := h.db.Model(&models.AuditLog{})

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.
		Order("id DESC").
		Limit(auditLogsPageSize).
		Offset((page - 1) * auditLogsPageSize).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", err.Error())
		return
	}

	httpresp.List(c, logs)
}
