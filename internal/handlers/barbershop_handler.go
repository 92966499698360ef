package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/httpresp"
	"github.com/fadeapp/fadeapp-api/internal/models"
	"github.com/fadeapp/fadeapp-api/internal/storage"
	"github.com/fadeapp/fadeapp-api/internal/validators"
)

type BarbershopHandler struct {
	db       *gorm.DB
	uploader *storage.S3Uploader
}

func NewBarbershopHandler(db *gorm.DB, uploader *storage.S3Uploader) *BarbershopHandler {
	return &BarbershopHandler{db: db, uploader: uploader}
}

type UpdateBarbershopRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
	ImageURL    string `json:"image_url"`
}

func (h *BarbershopHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "barbershopId")
	if !ok {
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, id).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "barbershop does not exist")
		return
	}

	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) List(c *gin.Context) {
	q := h.db.Where("active = ?", true)

	if city := strings.TrimSpace(c.Query("city")); city != "" {
		q = q.Where("LOWER(city) = LOWER(?)", city)
	}

	var shops []models.Barbershop
	if err := q.Order("id ASC").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", err.Error())
		return
	}

	httpresp.List(c, shops)
}

func (h *BarbershopHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "barbershopId")
	if !ok {
		return
	}

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.OpeningTime != "" && !validators.IsClockTime(req.OpeningTime) {
		httperr.BadRequest(c, "invalid_opening_time", "opening_time must be a 15:04 clock string")
		return
	}
	if req.ClosingTime != "" && !validators.IsClockTime(req.ClosingTime) {
		httperr.BadRequest(c, "invalid_closing_time", "closing_time must be a 15:04 clock string")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, id).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "barbershop does not exist")
		return
	}

	shop.Name = req.Name
	shop.Address = req.Address
	shop.City = req.City
	shop.Phone = req.Phone
	shop.OpeningTime = req.OpeningTime
	shop.ClosingTime = req.ClosingTime
	if req.ImageURL != "" {
		shop.ImageURL = req.ImageURL
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", err.Error())
		return
	}

	httpresp.OK(c, shop)
}

// UploadAvatar re-encodes the uploaded picture as webp and stores it in S3.
func (h *BarbershopHandler) UploadAvatar(c *gin.Context) {
	if !h.uploader.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads_not_configured"})
		return
	}

	id, ok := idParam(c, "barbershopId")
	if !ok {
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, id).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "barbershop does not exist")
		return
	}

	encoded, ok := avatarFromForm(c)
	if !ok {
		return
	}

	key := fmt.Sprintf("barbershops/%d/avatar.webp", shop.ID)
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", err.Error())
		return
	}

	shop.ImageURL = url
	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", err.Error())
		return
	}

	httpresp.OK(c, shop)
}
