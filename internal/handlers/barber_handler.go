package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/httpresp"
	"github.com/fadeapp/fadeapp-api/internal/imaging"
	"github.com/fadeapp/fadeapp-api/internal/models"
	"github.com/fadeapp/fadeapp-api/internal/storage"
)

const maxAvatarBytes = 5 << 20

type BarberHandler struct {
	db       *gorm.DB
	uploader *storage.S3Uploader
}

func NewBarberHandler(db *gorm.DB, uploader *storage.S3Uploader) *BarberHandler {
	return &BarberHandler{db: db, uploader: uploader}
}

type CreateBarberRequest struct {
	BarbershopID uint   `json:"barbershop_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Specialty    string `json:"specialty"`
}

type UpdateBarberRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	ImageURL  string `json:"image_url"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var shopCount int64
	h.db.Model(&models.Barbershop{}).Where("id = ?", req.BarbershopID).Count(&shopCount)
	if shopCount == 0 {
		httperr.NotFound(c, "barbershop_not_found", "barbershop does not exist")
		return
	}

	barber := models.Barber{
		BarbershopID: req.BarbershopID,
		Name:         req.Name,
		Specialty:    req.Specialty,
		Active:       true,
	}

	// Email and password are optional: barbers without a login are managed
	// entirely by their shop.
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))

		var count int64
		h.db.Model(&models.Barber{}).Where("email = ?", email).Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "email_already_registered", "barber email already in use")
			return
		}
		barber.Email = email

		if req.Password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				httperr.Internal(c, "failed_to_hash_password", err.Error())
				return
			}
			barber.PasswordHash = string(hashed)
		}
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", err.Error())
		return
	}

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "barberId")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "barber does not exist")
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) ListByBarbershop(c *gin.Context) {
	shopID, ok := idParam(c, "barbershopId")
	if !ok {
		return
	}

	var barbers []models.Barber
	if err := h.db.
		Where("barbershop_id = ?", shopID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", err.Error())
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "barberId")
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "barber does not exist")
		return
	}

	barber.Name = req.Name
	barber.Specialty = req.Specialty
	if req.ImageURL != "" {
		barber.ImageURL = req.ImageURL
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", err.Error())
		return
	}

	httpresp.OK(c, barber)
}

// UploadAvatar re-encodes the uploaded picture as webp and stores it in S3.
func (h *BarberHandler) UploadAvatar(c *gin.Context) {
	if !h.uploader.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads_not_configured"})
		return
	}

	id, ok := idParam(c, "barberId")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "barber does not exist")
		return
	}

	encoded, ok := avatarFromForm(c)
	if !ok {
		return
	}

	key := fmt.Sprintf("barbers/%d/avatar.webp", barber.ID)
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", err.Error())
		return
	}

	barber.ImageURL = url
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", err.Error())
		return
	}

	httpresp.OK(c, barber)
}

// avatarFromForm reads the multipart "image" field, enforces the size cap
// and re-encodes the picture as webp. It replies on the context and returns
// false on any failure.
func avatarFromForm(c *gin.Context) ([]byte, bool) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "multipart field 'image' is required")
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", err.Error())
		return nil, false
	}
	if len(data) > maxAvatarBytes {
		httperr.BadRequest(c, "image_too_large", "image exceeds 5MB")
		return nil, false
	}

	encoded, err := imaging.ToWebP(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", err.Error())
		return nil, false
	}

	return encoded, true
}
