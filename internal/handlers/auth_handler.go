package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fadeapp/fadeapp-api/internal/config"
	"github.com/fadeapp/fadeapp-api/internal/models"
	"github.com/fadeapp/fadeapp-api/internal/validators"
)

const (
	RoleClient     = "CLIENT"
	RoleBarbershop = "BARBERSHOP"
	RoleBarber     = "BARBER"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
}

type RegisterBarbershopRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterClient(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email, ok := h.normalizeEmail(c, req.Email)
	if !ok {
		return
	}

	if h.emailTaken(&models.Client{}, email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	client := models.Client{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		City:         req.City,
		Active:       true,
	}

	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client"})
		return
	}

	token, err := h.generateToken(client.ID, RoleClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client": client,
		"role":   RoleClient,
		"token":  token,
	})
}

func (h *AuthHandler) RegisterBarbershop(c *gin.Context) {
	var req RegisterBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// A malformed window would silently disable the operating-hours check.
	if req.OpeningTime != "" && !validators.IsClockTime(req.OpeningTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_opening_time"})
		return
	}
	if req.ClosingTime != "" && !validators.IsClockTime(req.ClosingTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_closing_time"})
		return
	}

	email, ok := h.normalizeEmail(c, req.Email)
	if !ok {
		return
	}

	if h.emailTaken(&models.Barbershop{}, email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	shop := models.Barbershop{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		Phone:        req.Phone,
		Email:        email,
		PasswordHash: string(hashed),
		OpeningTime:  req.OpeningTime,
		ClosingTime:  req.ClosingTime,
		Active:       true,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barbershop"})
		return
	}

	token, err := h.generateToken(shop.ID, RoleBarbershop)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"barbershop": shop,
		"role":       RoleBarbershop,
		"token":      token,
	})
}

// Login checks clients, barbershops and barbers in turn; the first match
// with a valid password wins.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var client models.Client
	if err := h.db.Where("email = ?", email).First(&client).Error; err == nil {
		if h.passwordMatches(client.PasswordHash, req.Password) {
			h.loginResponse(c, client.ID, RoleClient, client.Active)
			return
		}
	}

	var shop models.Barbershop
	if err := h.db.Where("email = ?", email).First(&shop).Error; err == nil {
		if h.passwordMatches(shop.PasswordHash, req.Password) {
			h.loginResponse(c, shop.ID, RoleBarbershop, shop.Active)
			return
		}
	}

	var barber models.Barber
	if err := h.db.Where("email = ?", email).First(&barber).Error; err == nil {
		if h.passwordMatches(barber.PasswordHash, req.Password) {
			h.loginResponse(c, barber.ID, RoleBarber, barber.Active)
			return
		}
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
}

// --------- Helpers ---------

func (h *AuthHandler) normalizeEmail(c *gin.Context, email string) (string, bool) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return "", false
	}

	return email, true
}

func (h *AuthHandler) emailTaken(model any, email string) bool {
	var count int64
	h.db.Model(model).Where("email = ?", email).Count(&count)
	return count > 0
}

func (h *AuthHandler) passwordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *AuthHandler) loginResponse(c *gin.Context, id uint, role string, active bool) {
	if !active {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account_inactive"})
		return
	}

	token, err := h.generateToken(id, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    id,
		"role":  role,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(id uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  float64(id),
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
