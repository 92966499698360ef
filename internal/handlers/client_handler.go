package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/httpresp"
	"github.com/fadeapp/fadeapp-api/internal/middleware"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type UpdateClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "clientId")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "client does not exist")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) GetMe(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextActorID).(uint)

	var client models.Client
	if err := h.db.First(&client, clientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "client does not exist")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "clientId")
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "client does not exist")
		return
	}

	client.FirstName = req.FirstName
	client.LastName = req.LastName
	client.Phone = req.Phone
	client.City = req.City

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", err.Error())
		return
	}

	httpresp.OK(c, client)
}
