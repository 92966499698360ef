package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/httpresp"
	"github.com/fadeapp/fadeapp-api/internal/middleware"
	ucAppointment "github.com/fadeapp/fadeapp-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateStatusUC *ucAppointment.UpdateAppointmentStatus
	deleteUC       *ucAppointment.DeleteAppointment
	listByClientUC *ucAppointment.ListAppointmentsByClient
	listByBarberUC *ucAppointment.ListAppointmentsByBarber
	listByShopUC   *ucAppointment.ListAppointmentsByBarbershop
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateStatusUC *ucAppointment.UpdateAppointmentStatus,
	deleteUC *ucAppointment.DeleteAppointment,
	listByClientUC *ucAppointment.ListAppointmentsByClient,
	listByBarberUC *ucAppointment.ListAppointmentsByBarber,
	listByShopUC *ucAppointment.ListAppointmentsByBarbershop,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateStatusUC: updateStatusUC,
		deleteUC:       deleteUC,
		listByClientUC: listByClientUC,
		listByBarberUC: listByBarberUC,
		listByShopUC:   listByShopUC,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientID     uint   `json:"client_id"`
	BarberID     uint   `json:"barber_id"`
	BarbershopID uint   `json:"barbershop_id"`
	ServiceID    uint   `json:"service_id"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// Authenticated clients book for themselves; the id in the payload is
	// only honored for other roles (a shop booking on a walk-in's behalf).
	if role, _ := c.Get(middleware.ContextActorRole); role == RoleClient {
		req.ClientID = c.MustGet(middleware.ContextActorID).(uint)
	}

	scheduledAt, err := time.Parse("2006-01-02 15:04", req.Date+" "+req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:     req.ClientID,
		BarberID:     req.BarberID,
		BarbershopID: req.BarbershopID,
		ServiceID:    req.ServiceID,
		ScheduledAt:  scheduledAt,
	})
	if err != nil {
		httperr.Translate(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "appointmentId")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.Translate(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "appointmentId")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		httperr.Translate(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextActorID).(uint)

	apps, err := h.listByClientUC.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.Translate(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	id, ok := idParam(c, "clientId")
	if !ok {
		return
	}

	apps, err := h.listByClientUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Translate(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) ListByBarber(c *gin.Context) {
	id, ok := idParam(c, "barberId")
	if !ok {
		return
	}

	apps, err := h.listByBarberUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Translate(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) ListByBarbershop(c *gin.Context) {
	id, ok := idParam(c, "barbershopId")
	if !ok {
		return
	}

	apps, err := h.listByShopUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Translate(c, err)
		return
	}

	httpresp.List(c, apps)
}

// --------- Helpers ---------

func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "path parameter "+name+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
