package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fadeapp/fadeapp-api/internal/cache"
	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/httpresp"
	"github.com/fadeapp/fadeapp-api/internal/models"
	ucSchedule "github.com/fadeapp/fadeapp-api/internal/usecase/schedule"
)

const scheduleCacheTTL = time.Minute

type ScheduleHandler struct {
	createUC   *ucSchedule.CreateSchedule
	updateUC   *ucSchedule.UpdateSchedule
	setAvailUC *ucSchedule.SetScheduleAvailability
	blockDayUC *ucSchedule.BlockDay
	deleteUC   *ucSchedule.DeleteSchedule
	listUC     *ucSchedule.ListSchedulesByBarber

	cache *cache.Cache
}

func NewScheduleHandler(
	createUC *ucSchedule.CreateSchedule,
	updateUC *ucSchedule.UpdateSchedule,
	setAvailUC *ucSchedule.SetScheduleAvailability,
	blockDayUC *ucSchedule.BlockDay,
	deleteUC *ucSchedule.DeleteSchedule,
	listUC *ucSchedule.ListSchedulesByBarber,
	c *cache.Cache,
) *ScheduleHandler {
	return &ScheduleHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		setAvailUC: setAvailUC,
		blockDayUC: blockDayUC,
		deleteUC:   deleteUC,
		listUC:     listUC,
		cache:      c,
	}
}

// --------- Requests ---------

type CreateScheduleRequest struct {
	BarberID  uint   `json:"barber_id"`
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateScheduleRequest struct {
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Available bool   `json:"available"`
}

type BlockDayRequest struct {
	Day string `json:"day" binding:"required"`
}

// --------- Handlers ---------

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	sched, err := h.createUC.Execute(c.Request.Context(), ucSchedule.CreateScheduleInput{
		BarberID:  req.BarberID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.Translate(c, err)
		return
	}

	h.invalidate(c, sched.BarberID)
	httpresp.Created(c, sched)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "scheduleId")
	if !ok {
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	sched, err := h.updateUC.Execute(c.Request.Context(), id, ucSchedule.UpdateScheduleInput{
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Available: req.Available,
	})
	if err != nil {
		httperr.Translate(c, err)
		return
	}

	h.invalidate(c, sched.BarberID)
	httpresp.OK(c, sched)
}

func (h *ScheduleHandler) ListByBarber(c *gin.Context) {
	barberID, ok := idParam(c, "barberId")
	if !ok {
		return
	}

	key := scheduleCacheKey(barberID)

	var cached []models.Schedule
	if h.cache.GetJSON(c.Request.Context(), key, &cached) {
		httpresp.List(c, cached)
		return
	}

	schedules, err := h.listUC.Execute(c.Request.Context(), barberID)
	if err != nil {
		httperr.Translate(c, err)
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, schedules, scheduleCacheTTL)
	httpresp.List(c, schedules)
}

func (h *ScheduleHandler) Block(c *gin.Context) {
	h.setAvailability(c, false)
}

func (h *ScheduleHandler) Unblock(c *gin.Context) {
	h.setAvailability(c, true)
}

func (h *ScheduleHandler) setAvailability(c *gin.Context, available bool) {
	barberID, ok := idParam(c, "barberId")
	if !ok {
		return
	}
	scheduleID, ok := idParam(c, "scheduleId")
	if !ok {
		return
	}

	sched, err := h.setAvailUC.Execute(c.Request.Context(), barberID, scheduleID, available)
	if err != nil {
		httperr.Translate(c, err)
		return
	}

	h.invalidate(c, barberID)
	httpresp.OK(c, sched)
}

func (h *ScheduleHandler) BlockDay(c *gin.Context) {
	barberID, ok := idParam(c, "barberId")
	if !ok {
		return
	}

	var req BlockDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.blockDayUC.Execute(c.Request.Context(), barberID, req.Day); err != nil {
		httperr.Translate(c, err)
		return
	}

	h.invalidate(c, barberID)
	c.JSON(http.StatusOK, gin.H{"status": "day_blocked", "day": req.Day})
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "scheduleId")
	if !ok {
		return
	}

	sched, err := h.deleteUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Translate(c, err)
		return
	}

	h.invalidate(c, sched.BarberID)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --------- Helpers ---------

func scheduleCacheKey(barberID uint) string {
	return fmt.Sprintf("schedules:barber:%d", barberID)
}

func (h *ScheduleHandler) invalidate(c *gin.Context, barberID uint) {
	h.cache.Delete(c.Request.Context(), scheduleCacheKey(barberID))
}
