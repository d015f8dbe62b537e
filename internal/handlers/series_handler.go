package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/middleware"
	"github.com/BruksfildServices01/tutor-scheduler/internal/timezone"
	ucBooking "github.com/BruksfildServices01/tutor-scheduler/internal/usecase/booking"
)

type SeriesHandler struct {
	createUC *ucBooking.CreateSeries
	getUC    *ucBooking.GetSeries
	cancelUC *ucBooking.CancelSeries
}

func NewSeriesHandler(
	createUC *ucBooking.CreateSeries,
	getUC *ucBooking.GetSeries,
	cancelUC *ucBooking.CancelSeries,
) *SeriesHandler {
	return &SeriesHandler{
		createUC: createUC,
		getUC:    getUC,
		cancelUC: cancelUC,
	}
}

type CreateSeriesRequest struct {
	TutorID         uint   `json:"tutor_id" binding:"required"`
	StartDate       string `json:"start_date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Weeks           int    `json:"weeks" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (h *SeriesHandler) Create(c *gin.Context) {
	studentID := c.MustGet(middleware.ContextUserID).(uint)
	studentEmail := c.MustGet(middleware.ContextUserEmail).(string)

	var req CreateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateSeriesInput{
		StudentID:       studentID,
		StudentEmail:    studentEmail,
		TutorID:         req.TutorID,
		StartDate:       req.StartDate,
		Time:            req.Time,
		Weeks:           req.Weeks,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		var conflict ucBooking.SlotConflictError
		if errors.As(err, &conflict) {
			// devolve TODAS as datas bloqueadas de uma vez
			c.JSON(http.StatusConflict, gin.H{
				"error_code":        "time_conflict",
				"message":           "Há conflito de horário em datas da série.",
				"conflicting_dates": conflict.Dates,
			})
			return
		}
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_series", "Erro ao criar a série.")
		return
	}

	c.JSON(201, out)
}

func (h *SeriesHandler) Get(c *gin.Context) {
	callerEmail := c.MustGet(middleware.ContextUserEmail).(string)
	seriesID := c.Param("id")

	out, err := h.getUC.Execute(c.Request.Context(), seriesID, callerEmail, timezone.Now())
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_series", "Erro ao buscar a série.")
		return
	}

	c.JSON(200, out)
}

func (h *SeriesHandler) Cancel(c *gin.Context) {
	callerEmail := c.MustGet(middleware.ContextUserEmail).(string)
	seriesID := c.Param("id")

	count, err := h.cancelUC.Execute(c.Request.Context(), seriesID, callerEmail, timezone.Now())
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel_series", "Erro ao cancelar a série.")
		return
	}

	c.JSON(200, gin.H{"cancelled_count": count})
}
