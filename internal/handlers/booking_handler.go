package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/middleware"
	"github.com/BruksfildServices01/tutor-scheduler/internal/timezone"
	ucBooking "github.com/BruksfildServices01/tutor-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC      *ucBooking.CreateBooking
	getUC         *ucBooking.GetBooking
	cancelUC      *ucBooking.CancelBooking
	meetingLinkUC *ucBooking.AttachMeetingLink
	disputeUC     *ucBooking.DisputeSession
	listByDateUC  *ucBooking.ListTutorBookingsByDate
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	getUC *ucBooking.GetBooking,
	cancelUC *ucBooking.CancelBooking,
	meetingLinkUC *ucBooking.AttachMeetingLink,
	disputeUC *ucBooking.DisputeSession,
	listByDateUC *ucBooking.ListTutorBookingsByDate,
) *BookingHandler {
	return &BookingHandler{
		createUC:      createUC,
		getUC:         getUC,
		cancelUC:      cancelUC,
		meetingLinkUC: meetingLinkUC,
		disputeUC:     disputeUC,
		listByDateUC:  listByDateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	TutorID         uint     `json:"tutor_id" binding:"required"`
	Date            string   `json:"date" binding:"required"`
	Time            string   `json:"time" binding:"required"`
	DurationMinutes int      `json:"duration_minutes"`
	Amount          *float64 `json:"amount"`
}

type MeetingLinkRequest struct {
	Link string `json:"link" binding:"required"`
}

type DisputeRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	studentID := c.MustGet(middleware.ContextUserID).(uint)
	studentEmail := c.MustGet(middleware.ContextUserEmail).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		StudentID:       studentID,
		StudentEmail:    studentEmail,
		TutorID:         req.TutorID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		AmountOverride:  req.Amount,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Erro ao criar a reserva.")
		return
	}

	c.JSON(201, b)
}

// ======================================================
// GET
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	callerEmail := c.MustGet(middleware.ContextUserEmail).(string)

	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), id, callerEmail)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Erro ao buscar a reserva.")
		return
	}

	c.JSON(200, b)
}

// ======================================================
// LIST (tutor)
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	bs, err := h.listByDateUC.Execute(c.Request.Context(), tutorID, date)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}

	c.JSON(200, bs)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	callerEmail := c.MustGet(middleware.ContextUserEmail).(string)

	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), id, callerEmail, timezone.Now())
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel_booking", "Erro ao cancelar a reserva.")
		return
	}

	c.JSON(200, b)
}

// ======================================================
// MEETING LINK (tutor)
// ======================================================

func (h *BookingHandler) AttachMeetingLink(c *gin.Context) {
	callerEmail := c.MustGet(middleware.ContextUserEmail).(string)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req MeetingLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o link da reunião.")
		return
	}

	b, err := h.meetingLinkUC.Execute(c.Request.Context(), id, callerEmail, req.Link, timezone.Now())
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_attach_link", "Erro ao anexar o link.")
		return
	}

	c.JSON(200, b)
}

// ======================================================
// DISPUTE (aluno)
// ======================================================

func (h *BookingHandler) Dispute(c *gin.Context) {
	callerEmail := c.MustGet(middleware.ContextUserEmail).(string)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.disputeUC.Execute(c.Request.Context(), id, callerEmail, req.Reason, timezone.Now())
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_dispute", "Erro ao contestar a aula.")
		return
	}

	c.JSON(200, b)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
