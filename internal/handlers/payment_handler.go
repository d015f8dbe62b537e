package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/middleware"
	"github.com/BruksfildServices01/tutor-scheduler/internal/payments"
	"github.com/BruksfildServices01/tutor-scheduler/internal/timezone"
	ucPayment "github.com/BruksfildServices01/tutor-scheduler/internal/usecase/payment"
)

type PaymentHandler struct {
	checkoutUC *ucPayment.CreateCheckout
	applyUC    *ucPayment.ApplyPayment
	statusUC   *ucPayment.GetPaymentStatus
	gateway    payments.Gateway
}

func NewPaymentHandler(
	checkoutUC *ucPayment.CreateCheckout,
	applyUC *ucPayment.ApplyPayment,
	statusUC *ucPayment.GetPaymentStatus,
	gateway payments.Gateway,
) *PaymentHandler {
	return &PaymentHandler{
		checkoutUC: checkoutUC,
		applyUC:    applyUC,
		statusUC:   statusUC,
		gateway:    gateway,
	}
}

type CreateCheckoutRequest struct {
	WantsTrial bool `json:"wants_trial"`
}

// ======================================================
// CHECKOUT (aluno)
// ======================================================

func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	callerEmail := c.MustGet(middleware.ContextUserEmail).(string)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	session, err := h.checkoutUC.Execute(c.Request.Context(), id, callerEmail, req.WantsTrial)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_checkout", "Erro ao iniciar o pagamento.")
		return
	}

	c.JSON(200, gin.H{
		"checkout_ref": session.Ref,
		"checkout_url": session.CheckoutURL,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *PaymentHandler) GetStatus(c *gin.Context) {
	callerEmail := c.MustGet(middleware.ContextUserEmail).(string)

	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.statusUC.Execute(c.Request.Context(), id, callerEmail)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_status", "Erro ao consultar o pagamento.")
		return
	}

	c.JSON(200, out)
}

// ======================================================
// WEBHOOK (Mercado Pago, at-least-once)
// ======================================================

func (h *PaymentHandler) Webhook(c *gin.Context) {
	if c.Query("type") != "payment" {
		// outros eventos não interessam; 200 para o provedor não reentregar
		c.Status(http.StatusOK)
		return
	}

	paymentID, err := strconv.Atoi(c.Query("data.id"))
	if err != nil {
		c.Status(http.StatusOK)
		return
	}

	confirmed, err := h.gateway.FetchPayment(c.Request.Context(), paymentID)
	if err != nil {
		// não confirmamos recebimento: o provedor reentrega
		log.Printf("webhook: fetch payment %d: %v", paymentID, err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if !confirmed.Approved {
		c.Status(http.StatusOK)
		return
	}

	if err := h.applyUC.Execute(c.Request.Context(), *confirmed, timezone.Now()); err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			// referência órfã: reentregar não resolve
			log.Printf("webhook: payment %s refers to unknown booking %d", confirmed.Ref, confirmed.BookingID)
			c.Status(http.StatusOK)
			return
		}
		log.Printf("webhook: apply payment %s: %v", confirmed.Ref, err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
