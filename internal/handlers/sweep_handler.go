package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/tutor-scheduler/internal/config"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/timezone"
	ucBooking "github.com/BruksfildServices01/tutor-scheduler/internal/usecase/booking"
)

// SweepHandler é o ponto de entrada do agendador externo (cron).
// Duas execuções sobrepostas são toleradas: a transição por aula é guardada.
type SweepHandler struct {
	sweepUC *ucBooking.SweepCompletions
	cronKey string
}

func NewSweepHandler(sweepUC *ucBooking.SweepCompletions, cfg *config.Config) *SweepHandler {
	return &SweepHandler{
		sweepUC: sweepUC,
		cronKey: cfg.CronKey,
	}
}

func (h *SweepHandler) SweepCompletions(c *gin.Context) {
	key := c.GetHeader("X-Cron-Key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.cronKey)) != 1 {
		httperr.Unauthorized(c, "invalid_cron_key", "Chave inválida.")
		return
	}

	count, err := h.sweepUC.Execute(c.Request.Context(), timezone.Now())
	if err != nil {
		httperr.Internal(c, "sweep_failed", "Erro ao varrer aulas concluídas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed_count": count})
}
