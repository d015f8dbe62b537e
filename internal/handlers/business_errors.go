package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
)

// writeBusiness traduz erros de negócio para HTTP; devolve false quando o
// erro não é de negócio (caller decide o 500)
func writeBusiness(c *gin.Context, err error) bool {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		return false
	}

	switch be.Code {
	case "student_not_found", "tutor_not_found", "booking_not_found", "series_not_found":
		httperr.NotFound(c, be.Code, "Registro não encontrado.")

	case "student_suspended":
		httperr.Forbidden(c, be.Code, "Conta suspensa.")

	case "not_allowed":
		httperr.Forbidden(c, be.Code, "Você não participa desta aula.")

	case "invalid_weeks":
		httperr.BadRequest(c, be.Code, "Pacote deve ter 1, 2, 4 ou 8 semanas.")

	case "invalid_date", "invalid_date_or_time":
		httperr.BadRequest(c, be.Code, "Data ou hora inválida.")

	case "invalid_link":
		httperr.BadRequest(c, be.Code, "Link de reunião inválido.")

	case "missing_reason":
		httperr.BadRequest(c, be.Code, "Informe o motivo da contestação.")

	case "already_paid":
		httperr.BadRequest(c, be.Code, "Aula já paga.")

	case "not_paid", "invalid_state":
		httperr.BadRequest(c, be.Code, "Estado da aula não permite a operação.")

	case "time_conflict":
		httperr.Conflict(c, be.Code, "Conflito de horário.")

	case "stale_record":
		httperr.Conflict(c, be.Code, "Registro alterado por outra operação; tente de novo.")

	default:
		httperr.BadRequest(c, be.Code, "Operação inválida.")
	}

	return true
}
