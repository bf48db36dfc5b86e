package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/agendaviva/salao-backend/internal/booking"
	"github.com/agendaviva/salao-backend/internal/redisclient"
	"github.com/agendaviva/salao-backend/internal/user"
)

// User-facing messages keep the original API's wording.
const (
	msgClienteNotFound       = "Cliente não encontrado"
	msgServicoNotFound       = "Serviço não encontrado"
	msgAgendamentoNotFound   = "Agendamento não encontrado"
	msgUserNotFound          = "Usuário não encontrado"
	msgServicoInativo        = "Serviço não está ativo"
	msgDataPassada           = "Não é possível agendar para datas passadas"
	msgConflito              = "Horário não disponível. Há conflito com outro agendamento"
	msgEmailCadastrado       = "Email já cadastrado"
	msgClienteComAgendamento = "Não é possível deletar cliente com agendamentos"
	msgServicoComAgendamento = "Não é possível deletar serviço com agendamentos"
	msgStatusInvalido        = "Status deve ser um dos: agendado, concluido, cancelado"
	msgDataInvalida          = "Formato de data inválido. Use ISO format"
	msgCorpoInvalido         = "Corpo da requisição inválido"
	msgAgendaOcupada         = "Agenda em uso no momento, tente novamente"
)

// handleDomainError maps service errors to status codes. Schedule conflicts
// answer 400 to match the original API; only lock contention, a condition the
// original did not have, uses 409.
func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrClientNotFound):
		writeError(w, http.StatusNotFound, msgClienteNotFound)
	case errors.Is(err, booking.ErrServiceNotFound):
		writeError(w, http.StatusNotFound, msgServicoNotFound)
	case errors.Is(err, booking.ErrAppointmentNotFound):
		writeError(w, http.StatusNotFound, msgAgendamentoNotFound)
	case errors.Is(err, user.ErrUserNotFound):
		writeError(w, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, booking.ErrServiceInactive):
		writeError(w, http.StatusBadRequest, msgServicoInativo)
	case errors.Is(err, booking.ErrPastAppointment):
		writeError(w, http.StatusBadRequest, msgDataPassada)
	case errors.Is(err, booking.ErrScheduleConflict):
		writeError(w, http.StatusBadRequest, msgConflito)
	case errors.Is(err, booking.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, msgEmailCadastrado)
	case errors.Is(err, booking.ErrClientHasAppointments):
		writeError(w, http.StatusBadRequest, msgClienteComAgendamento)
	case errors.Is(err, booking.ErrServiceHasAppointments):
		writeError(w, http.StatusBadRequest, msgServicoComAgendamento)
	case errors.Is(err, booking.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, msgStatusInvalido)
	case errors.Is(err, redisclient.ErrLockNotAcquired):
		writeError(w, http.StatusConflict, msgAgendaOcupada)
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseISODate accepts the ISO-8601 shapes the original accepted, including
// timestamps without a zone, which are read as UTC.
func parseISODate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// idParam reads the {id} path parameter. An unparseable id behaves like a
// missing record.
func idParam(w http.ResponseWriter, r *http.Request, notFoundMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, notFoundMsg)
		return uuid.Nil, false
	}
	return id, true
}
