package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/agendaviva/salao-backend/internal/booking"
)

const (
	msgAgendamentoCampos   = "Cliente, serviço e data são obrigatórios"
	msgDisponibilidadeArgs = "Data e serviço são obrigatórios"
	msgClienteIDInvalido   = "cliente_id inválido"
	msgMotivoOcupado       = "Horário ocupado"
	msgMotivoPassado       = "Data no passado"
	msgMotivoDisponivel    = "Disponível"
	msgStatusObrigatorio   = "Status é obrigatório"
)

func listAgendamentosHandler(svc *booking.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var filter booking.AppointmentFilter

		if v := q.Get("data_inicio"); v != "" {
			t, err := parseISODate(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, msgDataInvalida)
				return
			}
			filter.From = &t
		}
		if v := q.Get("data_fim"); v != "" {
			t, err := parseISODate(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, msgDataInvalida)
				return
			}
			filter.To = &t
		}
		if v := q.Get("status"); v != "" {
			status := booking.Status(v)
			filter.Status = &status
		}
		if v := q.Get("cliente_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, msgClienteIDInvalido)
				return
			}
			filter.ClientID = &id
		}

		appts, err := svc.List(r.Context(), filter)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAgendamentoResponses(appts))
	}
}

// decodeAgendamentoRequest validates the body and resolves its references.
// Unparseable ids behave like missing records, matching the referential
// checks the service runs next.
func decodeAgendamentoRequest(w http.ResponseWriter, r *http.Request, validate *validator.Validate) (booking.AppointmentInput, bool) {
	var req AgendamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgCorpoInvalido)
		return booking.AppointmentInput{}, false
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgAgendamentoCampos)
		return booking.AppointmentInput{}, false
	}

	clientID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		writeError(w, http.StatusNotFound, msgClienteNotFound)
		return booking.AppointmentInput{}, false
	}

	serviceID, err := uuid.Parse(req.ServicoID)
	if err != nil {
		writeError(w, http.StatusNotFound, msgServicoNotFound)
		return booking.AppointmentInput{}, false
	}

	start, err := parseISODate(req.DataAgendamento)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgDataInvalida)
		return booking.AppointmentInput{}, false
	}

	in := booking.AppointmentInput{
		ClientID:  clientID,
		ServiceID: serviceID,
		StartTime: start,
		Notes:     req.Observacoes,
	}
	if req.Status != nil {
		status := booking.Status(*req.Status)
		in.Status = &status
	}
	return in, true
}

func createAgendamentoHandler(svc *booking.AppointmentService, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeAgendamentoRequest(w, r, validate)
		if !ok {
			return
		}

		d, err := svc.Create(r.Context(), in)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAgendamentoResponse(d))
	}
}

func getAgendamentoHandler(svc *booking.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgAgendamentoNotFound)
		if !ok {
			return
		}

		d, err := svc.Get(r.Context(), id)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAgendamentoResponse(d))
	}
}

func updateAgendamentoHandler(svc *booking.AppointmentService, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgAgendamentoNotFound)
		if !ok {
			return
		}

		in, ok := decodeAgendamentoRequest(w, r, validate)
		if !ok {
			return
		}

		d, err := svc.Update(r.Context(), id, in)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAgendamentoResponse(d))
	}
}

func updateAgendamentoStatusHandler(svc *booking.AppointmentService, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgAgendamentoNotFound)
		if !ok {
			return
		}

		var req StatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgCorpoInvalido)
			return
		}
		if err := validate.Struct(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgStatusObrigatorio)
			return
		}

		d, err := svc.UpdateStatus(r.Context(), id, booking.Status(req.Status))
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAgendamentoResponse(d))
	}
}

func deleteAgendamentoHandler(svc *booking.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgAgendamentoNotFound)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			handleDomainError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, "Agendamento deletado com sucesso")
	}
}

func disponibilidadeHandler(svc *booking.AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		dataStr := q.Get("data")
		servicoStr := q.Get("servico_id")

		if dataStr == "" || servicoStr == "" {
			writeError(w, http.StatusBadRequest, msgDisponibilidadeArgs)
			return
		}

		start, err := parseISODate(dataStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgDataInvalida)
			return
		}

		serviceID, err := uuid.Parse(servicoStr)
		if err != nil {
			writeError(w, http.StatusNotFound, msgServicoNotFound)
			return
		}

		decision, err := svc.CheckAvailability(r.Context(), serviceID, start)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, DisponibilidadeResponse{
			Disponivel: decision.Available,
			Data:       dataStr,
			ServicoID:  servicoStr,
			Motivo:     motivo(decision.Reason),
		})
	}
}

func motivo(r booking.Reason) string {
	switch r {
	case booking.ReasonOccupied:
		return msgMotivoOcupado
	case booking.ReasonPast:
		return msgMotivoPassado
	default:
		return msgMotivoDisponivel
	}
}
