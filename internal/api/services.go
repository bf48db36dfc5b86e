package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/agendaviva/salao-backend/internal/booking"
)

const (
	msgServicoCampos  = "Nome, preço e duração são obrigatórios"
	msgPrecoInvalido  = "Preço deve ser maior que zero"
	msgDuracaoInvalid = "Duração deve ser maior que zero"
)

func decodeServicoRequest(w http.ResponseWriter, r *http.Request, validate *validator.Validate) (*ServicoRequest, bool) {
	var req ServicoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgCorpoInvalido)
		return nil, false
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, servicoValidationMessage(err))
		return nil, false
	}
	return &req, true
}

// servicoValidationMessage picks the original's message for the first failing
// rule: missing fields, then non-positive price or duration.
func servicoValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return msgServicoCampos
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return msgServicoCampos
		}
	}
	for _, fe := range verrs {
		if fe.Tag() == "gt" {
			if fe.Field() == "Preco" {
				return msgPrecoInvalido
			}
			return msgDuracaoInvalid
		}
	}
	return msgServicoCampos
}

func listServicosHandler(svc *booking.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := true
		if v := r.URL.Query().Get("apenas_ativos"); v != "" {
			activeOnly = strings.EqualFold(v, "true")
		}

		services, err := svc.List(r.Context(), activeOnly)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		out := make([]ServicoResponse, len(services))
		for i := range services {
			out[i] = toServicoResponse(&services[i])
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createServicoHandler(svc *booking.CatalogService, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeServicoRequest(w, r, validate)
		if !ok {
			return
		}

		active := true
		if req.Ativo != nil {
			active = *req.Ativo
		}

		s, err := svc.Create(r.Context(), booking.ServiceInput{
			Name:            req.Nome,
			Description:     req.Descricao,
			Price:           req.Preco,
			DurationMinutes: req.DuracaoMinutos,
			Active:          active,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toServicoResponse(s))
	}
}

func getServicoHandler(svc *booking.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgServicoNotFound)
		if !ok {
			return
		}

		s, err := svc.Get(r.Context(), id)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toServicoResponse(s))
	}
}

func updateServicoHandler(svc *booking.CatalogService, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgServicoNotFound)
		if !ok {
			return
		}

		req, ok := decodeServicoRequest(w, r, validate)
		if !ok {
			return
		}

		active := true
		if req.Ativo != nil {
			active = *req.Ativo
		}

		s, err := svc.Update(r.Context(), id, booking.ServiceInput{
			Name:            req.Nome,
			Description:     req.Descricao,
			Price:           req.Preco,
			DurationMinutes: req.DuracaoMinutos,
			Active:          active,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toServicoResponse(s))
	}
}

func deleteServicoHandler(svc *booking.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgServicoNotFound)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			handleDomainError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, "Serviço deletado com sucesso")
	}
}

func toggleServicoHandler(svc *booking.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgServicoNotFound)
		if !ok {
			return
		}

		s, err := svc.ToggleActive(r.Context(), id)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toServicoResponse(s))
	}
}
