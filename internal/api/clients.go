package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/agendaviva/salao-backend/internal/booking"
)

const msgClienteCampos = "Nome e telefone são obrigatórios"

func decodeClienteRequest(w http.ResponseWriter, r *http.Request, validate *validator.Validate) (*ClienteRequest, bool) {
	var req ClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgCorpoInvalido)
		return nil, false
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgClienteCampos)
		return nil, false
	}
	return &req, true
}

func listClientesHandler(svc *booking.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := svc.List(r.Context())
		if err != nil {
			handleDomainError(w, err)
			return
		}

		out := make([]ClienteResponse, len(clients))
		for i := range clients {
			out[i] = toClienteResponse(&clients[i])
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createClienteHandler(svc *booking.ClientService, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeClienteRequest(w, r, validate)
		if !ok {
			return
		}

		c, err := svc.Create(r.Context(), booking.ClientInput{
			Name:  req.Nome,
			Phone: req.Telefone,
			Email: req.Email,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toClienteResponse(c))
	}
}

func getClienteHandler(svc *booking.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgClienteNotFound)
		if !ok {
			return
		}

		c, err := svc.Get(r.Context(), id)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toClienteResponse(c))
	}
}

func updateClienteHandler(svc *booking.ClientService, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgClienteNotFound)
		if !ok {
			return
		}

		req, ok := decodeClienteRequest(w, r, validate)
		if !ok {
			return
		}

		c, err := svc.Update(r.Context(), id, booking.ClientInput{
			Name:  req.Nome,
			Phone: req.Telefone,
			Email: req.Email,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toClienteResponse(c))
	}
}

func deleteClienteHandler(svc *booking.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgClienteNotFound)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			handleDomainError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, "Cliente deletado com sucesso")
	}
}
