package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/agendaviva/salao-backend/internal/user"
)

const msgUserCampos = "username e email são obrigatórios"

func listUsersHandler(repo user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := repo.List(r.Context())
		if err != nil {
			handleDomainError(w, err)
			return
		}

		out := make([]UserResponse, len(users))
		for i := range users {
			out[i] = toUserResponse(&users[i])
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createUserHandler(repo user.Repository, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgCorpoInvalido)
			return
		}
		if err := validate.Struct(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgUserCampos)
			return
		}

		u, err := repo.Create(r.Context(), user.User{
			Username: req.Username,
			Email:    req.Email,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

func getUserHandler(repo user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgUserNotFound)
		if !ok {
			return
		}

		u, err := repo.GetByID(r.Context(), id)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func updateUserHandler(repo user.Repository, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgUserNotFound)
		if !ok {
			return
		}

		current, err := repo.GetByID(r.Context(), id)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		// Partial update: absent fields keep their current values.
		var req UserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgCorpoInvalido)
			return
		}
		if req.Username == "" {
			req.Username = current.Username
		}
		if req.Email == "" {
			req.Email = current.Email
		}

		u, err := repo.Update(r.Context(), user.User{
			ID:       id,
			Username: req.Username,
			Email:    req.Email,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func deleteUserHandler(repo user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, msgUserNotFound)
		if !ok {
			return
		}

		if err := repo.Delete(r.Context(), id); err != nil {
			handleDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
