package api

import (
	"encoding/json"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// writeError keeps the single-field error body the original API exposes.
func writeError(w http.ResponseWriter, status int, mensagem string) {
	writeJSON(w, status, ErrorResponse{Erro: mensagem})
}

func writeMessage(w http.ResponseWriter, status int, mensagem string) {
	writeJSON(w, status, MessageResponse{Mensagem: mensagem})
}
