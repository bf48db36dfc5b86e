package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/agendaviva/salao-backend/internal/booking"
	"github.com/agendaviva/salao-backend/internal/report"
	"github.com/agendaviva/salao-backend/internal/user"
)

type ErrorResponse struct {
	Erro string `json:"erro"`
}

type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

// Requests

type ClienteRequest struct {
	Nome     string  `json:"nome" validate:"required"`
	Telefone string  `json:"telefone" validate:"required"`
	Email    *string `json:"email"`
}

type ServicoRequest struct {
	Nome           string  `json:"nome" validate:"required"`
	Descricao      *string `json:"descricao"`
	Preco          float64 `json:"preco" validate:"required,gt=0"`
	DuracaoMinutos int     `json:"duracao_minutos" validate:"required,gt=0"`
	Ativo          *bool   `json:"ativo"`
}

type AgendamentoRequest struct {
	ClienteID       string  `json:"cliente_id" validate:"required"`
	ServicoID       string  `json:"servico_id" validate:"required"`
	DataAgendamento string  `json:"data_agendamento" validate:"required"`
	Observacoes     *string `json:"observacoes"`
	Status          *string `json:"status"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

// Responses

type ClienteResponse struct {
	ID           uuid.UUID `json:"id"`
	Nome         string    `json:"nome"`
	Telefone     string    `json:"telefone"`
	Email        *string   `json:"email"`
	DataCadastro time.Time `json:"data_cadastro"`
}

func toClienteResponse(c *booking.Client) ClienteResponse {
	return ClienteResponse{
		ID:           c.ID,
		Nome:         c.Name,
		Telefone:     c.Phone,
		Email:        c.Email,
		DataCadastro: c.CreatedAt,
	}
}

type ServicoResponse struct {
	ID             uuid.UUID `json:"id"`
	Nome           string    `json:"nome"`
	Descricao      *string   `json:"descricao"`
	Preco          float64   `json:"preco"`
	DuracaoMinutos int       `json:"duracao_minutos"`
	Ativo          bool      `json:"ativo"`
}

func toServicoResponse(s *booking.Service) ServicoResponse {
	return ServicoResponse{
		ID:             s.ID,
		Nome:           s.Name,
		Descricao:      s.Description,
		Preco:          s.Price,
		DuracaoMinutos: s.DurationMinutes,
		Ativo:          s.Active,
	}
}

type AgendamentoResponse struct {
	ID              uuid.UUID `json:"id"`
	ClienteID       uuid.UUID `json:"cliente_id"`
	ServicoID       uuid.UUID `json:"servico_id"`
	DataAgendamento time.Time `json:"data_agendamento"`
	DataCriacao     time.Time `json:"data_criacao"`
	Status          string    `json:"status"`
	Observacoes     *string   `json:"observacoes"`
	ClienteNome     string    `json:"cliente_nome"`
	ServicoNome     string    `json:"servico_nome"`
	ServicoPreco    float64   `json:"servico_preco"`
	ServicoDuracao  int       `json:"servico_duracao"`
}

func toAgendamentoResponse(d *booking.AppointmentDetail) AgendamentoResponse {
	return AgendamentoResponse{
		ID:              d.ID,
		ClienteID:       d.ClientID,
		ServicoID:       d.ServiceID,
		DataAgendamento: d.StartTime,
		DataCriacao:     d.CreatedAt,
		Status:          string(d.Status),
		Observacoes:     d.Notes,
		ClienteNome:     d.ClientName,
		ServicoNome:     d.ServiceName,
		ServicoPreco:    d.ServicePrice,
		ServicoDuracao:  d.ServiceDurationMinutes,
	}
}

func toAgendamentoResponses(ds []booking.AppointmentDetail) []AgendamentoResponse {
	out := make([]AgendamentoResponse, len(ds))
	for i := range ds {
		out[i] = toAgendamentoResponse(&ds[i])
	}
	return out
}

type DisponibilidadeResponse struct {
	Disponivel bool   `json:"disponivel"`
	Data       string `json:"data"`
	ServicoID  string `json:"servico_id"`
	Motivo     string `json:"motivo"`
}

type EstatisticasResponse struct {
	TotalClientes         int            `json:"total_clientes"`
	TotalServicos         int            `json:"total_servicos"`
	AgendamentosHoje      int            `json:"agendamentos_hoje"`
	AgendamentosSemana    int            `json:"agendamentos_semana"`
	AgendamentosMes       int            `json:"agendamentos_mes"`
	ReceitaMes            float64        `json:"receita_mes"`
	AgendamentosPorStatus map[string]int `json:"agendamentos_por_status"`
}

func toEstatisticasResponse(s *report.Stats) EstatisticasResponse {
	byStatus := make(map[string]int, len(s.ByStatus))
	for status, n := range s.ByStatus {
		byStatus[string(status)] = n
	}
	return EstatisticasResponse{
		TotalClientes:         s.TotalClients,
		TotalServicos:         s.ActiveServices,
		AgendamentosHoje:      s.AppointmentsToday,
		AgendamentosSemana:    s.AppointmentsWeek,
		AgendamentosMes:       s.AppointmentsMonth,
		ReceitaMes:            s.MonthRevenue,
		AgendamentosPorStatus: byStatus,
	}
}

type ServicoPopularResponse struct {
	Nome              string  `json:"nome"`
	Preco             float64 `json:"preco"`
	TotalAgendamentos int     `json:"total_agendamentos"`
	ReceitaTotal      float64 `json:"receita_total"`
}

type ReceitaDiariaResponse struct {
	Data    string  `json:"data"`
	Receita float64 `json:"receita"`
}

type ClienteFrequenteResponse struct {
	Nome              string     `json:"nome"`
	Telefone          string     `json:"telefone"`
	TotalAgendamentos int        `json:"total_agendamentos"`
	UltimoAgendamento *time.Time `json:"ultimo_agendamento"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
