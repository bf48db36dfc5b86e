package api

import (
	"net/http"

	"github.com/agendaviva/salao-backend/internal/report"
)

func estatisticasHandler(svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEstatisticasResponse(stats))
	}
}

func agendamentosHojeHandler(svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appts, err := svc.TodayAppointments(r.Context())
		if err != nil {
			handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAgendamentoResponses(appts))
	}
}

func proximosAgendamentosHandler(svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appts, err := svc.UpcomingAppointments(r.Context())
		if err != nil {
			handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAgendamentoResponses(appts))
	}
}

func servicosPopularesHandler(svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		popular, err := svc.PopularServices(r.Context())
		if err != nil {
			handleDomainError(w, err)
			return
		}

		out := make([]ServicoPopularResponse, len(popular))
		for i, p := range popular {
			out[i] = ServicoPopularResponse{
				Nome:              p.Name,
				Preco:             p.Price,
				TotalAgendamentos: p.TotalAppointments,
				ReceitaTotal:      p.TotalRevenue,
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func receitaDiariaHandler(svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		revenue, err := svc.DailyRevenue(r.Context())
		if err != nil {
			handleDomainError(w, err)
			return
		}

		out := make([]ReceitaDiariaResponse, len(revenue))
		for i, d := range revenue {
			out[i] = ReceitaDiariaResponse{
				Data:    d.Date.Format("2006-01-02"),
				Receita: d.Revenue,
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func clientesFrequentesHandler(svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := svc.FrequentClients(r.Context())
		if err != nil {
			handleDomainError(w, err)
			return
		}

		out := make([]ClienteFrequenteResponse, len(clients))
		for i, c := range clients {
			out[i] = ClienteFrequenteResponse{
				Nome:              c.Name,
				Telefone:          c.Phone,
				TotalAgendamentos: c.TotalAppointments,
				UltimoAgendamento: c.LastAppointment,
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}
