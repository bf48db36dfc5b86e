package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/agendaviva/salao-backend/internal/booking"
	"github.com/agendaviva/salao-backend/internal/report"
	"github.com/agendaviva/salao-backend/internal/user"
)

type RouterConfig struct {
	Clients      *booking.ClientService
	Catalog      *booking.CatalogService
	Appointments *booking.AppointmentService
	Reports      *report.Service
	Users        user.Repository
	PgPool       *pgxpool.Pool
	Redis        *redis.Client
	Env          string
	Version      string
	StaticDir    string
}

func NewRouter(cfg RouterConfig) http.Handler {
	validate := validator.New()

	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	// Health endpoints
	health := NewHealthHandler(cfg.PgPool, cfg.Redis, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Route("/api", func(r chi.Router) {
		// Clientes
		r.Get("/clientes", listClientesHandler(cfg.Clients))
		r.Post("/clientes", createClienteHandler(cfg.Clients, validate))
		r.Get("/clientes/{id}", getClienteHandler(cfg.Clients))
		r.Put("/clientes/{id}", updateClienteHandler(cfg.Clients, validate))
		r.Delete("/clientes/{id}", deleteClienteHandler(cfg.Clients))

		// Servicos
		r.Get("/servicos", listServicosHandler(cfg.Catalog))
		r.Post("/servicos", createServicoHandler(cfg.Catalog, validate))
		r.Get("/servicos/{id}", getServicoHandler(cfg.Catalog))
		r.Put("/servicos/{id}", updateServicoHandler(cfg.Catalog, validate))
		r.Delete("/servicos/{id}", deleteServicoHandler(cfg.Catalog))
		r.Patch("/servicos/{id}/toggle", toggleServicoHandler(cfg.Catalog))

		// Agendamentos
		r.Get("/agendamentos", listAgendamentosHandler(cfg.Appointments))
		r.Post("/agendamentos", createAgendamentoHandler(cfg.Appointments, validate))
		r.Get("/agendamentos/disponibilidade", disponibilidadeHandler(cfg.Appointments))
		r.Get("/agendamentos/{id}", getAgendamentoHandler(cfg.Appointments))
		r.Put("/agendamentos/{id}", updateAgendamentoHandler(cfg.Appointments, validate))
		r.Delete("/agendamentos/{id}", deleteAgendamentoHandler(cfg.Appointments))
		r.Patch("/agendamentos/{id}/status", updateAgendamentoStatusHandler(cfg.Appointments, validate))

		// Dashboard
		r.Get("/dashboard/estatisticas", estatisticasHandler(cfg.Reports))
		r.Get("/dashboard/agendamentos-hoje", agendamentosHojeHandler(cfg.Reports))
		r.Get("/dashboard/proximos-agendamentos", proximosAgendamentosHandler(cfg.Reports))
		r.Get("/dashboard/servicos-populares", servicosPopularesHandler(cfg.Reports))
		r.Get("/dashboard/receita-diaria", receitaDiariaHandler(cfg.Reports))
		r.Get("/dashboard/clientes-frequentes", clientesFrequentesHandler(cfg.Reports))

		// Users
		r.Get("/users", listUsersHandler(cfg.Users))
		r.Post("/users", createUserHandler(cfg.Users, validate))
		r.Get("/users/{id}", getUserHandler(cfg.Users))
		r.Put("/users/{id}", updateUserHandler(cfg.Users, validate))
		r.Delete("/users/{id}", deleteUserHandler(cfg.Users))
	})

	if cfg.StaticDir != "" {
		r.NotFound(spaHandler(cfg.StaticDir))
	}

	return r
}

// spaHandler serves the frontend build: files that exist are served as-is,
// anything else falls back to index.html for client-side routing.
func spaHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
