package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/agendaviva/salao-backend/internal/booking"
	"github.com/agendaviva/salao-backend/internal/report"
	"github.com/agendaviva/salao-backend/internal/user"
)

// memRepo is an in-memory booking.Repository. It keeps the handler tests
// end-to-end: real services, real router, no Postgres.
type memRepo struct {
	clients  map[uuid.UUID]booking.Client
	services map[uuid.UUID]booking.Service
	appts    map[uuid.UUID]booking.Appointment
}

func newMemRepo() *memRepo {
	return &memRepo{
		clients:  make(map[uuid.UUID]booking.Client),
		services: make(map[uuid.UUID]booking.Service),
		appts:    make(map[uuid.UUID]booking.Appointment),
	}
}

func (m *memRepo) CreateClient(ctx context.Context, c booking.Client) (*booking.Client, error) {
	c.ID = uuid.New()
	c.CreatedAt = time.Now().UTC()
	m.clients[c.ID] = c
	return &c, nil
}

func (m *memRepo) GetClientByID(ctx context.Context, id uuid.UUID) (*booking.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, booking.ErrClientNotFound
	}
	return &c, nil
}

func (m *memRepo) ListClients(ctx context.Context) ([]booking.Client, error) {
	out := make([]booking.Client, 0, len(m.clients))
	for _, c := range m.clients {
		out = append(out, c)
	}
	return out, nil
}

func (m *memRepo) UpdateClient(ctx context.Context, c booking.Client) (*booking.Client, error) {
	existing, ok := m.clients[c.ID]
	if !ok {
		return nil, booking.ErrClientNotFound
	}
	c.CreatedAt = existing.CreatedAt
	m.clients[c.ID] = c
	return &c, nil
}

func (m *memRepo) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.clients[id]; !ok {
		return booking.ErrClientNotFound
	}
	delete(m.clients, id)
	return nil
}

func (m *memRepo) ClientEmailInUse(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	for id, c := range m.clients {
		if id == exclude {
			continue
		}
		if c.Email != nil && *c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) ClientHasAppointments(ctx context.Context, id uuid.UUID) (bool, error) {
	for _, a := range m.appts {
		if a.ClientID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) CreateService(ctx context.Context, s booking.Service) (*booking.Service, error) {
	s.ID = uuid.New()
	m.services[s.ID] = s
	return &s, nil
}

func (m *memRepo) GetServiceByID(ctx context.Context, id uuid.UUID) (*booking.Service, error) {
	s, ok := m.services[id]
	if !ok {
		return nil, booking.ErrServiceNotFound
	}
	return &s, nil
}

func (m *memRepo) ListServices(ctx context.Context, activeOnly bool) ([]booking.Service, error) {
	out := make([]booking.Service, 0, len(m.services))
	for _, s := range m.services {
		if activeOnly && !s.Active {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memRepo) UpdateService(ctx context.Context, s booking.Service) (*booking.Service, error) {
	if _, ok := m.services[s.ID]; !ok {
		return nil, booking.ErrServiceNotFound
	}
	m.services[s.ID] = s
	return &s, nil
}

func (m *memRepo) DeleteService(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.services[id]; !ok {
		return booking.ErrServiceNotFound
	}
	delete(m.services, id)
	return nil
}

func (m *memRepo) ServiceHasAppointments(ctx context.Context, id uuid.UUID) (bool, error) {
	for _, a := range m.appts {
		if a.ServiceID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) detail(a booking.Appointment) *booking.AppointmentDetail {
	c := m.clients[a.ClientID]
	s := m.services[a.ServiceID]
	return &booking.AppointmentDetail{
		Appointment:            a,
		ClientName:             c.Name,
		ServiceName:            s.Name,
		ServicePrice:           s.Price,
		ServiceDurationMinutes: s.DurationMinutes,
	}
}

func (m *memRepo) CreateAppointment(ctx context.Context, a booking.Appointment) (*booking.AppointmentDetail, error) {
	a.ID = uuid.New()
	a.CreatedAt = time.Now().UTC()
	m.appts[a.ID] = a
	return m.detail(a), nil
}

func (m *memRepo) GetAppointmentDetail(ctx context.Context, id uuid.UUID) (*booking.AppointmentDetail, error) {
	a, ok := m.appts[id]
	if !ok {
		return nil, booking.ErrAppointmentNotFound
	}
	return m.detail(a), nil
}

func (m *memRepo) ListAppointments(ctx context.Context, f booking.AppointmentFilter) ([]booking.AppointmentDetail, error) {
	var out []booking.AppointmentDetail
	for _, a := range m.appts {
		if f.From != nil && a.StartTime.Before(*f.From) {
			continue
		}
		if f.To != nil && a.StartTime.After(*f.To) {
			continue
		}
		if f.Status != nil && a.Status != *f.Status {
			continue
		}
		if f.ClientID != nil && a.ClientID != *f.ClientID {
			continue
		}
		out = append(out, *m.detail(a))
	}
	return out, nil
}

func (m *memRepo) UpdateAppointment(ctx context.Context, a booking.Appointment) (*booking.AppointmentDetail, error) {
	existing, ok := m.appts[a.ID]
	if !ok {
		return nil, booking.ErrAppointmentNotFound
	}
	a.CreatedAt = existing.CreatedAt
	m.appts[a.ID] = a
	return m.detail(a), nil
}

func (m *memRepo) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.AppointmentDetail, error) {
	a, ok := m.appts[id]
	if !ok {
		return nil, booking.ErrAppointmentNotFound
	}
	a.Status = status
	m.appts[id] = a
	return m.detail(a), nil
}

func (m *memRepo) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.appts[id]; !ok {
		return booking.ErrAppointmentNotFound
	}
	delete(m.appts, id)
	return nil
}

func (m *memRepo) ListScheduledIntervals(ctx context.Context) ([]booking.ScheduledInterval, error) {
	var out []booking.ScheduledInterval
	for _, a := range m.appts {
		if a.Status != booking.StatusScheduled {
			continue
		}
		s := m.services[a.ServiceID]
		out = append(out, booking.ScheduledInterval{
			AppointmentID: a.ID,
			Interval:      booking.NewInterval(a.StartTime, s.DurationMinutes),
		})
	}
	return out, nil
}

type memUserRepo struct {
	users map[uuid.UUID]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]user.User)}
}

func (m *memUserRepo) Create(ctx context.Context, u user.User) (*user.User, error) {
	u.ID = uuid.New()
	m.users[u.ID] = u
	return &u, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (m *memUserRepo) List(ctx context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserRepo) Update(ctx context.Context, u user.User) (*user.User, error) {
	if _, ok := m.users[u.ID]; !ok {
		return nil, user.ErrUserNotFound
	}
	m.users[u.ID] = u
	return &u, nil
}

func (m *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

// inlineLocker runs the critical section without Redis.
type inlineLocker struct{}

func (inlineLocker) WithCalendarLock(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// statsStub answers the dashboard aggregates with canned numbers.
type statsStub struct{}

func (statsStub) CountClients(ctx context.Context) (int, error)        { return 42, nil }
func (statsStub) CountActiveServices(ctx context.Context) (int, error) { return 7, nil }
func (statsStub) CountAppointmentsBetween(ctx context.Context, from, to time.Time) (int, error) {
	return 3, nil
}
func (statsStub) CountAppointmentsSince(ctx context.Context, from time.Time) (int, error) {
	return 20, nil
}
func (statsStub) CountAppointmentsByStatus(ctx context.Context) (map[booking.Status]int, error) {
	return map[booking.Status]int{booking.StatusScheduled: 12}, nil
}
func (statsStub) RevenueCompletedSince(ctx context.Context, from time.Time) (float64, error) {
	return 1250.5, nil
}
func (statsStub) PopularServicesSince(ctx context.Context, from time.Time, limit int) ([]report.PopularService, error) {
	return []report.PopularService{{Name: "Corte de Cabelo", Price: 50, TotalAppointments: 18, TotalRevenue: 900}}, nil
}
func (statsStub) DailyRevenueSince(ctx context.Context, from time.Time) ([]report.DailyRevenue, error) {
	return nil, nil
}
func (statsStub) FrequentClients(ctx context.Context, limit int) ([]report.FrequentClient, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) (http.Handler, *memRepo) {
	t.Helper()

	repo := newMemRepo()
	router := NewRouter(RouterConfig{
		Clients:      booking.NewClientService(repo),
		Catalog:      booking.NewCatalogService(repo),
		Appointments: booking.NewAppointmentService(repo, inlineLocker{}),
		Reports:      report.NewService(statsStub{}, repo),
		Users:        newMemUserRepo(),
		Env:          "test",
		Version:      "test",
	})
	return router, repo
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, code, rec.Body.String())
	}
}

func wantErro(t *testing.T, rec *httptest.ResponseRecorder, code int, msg string) {
	t.Helper()
	wantStatus(t, rec, code)
	got := decodeBody[ErrorResponse](t, rec)
	if got.Erro != msg {
		t.Fatalf("erro = %q, want %q", got.Erro, msg)
	}
}

func createCliente(t *testing.T, router http.Handler, nome string, email *string) ClienteResponse {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/clientes", map[string]any{
		"nome":     nome,
		"telefone": "11 99999-0000",
		"email":    email,
	})
	wantStatus(t, rec, http.StatusCreated)
	return decodeBody[ClienteResponse](t, rec)
}

func createServico(t *testing.T, router http.Handler, nome string, duracao int) ServicoResponse {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/servicos", map[string]any{
		"nome":            nome,
		"preco":           50.0,
		"duracao_minutos": duracao,
	})
	wantStatus(t, rec, http.StatusCreated)
	return decodeBody[ServicoResponse](t, rec)
}

func TestClienteLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	created := createCliente(t, router, "Ana", nil)

	rec := doJSON(t, router, http.MethodGet, "/api/clientes/"+created.ID.String(), nil)
	wantStatus(t, rec, http.StatusOK)
	got := decodeBody[ClienteResponse](t, rec)
	if got.Nome != "Ana" || got.Telefone != "11 99999-0000" {
		t.Fatalf("got %+v", got)
	}

	rec = doJSON(t, router, http.MethodPut, "/api/clientes/"+created.ID.String(), map[string]any{
		"nome":     "Ana Maria",
		"telefone": "11 98888-0000",
	})
	wantStatus(t, rec, http.StatusOK)
	if got := decodeBody[ClienteResponse](t, rec); got.Nome != "Ana Maria" {
		t.Fatalf("nome after update = %q", got.Nome)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/clientes/"+created.ID.String(), nil)
	wantStatus(t, rec, http.StatusOK)
	if got := decodeBody[MessageResponse](t, rec); got.Mensagem != "Cliente deletado com sucesso" {
		t.Fatalf("mensagem = %q", got.Mensagem)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/clientes/"+created.ID.String(), nil)
	wantErro(t, rec, http.StatusNotFound, msgClienteNotFound)
}

func TestClienteValidationAndDuplicateEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/clientes", map[string]any{"nome": "Ana"})
	wantErro(t, rec, http.StatusBadRequest, msgClienteCampos)

	email := "ana@example.com"
	createCliente(t, router, "Ana", &email)

	rec = doJSON(t, router, http.MethodPost, "/api/clientes", map[string]any{
		"nome":     "Outra Ana",
		"telefone": "11 97777-0000",
		"email":    email,
	})
	wantErro(t, rec, http.StatusBadRequest, msgEmailCadastrado)
}

func TestClienteBadIDBehavesAsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/clientes/not-a-uuid", nil)
	wantErro(t, rec, http.StatusNotFound, msgClienteNotFound)
}

func TestServicoValidationMessages(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		name string
		body map[string]any
		msg  string
	}{
		{"missing fields", map[string]any{"nome": "Corte"}, msgServicoCampos},
		{"negative price", map[string]any{"nome": "Corte", "preco": -1.0, "duracao_minutos": 30}, msgPrecoInvalido},
		{"zero duration", map[string]any{"nome": "Corte", "preco": 50.0, "duracao_minutos": -5}, msgDuracaoInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/servicos", tc.body)
			wantErro(t, rec, http.StatusBadRequest, tc.msg)
		})
	}
}

func TestServicoListFiltersInactiveByDefault(t *testing.T) {
	router, _ := newTestRouter(t)

	s := createServico(t, router, "Corte de Cabelo", 30)
	createServico(t, router, "Manicure", 45)

	rec := doJSON(t, router, http.MethodPatch, "/api/servicos/"+s.ID.String()+"/toggle", nil)
	wantStatus(t, rec, http.StatusOK)
	if got := decodeBody[ServicoResponse](t, rec); got.Ativo {
		t.Fatal("toggle should deactivate a new service")
	}

	rec = doJSON(t, router, http.MethodGet, "/api/servicos", nil)
	wantStatus(t, rec, http.StatusOK)
	if got := decodeBody[[]ServicoResponse](t, rec); len(got) != 1 {
		t.Fatalf("active list has %d services, want 1", len(got))
	}

	rec = doJSON(t, router, http.MethodGet, "/api/servicos?apenas_ativos=false", nil)
	wantStatus(t, rec, http.StatusOK)
	if got := decodeBody[[]ServicoResponse](t, rec); len(got) != 2 {
		t.Fatalf("full list has %d services, want 2", len(got))
	}
}

func TestAgendamentoBookingFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	cliente := createCliente(t, router, "Ana", nil)
	servico := createServico(t, router, "Corte de Cabelo", 30)

	// Far-future dates keep the past check out of the way.
	start := "2100-01-05T15:00:00"

	rec := doJSON(t, router, http.MethodPost, "/api/agendamentos", map[string]any{
		"cliente_id":       cliente.ID.String(),
		"servico_id":       servico.ID.String(),
		"data_agendamento": start,
	})
	wantStatus(t, rec, http.StatusCreated)
	created := decodeBody[AgendamentoResponse](t, rec)
	if created.Status != "agendado" {
		t.Fatalf("status = %q, want agendado", created.Status)
	}
	if created.ClienteNome != "Ana" || created.ServicoNome != "Corte de Cabelo" || created.ServicoPreco != 50 {
		t.Fatalf("denormalized fields wrong: %+v", created)
	}

	// An overlapping slot is refused.
	rec = doJSON(t, router, http.MethodPost, "/api/agendamentos", map[string]any{
		"cliente_id":       cliente.ID.String(),
		"servico_id":       servico.ID.String(),
		"data_agendamento": "2100-01-05T15:15:00",
	})
	wantErro(t, rec, http.StatusBadRequest, msgConflito)

	// A slot starting exactly when the first one ends is fine.
	rec = doJSON(t, router, http.MethodPost, "/api/agendamentos", map[string]any{
		"cliente_id":       cliente.ID.String(),
		"servico_id":       servico.ID.String(),
		"data_agendamento": "2100-01-05T15:30:00",
	})
	wantStatus(t, rec, http.StatusCreated)

	// Updating the first appointment to its own slot must not self-conflict.
	rec = doJSON(t, router, http.MethodPut, "/api/agendamentos/"+created.ID.String(), map[string]any{
		"cliente_id":       cliente.ID.String(),
		"servico_id":       servico.ID.String(),
		"data_agendamento": start,
		"observacoes":      "prefere a tarde",
	})
	wantStatus(t, rec, http.StatusOK)

	// But moving it onto the second appointment is a conflict.
	rec = doJSON(t, router, http.MethodPut, "/api/agendamentos/"+created.ID.String(), map[string]any{
		"cliente_id":       cliente.ID.String(),
		"servico_id":       servico.ID.String(),
		"data_agendamento": "2100-01-05T15:45:00",
	})
	wantErro(t, rec, http.StatusBadRequest, msgConflito)
}

func TestAgendamentoPastDateRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	cliente := createCliente(t, router, "Ana", nil)
	servico := createServico(t, router, "Corte de Cabelo", 30)

	rec := doJSON(t, router, http.MethodPost, "/api/agendamentos", map[string]any{
		"cliente_id":       cliente.ID.String(),
		"servico_id":       servico.ID.String(),
		"data_agendamento": "2020-01-05T15:00:00",
	})
	wantErro(t, rec, http.StatusBadRequest, msgDataPassada)
}

func TestAgendamentoMissingReferences(t *testing.T) {
	router, _ := newTestRouter(t)

	servico := createServico(t, router, "Corte de Cabelo", 30)

	rec := doJSON(t, router, http.MethodPost, "/api/agendamentos", map[string]any{
		"cliente_id":       uuid.NewString(),
		"servico_id":       servico.ID.String(),
		"data_agendamento": "2100-01-05T15:00:00",
	})
	wantErro(t, rec, http.StatusNotFound, msgClienteNotFound)

	rec = doJSON(t, router, http.MethodPost, "/api/agendamentos", map[string]any{
		"servico_id":       servico.ID.String(),
		"data_agendamento": "2100-01-05T15:00:00",
	})
	wantErro(t, rec, http.StatusBadRequest, msgAgendamentoCampos)

	cliente := createCliente(t, router, "Ana", nil)
	rec = doJSON(t, router, http.MethodPost, "/api/agendamentos", map[string]any{
		"cliente_id":       cliente.ID.String(),
		"servico_id":       servico.ID.String(),
		"data_agendamento": "amanhã",
	})
	wantErro(t, rec, http.StatusBadRequest, msgDataInvalida)
}

func TestAgendamentoStatusPatch(t *testing.T) {
	router, _ := newTestRouter(t)

	cliente := createCliente(t, router, "Ana", nil)
	servico := createServico(t, router, "Corte de Cabelo", 30)

	rec := doJSON(t, router, http.MethodPost, "/api/agendamentos", map[string]any{
		"cliente_id":       cliente.ID.String(),
		"servico_id":       servico.ID.String(),
		"data_agendamento": "2100-01-05T15:00:00",
	})
	wantStatus(t, rec, http.StatusCreated)
	created := decodeBody[AgendamentoResponse](t, rec)

	rec = doJSON(t, router, http.MethodPatch, "/api/agendamentos/"+created.ID.String()+"/status", map[string]any{
		"status": "pendente",
	})
	wantErro(t, rec, http.StatusBadRequest, msgStatusInvalido)

	rec = doJSON(t, router, http.MethodPatch, "/api/agendamentos/"+created.ID.String()+"/status", map[string]any{
		"status": "concluido",
	})
	wantStatus(t, rec, http.StatusOK)
	if got := decodeBody[AgendamentoResponse](t, rec); got.Status != "concluido" {
		t.Fatalf("status = %q, want concluido", got.Status)
	}
}

func TestDisponibilidade(t *testing.T) {
	router, _ := newTestRouter(t)

	cliente := createCliente(t, router, "Ana", nil)
	servico := createServico(t, router, "Corte de Cabelo", 30)

	rec := doJSON(t, router, http.MethodPost, "/api/agendamentos", map[string]any{
		"cliente_id":       cliente.ID.String(),
		"servico_id":       servico.ID.String(),
		"data_agendamento": "2100-01-05T15:00:00",
	})
	wantStatus(t, rec, http.StatusCreated)

	check := func(data string) DisponibilidadeResponse {
		path := fmt.Sprintf("/api/agendamentos/disponibilidade?data=%s&servico_id=%s", data, servico.ID)
		rec := doJSON(t, router, http.MethodGet, path, nil)
		wantStatus(t, rec, http.StatusOK)
		return decodeBody[DisponibilidadeResponse](t, rec)
	}

	if got := check("2100-01-05T15:15:00"); got.Disponivel || got.Motivo != msgMotivoOcupado {
		t.Fatalf("overlap check = %+v", got)
	}
	if got := check("2100-01-05T15:30:00"); !got.Disponivel || got.Motivo != msgMotivoDisponivel {
		t.Fatalf("touching slot check = %+v", got)
	}
	if got := check("2020-01-05T15:00:00"); got.Disponivel || got.Motivo != msgMotivoPassado {
		t.Fatalf("past check = %+v", got)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/agendamentos/disponibilidade?data=2100-01-05T16:00:00", nil)
	wantErro(t, rec, http.StatusBadRequest, msgDisponibilidadeArgs)
}

func TestDeleteBlockedByAppointments(t *testing.T) {
	router, _ := newTestRouter(t)

	cliente := createCliente(t, router, "Ana", nil)
	servico := createServico(t, router, "Corte de Cabelo", 30)

	rec := doJSON(t, router, http.MethodPost, "/api/agendamentos", map[string]any{
		"cliente_id":       cliente.ID.String(),
		"servico_id":       servico.ID.String(),
		"data_agendamento": "2100-01-05T15:00:00",
	})
	wantStatus(t, rec, http.StatusCreated)

	rec = doJSON(t, router, http.MethodDelete, "/api/clientes/"+cliente.ID.String(), nil)
	wantErro(t, rec, http.StatusBadRequest, msgClienteComAgendamento)

	rec = doJSON(t, router, http.MethodDelete, "/api/servicos/"+servico.ID.String(), nil)
	wantErro(t, rec, http.StatusBadRequest, msgServicoComAgendamento)
}

func TestEstatisticas(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/dashboard/estatisticas", nil)
	wantStatus(t, rec, http.StatusOK)

	got := decodeBody[EstatisticasResponse](t, rec)
	if got.TotalClientes != 42 || got.TotalServicos != 7 || got.ReceitaMes != 1250.5 {
		t.Fatalf("estatisticas = %+v", got)
	}
	if got.AgendamentosPorStatus["agendado"] != 12 {
		t.Fatalf("por status = %+v", got.AgendamentosPorStatus)
	}
}

func TestUsersLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]any{
		"username": "admin",
		"email":    "admin@example.com",
	})
	wantStatus(t, rec, http.StatusCreated)
	created := decodeBody[UserResponse](t, rec)

	// Partial update keeps the absent field.
	rec = doJSON(t, router, http.MethodPut, "/api/users/"+created.ID.String(), map[string]any{
		"email": "root@example.com",
	})
	wantStatus(t, rec, http.StatusOK)
	got := decodeBody[UserResponse](t, rec)
	if got.Username != "admin" || got.Email != "root@example.com" {
		t.Fatalf("after update = %+v", got)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/users/"+created.ID.String(), nil)
	wantStatus(t, rec, http.StatusNoContent)

	rec = doJSON(t, router, http.MethodGet, "/api/users/"+created.ID.String(), nil)
	wantErro(t, rec, http.StatusNotFound, msgUserNotFound)
}
