package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

// Helpers

func scanClient(row pgx.Row) (*Client, error) {
	var c Client
	var email *string

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&email,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	c.Email = email
	return &c, nil
}

func scanService(row pgx.Row) (*Service, error) {
	var s Service
	var description *string

	err := row.Scan(
		&s.ID,
		&s.Name,
		&description,
		&s.Price,
		&s.DurationMinutes,
		&s.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	s.Description = description
	return &s, nil
}

func scanAppointmentDetail(row pgx.Row) (*AppointmentDetail, error) {
	var d AppointmentDetail
	var notes *string

	err := row.Scan(
		&d.ID,
		&d.ClientID,
		&d.ServiceID,
		&d.StartTime,
		&d.CreatedAt,
		&d.Status,
		&notes,
		&d.ClientName,
		&d.ServiceName,
		&d.ServicePrice,
		&d.ServiceDurationMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	d.Notes = notes
	return &d, nil
}

const appointmentDetailColumns = `
	a.id, a.cliente_id, a.servico_id, a.data_agendamento, a.data_criacao, a.status, a.observacoes,
	c.nome, s.nome, s.preco, s.duracao_minutos
`

const appointmentDetailFrom = `
	FROM agendamentos a
	JOIN clientes c ON c.id = a.cliente_id
	JOIN servicos s ON s.id = a.servico_id
`

// Clients

func (r *PgRepository) CreateClient(ctx context.Context, c Client) (*Client, error) {
	id := uuid.New()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO clientes (id, nome, telefone, email, data_cadastro)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, nome, telefone, email, data_cadastro
	`, id, c.Name, c.Phone, c.Email)

	return scanClient(row)
}

func (r *PgRepository) GetClientByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, nome, telefone, email, data_cadastro
		FROM clientes
		WHERE id = $1
	`, id)
	return scanClient(row)
}

func (r *PgRepository) ListClients(ctx context.Context) ([]Client, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, nome, telefone, email, data_cadastro
		FROM clientes
		ORDER BY data_cadastro ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PgRepository) UpdateClient(ctx context.Context, c Client) (*Client, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE clientes
		SET nome = $2,
		    telefone = $3,
		    email = $4
		WHERE id = $1
		RETURNING id, nome, telefone, email, data_cadastro
	`, c.ID, c.Name, c.Phone, c.Email)

	return scanClient(row)
}

func (r *PgRepository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *PgRepository) ClientEmailInUse(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM clientes WHERE email = $1 AND id <> $2
		)
	`, email, exclude).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PgRepository) ClientHasAppointments(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM agendamentos WHERE cliente_id = $1
		)
	`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Services

func (r *PgRepository) CreateService(ctx context.Context, s Service) (*Service, error) {
	id := uuid.New()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO servicos (id, nome, descricao, preco, duracao_minutos, ativo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, nome, descricao, preco, duracao_minutos, ativo
	`, id, s.Name, s.Description, s.Price, s.DurationMinutes, s.Active)

	return scanService(row)
}

func (r *PgRepository) GetServiceByID(ctx context.Context, id uuid.UUID) (*Service, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, nome, descricao, preco, duracao_minutos, ativo
		FROM servicos
		WHERE id = $1
	`, id)
	return scanService(row)
}

func (r *PgRepository) ListServices(ctx context.Context, activeOnly bool) ([]Service, error) {
	query := `
		SELECT id, nome, descricao, preco, duracao_minutos, ativo
		FROM servicos
		ORDER BY nome ASC
	`
	if activeOnly {
		query = `
			SELECT id, nome, descricao, preco, duracao_minutos, ativo
			FROM servicos
			WHERE ativo
			ORDER BY nome ASC
		`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PgRepository) UpdateService(ctx context.Context, s Service) (*Service, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE servicos
		SET nome = $2,
		    descricao = $3,
		    preco = $4,
		    duracao_minutos = $5,
		    ativo = $6
		WHERE id = $1
		RETURNING id, nome, descricao, preco, duracao_minutos, ativo
	`, s.ID, s.Name, s.Description, s.Price, s.DurationMinutes, s.Active)

	return scanService(row)
}

func (r *PgRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM servicos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete servico: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *PgRepository) ServiceHasAppointments(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM agendamentos WHERE servico_id = $1
		)
	`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Appointments

func (r *PgRepository) CreateAppointment(ctx context.Context, a Appointment) (*AppointmentDetail, error) {
	id := uuid.New()

	row := r.pool.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO agendamentos (id, cliente_id, servico_id, data_agendamento, data_criacao, status, observacoes)
			VALUES ($1, $2, $3, $4, now(), $5, $6)
			RETURNING *
		)
		SELECT `+appointmentDetailColumns+`
		FROM inserted a
		JOIN clientes c ON c.id = a.cliente_id
		JOIN servicos s ON s.id = a.servico_id
	`, id, a.ClientID, a.ServiceID, a.StartTime, a.Status, a.Notes)

	return scanAppointmentDetail(row)
}

func (r *PgRepository) GetAppointmentDetail(ctx context.Context, id uuid.UUID) (*AppointmentDetail, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+appointmentDetailColumns+appointmentDetailFrom+`
		WHERE a.id = $1
	`, id)
	return scanAppointmentDetail(row)
}

func (r *PgRepository) ListAppointments(ctx context.Context, f AppointmentFilter) ([]AppointmentDetail, error) {
	query := `SELECT ` + appointmentDetailColumns + appointmentDetailFrom + ` WHERE true`
	args := []any{}

	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND a.data_agendamento >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND a.data_agendamento <= $%d", len(args))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		query += fmt.Sprintf(" AND a.status = $%d", len(args))
	}
	if f.ClientID != nil {
		args = append(args, *f.ClientID)
		query += fmt.Sprintf(" AND a.cliente_id = $%d", len(args))
	}

	query += " ORDER BY a.data_agendamento ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []AppointmentDetail
	for rows.Next() {
		d, err := scanAppointmentDetail(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PgRepository) UpdateAppointment(ctx context.Context, a Appointment) (*AppointmentDetail, error) {
	row := r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE agendamentos
			SET cliente_id = $2,
			    servico_id = $3,
			    data_agendamento = $4,
			    status = $5,
			    observacoes = $6
			WHERE id = $1
			RETURNING *
		)
		SELECT `+appointmentDetailColumns+`
		FROM updated a
		JOIN clientes c ON c.id = a.cliente_id
		JOIN servicos s ON s.id = a.servico_id
	`, a.ID, a.ClientID, a.ServiceID, a.StartTime, a.Status, a.Notes)

	return scanAppointmentDetail(row)
}

func (r *PgRepository) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status Status) (*AppointmentDetail, error) {
	row := r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE agendamentos
			SET status = $2
			WHERE id = $1
			RETURNING *
		)
		SELECT `+appointmentDetailColumns+`
		FROM updated a
		JOIN clientes c ON c.id = a.cliente_id
		JOIN servicos s ON s.id = a.servico_id
	`, id, status)

	return scanAppointmentDetail(row)
}

func (r *PgRepository) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM agendamentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agendamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *PgRepository) ListScheduledIntervals(ctx context.Context) ([]ScheduledInterval, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.data_agendamento, s.duracao_minutos
		FROM agendamentos a
		JOIN servicos s ON s.id = a.servico_id
		WHERE a.status = 'agendado'
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ScheduledInterval
	for rows.Next() {
		var id uuid.UUID
		var start time.Time
		var duration int

		if err := rows.Scan(&id, &start, &duration); err != nil {
			return nil, err
		}
		result = append(result, ScheduledInterval{
			AppointmentID: id,
			Interval:      NewInterval(start, duration),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
