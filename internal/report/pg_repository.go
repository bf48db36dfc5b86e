package report

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agendaviva/salao-backend/internal/booking"
)

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) CountClients(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM clientes`).Scan(&n)
	return n, err
}

func (r *PgRepository) CountActiveServices(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM servicos WHERE ativo`).Scan(&n)
	return n, err
}

func (r *PgRepository) CountAppointmentsBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM agendamentos
		WHERE data_agendamento >= $1 AND data_agendamento < $2
	`, from, to).Scan(&n)
	return n, err
}

func (r *PgRepository) CountAppointmentsSince(ctx context.Context, from time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM agendamentos
		WHERE data_agendamento >= $1
	`, from).Scan(&n)
	return n, err
}

func (r *PgRepository) CountAppointmentsByStatus(ctx context.Context) (map[booking.Status]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, count(*)
		FROM agendamentos
		GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[booking.Status]int)
	for rows.Next() {
		var status booking.Status
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		result[status] = n
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PgRepository) RevenueCompletedSince(ctx context.Context, from time.Time) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(sum(s.preco), 0)
		FROM agendamentos a
		JOIN servicos s ON s.id = a.servico_id
		WHERE a.data_agendamento >= $1 AND a.status = 'concluido'
	`, from).Scan(&total)
	return total, err
}

func (r *PgRepository) PopularServicesSince(ctx context.Context, from time.Time, limit int) ([]PopularService, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.nome, s.preco, count(a.id), COALESCE(sum(s.preco), 0)
		FROM servicos s
		JOIN agendamentos a ON a.servico_id = s.id
		WHERE a.data_agendamento >= $1
		GROUP BY s.id, s.nome, s.preco
		ORDER BY count(a.id) DESC
		LIMIT $2
	`, from, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PopularService
	for rows.Next() {
		var p PopularService
		if err := rows.Scan(&p.Name, &p.Price, &p.TotalAppointments, &p.TotalRevenue); err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PgRepository) DailyRevenueSince(ctx context.Context, from time.Time) ([]DailyRevenue, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('day', a.data_agendamento) AS dia, COALESCE(sum(s.preco), 0)
		FROM agendamentos a
		JOIN servicos s ON s.id = a.servico_id
		WHERE a.data_agendamento >= $1 AND a.status = 'concluido'
		GROUP BY dia
		ORDER BY dia ASC
	`, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []DailyRevenue
	for rows.Next() {
		var d DailyRevenue
		if err := rows.Scan(&d.Date, &d.Revenue); err != nil {
			return nil, err
		}
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PgRepository) FrequentClients(ctx context.Context, limit int) ([]FrequentClient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.nome, c.telefone, count(a.id), max(a.data_agendamento)
		FROM clientes c
		JOIN agendamentos a ON a.cliente_id = c.id
		GROUP BY c.id, c.nome, c.telefone
		ORDER BY count(a.id) DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []FrequentClient
	for rows.Next() {
		var f FrequentClient
		var last *time.Time
		if err := rows.Scan(&f.Name, &f.Phone, &f.TotalAppointments, &last); err != nil {
			return nil, err
		}
		f.LastAppointment = last
		result = append(result, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
