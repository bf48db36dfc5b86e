package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agendaviva/salao-backend/internal/db"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, dsn)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(context.Background(), pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	services, err := seedServicos(context.Background(), pool)
	if err != nil {
		log.Fatalf("seed servicos: %v", err)
	}
	clientIDs, err := seedClientes(context.Background(), pool, 200)
	if err != nil {
		log.Fatalf("seed clientes: %v", err)
	}
	if err := seedAgendamentos(context.Background(), pool, clientIDs, services); err != nil {
		log.Fatalf("seed agendamentos: %v", err)
	}

	log.Println("seed complete")
}

type servicoSeed struct {
	nome    string
	preco   float64
	duracao int
}

type seededServico struct {
	id      uuid.UUID
	duracao int
}

func seedServicos(ctx context.Context, pool *pgxpool.Pool) ([]seededServico, error) {
	catalog := []servicoSeed{
		{"Corte de Cabelo", 50, 30},
		{"Coloração", 180, 120},
		{"Escova", 60, 45},
		{"Manicure", 35, 40},
		{"Pedicure", 40, 45},
		{"Hidratação", 90, 60},
		{"Barba", 30, 20},
		{"Sobrancelha", 25, 15},
	}

	log.Printf("seeding %d servicos", len(catalog))

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	out := make([]seededServico, 0, len(catalog))
	for _, s := range catalog {
		id := uuid.New()

		_, err := tx.Exec(ctx, `
			INSERT INTO servicos (id, nome, descricao, preco, duracao_minutos, ativo)
			VALUES ($1, $2, $3, $4, $5, TRUE)
		`, id, s.nome, gofakeit.Sentence(8), s.preco, s.duracao)
		if err != nil {
			return nil, err
		}
		out = append(out, seededServico{id: id, duracao: s.duracao})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	log.Println("servicos seeded")
	return out, nil
}

func seedClientes(ctx context.Context, pool *pgxpool.Pool, count int) ([]uuid.UUID, error) {
	log.Printf("seeding %d clientes", count)

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	ids := make([]uuid.UUID, 0, count)
	for i := 0; i < count; i++ {
		id := uuid.New()
		name := gofakeit.Name()
		phone := gofakeit.Phone()

		// Every third client has no email on file.
		var email *string
		if i%3 != 0 {
			e := gofakeit.Email()
			email = &e
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO clientes (id, nome, telefone, email, data_cadastro)
			VALUES ($1, $2, $3, $4, now())
		`, id, name, phone, email)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	log.Println("clientes seeded")
	return ids, nil
}

// seedAgendamentos books one non-overlapping slot per hour across the next
// two weeks of business hours, so the seeded calendar is conflict free.
func seedAgendamentos(ctx context.Context, pool *pgxpool.Pool, clientIDs []uuid.UUID, services []seededServico) error {
	if len(clientIDs) == 0 || len(services) == 0 {
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	start := time.Now().UTC().Truncate(time.Hour).Add(24 * time.Hour)
	count := 0

	for day := 0; day < 14; day++ {
		var lastEnd time.Time

		for hour := 9; hour < 18; hour++ {
			if gofakeit.Number(0, 2) == 0 {
				continue // leave some slots open
			}

			slot := time.Date(start.Year(), start.Month(), start.Day(), hour, 0, 0, 0, time.UTC).AddDate(0, 0, day)
			if slot.Before(lastEnd) {
				continue // previous booking still running
			}

			client := clientIDs[gofakeit.Number(0, len(clientIDs)-1)]
			service := services[gofakeit.Number(0, len(services)-1)]
			lastEnd = slot.Add(time.Duration(service.duracao) * time.Minute)

			_, err := tx.Exec(ctx, `
				INSERT INTO agendamentos (id, cliente_id, servico_id, data_agendamento, data_criacao, status, observacoes)
				VALUES ($1, $2, $3, $4, now(), 'agendado', NULL)
			`, uuid.New(), client, service.id, slot)
			if err != nil {
				return err
			}
			count++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	log.Printf("agendamentos seeded: %d", count)
	return nil
}
