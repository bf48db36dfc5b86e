package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema when it does not exist yet. Column names follow
// the public wire format so that raw queries read the same as the API.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS clientes (
			id UUID PRIMARY KEY,
			nome TEXT NOT NULL,
			telefone TEXT NOT NULL,
			email TEXT UNIQUE,
			data_cadastro TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS servicos (
			id UUID PRIMARY KEY,
			nome TEXT NOT NULL,
			descricao TEXT,
			preco NUMERIC(10,2) NOT NULL CHECK (preco > 0),
			duracao_minutos INT NOT NULL CHECK (duracao_minutos > 0),
			ativo BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS agendamentos (
			id UUID PRIMARY KEY,
			cliente_id UUID NOT NULL REFERENCES clientes(id) ON DELETE CASCADE,
			servico_id UUID NOT NULL REFERENCES servicos(id),
			data_agendamento TIMESTAMPTZ NOT NULL,
			data_criacao TIMESTAMPTZ NOT NULL DEFAULT now(),
			status TEXT NOT NULL DEFAULT 'agendado',
			observacoes TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_agendamentos_data ON agendamentos (data_agendamento)`,
		`CREATE INDEX IF NOT EXISTS idx_agendamentos_status ON agendamentos (status)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}

	return nil
}
