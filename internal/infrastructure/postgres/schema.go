package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Esquema de las tres tablas. Los ids los genera la base; qty y montos son
// NUMERIC para que el codec de shopspring/decimal los decodifique sin pérdida.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id       BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id         BIGSERIAL PRIMARY KEY,
		date       DATE NOT NULL,
		supplier   TEXT NOT NULL,
		type       TEXT NOT NULL,
		color      TEXT NOT NULL,
		qty        NUMERIC NOT NULL,
		unit_cost  NUMERIC NOT NULL,
		total_cost NUMERIC NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id         BIGSERIAL PRIMARY KEY,
		date       DATE NOT NULL,
		customer   TEXT NOT NULL,
		type       TEXT NOT NULL,
		color      TEXT NOT NULL,
		qty        NUMERIC NOT NULL,
		unit_price NUMERIC NOT NULL,
		total_sale NUMERIC NOT NULL
	)`,
}

// Credencial por defecto que se siembra en la primera inicialización.
// Debilidad conocida y documentada: cambiarla en cualquier despliegue real.
const (
	seedAdminUsername = "admin"
	seedAdminPassword = "admin123"
)

// Migrate crea las tablas si no existen. Idempotente: se ejecuta en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}

// SeedAdmin inserta el usuario admin por defecto si la tabla users está vacía.
// Devuelve true si sembró, para que el caller pueda dejar constancia en el log.
func SeedAdmin(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, fmt.Errorf("contar usuarios: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hashear password por defecto: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (username, password, role) VALUES ($1, $2, $3)`,
		seedAdminUsername, string(hash), "admin",
	)
	if err != nil {
		return false, fmt.Errorf("insertar admin por defecto: %w", err)
	}
	return true, nil
}
