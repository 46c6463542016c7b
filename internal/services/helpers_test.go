package services_test

import "github.com/jackc/pgx/v5/pgconn"

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

func ptr[T any](v T) *T {
	return &v
}
