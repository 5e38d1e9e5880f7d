// Package repository holds the PostgreSQL implementations of the user,
// preferences and expense stores. Every method runs a single statement on a
// connection checked out from the shared pool; nothing is cached.
package repository

import (
	"database/sql"
	"errors"

	"github.com/Aasthik17/ExpenseEase/shared/apperrors"
	"github.com/lib/pq"
)

// writeError maps integrity (class 23) and data (class 22) violations to a
// ConstraintError carrying the server message; anything else is a StoreError.
func writeError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "22", "23":
			return &apperrors.ConstraintError{Code: string(pqErr.Code), Message: pqErr.Message, Err: err}
		}
	}
	return apperrors.Store(op, err)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
