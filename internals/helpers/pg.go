package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation mendeteksi pelanggaran unique constraint dari driver postgres
// (SQLSTATE 23505). Dipakai sebagai jaring terakhir setelah cek unik eksplisit.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// UniqueConstraint mengembalikan nama constraint yang dilanggar pada error
// 23505, supaya caller bisa menunjuk field yang benar. Kosong bila bukan
// pelanggaran unique.
func UniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}
