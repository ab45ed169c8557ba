package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/tecodan/sharetribe/services/preauth"
)

// TransactionRepo implements preauth.TransactionRepo against PostgreSQL
type TransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(db *sqlx.DB) preauth.TransactionRepo {
	return &TransactionRepo{db: db}
}
