package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wardrobe-reel/db"
)

// CreditRepository handles database operations for bonus credits
// Implements CreditRepositoryInterface
type CreditRepository struct{}

// NewCreditRepository creates a new CreditRepository
func NewCreditRepository() *CreditRepository {
	return &CreditRepository{}
}

// Ensure CreditRepository implements CreditRepositoryInterface
var _ CreditRepositoryInterface = (*CreditRepository)(nil)

// GetBalance returns the user's bonus credit balance; a missing row is zero
func (r *CreditRepository) GetBalance(ctx context.Context, userID string) (int, error) {
	var amount int
	query := `SELECT amount FROM credits WHERE user_id = $1`

	err := db.DB.QueryRowContext(ctx, query, userID).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get credit balance: %w", err)
	}
	return amount, nil
}

// ConsumeCredit atomically spends one bonus credit. The conditional
// update never lets the balance go negative; the affected-row count
// is the success signal.
func (r *CreditRepository) ConsumeCredit(ctx context.Context, userID string) (bool, error) {
	query := `
		UPDATE credits
		SET amount = amount - 1
		WHERE user_id = $1
		  AND amount > 0
	`

	result, err := db.DB.ExecContext(ctx, query, userID)
	if err != nil {
		return false, fmt.Errorf("failed to consume credit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}
