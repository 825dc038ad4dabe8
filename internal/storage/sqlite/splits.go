package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/settleup/settleup/internal/models"
	"github.com/settleup/settleup/internal/storage"
)

// CreateSplit persists a new split with its contributors and transfers.
func (s *SQLiteStore) CreateSplit(ctx context.Context, split *models.Split) error {
	if split.ID == "" {
		split.ID = uuid.New().String()
	}
	if split.CreatedAt == 0 {
		split.CreatedAt = time.Now().Unix()
	}
	if split.Title == "" {
		split.Title = generateTitle(split.Contributors)
	}
	if split.Currency == "" {
		split.Currency = "USD"
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO splits (id, title, currency, created_at, created_by) VALUES (?, ?, ?, ?, ?)",
		split.ID, split.Title, split.Currency, split.CreatedAt, split.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert split: %w", err)
	}

	if err := insertChildren(ctx, tx, split); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSplit retrieves a split by ID, including contributors and transfers.
func (s *SQLiteStore) GetSplit(ctx context.Context, splitID string) (*models.Split, error) {
	split := &models.Split{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, currency, created_at, created_by FROM splits WHERE id = ?",
		splitID,
	).Scan(&split.ID, &split.Title, &split.Currency, &split.CreatedAt, &split.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("split %s: %w", splitID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get split: %w", err)
	}

	if err := s.loadChildren(ctx, split); err != nil {
		return nil, err
	}

	return split, nil
}

// UpdateSplit replaces an existing split's fields and child rows.
func (s *SQLiteStore) UpdateSplit(ctx context.Context, split *models.Split) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if split.Title == "" {
		split.Title = generateTitle(split.Contributors)
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE splits SET title = ?, currency = ? WHERE id = ?",
		split.Title, split.Currency, split.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update split: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("split %s: %w", split.ID, storage.ErrNotFound)
	}

	// Child rows are replaced wholesale; positions restart from zero.
	for _, table := range []string{"contributors", "transfers"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE split_id = ?", split.ID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := insertChildren(ctx, tx, split); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteSplit removes a split; child rows cascade.
func (s *SQLiteStore) DeleteSplit(ctx context.Context, splitID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM splits WHERE id = ?", splitID)
	if err != nil {
		return fmt.Errorf("failed to delete split: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("split %s: %w", splitID, storage.ErrNotFound)
	}
	return nil
}

// ListSplits retrieves all splits created by the given user, newest first.
func (s *SQLiteStore) ListSplits(ctx context.Context, userID string) ([]*models.Split, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, currency, created_at, created_by FROM splits WHERE created_by = ? ORDER BY created_at DESC, id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	var splits []*models.Split
	for rows.Next() {
		split := &models.Split{}
		if err := rows.Scan(&split.ID, &split.Title, &split.Currency, &split.CreatedAt, &split.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, split)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	for _, split := range splits {
		if err := s.loadChildren(ctx, split); err != nil {
			return nil, err
		}
	}

	return splits, nil
}

// insertChildren writes contributor and transfer rows for a split inside
// an open transaction.
func insertChildren(ctx context.Context, tx *sql.Tx, split *models.Split) error {
	for i, c := range split.Contributors {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO contributors (split_id, position, name, amount_paid) VALUES (?, ?, ?, ?)",
			split.ID, i, c.Name, c.AmountPaid,
		)
		if err != nil {
			return fmt.Errorf("failed to insert contributor: %w", err)
		}
	}
	for i, t := range split.Transfers {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO transfers (split_id, position, from_name, to_name, amount) VALUES (?, ?, ?, ?, ?)",
			split.ID, i, t.From, t.To, t.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transfer: %w", err)
		}
	}
	return nil
}

// loadChildren populates a split's contributors and transfers in stored
// order.
func (s *SQLiteStore) loadChildren(ctx context.Context, split *models.Split) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, amount_paid FROM contributors WHERE split_id = ? ORDER BY position",
		split.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get contributors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Contributor
		if err := rows.Scan(&c.Name, &c.AmountPaid); err != nil {
			return fmt.Errorf("failed to scan contributor: %w", err)
		}
		split.Contributors = append(split.Contributors, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate contributors: %w", err)
	}

	transferRows, err := s.db.QueryContext(ctx,
		"SELECT from_name, to_name, amount FROM transfers WHERE split_id = ? ORDER BY position",
		split.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get transfers: %w", err)
	}
	defer transferRows.Close()

	for transferRows.Next() {
		var t models.Transfer
		if err := transferRows.Scan(&t.From, &t.To, &t.Amount); err != nil {
			return fmt.Errorf("failed to scan transfer: %w", err)
		}
		split.Transfers = append(split.Transfers, t)
	}
	if err := transferRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate transfers: %w", err)
	}

	return nil
}
