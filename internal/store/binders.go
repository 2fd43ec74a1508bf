package store

import (
	"context"
	"fmt"

	"github.com/Paintersrp/binders/internal/library"
)

// ListBinders returns every binder ordered by number.
func (s *Store) ListBinders(ctx context.Context) ([]library.Binder, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, number, label FROM binders ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("failed to load binders: %w", err)
	}
	defer rows.Close()

	var binders []library.Binder
	for rows.Next() {
		var b library.Binder
		if err := rows.Scan(&b.ID, &b.Number, &b.Label); err != nil {
			return nil, fmt.Errorf("failed to read binder: %w", err)
		}
		binders = append(binders, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to collect binders: %w", err)
	}
	return binders, nil
}

// BinderByNumber looks up a binder by its user-facing number.
func (s *Store) BinderByNumber(ctx context.Context, number int64) (library.Binder, error) {
	b := library.Binder{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, number, label FROM binders WHERE number = ?`, number,
	).Scan(&b.ID, &b.Number, &b.Label)
	if err != nil {
		if isNoRows(err) {
			return library.Binder{}, errBinderNotFound
		}
		return library.Binder{}, fmt.Errorf("failed to load binder %d: %w", number, err)
	}
	return b, nil
}

// CreateBinder inserts a binder. A taken number yields ErrDuplicate.
func (s *Store) CreateBinder(ctx context.Context, number int64, label string) (library.Binder, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO binders (number, label) VALUES (?, ?)`, number, label)
	if err != nil {
		if isUniqueViolation(err) {
			return library.Binder{}, duplicateNumber(number)
		}
		return library.Binder{}, fmt.Errorf("failed to insert binder: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return library.Binder{}, fmt.Errorf("failed to read binder id: %w", err)
	}

	s.logger.Info("binder created", "id", id, "number", number)
	return library.Binder{ID: id, Number: number, Label: label}, nil
}

func (s *Store) UpdateBinder(ctx context.Context, id, number int64, label string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE binders SET number = ?, label = ? WHERE id = ?`, number, label, id)
	if err != nil {
		if isUniqueViolation(err) {
			return duplicateNumber(number)
		}
		return fmt.Errorf("failed to update binder: %w", err)
	}
	if err := expectRow(res, errBinderNotFound); err != nil {
		return err
	}

	s.logger.Info("binder updated", "id", id, "number", number)
	return nil
}

// DeleteBinder removes a binder; its song links go with it.
func (s *Store) DeleteBinder(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM binders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete binder: %w", err)
	}
	if err := expectRow(res, errBinderNotFound); err != nil {
		return err
	}

	s.logger.Info("binder deleted", "id", id)
	return nil
}
