package store

// mutations.go is the single-row mutation surface used by operator
// tooling outside the load pipeline. Each call issues exactly one
// parameterized statement. The loader itself never calls these; loaded
// rows are created once and never mutated during a run.

import (
	"context"
	"errors"
	"strings"
)

// ErrNoFieldsToUpdate is returned by UpdateRestaurant when neither a
// name nor an address is supplied.
var ErrNoFieldsToUpdate = errors.New("at least one of name or address must be provided")

// CreateRestaurant inserts a restaurant and returns its surrogate id.
func (s *Store) CreateRestaurant(ctx context.Context, name, address string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO restaurant (name, address) VALUES (?, ?)`, name, address)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateRestaurant updates the name and/or address of a restaurant by
// id. Nil fields are left untouched. Returns false when no row matched.
func (s *Store) UpdateRestaurant(ctx context.Context, id int64, name, address *string) (bool, error) {
	var set []string
	var args []any
	if name != nil {
		set = append(set, "name = ?")
		args = append(args, *name)
	}
	if address != nil {
		set = append(set, "address = ?")
		args = append(args, *address)
	}
	if len(set) == 0 {
		return false, ErrNoFieldsToUpdate
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx,
		`UPDATE restaurant SET `+strings.Join(set, ", ")+` WHERE restaurant_id = ?`, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteRestaurant removes a restaurant by id. Returns false when no
// row matched.
func (s *Store) DeleteRestaurant(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM restaurant WHERE restaurant_id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
