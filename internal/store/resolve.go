package store

// resolve.go implements the natural-key lookups: restaurant id by name,
// client id by email. Lookups read committed rows, so they see writes
// made earlier in the same run. Absence is a normal result, not an
// error; callers decide whether it is fatal or filterable.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// RestaurantIDByName returns the surrogate id of the restaurant with
// the given name, or found=false when no row matches.
func (s *Store) RestaurantIDByName(ctx context.Context, name string) (id int64, found bool, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT restaurant_id FROM restaurant WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup restaurant %q: %w", name, err)
	}
	return id, true, nil
}

// ClientIDByEmail returns the surrogate id of the client with the given
// email, or found=false when no row matches.
func (s *Store) ClientIDByEmail(ctx context.Context, email string) (id int64, found bool, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT client_id FROM client WHERE email = ?`, email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup client %q: %w", email, err)
	}
	return id, true, nil
}

// RestaurantNames lists committed restaurant names in id order.
func (s *Store) RestaurantNames(ctx context.Context) ([]string, error) {
	return s.queryStrings(ctx,
		`SELECT name FROM restaurant WHERE name IS NOT NULL ORDER BY restaurant_id`)
}

// DuplicateRestaurantNames returns names that appear on more than one
// committed row. The schema does not declare the natural keys unique,
// so the check happens here, before the first lookup.
func (s *Store) DuplicateRestaurantNames(ctx context.Context) ([]string, error) {
	return s.queryStrings(ctx,
		`SELECT name FROM restaurant WHERE name IS NOT NULL
		 GROUP BY name HAVING COUNT(*) > 1 ORDER BY name`)
}

// DuplicateClientEmails returns emails that appear on more than one
// committed row.
func (s *Store) DuplicateClientEmails(ctx context.Context) ([]string, error) {
	return s.queryStrings(ctx,
		`SELECT email FROM client WHERE email IS NOT NULL
		 GROUP BY email HAVING COUNT(*) > 1 ORDER BY email`)
}

func (s *Store) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
