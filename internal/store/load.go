package store

// load.go holds the append-only insert statements the loader commits
// normalized rows with. One parameterized INSERT per row, row order
// preserved; existing rows are never updated or deduplicated.

import (
	"context"

	"restaurant-loader/internal/core"
)

func (s *Store) InsertRestaurant(ctx context.Context, r core.RestaurantRow) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO restaurant (name, address) VALUES (?, ?)`,
		r.Name, r.Address)
	return err
}

func (s *Store) InsertDish(ctx context.Context, d core.DishRow) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO dish (restaurant_id, name, price) VALUES (?, ?, ?)`,
		d.RestaurantID, d.Name, d.Price)
	return err
}

func (s *Store) InsertClient(ctx context.Context, c core.ClientRow) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO client (restaurant_id, first_name, last_name, email, phone, inscription_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.RestaurantID, c.FirstName, c.LastName, c.Email, c.Phone, c.InscriptionDate)
	return err
}

func (s *Store) InsertEmployee(ctx context.Context, e core.EmployeeRow) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO employee (restaurant_id, first_name, last_name, position, hiring_date, salary)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.RestaurantID, e.FirstName, e.LastName, e.Position, e.HiringDate, e.Salary)
	return err
}

func (s *Store) InsertSupplier(ctx context.Context, r core.SupplierRow) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO supplier (name, email, phone, address) VALUES (?, ?, ?, ?)`,
		r.Name, r.Email, r.Phone, r.Address)
	return err
}

func (s *Store) InsertOrder(ctx context.Context, o core.OrderRow) error {
	// "order" is a reserved word; the quoted name is part of the
	// external contract.
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO "order" (client_id, order_date, total_amount) VALUES (?, ?, ?)`,
		o.ClientID, o.OrderDate, o.TotalAmount)
	return err
}

func (s *Store) InsertDelivery(ctx context.Context, d core.DeliveryRow) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO delivery (restaurant_id, product_name, quantity, delivery_date)
		 VALUES (?, ?, ?, ?)`,
		d.RestaurantID, d.ProductName, d.Quantity, d.DeliveryDate)
	return err
}
