package store

// reports.go is the read-only aggregate surface behind the reports
// server. Queries mirror what the operations dashboard plots: recent
// orders, menu revenue, staffing and salary by position, inventory
// levels. All reads, no writes.

import "context"

// RecentOrder is one order joined with its client's name.
type RecentOrder struct {
	Client      string  `json:"client"`
	OrderDate   string  `json:"orderDate"`
	TotalAmount float64 `json:"totalAmount"`
}

// MenuItem is one dish with its owning restaurant.
type MenuItem struct {
	Restaurant string  `json:"restaurant"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
}

// PositionStat aggregates employees of one position in one restaurant.
type PositionStat struct {
	Restaurant    string  `json:"restaurant"`
	Position      string  `json:"position"`
	Count         int     `json:"count"`
	AverageSalary float64 `json:"averageSalary"`
}

// Headcount is the number of employees of one restaurant.
type Headcount struct {
	Restaurant string `json:"restaurant"`
	Employees  int    `json:"employees"`
}

// InventoryLevel is one stock delivery line.
type InventoryLevel struct {
	Restaurant   string `json:"restaurant"`
	ProductName  string `json:"productName"`
	Quantity     int64  `json:"quantity"`
	DeliveryDate string `json:"deliveryDate"`
}

// RecentOrders lists orders newest first.
func (s *Store) RecentOrders(ctx context.Context) ([]RecentOrder, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT client.first_name || ' ' || client.last_name,
		       "order".order_date,
		       "order".total_amount
		FROM "order"
		JOIN client ON "order".client_id = client.client_id
		ORDER BY "order".order_date DESC, "order".order_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecentOrder
	for rows.Next() {
		var o RecentOrder
		if err := rows.Scan(&o.Client, &o.OrderDate, &o.TotalAmount); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// MenuPrices lists every dish with its restaurant.
func (s *Store) MenuPrices(ctx context.Context) ([]MenuItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT restaurant.name, dish.name, dish.price
		FROM dish
		JOIN restaurant ON dish.restaurant_id = restaurant.restaurant_id
		ORDER BY restaurant.name, dish.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MenuItem
	for rows.Next() {
		var m MenuItem
		if err := rows.Scan(&m.Restaurant, &m.Name, &m.Price); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// EmployeeStats aggregates headcount and average salary per position
// and restaurant.
func (s *Store) EmployeeStats(ctx context.Context) ([]PositionStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT restaurant.name,
		       employee.position,
		       COUNT(employee.employee_id),
		       COALESCE(AVG(employee.salary), 0)
		FROM employee
		JOIN restaurant ON employee.restaurant_id = restaurant.restaurant_id
		GROUP BY restaurant.name, employee.position
		ORDER BY restaurant.name, employee.position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PositionStat
	for rows.Next() {
		var p PositionStat
		if err := rows.Scan(&p.Restaurant, &p.Position, &p.Count, &p.AverageSalary); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// EmployeeDistribution counts employees per restaurant.
func (s *Store) EmployeeDistribution(ctx context.Context) ([]Headcount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT restaurant.name, COUNT(employee.employee_id)
		FROM employee
		JOIN restaurant ON employee.restaurant_id = restaurant.restaurant_id
		GROUP BY restaurant.name
		ORDER BY restaurant.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Headcount
	for rows.Next() {
		var h Headcount
		if err := rows.Scan(&h.Restaurant, &h.Employees); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// InventoryLevels lists stock delivery lines with their restaurant.
func (s *Store) InventoryLevels(ctx context.Context) ([]InventoryLevel, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT restaurant.name,
		       delivery.product_name,
		       delivery.quantity,
		       COALESCE(delivery.delivery_date, '')
		FROM delivery
		JOIN restaurant ON delivery.restaurant_id = restaurant.restaurant_id
		ORDER BY restaurant.name, delivery.product_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []InventoryLevel
	for rows.Next() {
		var l InventoryLevel
		if err := rows.Scan(&l.Restaurant, &l.ProductName, &l.Quantity, &l.DeliveryDate); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
