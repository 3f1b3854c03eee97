package core

// normalize.go turns raw sheet rows into typed entity rows.
//
// Each Normalize* function performs, in order: header translation to
// canonical names, per-field reformatting (dates to YYYY-MM-DD, currency
// to floats), enumeration mapping, and required-field validation. Rows
// that fail validation are excluded and counted in the FilterReport;
// the batch itself only fails for the conditions spelled out below
// (employee positions, unresolved employee restaurants).
//
// Foreign keys are filled from the resolver callbacks so the functions
// stay independent of the store implementation.

import (
	"context"
	"database/sql"
	"fmt"
)

// RestaurantResolver looks up a committed restaurant id by name.
type RestaurantResolver func(ctx context.Context, name string) (int64, bool, error)

// ClientResolver looks up a committed client id by email.
type ClientResolver func(ctx context.Context, email string) (int64, bool, error)

// NormalizeRestaurants keeps rows with a non-empty name. Address is
// optional.
func NormalizeRestaurants(sheet string, header []string, rows [][]string) ([]RestaurantRow, *FilterReport) {
	idx := MakeHeaderIndex(CanonicalHeader(EntityRestaurant, header))
	report := &FilterReport{Entity: EntityRestaurant, Sheet: sheet, Total: len(rows)}

	var out []RestaurantRow
	for i, row := range rows {
		r := RestaurantRow{
			Name:    ToText(cell(row, idx, "name")),
			Address: ToText(cell(row, idx, "address")),
		}
		if !r.Name.Valid {
			report.drop(i, "", "missing name")
			continue
		}
		out = append(out, r)
	}
	report.Kept = len(out)
	return out, report
}

// NormalizeDishes keeps rows with a name and a non-negative price. All
// dishes of one sheet belong to restaurantID.
func NormalizeDishes(sheet string, restaurantID int64, header []string, rows [][]string) ([]DishRow, *FilterReport) {
	idx := MakeHeaderIndex(CanonicalHeader(EntityDish, header))
	report := &FilterReport{Entity: EntityDish, Sheet: sheet, Total: len(rows)}

	var out []DishRow
	for i, row := range rows {
		d := DishRow{
			RestaurantID: validID(restaurantID),
			Name:         ToText(cell(row, idx, "name")),
			Price:        ToAmount(cell(row, idx, "price")),
		}
		switch {
		case !d.Name.Valid:
			report.drop(i, "", "missing name")
		case !d.Price.Valid:
			report.drop(i, d.Name.String, "missing or unparseable price")
		case d.Price.Float64 < 0:
			report.drop(i, d.Name.String, "negative price")
		default:
			out = append(out, d)
		}
	}
	report.Kept = len(out)
	return out, report
}

// NormalizeClients keeps rows with first name, last name and email; the
// email is the natural key later load stages resolve against. Phone and
// inscription date are optional; an unparseable inscription date loads
// as NULL.
func NormalizeClients(sheet string, restaurantID int64, header []string, rows [][]string) ([]ClientRow, *FilterReport) {
	idx := MakeHeaderIndex(CanonicalHeader(EntityClient, header))
	report := &FilterReport{Entity: EntityClient, Sheet: sheet, Total: len(rows)}

	var out []ClientRow
	for i, row := range rows {
		c := ClientRow{
			RestaurantID:    validID(restaurantID),
			FirstName:       ToText(cell(row, idx, "first_name")),
			LastName:        ToText(cell(row, idx, "last_name")),
			Email:           ToText(cell(row, idx, "email")),
			Phone:           ToText(cell(row, idx, "phone")),
			InscriptionDate: ToDate(cell(row, idx, "inscription_date")),
		}
		switch {
		case !c.Email.Valid:
			report.drop(i, "", "missing email")
		case !c.FirstName.Valid || !c.LastName.Valid:
			report.drop(i, c.Email.String, "missing name")
		default:
			out = append(out, c)
		}
	}
	report.Kept = len(out)
	return out, report
}

// NormalizeEmployees maps positions through the fixed enumeration and
// resolves each row's restaurant by name.
//
// Two conditions fail the whole batch before anything is loaded: a
// position label outside the enumeration (likely a mapping defect that
// would corrupt the entity's meaning) and a restaurant name with no
// committed row (every employee must belong to a named restaurant).
func NormalizeEmployees(ctx context.Context, sheet string, header []string, rows [][]string, resolve RestaurantResolver) ([]EmployeeRow, *FilterReport, error) {
	idx := MakeHeaderIndex(CanonicalHeader(EntityEmployee, header))
	report := &FilterReport{Entity: EntityEmployee, Sheet: sheet, Total: len(rows)}

	var out []EmployeeRow
	for i, row := range rows {
		position, ok := TranslatePosition(cell(row, idx, "position"))
		if !ok {
			return nil, report, &ValidationError{
				Entity:  EntityEmployee,
				Field:   "position",
				Value:   cell(row, idx, "position"),
				Message: "not in the position enumeration",
			}
		}

		name := cell(row, idx, "restaurant")
		if name == "" {
			report.drop(i, "", "missing restaurant")
			continue
		}
		restaurantID, found, err := resolve(ctx, name)
		if err != nil {
			return nil, report, fmt.Errorf("resolve restaurant %q: %w", name, err)
		}
		if !found {
			return nil, report, &ValidationError{
				Entity:  EntityEmployee,
				Field:   "restaurant",
				Value:   name,
				Message: "no committed restaurant with this name",
			}
		}

		e := EmployeeRow{
			RestaurantID: validID(restaurantID),
			FirstName:    ToText(cell(row, idx, "first_name")),
			LastName:     ToText(cell(row, idx, "last_name")),
			Position:     ToText(position),
			HiringDate:   ToDate(cell(row, idx, "hiring_date")),
			Salary:       ToAmount(cell(row, idx, "salary")),
		}
		if !e.FirstName.Valid || !e.LastName.Valid {
			report.drop(i, position, "missing name")
			continue
		}
		out = append(out, e)
	}
	report.Kept = len(out)
	return out, report, nil
}

// NormalizeSuppliers keeps rows with a non-empty name.
func NormalizeSuppliers(sheet string, header []string, rows [][]string) ([]SupplierRow, *FilterReport) {
	idx := MakeHeaderIndex(CanonicalHeader(EntitySupplier, header))
	report := &FilterReport{Entity: EntitySupplier, Sheet: sheet, Total: len(rows)}

	var out []SupplierRow
	for i, row := range rows {
		s := SupplierRow{
			Name:    ToText(cell(row, idx, "name")),
			Email:   ToText(cell(row, idx, "email")),
			Phone:   ToText(cell(row, idx, "phone")),
			Address: ToText(cell(row, idx, "address")),
		}
		if !s.Name.Valid {
			report.drop(i, "", "missing name")
			continue
		}
		out = append(out, s)
	}
	report.Kept = len(out)
	return out, report
}

// NormalizeOrders derives order rows from a client sheet. A row becomes
// an order only when all three required fields line up: a client id
// resolvable by email, a parseable order date, and a non-negative total
// amount. Everything else is dropped, never partially inserted.
func NormalizeOrders(ctx context.Context, sheet string, header []string, rows [][]string, resolve ClientResolver) ([]OrderRow, *FilterReport, error) {
	idx := MakeHeaderIndex(CanonicalHeader(EntityOrder, header))
	report := &FilterReport{Entity: EntityOrder, Sheet: sheet, Total: len(rows)}

	var out []OrderRow
	for i, row := range rows {
		email := cell(row, idx, "email")
		orderDate := ToDate(cell(row, idx, "order_date"))
		amount := ToAmount(cell(row, idx, "total_amount"))

		if email == "" {
			report.drop(i, "", "missing email")
			continue
		}
		clientID, found, err := resolve(ctx, email)
		if err != nil {
			return nil, report, fmt.Errorf("resolve client %q: %w", email, err)
		}
		switch {
		case !found:
			report.drop(i, email, "no committed client with this email")
		case !orderDate.Valid:
			report.drop(i, email, "missing or unparseable order date")
		case !amount.Valid:
			report.drop(i, email, "missing or unparseable total amount")
		case amount.Float64 < 0:
			report.drop(i, email, "negative total amount")
		default:
			out = append(out, OrderRow{
				ClientID:    validID(clientID),
				OrderDate:   orderDate,
				TotalAmount: amount,
			})
		}
	}
	report.Kept = len(out)
	return out, report, nil
}

// NormalizeDeliveries keeps stock rows with a product name and a
// quantity. The delivery date is optional; unparseable dates load as
// NULL.
func NormalizeDeliveries(sheet string, restaurantID int64, header []string, rows [][]string) ([]DeliveryRow, *FilterReport) {
	idx := MakeHeaderIndex(CanonicalHeader(EntityDelivery, header))
	report := &FilterReport{Entity: EntityDelivery, Sheet: sheet, Total: len(rows)}

	var out []DeliveryRow
	for i, row := range rows {
		d := DeliveryRow{
			RestaurantID: validID(restaurantID),
			ProductName:  ToText(cell(row, idx, "product_name")),
			Quantity:     ToQuantity(cell(row, idx, "quantity")),
			DeliveryDate: ToDate(cell(row, idx, "delivery_date")),
		}
		switch {
		case !d.ProductName.Valid:
			report.drop(i, "", "missing product name")
		case !d.Quantity.Valid:
			report.drop(i, d.ProductName.String, "missing or unparseable quantity")
		default:
			out = append(out, d)
		}
	}
	report.Kept = len(out)
	return out, report
}

// drop records one excluded row. i is the zero-based index into the data
// rows; line numbers surfaced to operators are 1-based.
func (r *FilterReport) drop(i int, key, reason string) {
	r.Dropped = append(r.Dropped, DroppedRow{
		Sheet:  r.Sheet,
		Line:   i + 1,
		Key:    key,
		Reason: reason,
	})
}

func validID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: true}
}
