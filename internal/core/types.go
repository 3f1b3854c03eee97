// Package core implements the spreadsheet-to-database load pipeline.
// It has no knowledge of the concrete workbook format or store engine;
// both are passed in as interfaces so the pipeline can be tested in
// isolation from excelize and SQLite.
package core

import (
	"context"
	"database/sql"
)

// Entity identifies one of the canonical target tables.
type Entity string

const (
	EntityRestaurant Entity = "restaurant"
	EntityDish       Entity = "dish"
	EntityClient     Entity = "client"
	EntityEmployee   Entity = "employee"
	EntitySupplier   Entity = "supplier"
	EntityOrder      Entity = "order"
	EntityDelivery   Entity = "delivery"
)

// HeaderIndex maps canonical column names (lowercase) to their position
// in a sheet row.
type HeaderIndex map[string]int

// Source is a multi-sheet workbook opened for extraction.
// Implemented by excel.Workbook.
type Source interface {
	// HasSheet reports whether the named sheet exists. Callers probe
	// optional sheets before extracting.
	HasSheet(name string) bool

	// Extract returns the header row and the data rows of the named
	// sheet. A sheet with a header but no data rows yields an empty
	// row slice, not an error. A missing sheet is an error
	// (excel.MissingSheetError).
	Extract(name string) (header []string, rows [][]string, err error)
}

// Store is the committed side of the pipeline: append-only inserts plus
// the natural-key lookups the resolver needs. Implemented by store.Store.
type Store interface {
	InsertRestaurant(ctx context.Context, r RestaurantRow) error
	InsertDish(ctx context.Context, d DishRow) error
	InsertClient(ctx context.Context, c ClientRow) error
	InsertEmployee(ctx context.Context, e EmployeeRow) error
	InsertSupplier(ctx context.Context, s SupplierRow) error
	InsertOrder(ctx context.Context, o OrderRow) error
	InsertDelivery(ctx context.Context, d DeliveryRow) error

	// RestaurantNames lists committed restaurant names in id order,
	// reflecting writes made earlier in the same run.
	RestaurantNames(ctx context.Context) ([]string, error)

	RestaurantIDByName(ctx context.Context, name string) (int64, bool, error)
	ClientIDByEmail(ctx context.Context, email string) (int64, bool, error)

	// Duplicate natural keys already committed. A non-empty result means
	// lookups would be ambiguous; the pipeline refuses to resolve
	// against them.
	DuplicateRestaurantNames(ctx context.Context) ([]string, error)
	DuplicateClientEmails(ctx context.Context) ([]string, error)
}

// Entity rows as produced by the normalizer and consumed by the loader.
// Every field is optional (Valid=false means missing) so that "missing
// required value" is representable state rather than an implicit absence.
// Dates are canonical YYYY-MM-DD strings.

type RestaurantRow struct {
	Name    sql.NullString
	Address sql.NullString
}

type DishRow struct {
	RestaurantID sql.NullInt64
	Name         sql.NullString
	Price        sql.NullFloat64
}

type ClientRow struct {
	RestaurantID    sql.NullInt64
	FirstName       sql.NullString
	LastName        sql.NullString
	Email           sql.NullString
	Phone           sql.NullString
	InscriptionDate sql.NullString
}

type EmployeeRow struct {
	RestaurantID sql.NullInt64
	FirstName    sql.NullString
	LastName     sql.NullString
	Position     sql.NullString
	HiringDate   sql.NullString
	Salary       sql.NullFloat64
}

type SupplierRow struct {
	Name    sql.NullString
	Email   sql.NullString
	Phone   sql.NullString
	Address sql.NullString
}

type OrderRow struct {
	ClientID    sql.NullInt64
	OrderDate   sql.NullString
	TotalAmount sql.NullFloat64
}

type DeliveryRow struct {
	RestaurantID sql.NullInt64
	ProductName  sql.NullString
	Quantity     sql.NullInt64
	DeliveryDate sql.NullString
}

// DroppedRow records one filtered source row for operator visibility.
type DroppedRow struct {
	Sheet  string // source sheet name
	Line   int    // 1-based data row number within the sheet (header excluded)
	Key    string // natural key of the row, if one could be read
	Reason string
}

// FilterReport summarizes row-level filtering for one entity batch.
// Filtering is non-fatal; the report is logged so the source spreadsheet
// can be corrected by hand.
type FilterReport struct {
	Entity  Entity
	Sheet   string
	Total   int // data rows read from the source
	Kept    int
	Dropped []DroppedRow
}

// DroppedCount returns the number of rows excluded from the batch.
func (r *FilterReport) DroppedCount() int {
	return len(r.Dropped)
}

// RunSummary aggregates per-entity counts for one pipeline run.
type RunSummary struct {
	Loaded  map[Entity]int
	Dropped map[Entity]int
	Skipped []string // sheets absent from the workbook
}

func newRunSummary() *RunSummary {
	return &RunSummary{
		Loaded:  make(map[Entity]int),
		Dropped: make(map[Entity]int),
	}
}
