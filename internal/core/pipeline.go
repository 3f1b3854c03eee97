package core

// pipeline.go orchestrates one load run.
//
// Entity types are loaded in an explicit dependency order: dishes,
// clients and employees need committed restaurant ids, orders need
// committed client ids. The order lives in loadSequence so the
// constraint is visible and testable instead of being encoded in call
// order.
//
// Natural-key uniqueness is verified before the first resolver use
// (restaurant names before dependent entities, client emails before
// orders); duplicates make lookups ambiguous and abort the run instead
// of silently resolving to the first match.

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Sheet names fixed by the workbook contract. Per-restaurant sheets are
// the prefix plus the slugified restaurant name ("Le Gourmet" gets
// menu_le_gourmet, client_le_gourmet, stocks_le_gourmet).
const (
	SheetRestaurants = "restaurant"
	SheetEmployees   = "employé"
	SheetSuppliers   = "fournisseur"

	MenuSheetPrefix   = "menu_"
	ClientSheetPrefix = "client_"
	StockSheetPrefix  = "stocks_"
)

// Pipeline wires a workbook source to a store for one run.
type Pipeline struct {
	source Source
	store  Store
	log    *slog.Logger
}

// NewPipeline creates a pipeline. The logger carries run-scoped fields
// (run id) set up by the caller.
func NewPipeline(source Source, store Store, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{source: source, store: store, log: logger}
}

// loadStep ties an entity type to its loading pass.
type loadStep struct {
	entity Entity
	run    func(*Pipeline, context.Context, *RunSummary) error
}

// loadSequence is the dependency order the loader walks. Later entries
// reference surrogate ids committed by earlier ones.
var loadSequence = []loadStep{
	{EntityRestaurant, (*Pipeline).loadRestaurants},
	{EntityDish, (*Pipeline).loadDishes},
	{EntityClient, (*Pipeline).loadClients},
	{EntityEmployee, (*Pipeline).loadEmployees},
	{EntitySupplier, (*Pipeline).loadSuppliers},
	{EntityOrder, (*Pipeline).loadOrders},
	{EntityDelivery, (*Pipeline).loadDeliveries},
}

// LoadOrder returns the entity types in the order the pipeline commits
// them.
func LoadOrder() []Entity {
	order := make([]Entity, len(loadSequence))
	for i, step := range loadSequence {
		order[i] = step.entity
	}
	return order
}

// Run executes the full load. A returned error is fatal; the store is
// left in whatever partially-loaded state existed at the failure point,
// and operators re-run from a clean store.
func (p *Pipeline) Run(ctx context.Context) (*RunSummary, error) {
	summary := newRunSummary()
	for _, step := range loadSequence {
		if err := step.run(p, ctx, summary); err != nil {
			return summary, err
		}
	}
	p.log.Info("load complete",
		"restaurants", summary.Loaded[EntityRestaurant],
		"dishes", summary.Loaded[EntityDish],
		"clients", summary.Loaded[EntityClient],
		"employees", summary.Loaded[EntityEmployee],
		"suppliers", summary.Loaded[EntitySupplier],
		"orders", summary.Loaded[EntityOrder],
		"deliveries", summary.Loaded[EntityDelivery],
	)
	return summary, nil
}

func (p *Pipeline) loadRestaurants(ctx context.Context, summary *RunSummary) error {
	header, rows, ok, err := p.extract(SheetRestaurants, summary)
	if err != nil {
		return err
	}
	if ok {
		restaurants, report := NormalizeRestaurants(SheetRestaurants, header, rows)
		p.logReport(report)
		summary.Dropped[EntityRestaurant] += report.DroppedCount()
		if err := loadRows(ctx, EntityRestaurant, restaurants, p.store.InsertRestaurant, summary); err != nil {
			return err
		}
	}

	// Restaurant names are about to be used as lookups; ambiguity is a
	// setup problem, not a row problem.
	dups, err := p.store.DuplicateRestaurantNames(ctx)
	if err != nil {
		return fmt.Errorf("check restaurant names: %w", err)
	}
	if len(dups) > 0 {
		return &ConfigurationError{
			Reason: fmt.Sprintf("duplicate restaurant names make lookups ambiguous: %s", strings.Join(dups, ", ")),
		}
	}
	return nil
}

func (p *Pipeline) loadDishes(ctx context.Context, summary *RunSummary) error {
	return p.forEachRestaurant(ctx, MenuSheetPrefix, summary, func(id int64, sheet string, header []string, rows [][]string) error {
		dishes, report := NormalizeDishes(sheet, id, header, rows)
		p.logReport(report)
		summary.Dropped[EntityDish] += report.DroppedCount()
		return loadRows(ctx, EntityDish, dishes, p.store.InsertDish, summary)
	})
}

func (p *Pipeline) loadClients(ctx context.Context, summary *RunSummary) error {
	err := p.forEachRestaurant(ctx, ClientSheetPrefix, summary, func(id int64, sheet string, header []string, rows [][]string) error {
		clients, report := NormalizeClients(sheet, id, header, rows)
		p.logReport(report)
		summary.Dropped[EntityClient] += report.DroppedCount()
		return loadRows(ctx, EntityClient, clients, p.store.InsertClient, summary)
	})
	if err != nil {
		return err
	}

	// Same reasoning as restaurant names: orders resolve client ids by
	// email, so duplicates must surface now.
	dups, err := p.store.DuplicateClientEmails(ctx)
	if err != nil {
		return fmt.Errorf("check client emails: %w", err)
	}
	if len(dups) > 0 {
		return &ConfigurationError{
			Reason: fmt.Sprintf("duplicate client emails make lookups ambiguous: %s", strings.Join(dups, ", ")),
		}
	}
	return nil
}

func (p *Pipeline) loadEmployees(ctx context.Context, summary *RunSummary) error {
	header, rows, ok, err := p.extract(SheetEmployees, summary)
	if err != nil || !ok {
		return err
	}
	employees, report, err := NormalizeEmployees(ctx, SheetEmployees, header, rows, p.store.RestaurantIDByName)
	if err != nil {
		return err
	}
	p.logReport(report)
	summary.Dropped[EntityEmployee] += report.DroppedCount()
	return loadRows(ctx, EntityEmployee, employees, p.store.InsertEmployee, summary)
}

func (p *Pipeline) loadSuppliers(ctx context.Context, summary *RunSummary) error {
	header, rows, ok, err := p.extract(SheetSuppliers, summary)
	if err != nil || !ok {
		return err
	}
	suppliers, report := NormalizeSuppliers(SheetSuppliers, header, rows)
	p.logReport(report)
	summary.Dropped[EntitySupplier] += report.DroppedCount()
	return loadRows(ctx, EntitySupplier, suppliers, p.store.InsertSupplier, summary)
}

// loadOrders re-reads the client sheets: the source has no separate
// order sheet, order fields ride on client rows. Runs after clients are
// committed so emails resolve.
func (p *Pipeline) loadOrders(ctx context.Context, summary *RunSummary) error {
	names, err := p.store.RestaurantNames(ctx)
	if err != nil {
		return fmt.Errorf("list restaurants: %w", err)
	}
	for _, name := range names {
		sheet := ClientSheetPrefix + Slugify(name)
		if !p.source.HasSheet(sheet) {
			continue // absence already reported during the client pass
		}
		header, rows, err := p.source.Extract(sheet)
		if err != nil {
			return fmt.Errorf("extract %s: %w", sheet, err)
		}
		orders, report, err := NormalizeOrders(ctx, sheet, header, rows, p.store.ClientIDByEmail)
		if err != nil {
			return err
		}
		p.logReport(report)
		summary.Dropped[EntityOrder] += report.DroppedCount()
		if err := loadRows(ctx, EntityOrder, orders, p.store.InsertOrder, summary); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) loadDeliveries(ctx context.Context, summary *RunSummary) error {
	return p.forEachRestaurant(ctx, StockSheetPrefix, summary, func(id int64, sheet string, header []string, rows [][]string) error {
		deliveries, report := NormalizeDeliveries(sheet, id, header, rows)
		p.logReport(report)
		summary.Dropped[EntityDelivery] += report.DroppedCount()
		return loadRows(ctx, EntityDelivery, deliveries, p.store.InsertDelivery, summary)
	})
}

// forEachRestaurant walks committed restaurants and hands each one's
// per-restaurant sheet (prefix + slug) to fn. Absent sheets skip that
// restaurant, they are not an error.
func (p *Pipeline) forEachRestaurant(ctx context.Context, prefix string, summary *RunSummary, fn func(id int64, sheet string, header []string, rows [][]string) error) error {
	names, err := p.store.RestaurantNames(ctx)
	if err != nil {
		return fmt.Errorf("list restaurants: %w", err)
	}
	for _, name := range names {
		sheet := prefix + Slugify(name)
		header, rows, ok, err := p.extract(sheet, summary)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		id, found, err := p.store.RestaurantIDByName(ctx, name)
		if err != nil {
			return fmt.Errorf("resolve restaurant %q: %w", name, err)
		}
		if !found {
			// Name came from the store a moment ago; a miss means the
			// store changed under us.
			return fmt.Errorf("restaurant %q vanished during run", name)
		}
		if err := fn(id, sheet, header, rows); err != nil {
			return err
		}
	}
	return nil
}

// extract probes for a sheet and reads it. ok=false means the sheet is
// absent and the entity type is skipped for that source.
func (p *Pipeline) extract(sheet string, summary *RunSummary) (header []string, rows [][]string, ok bool, err error) {
	if !p.source.HasSheet(sheet) {
		p.log.Info("sheet absent, skipped", "sheet", sheet)
		summary.Skipped = append(summary.Skipped, sheet)
		return nil, nil, false, nil
	}
	header, rows, err = p.source.Extract(sheet)
	if err != nil {
		return nil, nil, false, fmt.Errorf("extract %s: %w", sheet, err)
	}
	return header, rows, true, nil
}

// logReport surfaces row-level filtering: one warning per dropped row
// with enough detail to fix the source workbook by hand, plus a count.
func (p *Pipeline) logReport(report *FilterReport) {
	for _, d := range report.Dropped {
		p.log.Warn("row filtered",
			"entity", string(report.Entity),
			"sheet", d.Sheet,
			"line", d.Line,
			"key", d.Key,
			"reason", d.Reason,
		)
	}
	if report.DroppedCount() > 0 {
		p.log.Warn("rows dropped",
			"entity", string(report.Entity),
			"sheet", report.Sheet,
			"total", report.Total,
			"kept", report.Kept,
			"dropped", report.DroppedCount(),
		)
	}
}

// loadRows appends a normalized batch, preserving row order. The first
// store rejection aborts with a LoadError; there is no partial-row
// rollback beyond statement atomicity.
func loadRows[T any](ctx context.Context, entity Entity, rows []T, insert func(context.Context, T) error, summary *RunSummary) error {
	for _, r := range rows {
		if err := insert(ctx, r); err != nil {
			return &LoadError{Entity: entity, Err: err}
		}
	}
	summary.Loaded[entity] += len(rows)
	return nil
}

// Slugify derives the per-restaurant sheet suffix from a restaurant
// name: lowercased, accents stripped, separators collapsed to
// underscores.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(name)) {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining marks left over from NFD decomposition
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '\'' || r == '_':
			b.WriteRune('_')
		}
	}
	return b.String()
}
