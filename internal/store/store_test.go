package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"restaurant-loader/internal/core"
)

const schemaScript = "../../schema/schema.sql"

func text(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }

func number(f float64) sql.NullFloat64 { return sql.NullFloat64{Float64: f, Valid: true} }

func id(n int64) sql.NullInt64 { return sql.NullInt64{Int64: n, Valid: true} }

func openTestStore(t *testing.T) (string, *Store) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "restaurant.db")
	if err := Bootstrap(context.Background(), dbPath, schemaScript); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return dbPath, s
}

// ----------------------------------------------------------------------
// Bootstrap
// ----------------------------------------------------------------------

func TestBootstrapIdempotent(t *testing.T) {
	ctx := context.Background()
	dbPath, s := openTestStore(t)

	if err := s.InsertRestaurant(ctx, core.RestaurantRow{Name: text("Le Gourmet")}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Second bootstrap must leave the populated database alone.
	if err := Bootstrap(ctx, dbPath, schemaScript); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}

	names, err := s.RestaurantNames(ctx)
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if len(names) != 1 || names[0] != "Le Gourmet" {
		t.Errorf("names after re-bootstrap = %v", names)
	}
}

func TestBootstrapMissingSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "restaurant.db")

	err := Bootstrap(context.Background(), dbPath, filepath.Join(t.TempDir(), "absent.sql"))
	var cerr *core.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("want ConfigurationError, got %v", err)
	}
	if _, err := os.Stat(dbPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("database file left behind after failed bootstrap")
	}
}

func TestBootstrapBrokenSchema(t *testing.T) {
	dir := t.TempDir()
	badSchema := filepath.Join(dir, "schema.sql")
	if err := os.WriteFile(badSchema, []byte("CREATE TABEL broken ("), 0o644); err != nil {
		t.Fatal(err)
	}
	dbPath := filepath.Join(dir, "restaurant.db")

	err := Bootstrap(context.Background(), dbPath, badSchema)
	var cerr *core.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("want ConfigurationError, got %v", err)
	}
	// A half-applied schema must not survive as a plausible-looking file.
	if _, err := os.Stat(dbPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("partial database file left behind after failed schema script")
	}
}

func TestDrop(t *testing.T) {
	dbPath, s := openTestStore(t)
	s.Close()

	if err := Drop(dbPath); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, err := os.Stat(dbPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("database file still present after Drop")
	}
	// Dropping an absent database is a no-op.
	if err := Drop(dbPath); err != nil {
		t.Fatalf("second drop: %v", err)
	}
}

// ----------------------------------------------------------------------
// Natural-key lookups
// ----------------------------------------------------------------------

func TestResolvers(t *testing.T) {
	ctx := context.Background()
	_, s := openTestStore(t)

	for _, name := range []string{"Le Gourmet", "Chez Martin"} {
		if err := s.InsertRestaurant(ctx, core.RestaurantRow{Name: text(name)}); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	names, err := s.RestaurantNames(ctx)
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	// Insertion order, not alphabetical.
	if len(names) != 2 || names[0] != "Le Gourmet" || names[1] != "Chez Martin" {
		t.Errorf("names = %v", names)
	}

	rid, found, err := s.RestaurantIDByName(ctx, "Le Gourmet")
	if err != nil || !found {
		t.Fatalf("RestaurantIDByName: id=%d found=%v err=%v", rid, found, err)
	}
	if _, found, err := s.RestaurantIDByName(ctx, "La Pergola"); err != nil || found {
		t.Errorf("unknown name: found=%v err=%v", found, err)
	}

	if err := s.InsertClient(ctx, core.ClientRow{
		RestaurantID: id(rid),
		FirstName:    text("Alice"),
		LastName:     text("Dupont"),
		Email:        text("alice@example.com"),
	}); err != nil {
		t.Fatalf("insert client: %v", err)
	}

	cid, found, err := s.ClientIDByEmail(ctx, "alice@example.com")
	if err != nil || !found || cid == 0 {
		t.Fatalf("ClientIDByEmail: id=%d found=%v err=%v", cid, found, err)
	}
	if _, found, err := s.ClientIDByEmail(ctx, "nobody@example.com"); err != nil || found {
		t.Errorf("unknown email: found=%v err=%v", found, err)
	}
}

func TestDuplicateDetection(t *testing.T) {
	ctx := context.Background()
	_, s := openTestStore(t)

	dups, err := s.DuplicateRestaurantNames(ctx)
	if err != nil {
		t.Fatalf("duplicates: %v", err)
	}
	if len(dups) != 0 {
		t.Errorf("duplicates on empty store = %v", dups)
	}

	for _, name := range []string{"Le Gourmet", "Chez Martin", "Le Gourmet"} {
		if err := s.InsertRestaurant(ctx, core.RestaurantRow{Name: text(name)}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	dups, err = s.DuplicateRestaurantNames(ctx)
	if err != nil {
		t.Fatalf("duplicates: %v", err)
	}
	if len(dups) != 1 || dups[0] != "Le Gourmet" {
		t.Errorf("duplicates = %v", dups)
	}

	rid, _, err := s.RestaurantIDByName(ctx, "Chez Martin")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := s.InsertClient(ctx, core.ClientRow{
			RestaurantID: id(rid),
			FirstName:    text("Alice"),
			LastName:     text("Dupont"),
			Email:        text("alice@example.com"),
		}); err != nil {
			t.Fatalf("insert client: %v", err)
		}
	}
	emails, err := s.DuplicateClientEmails(ctx)
	if err != nil {
		t.Fatalf("duplicate emails: %v", err)
	}
	if len(emails) != 1 || emails[0] != "alice@example.com" {
		t.Errorf("duplicate emails = %v", emails)
	}
}

// ----------------------------------------------------------------------
// Schema constraints
// ----------------------------------------------------------------------

func TestSchemaConstraints(t *testing.T) {
	ctx := context.Background()
	_, s := openTestStore(t)

	if err := s.InsertRestaurant(ctx, core.RestaurantRow{Name: text("Le Gourmet")}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	rid, _, err := s.RestaurantIDByName(ctx, "Le Gourmet")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.InsertDish(ctx, core.DishRow{RestaurantID: id(rid), Name: text("Remise"), Price: number(-2)}); err == nil {
		t.Error("negative price accepted despite CHECK constraint")
	}
	if err := s.InsertEmployee(ctx, core.EmployeeRow{
		RestaurantID: id(rid),
		FirstName:    text("Nina"),
		LastName:     text("Leroy"),
		Position:     text("SOMMELIER"),
	}); err == nil {
		t.Error("unknown position accepted despite CHECK constraint")
	}
	if err := s.InsertDish(ctx, core.DishRow{RestaurantID: id(99), Name: text("Soupe"), Price: number(5)}); err == nil {
		t.Error("dangling restaurant id accepted despite foreign key")
	}
}

// ----------------------------------------------------------------------
// Operator mutations
// ----------------------------------------------------------------------

func TestRestaurantMutations(t *testing.T) {
	ctx := context.Background()
	_, s := openTestStore(t)

	rid, err := s.CreateRestaurant(ctx, "Le Gourmet", "1 Rue X")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	addr := "2 Rue Y"
	ok, err := s.UpdateRestaurant(ctx, rid, nil, &addr)
	if err != nil || !ok {
		t.Fatalf("update address: ok=%v err=%v", ok, err)
	}

	// Partial update leaves the name untouched.
	var name, address string
	if err := s.db.QueryRowContext(ctx,
		`SELECT name, address FROM restaurant WHERE restaurant_id = ?`, rid,
	).Scan(&name, &address); err != nil {
		t.Fatal(err)
	}
	if name != "Le Gourmet" || address != "2 Rue Y" {
		t.Errorf("after update: name=%q address=%q", name, address)
	}

	if _, err := s.UpdateRestaurant(ctx, rid, nil, nil); !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Errorf("empty update err = %v", err)
	}
	if ok, err := s.UpdateRestaurant(ctx, rid+100, &name, nil); err != nil || ok {
		t.Errorf("update of unknown id: ok=%v err=%v", ok, err)
	}

	if ok, err := s.DeleteRestaurant(ctx, rid); err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	if ok, err := s.DeleteRestaurant(ctx, rid); err != nil || ok {
		t.Errorf("second delete: ok=%v err=%v", ok, err)
	}
}
