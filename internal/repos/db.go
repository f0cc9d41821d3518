package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"ultrapopular/internal/catalog"
	"ultrapopular/internal/domain"
	applog "ultrapopular/internal/log"
)

// OpenDB opens the catalog database, creates the schema and loads the
// built-in products and stores. The storefront only ever reads from it.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// ":memory:" is per connection; one connection keeps a single database.
	db.SetMaxOpenConns(1)
	if err = prepare(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func prepare(db *sqlx.DB) error {
	if err := db.Ping(); err != nil {
		return err
	}
	if err := ensureSchema(db); err != nil {
		return err
	}
	return seed(db, catalog.SeedProducts(), catalog.SeedStores())
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  name TEXT NOT NULL,
  price TEXT NOT NULL,
  original_price TEXT NULL,
  size TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_products_position ON products(position);

-- Stores
CREATE TABLE IF NOT EXISTS stores(
  id TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  name TEXT NOT NULL,
  city TEXT NOT NULL,
  contact_label TEXT NOT NULL DEFAULT '',
  contact_address TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_stores_city ON stores(LOWER(city));
`
	_, err := db.Exec(schema)
	return err
}

// seed upserts the given rows (idempotent; safe to run every start).
func seed(db *sqlx.DB, products []domain.Product, stores []domain.Store) error {
	if err := catalog.Check(products, stores); err != nil {
		return err
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i, p := range products {
		if _, err := tx.Exec(`
			INSERT INTO products(id, position, name, price, original_price, size, image)
			VALUES(?,?,?,?,?,?,?)
			ON CONFLICT(id) DO UPDATE SET
			  position = excluded.position, name = excluded.name, price = excluded.price,
			  original_price = excluded.original_price, size = excluded.size, image = excluded.image
		`, p.ID, i, p.Name, p.Price, p.OriginalPrice, p.Size, p.Image); err != nil {
			return err
		}
	}
	for i, s := range stores {
		if _, err := tx.Exec(`
			INSERT INTO stores(id, position, name, city, contact_label, contact_address)
			VALUES(?,?,?,?,?,?)
			ON CONFLICT(id) DO UPDATE SET
			  position = excluded.position, name = excluded.name, city = excluded.city,
			  contact_label = excluded.contact_label, contact_address = excluded.contact_address
		`, s.ID, i, s.Name, s.City, s.ContactLabel, s.ContactAddress); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	applog.Info(nil, "catalog.seed", map[string]any{"products": len(products), "stores": len(stores)})
	return nil
}
