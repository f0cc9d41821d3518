package repos

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"ultrapopular/internal/catalog"
	"ultrapopular/internal/domain"
)

type StoreRepo struct{ db *sqlx.DB }

func NewStoreRepo(db *sqlx.DB) *StoreRepo { return &StoreRepo{db: db} }

const storeCols = `id, name, city, contact_label, contact_address`

func (r *StoreRepo) ListStores() ([]domain.Store, error) {
	out := []domain.Store{}
	err := r.db.Select(&out, `SELECT `+storeCols+` FROM stores ORDER BY position`)
	return out, err
}

func (r *StoreRepo) FindStore(id string) (domain.Store, error) {
	var s domain.Store
	err := r.db.Get(&s, `SELECT `+storeCols+` FROM stores WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Store{}, catalog.ErrNotFound
	}
	return s, err
}

// StoresByCity suggests stores for the customer's city (case-insensitive).
func (r *StoreRepo) StoresByCity(city string) ([]domain.Store, error) {
	out := []domain.Store{}
	err := r.db.Select(&out, `
	  SELECT `+storeCols+`
	  FROM stores
	  WHERE LOWER(city) = LOWER(?)
	  ORDER BY position
	`, strings.TrimSpace(city))
	return out, err
}

// Interface checks.
var (
	_ catalog.Products  = (*ProductRepo)(nil)
	_ catalog.Directory = (*StoreRepo)(nil)
	_ catalog.Products  = (*catalog.Static)(nil)
	_ catalog.Directory = (*catalog.Static)(nil)
)
