package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"ultrapopular/internal/catalog"
	"ultrapopular/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, price, original_price, size, image`

// ListProducts returns the catalog in display order.
func (r *ProductRepo) ListProducts() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY position`)
	return out, err
}

func (r *ProductRepo) FindProduct(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, catalog.ErrNotFound
	}
	return p, err
}
