package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"superdaily/internal/model"
)

const productsTable = "products"

// ProductRepository defines product read operations.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	FirstOrCreate(ctx context.Context, record *model.ProductRecord) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// ListAll returns every products row with all columns as text.
func (r *productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.WithContext(ctx).Table(productsTable).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0)
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		product := make(model.Product, len(columns))
		for i, name := range columns {
			product[i].Name = name
			if values[i].Valid {
				v := values[i].String
				product[i].Value = &v
			}
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// FirstOrCreate inserts record unless a product with the same name exists.
// Only a count is read back: the DSN runs with parseTime=False.
func (r *productRepository) FirstOrCreate(ctx context.Context, record *model.ProductRecord) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.ProductRecord{}).
		Where("name = ?", record.Name).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(record).Error
}
