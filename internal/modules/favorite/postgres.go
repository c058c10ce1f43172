package favorite

import (
	"context"
	"database/sql"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
)

// Schema creates the favorite_products table used by PostgresStore.
const Schema = `
CREATE TABLE IF NOT EXISTS favorite_products (
    id          INTEGER PRIMARY KEY,
    category    TEXT NOT NULL DEFAULT '',
    count       INTEGER NOT NULL DEFAULT 0,
    description TEXT NOT NULL DEFAULT '',
    image       TEXT NOT NULL DEFAULT '',
    image_two   TEXT NOT NULL DEFAULT '',
    image_three TEXT NOT NULL DEFAULT '',
    price       DOUBLE PRECISION,
    rate        DOUBLE PRECISION NOT NULL DEFAULT 0,
    title       TEXT NOT NULL,
    sale_state  INTEGER NOT NULL DEFAULT 0,
    sale_price  DOUBLE PRECISION,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type PostgresStore struct{ db *sql.DB }

func NewPostgresStore(db *sql.DB) *PostgresStore { return &PostgresStore{db: db} }

// Migrate applies Schema.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, Schema)
	return err
}

// Close is a no-op; the pool belongs to the caller.
func (s *PostgresStore) Close() error { return nil }

func scanFavorite(scan func(...interface{}) error) (catalog.Product, error) {
	var (
		p         catalog.Product
		price     sql.NullFloat64
		salePrice sql.NullFloat64
	)
	err := scan(&p.ID, &p.Category, &p.Count, &p.Description, &p.Image, &p.ImageTwo,
		&p.ImageThree, &price, &p.Rate, &p.Title, &p.SaleState, &salePrice)
	if err != nil {
		return catalog.Product{}, err
	}
	p.Price = price.Float64
	if salePrice.Valid {
		v := salePrice.Float64
		p.SalePrice = &v
	}
	p.IsFavorite = true
	return p, nil
}

func (s *PostgresStore) GetFavorites(ctx context.Context) ([]catalog.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id,category,count,description,image,image_two,image_three,price,rate,title,sale_state,sale_price
		FROM favorite_products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []catalog.Product{}
	for rows.Next() {
		p, err := scanFavorite(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *PostgresStore) GetFavoritesNamesList(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT title FROM favorite_products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		names = append(names, title)
	}
	return names, rows.Err()
}

func (s *PostgresStore) AddToFavorites(ctx context.Context, p catalog.Product) error {
	var salePrice interface{}
	if p.SalePrice != nil {
		salePrice = *p.SalePrice
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO favorite_products
		  (id, category, count, description, image, image_two, image_three, price, rate, title, sale_state, sale_price)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE
		SET category=EXCLUDED.category, count=EXCLUDED.count, description=EXCLUDED.description,
		    image=EXCLUDED.image, image_two=EXCLUDED.image_two, image_three=EXCLUDED.image_three,
		    price=EXCLUDED.price, rate=EXCLUDED.rate, title=EXCLUDED.title,
		    sale_state=EXCLUDED.sale_state, sale_price=EXCLUDED.sale_price`,
		p.ID, p.Category, p.Count, p.Description, p.Image, p.ImageTwo, p.ImageThree,
		p.Price, p.Rate, p.Title, p.SaleState, salePrice)
	return err
}

func (s *PostgresStore) DeleteFromFavorites(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM favorite_products WHERE id=$1`, id)
	return err
}

func (s *PostgresStore) ClearFavorites(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM favorite_products`)
	return err
}
