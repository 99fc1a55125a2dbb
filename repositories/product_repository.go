package repositories

import (
	"context"
	"fmt"

	"bean-bloom/config"
	"bean-bloom/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `p.id, p.name, p.slug, p.price, p.discount, COALESCE(p.discount_name, ''),
	p.featured, COALESCE(p.short_description, ''), COALESCE(p.long_description, ''),
	COALESCE(p.image, ''), p.category_id, p.stock, p.created_at`

// buildFilter translates a FilterSpec into a WHERE clause over the
// products/categories/rubros join.
func buildFilter(f models.FilterSpec) (string, []interface{}) {
	where := " WHERE true"
	args := []interface{}{}
	n := 1

	if f.Search != "" {
		where += fmt.Sprintf(
			" AND (p.name ILIKE $%d OR p.short_description ILIKE $%d OR p.long_description ILIKE $%d)",
			n, n, n)
		args = append(args, "%"+f.Search+"%")
		n++
	}
	if f.Rubro != "" {
		where += fmt.Sprintf(" AND r.slug = $%d", n)
		args = append(args, f.Rubro)
		n++
	}
	if f.Category != "" {
		where += fmt.Sprintf(" AND c.slug = $%d", n)
		args = append(args, f.Category)
		n++
	}
	return where, args
}

func orderClause(sort string) string {
	switch sort {
	case models.SortPriceAsc:
		return " ORDER BY (p.price - p.discount) ASC, p.id ASC"
	case models.SortPriceDesc:
		return " ORDER BY (p.price - p.discount) DESC, p.id ASC"
	case models.SortNameAsc:
		return " ORDER BY p.name ASC, p.id ASC"
	default:
		return " ORDER BY p.featured DESC, p.name ASC, p.id ASC"
	}
}

// ListProducts returns one page of products matching the filter plus
// the total match count.
func (r *ProductRepository) ListProducts(f models.FilterSpec) ([]models.Product, int, error) {
	from := ` FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN rubros r ON r.id = c.rubro_id`

	where, args := buildFilter(f)

	var total int
	if err := config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*)"+from+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (f.Page - 1) * f.PageSize
	query := "SELECT " + productColumns + from + where + orderClause(f.Sort) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.PageSize, offset)

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var listPrice, discount float64
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &listPrice, &discount, &p.DiscountName,
		&p.Featured, &p.ShortDescription, &p.LongDescription,
		&p.Image, &p.CategoryID, &p.Stock, &p.CreatedAt)
	if err != nil {
		return p, err
	}

	// Effective price is the list price minus the active discount,
	// floored at zero.
	p.OriginalPrice = listPrice
	p.Discount = discount
	p.Price = listPrice - discount
	if p.Price < 0 {
		p.Price = 0
	}
	return p, nil
}

func (r *ProductRepository) GetProductByID(id int) (*models.Product, error) {
	query := "SELECT " + productColumns + ` FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN rubros r ON r.id = c.rubro_id
		WHERE p.id = $1`

	p, err := scanProduct(config.DB.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProductsByIDs loads the given products keyed by id; missing ids are
// simply absent from the result.
func (r *ProductRepository) GetProductsByIDs(ids []int) (map[int]models.Product, error) {
	query := "SELECT " + productColumns + ` FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN rubros r ON r.id = c.rubro_id
		WHERE p.id = ANY($1)`

	rows, err := config.DB.Query(context.Background(), query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := map[int]models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products[p.ID] = p
	}
	return products, rows.Err()
}

func (r *ProductRepository) ListRubros() ([]models.Rubro, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, name, slug FROM rubros ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rubros := []models.Rubro{}
	for rows.Next() {
		var ru models.Rubro
		if err := rows.Scan(&ru.ID, &ru.Name, &ru.Slug); err != nil {
			return nil, err
		}
		rubros = append(rubros, ru)
	}
	return rubros, rows.Err()
}

func (r *ProductRepository) ListCategories() ([]models.Category, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT c.id, c.name, c.slug, c.rubro_id
		 FROM categories c JOIN rubros r ON r.id = c.rubro_id
		 ORDER BY r.name, c.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.RubroID); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}
