package services

import (
	"math"

	"bean-bloom/models"
	"bean-bloom/repositories"
)

const DefaultPageSize = 40

// catalogSource is the repository surface the product service reads
// from.
type catalogSource interface {
	ListProducts(f models.FilterSpec) ([]models.Product, int, error)
	GetProductByID(id int) (*models.Product, error)
	ListRubros() ([]models.Rubro, error)
	ListCategories() ([]models.Category, error)
}

type ProductService struct {
	productRepo catalogSource
}

func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
	}
}

// ListProducts returns one page of the filtered catalog plus the rubro
// and category taxonomies the filter sidebar renders from.
func (s *ProductService) ListProducts(f models.FilterSpec) (*models.ProductListResponse, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}

	products, total, err := s.productRepo.ListProducts(f)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(f.PageSize)))
	if totalPages == 0 {
		// An empty result set still reads as one empty page.
		totalPages = 1
		f.Page = 1
	} else if f.Page > totalPages {
		// Out-of-range pages clamp to the last one.
		f.Page = totalPages
		products, _, err = s.productRepo.ListProducts(f)
		if err != nil {
			return nil, err
		}
	}

	rubros, err := s.productRepo.ListRubros()
	if err != nil {
		return nil, err
	}
	categories, err := s.productRepo.ListCategories()
	if err != nil {
		return nil, err
	}

	return &models.ProductListResponse{
		Results:    products,
		Page:       f.Page,
		TotalPages: totalPages,
		Rubros:     rubros,
		Categories: categories,
	}, nil
}

func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	return s.productRepo.GetProductByID(id)
}
