package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// CreateProductInput carries a new catalog item.
type CreateProductInput struct {
	CompanyID        string          `json:"company_id"`
	Name             string          `json:"name"`
	Cost             decimal.Decimal `json:"cost"`
	Article          string          `json:"article"`
	Barcode          string          `json:"barcode"`
	ItemType         model.ItemType  `json:"item_type"`
	DekartParameters []float64       `json:"dekart_parameters,omitempty"`
}

// ProductService registers catalog products.
type ProductService interface {
	CreateProduct(ctx context.Context, in CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService constructs a ProductService.
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, in CreateProductInput) (*model.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	for _, lookup := range []struct {
		field string
		find  func(context.Context, string) (*model.Product, error)
		value string
	}{
		{"article", s.repo.FindByArticle, in.Article},
		{"barcode", s.repo.FindByBarcode, in.Barcode},
	} {
		_, err := lookup.find(ctx, lookup.value)
		if err == nil {
			return nil, fmt.Errorf("%w: product with this %s", ErrUniqueViolation, lookup.field)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("find product by %s: %w", lookup.field, err)
		}
	}

	p := &model.Product{
		ID:               uuid.NewString(),
		CompanyID:        in.CompanyID,
		Name:             strings.TrimSpace(in.Name),
		Cost:             in.Cost,
		Article:          in.Article,
		Barcode:          in.Barcode,
		ItemType:         in.ItemType,
		DekartParameters: in.DekartParameters,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, translate(err, "product")
	}
	return p, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, badRequest("product id is required")
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "product")
	}
	return p, nil
}

func validateProduct(in CreateProductInput) error {
	switch {
	case in.CompanyID == "":
		return badRequest("company is required")
	case strings.TrimSpace(in.Name) == "":
		return badRequest("name is required")
	case !in.Cost.IsPositive():
		return badRequest("cost must be positive")
	case in.Article == "" || in.Barcode == "":
		return badRequest("article and barcode are required")
	case !in.ItemType.Valid():
		return badRequest("unknown item type %q", in.ItemType)
	}

	if in.ItemType == model.ItemTypeNotBoxed {
		if len(in.DekartParameters) > 0 {
			return badRequest("not_boxed items carry no dekart_parameters")
		}
		return nil
	}
	if len(in.DekartParameters) != 3 {
		return badRequest("boxed items need 3 dekart_parameters")
	}
	for _, d := range in.DekartParameters {
		if d <= 0 {
			return badRequest("dekart_parameters must be positive")
		}
	}
	return nil
}
