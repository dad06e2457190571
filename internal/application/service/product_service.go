package service

import (
	"context"

	"github.com/bizmanager/backend/internal/domain/entity"
	"github.com/bizmanager/backend/internal/domain/repository"
	"github.com/bizmanager/backend/pkg/apperror"
	"github.com/bizmanager/backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UserID            uuid.UUID
	Name              string
	Description       *string
	Category          *string
	Brand             *string
	SKU               *string
	HSNCode           *string
	Unit              string
	Price             decimal.Decimal
	CostPrice         *decimal.Decimal
	TaxRate           *decimal.Decimal
	StockQuantity     int
	LowStockThreshold *int
}

// CreateProduct creates a new product. The tax rate defaults to the standard
// 18% slab when not provided.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Price.IsNegative() {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	product := &entity.Product{
		UserID:        input.UserID,
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Brand:         input.Brand,
		SKU:           input.SKU,
		HSNCode:       input.HSNCode,
		Unit:          input.Unit,
		Price:         input.Price,
		CostPrice:     input.CostPrice,
		TaxRate:       decimal.NewFromInt(18),
		StockQuantity: input.StockQuantity,
	}
	if product.Unit == "" {
		product.Unit = "pcs"
	}
	if input.TaxRate != nil {
		product.TaxRate = *input.TaxRate
	}
	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	} else {
		product.LowStockThreshold = 10
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != userID {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProductsInput represents the list products input
type ListProductsInput struct {
	UserID     uuid.UUID
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// ListProducts lists the user's products
func (s *ProductService) ListProducts(ctx context.Context, input *ListProductsInput) (*pagination.PaginatedResult[entity.Product], error) {
	params := &repository.ProductFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Category:   input.Category,
		LowStock:   input.LowStock,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	products, total, err := s.productRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// GetLowStockProducts returns products at or below their alert threshold
func (s *ProductService) GetLowStockProducts(ctx context.Context, userID uuid.UUID) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx, userID)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	UserID            uuid.UUID
	ID                uuid.UUID
	Name              *string
	Description       *string
	Category          *string
	Brand             *string
	SKU               *string
	HSNCode           *string
	Unit              *string
	Price             *decimal.Decimal
	CostPrice         *decimal.Decimal
	TaxRate           *decimal.Decimal
	StockQuantity     *int
	LowStockThreshold *int
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if product.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Price != nil && input.Price.IsNegative() {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Category != nil {
		product.Category = input.Category
	}
	if input.Brand != nil {
		product.Brand = input.Brand
	}
	if input.SKU != nil {
		product.SKU = input.SKU
	}
	if input.HSNCode != nil {
		product.HSNCode = input.HSNCode
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.CostPrice != nil {
		product.CostPrice = input.CostPrice
	}
	if input.TaxRate != nil {
		product.TaxRate = *input.TaxRate
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, userID, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	if product.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.productRepo.Delete(ctx, id)
}
