package repository

import (
	"context"

	"github.com/bizmanager/backend/internal/domain/entity"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/pkg/pagination"
	"github.com/google/uuid"
)

// DocumentFilterParams contains filtering parameters for document queries
type DocumentFilterParams struct {
	Pagination *pagination.PaginationParams
	Type       *enum.DocumentType
	CustomerID *uuid.UUID
	Search     string
	SortBy     string
	SortOrder  string
}

// DocumentRepository defines the interface for document data operations
type DocumentRepository interface {
	// Create persists the document together with its line items.
	Create(ctx context.Context, document *entity.Document) error
	// GetByID loads the document with items and customer preloaded.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	GetByNumber(ctx context.Context, number string) (*entity.Document, error)
	// Update replaces the document row and its line items in one transaction.
	Update(ctx context.Context, document *entity.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *DocumentFilterParams) ([]entity.Document, int64, error)
	CountByType(ctx context.Context, userID uuid.UUID) (map[enum.DocumentType]int64, error)
}
