package repository

import (
	"context"

	"github.com/bizmanager/backend/internal/domain/entity"
	"github.com/bizmanager/backend/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByPhone(ctx context.Context, userID uuid.UUID, phone string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns the user's customers with page-based pagination, optionally
	// filtered by a name/phone/GSTIN search term.
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// ListWithCursor returns the user's customers using cursor-based pagination.
	ListWithCursor(ctx context.Context, userID uuid.UUID, params *pagination.CursorParams, search string) ([]entity.Customer, error)
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
}
