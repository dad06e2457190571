package service

import (
	"context"
	"time"

	"github.com/bizmanager/backend/internal/domain/entity"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/internal/domain/repository"
	"github.com/bizmanager/backend/pkg/apperror"
	"github.com/bizmanager/backend/pkg/gst"
	"github.com/bizmanager/backend/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	UserID  uuid.UUID
	Name    string
	Phone   string
	Email   *string
	Address *string
	City    *string
	State   string
	Pincode *string
	GSTIN   *string
	Type    enum.CustomerType
}

// CreateCustomer creates a new customer. A GSTIN, when given, must be a
// valid 15-character registration; the state is derived from it when the
// caller left the state blank.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.GSTIN != nil && *input.GSTIN != "" {
		if !gst.ValidateGSTIN(*input.GSTIN) {
			return nil, apperror.NewBadRequestError("Invalid GSTIN format")
		}
		if input.State == "" {
			input.State = gst.StateFromGSTIN(*input.GSTIN)
		}
	}
	if input.State == "" {
		return nil, apperror.NewBadRequestError("Customer state is required")
	}

	existing, err := s.customerRepo.GetByPhone(ctx, input.UserID, input.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A customer with this phone number already exists")
	}

	customer := &entity.Customer{
		UserID:  input.UserID,
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Pincode: input.Pincode,
		GSTIN:   input.GSTIN,
		Type:    input.Type,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, userID, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != userID {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists the user's customers
func (s *CustomerService) ListCustomers(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// ListCustomersWithCursor lists the user's customers using cursor-based pagination
func (s *CustomerService) ListCustomersWithCursor(ctx context.Context, userID uuid.UUID, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Customer], error) {
	customers, err := s.customerRepo.ListWithCursor(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(customers, params.Limit,
		func(c entity.Customer) string { return c.ID.String() },
		func(c entity.Customer) time.Time { return c.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	UserID  uuid.UUID
	ID      uuid.UUID
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	City    *string
	State   *string
	Pincode *string
	GSTIN   *string
	Type    *enum.CustomerType
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if customer.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.GSTIN != nil && *input.GSTIN != "" && !gst.ValidateGSTIN(*input.GSTIN) {
		return nil, apperror.NewBadRequestError("Invalid GSTIN format")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.City != nil {
		customer.City = input.City
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.Pincode != nil {
		customer.Pincode = input.Pincode
	}
	if input.GSTIN != nil {
		customer.GSTIN = input.GSTIN
	}
	if input.Type != nil {
		customer.Type = *input.Type
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, userID, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	if customer.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.customerRepo.Delete(ctx, id)
}
