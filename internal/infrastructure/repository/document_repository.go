package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizmanager/backend/internal/domain/entity"
	"github.com/bizmanager/backend/internal/domain/enum"
	domainRepo "github.com/bizmanager/backend/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) domainRepo.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, document *entity.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Customer").
		First(&document, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &document, err
}

func (r *documentRepository) GetByNumber(ctx context.Context, number string) (*entity.Document, error) {
	var document entity.Document
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Customer").
		First(&document, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &document, err
}

// Update replaces the document row and its line items in one transaction
func (r *documentRepository) Update(ctx context.Context, document *entity.Document) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", document.ID).
			Delete(&entity.DocumentItem{}).Error; err != nil {
			return err
		}
		for i := range document.Items {
			document.Items[i].ID = uuid.Nil
			document.Items[i].DocumentID = document.ID
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(document).Error
	})
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).
			Delete(&entity.DocumentItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Document{}, "id = ?", id).Error
	})
}

func (r *documentRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.DocumentFilterParams) ([]entity.Document, int64, error) {
	var documents []entity.Document
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Document{}).Where("user_id = ?", userID)

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.Search != "" {
		query = query.Where("number ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "issue_date DESC, created_at DESC"
	if params.SortBy != "" {
		direction := "DESC"
		if params.SortOrder == "asc" {
			direction = "ASC"
		}
		switch params.SortBy {
		case "issue_date", "due_date", "grand_total", "number":
			order = fmt.Sprintf("%s %s", params.SortBy, direction)
		}
	}

	params.Pagination.Validate()
	err := query.Preload("Customer").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(order).
		Find(&documents).Error

	return documents, total, err
}

func (r *documentRepository) CountByType(ctx context.Context, userID uuid.UUID) (map[enum.DocumentType]int64, error) {
	var rows []struct {
		Type  enum.DocumentType
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Select("type, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.DocumentType]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}
