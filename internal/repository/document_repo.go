package repository

import (
	"context"

	"github.com/Italzenergy/AlzConnect-app/internal/dto"
	"github.com/Italzenergy/AlzConnect-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *model.Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error)
	List(ctx context.Context, filter dto.DocumentFilter) ([]model.Document, error)
	Update(ctx context.Context, d *model.Document) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateAssignment(ctx context.Context, a *model.DocumentAssignment) error
	FindAssignmentByID(ctx context.Context, id uuid.UUID) (*model.DocumentAssignment, error)
	ListAssignmentsByDocument(ctx context.Context, documentID uuid.UUID) ([]model.DocumentAssignment, error)
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}

type documentRepo struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) DocumentRepository { return &documentRepo{db: db} }

func (r *documentRepo) Create(ctx context.Context, d *model.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *documentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	var d model.Document
	err := r.db.WithContext(ctx).Preload("Uploader").First(&d, "id = ?", id).Error
	return &d, err
}

func (r *documentRepo) List(ctx context.Context, filter dto.DocumentFilter) ([]model.Document, error) {
	q := r.db.WithContext(ctx).Model(&model.Document{})
	if filter.Search != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	var docs []model.Document
	err := q.Preload("Uploader").Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *documentRepo) Update(ctx context.Context, d *model.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Document{}, "id = ?", id).Error
}

func (r *documentRepo) CreateAssignment(ctx context.Context, a *model.DocumentAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *documentRepo) FindAssignmentByID(ctx context.Context, id uuid.UUID) (*model.DocumentAssignment, error) {
	var a model.DocumentAssignment
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *documentRepo) ListAssignmentsByDocument(ctx context.Context, documentID uuid.UUID) ([]model.DocumentAssignment, error) {
	var assignments []model.DocumentAssignment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("document_id = ?", documentID).
		Order("assigned_at ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *documentRepo) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DocumentAssignment{}, "id = ?", id).Error
}
