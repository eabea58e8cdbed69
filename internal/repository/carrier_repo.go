package repository

import (
	"context"

	"github.com/Italzenergy/AlzConnect-app/internal/dto"
	"github.com/Italzenergy/AlzConnect-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarrierRepository interface {
	Create(ctx context.Context, c *model.Carrier) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Carrier, error)
	List(ctx context.Context, filter dto.CarrierFilter) ([]model.Carrier, error)
	Update(ctx context.Context, c *model.Carrier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type carrierRepo struct{ db *gorm.DB }

func NewCarrierRepository(db *gorm.DB) CarrierRepository { return &carrierRepo{db: db} }

func (r *carrierRepo) Create(ctx context.Context, c *model.Carrier) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *carrierRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Carrier, error) {
	var c model.Carrier
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *carrierRepo) List(ctx context.Context, filter dto.CarrierFilter) ([]model.Carrier, error) {
	q := r.db.WithContext(ctx).Model(&model.Carrier{})
	if filter.State != "" {
		q = q.Where("state = ?", filter.State)
	}
	var carriers []model.Carrier
	err := q.Order("name ASC").Find(&carriers).Error
	return carriers, err
}

func (r *carrierRepo) Update(ctx context.Context, c *model.Carrier) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *carrierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Carrier{}, "id = ?", id).Error
}
