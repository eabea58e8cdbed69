package repository

import (
	"context"

	"github.com/Italzenergy/AlzConnect-app/internal/dto"
	"github.com/Italzenergy/AlzConnect-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RouteRepository interface {
	Create(ctx context.Context, rt *model.Route) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Route, error)
	List(ctx context.Context, filter dto.RouteFilter) ([]model.Route, int64, error)
	Update(ctx context.Context, rt *model.Route) error
}

type routeRepo struct{ db *gorm.DB }

func NewRouteRepository(db *gorm.DB) RouteRepository { return &routeRepo{db: db} }

func (r *routeRepo) Create(ctx context.Context, rt *model.Route) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *routeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Route, error) {
	var rt model.Route
	err := r.db.WithContext(ctx).
		Preload("Order").
		Preload("Carrier").
		First(&rt, "id = ?", id).Error
	return &rt, err
}

func (r *routeRepo) List(ctx context.Context, filter dto.RouteFilter) ([]model.Route, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Route{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var routes []model.Route
	err := q.Preload("Order").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&routes).Error
	return routes, total, err
}

func (r *routeRepo) Update(ctx context.Context, rt *model.Route) error {
	return r.db.WithContext(ctx).Save(rt).Error
}
