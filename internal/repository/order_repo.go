package repository

import (
	"context"
	"time"

	"github.com/Italzenergy/AlzConnect-app/internal/dto"
	"github.com/Italzenergy/AlzConnect-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]model.Order, int64, error)
	Update(ctx context.Context, o *model.Order) error
	AppendEvent(ctx context.Context, orderID uuid.UUID, eventType, note string) (*model.OrderEvent, error)
	ListEvents(ctx context.Context, orderID uuid.UUID) ([]model.OrderEvent, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Preload("Customer").First(&o, "id = ?", id).Error
	return &o, err
}

func (r *orderRepo) List(ctx context.Context, filter dto.OrderFilter) ([]model.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{})
	if filter.State != "" {
		q = q.Where("state = ?", filter.State)
	}
	if filter.CustomerID != "" {
		q = q.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Search != "" {
		q = q.Where("tracking_code ILIKE ? OR description ILIKE ?",
			"%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	err := q.Preload("Customer").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepo) Update(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

// AppendEvent inserts a history row with a server-assigned, gap-free
// per-order sequence. The owning order row is locked for the duration of the
// transaction so concurrent appends for the same order serialize; the
// composite unique index on (order_id, seq) backs the guarantee.
func (r *orderRepo) AppendEvent(ctx context.Context, orderID uuid.UUID, eventType, note string) (*model.OrderEvent, error) {
	var ev model.OrderEvent
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o model.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, "id = ?", orderID).Error; err != nil {
			return err
		}

		var maxSeq int
		if err := tx.Model(&model.OrderEvent{}).
			Where("order_id = ?", orderID).
			Select("COALESCE(MAX(seq), 0)").
			Scan(&maxSeq).Error; err != nil {
			return err
		}

		ev = model.OrderEvent{
			OrderID:   orderID,
			Seq:       maxSeq + 1,
			EventType: eventType,
			Note:      note,
			Date:      time.Now().UTC(),
		}
		return tx.Create(&ev).Error
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *orderRepo) ListEvents(ctx context.Context, orderID uuid.UUID) ([]model.OrderEvent, error) {
	var events []model.OrderEvent
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("seq ASC").
		Find(&events).Error
	return events, err
}
