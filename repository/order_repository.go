package repository

import (
	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).
		Preload("Items").
		Preload("Items.Meal").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Meal").
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForProvider(providerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("provider_id = ?", providerID).
		Preload("Items").
		Preload("Items.Meal").
		Preload("User").
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll(limit int) ([]entity.Order, error) {
	var orders []entity.Order
	q := r.DB.Preload("Items").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard moves an order from one exact status to another in a
// single conditional UPDATE. Zero affected rows means the order was not in
// the expected status (invalid transition, or a concurrent update won).
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
