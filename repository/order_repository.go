package repository

import (
	"time"

	"github.com/YibestBelay/shegaCafe/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderWithItems loads the order plus its items and each item's menu
// detail, items in id order.
func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("Items.MenuItem").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders returns every order, newest activity first, items preloaded.
func (r *OrderRepository) ListOrders() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("Items.MenuItem").
		Order("timestamp DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(orderID uint, status string, at time.Time) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"status": status, "timestamp": at})
	return res.RowsAffected, res.Error
}

// UpdatePaymentStatus leaves the timestamp alone.
func (r *OrderRepository) UpdatePaymentStatus(orderID uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", status)
	return res.RowsAffected, res.Error
}

// DeleteOrderCascade removes the order's items then the order itself, in
// one transaction so readers never see an order without its items.
func (r *OrderRepository) DeleteOrderCascade(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}

// DeleteSettled bulk-deletes items then orders for orders that are both
// delivered-or-cancelled and paid. Caller wraps it in a transaction.
func (r *OrderRepository) DeleteSettled(tx *gorm.DB) error {
	settled := tx.Model(&entity.Order{}).
		Select("id").
		Where("status IN ? AND payment_status = ?",
			[]string{entity.StatusDelivered, entity.StatusCancelled}, entity.PaymentPaid)

	if err := tx.Where("order_id IN (?)", settled).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Where("status IN ? AND payment_status = ?",
		[]string{entity.StatusDelivered, entity.StatusCancelled}, entity.PaymentPaid).
		Delete(&entity.Order{}).Error
}

// ---------------- Helpers ----------------

// GetMenuBasics fetches the fields order pricing needs.
func (r *OrderRepository) GetMenuBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, price, is_available").First(&m, id).Error
	return m, err
}
