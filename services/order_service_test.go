package services

import (
	"testing"

	"github.com/YibestBelay/shegaCafe/entity"
	"github.com/YibestBelay/shegaCafe/pkg/apperr"
	"github.com/YibestBelay/shegaCafe/repository"

	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db)), db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{
		Name:        name,
		Description: name,
		Price:       price,
		Category:    entity.CategoryFood,
		IsAvailable: true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return item
}

func seedOrder(t *testing.T, db *gorm.DB, status, paymentStatus string) entity.Order {
	t.Helper()
	order := entity.Order{
		CustomerName:  "Abebe",
		TableNumber:   "4",
		Total:         20,
		Status:        status,
		PaymentStatus: paymentStatus,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	item := entity.OrderItem{OrderID: order.ID, MenuItemID: 1, Quantity: 1}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed order item: %v", err)
	}
	return order
}

func kindOf(t *testing.T, err error) apperr.Kind {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	kind, ok := apperr.KindOf(err)
	if !ok {
		t.Fatalf("not an apperr: %v", err)
	}
	return kind
}

func TestCreateOrder(t *testing.T) {
	svc, db := newOrderService(t)
	item := seedMenuItem(t, db, "Doro Wat", 10)

	order, err := svc.Create(entity.RoleGuest, &CreateOrderReq{
		CustomerName: "Sara",
		TableNumber:  "7",
		Items:        []OrderItemIn{{MenuItemID: item.ID, Quantity: 2}},
		Total:        20,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if order.Status != entity.StatusReceived {
		t.Errorf("status = %q, want %q", order.Status, entity.StatusReceived)
	}
	if order.PaymentStatus != entity.PaymentPending {
		t.Errorf("paymentStatus = %q, want %q", order.PaymentStatus, entity.PaymentPending)
	}
	if order.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
	if len(order.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(order.Items))
	}
	if order.Items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", order.Items[0].Quantity)
	}
	if order.Items[0].MenuItem.Name != "Doro Wat" {
		t.Errorf("nested menu item not populated: %+v", order.Items[0].MenuItem)
	}
}

func TestCreateOrderRejectsStaff(t *testing.T) {
	svc, db := newOrderService(t)
	item := seedMenuItem(t, db, "Shiro", 12)

	for _, role := range []string{entity.RoleChef, "Admin"} {
		_, err := svc.Create(role, &CreateOrderReq{
			CustomerName: "Sara",
			TableNumber:  "7",
			Items:        []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
			Total:        12,
		})
		if kind := kindOf(t, err); kind != apperr.KindUnauthorized {
			t.Errorf("role %q: kind = %v, want Unauthorized", role, kind)
		}
	}

	// no partial side effects on denial
	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders persisted after denied create: %d", count)
	}
}

func TestCreateOrderRejectsTotalMismatch(t *testing.T) {
	svc, db := newOrderService(t)
	item := seedMenuItem(t, db, "Macchiato", 10)

	_, err := svc.Create(entity.RoleCustomer, &CreateOrderReq{
		CustomerName: "Sara",
		TableNumber:  "2",
		Items:        []OrderItemIn{{MenuItemID: item.ID, Quantity: 2}},
		Total:        15, // stale client price
	})
	if kind := kindOf(t, err); kind != apperr.KindValidation {
		t.Errorf("kind = %v, want Validation", kind)
	}

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders persisted after rejected total: %d", count)
	}
}

func TestCreateOrderUnknownMenuItem(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.Create(entity.RoleWaiter, &CreateOrderReq{
		CustomerName: "Sara",
		TableNumber:  "2",
		Items:        []OrderItemIn{{MenuItemID: 999, Quantity: 1}},
		Total:        5,
	})
	if kind := kindOf(t, err); kind != apperr.KindValidation {
		t.Errorf("kind = %v, want Validation", kind)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, db := newOrderService(t)
	order := seedOrder(t, db, entity.StatusReceived, entity.PaymentPending)

	if err := svc.UpdateStatus(entity.RoleWaiter, order.ID, entity.StatusPreparing); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	var got entity.Order
	db.First(&got, order.ID)
	if got.Status != entity.StatusPreparing {
		t.Errorf("status = %q, want %q", got.Status, entity.StatusPreparing)
	}
	if got.PaymentStatus != entity.PaymentPending {
		t.Errorf("payment changed: %q", got.PaymentStatus)
	}
	if !got.Timestamp.After(order.Timestamp) {
		t.Error("timestamp not refreshed")
	}
}

func TestUpdateStatusGates(t *testing.T) {
	svc, db := newOrderService(t)
	order := seedOrder(t, db, entity.StatusReceived, entity.PaymentPending)

	if err := svc.UpdateStatus("", order.ID, entity.StatusReady); kindOf(t, err) != apperr.KindLoginRequired {
		t.Errorf("guest: want LoginRequired, got %v", err)
	}
	if err := svc.UpdateStatus(entity.RoleCustomer, order.ID, entity.StatusReady); kindOf(t, err) != apperr.KindUnauthorized {
		t.Errorf("customer: want Unauthorized, got %v", err)
	}
	if err := svc.UpdateStatus(entity.RoleChef, order.ID, "Teleported"); kindOf(t, err) != apperr.KindValidation {
		t.Errorf("bad status: want Validation, got %v", err)
	}
	if err := svc.UpdateStatus(entity.RoleChef, 999, entity.StatusReady); kindOf(t, err) != apperr.KindNotFound {
		t.Errorf("missing order: want NotFound, got %v", err)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	svc, db := newOrderService(t)
	order := seedOrder(t, db, entity.StatusDelivered, entity.PaymentPending)

	// Chef may move orders but never touch payment
	if err := svc.UpdatePaymentStatus(entity.RoleChef, order.ID, entity.PaymentPaid); kindOf(t, err) != apperr.KindUnauthorized {
		t.Errorf("chef: want Unauthorized, got %v", err)
	}

	if err := svc.UpdatePaymentStatus("Waiter", order.ID, entity.PaymentPaid); err != nil {
		t.Fatalf("waiter UpdatePaymentStatus: %v", err)
	}

	var got entity.Order
	db.First(&got, order.ID)
	if got.PaymentStatus != entity.PaymentPaid {
		t.Errorf("paymentStatus = %q, want Paid", got.PaymentStatus)
	}
	if got.Status != entity.StatusDelivered {
		t.Errorf("order status changed: %q", got.Status)
	}
}

func TestClearCompleted(t *testing.T) {
	svc, db := newOrderService(t)
	settled := seedOrder(t, db, entity.StatusDelivered, entity.PaymentPaid)
	cancelled := seedOrder(t, db, entity.StatusCancelled, entity.PaymentPaid)
	unpaid := seedOrder(t, db, entity.StatusDelivered, entity.PaymentPending)
	open := seedOrder(t, db, entity.StatusPreparing, entity.PaymentPaid)

	if err := svc.ClearCompleted(entity.RoleWaiter); kindOf(t, err) != apperr.KindUnauthorized {
		t.Fatal("non-admin cleared orders")
	}
	if err := svc.ClearCompleted(entity.RoleAdmin); err != nil {
		t.Fatalf("ClearCompleted: %v", err)
	}

	for _, id := range []uint{settled.ID, cancelled.ID} {
		var gone entity.Order
		if err := db.First(&gone, id).Error; err == nil {
			t.Errorf("settled order %d survived", id)
		}
	}
	for _, id := range []uint{unpaid.ID, open.ID} {
		var gone entity.Order
		if err := db.First(&gone, id).Error; err != nil {
			t.Errorf("order %d should have survived: %v", id, err)
		}
	}

	// no orphaned items for the deleted orders
	var orphans int64
	db.Model(&entity.OrderItem{}).
		Where("order_id IN ?", []uint{settled.ID, cancelled.ID}).
		Count(&orphans)
	if orphans != 0 {
		t.Errorf("orphaned order items: %d", orphans)
	}
}

func TestDeleteOrder(t *testing.T) {
	svc, db := newOrderService(t)
	order := seedOrder(t, db, entity.StatusReceived, entity.PaymentPending)

	if err := svc.Delete(entity.RoleChef, order.ID); kindOf(t, err) != apperr.KindUnauthorized {
		t.Fatal("non-admin deleted an order")
	}
	if err := svc.Delete(entity.RoleAdmin, 999); kindOf(t, err) != apperr.KindNotFound {
		t.Error("missing order: want NotFound")
	}

	if err := svc.Delete(entity.RoleAdmin, order.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var got entity.Order
	if err := db.First(&got, order.ID).Error; err == nil {
		t.Error("order row survived delete")
	}
	var items int64
	db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&items)
	if items != 0 {
		t.Errorf("orphaned order items: %d", items)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc, db := newOrderService(t)
	first := seedOrder(t, db, entity.StatusReceived, entity.PaymentPending)
	second := seedOrder(t, db, entity.StatusReceived, entity.PaymentPending)

	// bump the first order's activity
	if err := svc.UpdateStatus(entity.RoleAdmin, first.ID, entity.StatusReady); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	orders, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("orders = %d, want 2", len(orders))
	}
	if orders[0].ID != first.ID || orders[1].ID != second.ID {
		t.Errorf("order listing not by latest activity: %d, %d", orders[0].ID, orders[1].ID)
	}
}
