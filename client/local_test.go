package client

import (
	"fmt"
	"testing"

	"github.com/YibestBelay/shegaCafe/entity"
	"github.com/YibestBelay/shegaCafe/repository"
	"github.com/YibestBelay/shegaCafe/services"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var clientDBSeq int

func newLocalAPI(t *testing.T) (*LocalAPI, *gorm.DB) {
	t.Helper()

	clientDBSeq++
	dsn := fmt.Sprintf("file:client_test_%d?mode=memory&cache=shared", clientDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	menuSvc := services.NewMenuService(repository.NewMenuRepository(db), nil)
	orderSvc := services.NewOrderService(db, repository.NewOrderRepository(db))
	userSvc := services.NewUserService(repository.NewUserRepository(db))
	return NewLocalAPI(menuSvc, orderSvc, userSvc), db
}

// End to end: cart → checkout → refetched orders mirror the store.
func TestCachePlaceOrderThroughServices(t *testing.T) {
	api, db := newLocalAPI(t)

	item := entity.MenuItem{Name: "Macchiato", Description: "d", Price: 40, Category: entity.CategoryDrink, IsAvailable: true}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	c := NewCache(api, "customer")
	if err := c.Refetch(); err != nil {
		t.Fatalf("Refetch: %v", err)
	}

	c.AddToCart(item.ID)
	c.AddToCart(item.ID)
	if err := c.PlaceOrder("Sara", "5", ""); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	orders := c.Orders()
	if len(orders) != 1 {
		t.Fatalf("orders = %d, want 1", len(orders))
	}
	got := orders[0]
	if got.Status != entity.StatusReceived || got.PaymentStatus != entity.PaymentPending {
		t.Errorf("order state = %q/%q", got.Status, got.PaymentStatus)
	}
	if got.Total != 80 {
		t.Errorf("total = %v, want 80", got.Total)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Errorf("items = %+v", got.Items)
	}
}

// A chef-backed cache is refused checkout and keeps its cart.
func TestCachePlaceOrderChefDenied(t *testing.T) {
	api, db := newLocalAPI(t)

	item := entity.MenuItem{Name: "Shiro", Description: "d", Price: 12, Category: entity.CategoryFood, IsAvailable: true}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	c := NewCache(api, "Chef")
	if err := c.Refetch(); err != nil {
		t.Fatalf("Refetch: %v", err)
	}

	c.AddToCart(item.ID)
	if err := c.PlaceOrder("Chef", "1", ""); err == nil {
		t.Fatal("chef checkout should fail")
	}
	if len(c.Cart()) != 1 {
		t.Error("cart lost after denied checkout")
	}

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("order rows created: %d", count)
	}
}
