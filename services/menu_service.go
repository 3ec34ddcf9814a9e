package services

import (
	"errors"
	"log"
	"strings"

	"github.com/YibestBelay/shegaCafe/entity"
	"github.com/YibestBelay/shegaCafe/pkg/apperr"
	"github.com/YibestBelay/shegaCafe/pkg/authz"
	"github.com/YibestBelay/shegaCafe/pkg/imagestore"
	"github.com/YibestBelay/shegaCafe/repository"

	"gorm.io/gorm"
)

// MenuService owns menu visibility and menu management.
type MenuService struct {
	repo   *repository.MenuRepository
	images imagestore.Store
}

func NewMenuService(repo *repository.MenuRepository, images imagestore.Store) *MenuService {
	return &MenuService{repo: repo, images: images}
}

// List returns all items for staff, only available ones for everyone else.
// Unrecognized categories are coerced to Food on the way out; the stored
// value is left untouched.
func (s *MenuService) List(requesterRole string) ([]entity.MenuItem, error) {
	var (
		items []entity.MenuItem
		err   error
	)
	if entity.IsStaff(requesterRole) {
		items, err = s.repo.FindAll()
	} else {
		items, err = s.repo.FindAvailable()
	}
	if err != nil {
		return nil, apperr.Upstream(err)
	}

	for i := range items {
		items[i].Category = entity.NormalizeCategory(items[i].Category)
	}
	return items, nil
}

// Get hides unavailable items from non-staff callers entirely.
func (s *MenuService) Get(requesterRole string, id uint) (*entity.MenuItem, error) {
	item, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, apperr.Upstream(err)
	}
	if !item.IsAvailable && !entity.IsStaff(requesterRole) {
		return nil, apperr.NotFound("menu item not found")
	}
	item.Category = entity.NormalizeCategory(item.Category)
	return item, nil
}

func (s *MenuService) ToggleAvailability(actorRole string, itemID uint, isAvailable bool) error {
	if !authz.Allowed(actorRole, authz.ActionToggleMenuAvailability) {
		return apperr.Unauthorized("Chef or Admin only")
	}
	affected, err := s.repo.UpdateAvailability(itemID, isAvailable)
	if err != nil {
		return apperr.Upstream(err)
	}
	if affected == 0 {
		return apperr.NotFound("menu item not found")
	}
	return nil
}

type CreateMenuItemIn struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	ImageID     string  `json:"imageId"`
}

func (s *MenuService) Create(actorRole string, in *CreateMenuItemIn) (*entity.MenuItem, error) {
	if !authz.Allowed(actorRole, authz.ActionManageMenu) {
		return nil, apperr.Unauthorized("Chef or Admin only")
	}
	name := strings.TrimSpace(in.Name)
	if err := validateMenuFields(name, in.Description, in.Price, in.Category); err != nil {
		return nil, err
	}

	count, err := s.repo.CountByName(name)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	if count > 0 {
		return nil, apperr.Conflict("a menu item with this name already exists")
	}

	item := &entity.MenuItem{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		ImageID:     in.ImageID,
		IsAvailable: true,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, apperr.Upstream(err)
	}
	return item, nil
}

type UpdateMenuItemIn struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	ImageID     *string  `json:"imageId"`
	IsAvailable *bool    `json:"isAvailable"`
}

// Update merges the supplied fields over the stored record. A replaced
// image is released best-effort; a failed release never fails the update.
func (s *MenuService) Update(actorRole string, id uint, in *UpdateMenuItemIn) (*entity.MenuItem, error) {
	if !authz.Allowed(actorRole, authz.ActionManageMenu) {
		return nil, apperr.Unauthorized("Chef or Admin only")
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, apperr.Upstream(err)
	}

	fields := map[string]any{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Validation("name is required")
		}
		count, err := s.repo.CountByNameExcluding(name, id)
		if err != nil {
			return nil, apperr.Upstream(err)
		}
		if count > 0 {
			return nil, apperr.Conflict("a menu item with this name already exists")
		}
		fields["name"] = name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, apperr.Validation("price must not be negative")
		}
		fields["price"] = *in.Price
	}
	if in.Category != nil {
		if !entity.IsCategory(*in.Category) {
			return nil, apperr.Validation("invalid category, must be one of: Food, Drink, Dessert")
		}
		fields["category"] = *in.Category
	}
	if in.IsAvailable != nil {
		fields["is_available"] = *in.IsAvailable
	}

	oldImageID := ""
	if in.Image != nil || in.ImageID != nil {
		newID := existing.ImageID
		if in.ImageID != nil {
			newID = *in.ImageID
		}
		if newID != existing.ImageID {
			oldImageID = existing.ImageID
		}
		if in.Image != nil {
			fields["image"] = *in.Image
		}
		if in.ImageID != nil {
			fields["image_id"] = *in.ImageID
		}
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(id, fields); err != nil {
			return nil, apperr.Upstream(err)
		}
	}

	if oldImageID != "" {
		if err := s.images.Destroy(oldImageID); err != nil {
			log.Printf("release image %s failed: %v", oldImageID, err)
		}
	}

	return s.Get(actorRole, id)
}

// Delete releases the hosted image best-effort, then removes the record.
func (s *MenuService) Delete(actorRole string, id uint) error {
	if !authz.Allowed(actorRole, authz.ActionManageMenu) {
		return apperr.Unauthorized("Chef or Admin only")
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("menu item not found")
		}
		return apperr.Upstream(err)
	}

	if existing.ImageID != "" {
		if err := s.images.Destroy(existing.ImageID); err != nil {
			log.Printf("release image %s failed: %v", existing.ImageID, err)
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return apperr.Upstream(err)
	}
	return nil
}

func validateMenuFields(name, description string, price float64, category string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validation("name is required")
	}
	if strings.TrimSpace(description) == "" {
		return apperr.Validation("description is required")
	}
	if price < 0 {
		return apperr.Validation("price must not be negative")
	}
	if !entity.IsCategory(category) {
		return apperr.Validation("invalid category, must be one of: Food, Drink, Dessert")
	}
	return nil
}
