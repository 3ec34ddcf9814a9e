package repository

import (
	"github.com/YibestBelay/shegaCafe/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindAll returns every item, id ascending. Staff listing.
func (r *MenuRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id ASC").Find(&items).Error
	return items, err
}

// FindAvailable returns only items visible to non-staff callers.
func (r *MenuRepository) FindAvailable() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("is_available = ?", true).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CountByName(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

// CountByNameExcluding is the rename check for updates.
func (r *MenuRepository) CountByNameExcluding(name string, id uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).
		Where("name = ? AND id <> ?", name, id).
		Count(&count).Error
	return count, err
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MenuRepository) UpdateAvailability(id uint, isAvailable bool) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("is_available", isAvailable)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
