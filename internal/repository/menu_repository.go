package repository

import (
	"foodcourt/internal/models"

	"gorm.io/gorm"
)

type MenuRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	GetByName(name string) (*models.MenuItem, error)
	List(category string, availability *bool) ([]models.MenuItem, error)
	Update(item *models.MenuItem) error
	Delete(id uint) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetByName(name string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.Where("name = ?", name).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) List(category string, availability *bool) ([]models.MenuItem, error) {
	query := r.db.Order("category, name")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if availability != nil {
		query = query.Where("availability = ?", *availability)
	}

	var items []models.MenuItem
	err := query.Find(&items).Error
	return items, err
}

func (r *menuRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}
