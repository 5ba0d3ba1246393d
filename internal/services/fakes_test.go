package services

import (
	"sort"

	"foodcourt/internal/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. Lookups that miss return
// gorm.ErrRecordNotFound, matching the real repositories.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeMenuRepo struct {
	items  map[uint]*models.MenuItem
	nextID uint
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[uint]*models.MenuItem), nextID: 1}
}

func (f *fakeMenuRepo) Create(item *models.MenuItem) error {
	item.ID = f.nextID
	f.nextID++
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeMenuRepo) GetByID(id uint) (*models.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeMenuRepo) GetByName(name string) (*models.MenuItem, error) {
	for _, item := range f.items {
		if item.Name == name {
			copied := *item
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMenuRepo) List(category string, availability *bool) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range f.items {
		if category != "" && item.Category != category {
			continue
		}
		if availability != nil && item.Availability != *availability {
			continue
		}
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (f *fakeMenuRepo) Update(item *models.MenuItem) error {
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeMenuRepo) Delete(id uint) error {
	delete(f.items, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[uint]*models.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order), nextID: 1}
}

func (f *fakeOrderRepo) Create(order *models.Order) error {
	order.ID = f.nextID
	f.nextID++
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

func (f *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (f *fakeOrderRepo) GetAll() ([]models.Order, error) {
	var orders []models.Order
	for _, order := range f.orders {
		orders = append(orders, *order)
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (f *fakeOrderRepo) UpdateStatus(id uint, status string) error {
	order, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

func sortNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID > orders[j].ID
	})
}
