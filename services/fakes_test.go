package services

import (
	"errors"
	"testing"

	"github.com/silvaronna/marketplace-api/apperrors"
	"github.com/silvaronna/marketplace-api/models"
)

// ---- fake repositories, one func field per method ----

type fakeUserRepository struct {
	GetAllFn         func() ([]models.User, error)
	FindByUsernameFn func(username string) (*models.User, error)
	AddFn            func(user models.User) (*models.User, error)
	UpdateFn         func(user *models.User) error
	DeleteFn         func(username string) (*models.User, error)
}

func (f *fakeUserRepository) GetAll() ([]models.User, error) { return f.GetAllFn() }
func (f *fakeUserRepository) FindByUsername(username string) (*models.User, error) {
	return f.FindByUsernameFn(username)
}
func (f *fakeUserRepository) Add(user models.User) (*models.User, error) { return f.AddFn(user) }
func (f *fakeUserRepository) Update(user *models.User) error             { return f.UpdateFn(user) }
func (f *fakeUserRepository) Delete(username string) (*models.User, error) {
	return f.DeleteFn(username)
}

type fakeProductRepository struct {
	GetAllFn     func(owner string) ([]models.Product, error)
	FindByNameFn func(name string) (*models.Product, error)
	AddFn        func(product models.Product) (*models.Product, error)
	UpdateFn     func(name string, product models.Product) (*models.Product, error)
	DeleteFn     func(name string) (*models.Product, error)
}

func (f *fakeProductRepository) GetAll(owner string) ([]models.Product, error) {
	return f.GetAllFn(owner)
}
func (f *fakeProductRepository) FindByName(name string) (*models.Product, error) {
	return f.FindByNameFn(name)
}
func (f *fakeProductRepository) Add(product models.Product) (*models.Product, error) {
	return f.AddFn(product)
}
func (f *fakeProductRepository) Update(name string, product models.Product) (*models.Product, error) {
	return f.UpdateFn(name, product)
}
func (f *fakeProductRepository) Delete(name string) (*models.Product, error) {
	return f.DeleteFn(name)
}

type fakeCartRepository struct {
	GetCartFn    func(username string) (*models.Cart, error)
	UpdateCartFn func(username string, cart models.Cart) (*models.Cart, error)
}

func (f *fakeCartRepository) GetCart(username string) (*models.Cart, error) {
	return f.GetCartFn(username)
}
func (f *fakeCartRepository) UpdateCart(username string, cart models.Cart) (*models.Cart, error) {
	return f.UpdateCartFn(username, cart)
}

// userLookup builds a FindByUsername func backed by a fixed user set.
func userLookup(users ...models.User) func(username string) (*models.User, error) {
	return func(username string) (*models.User, error) {
		for i := range users {
			if users[i].Username == username {
				user := users[i]
				return &user, nil
			}
		}
		return nil, nil
	}
}

func assertAppError(t *testing.T, err error, code int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %d, got nil", code)
	}
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperrors.Error, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %d, got %d (%s)", code, appErr.Code, appErr.Message)
	}
}
