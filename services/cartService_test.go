package services

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/silvaronna/marketplace-api/models"
)

func qty(v float64) *float64 { return &v }

// memoryCartRepo is a stateful fake so multi-step scenarios read naturally.
func memoryCartRepo() *fakeCartRepository {
	carts := map[string][]models.CartItem{}
	return &fakeCartRepository{
		GetCartFn: func(username string) (*models.Cart, error) {
			items, ok := carts[username]
			if !ok {
				items = []models.CartItem{}
				carts[username] = items
			}
			return &models.Cart{Username: username, Items: append([]models.CartItem{}, items...)}, nil
		},
		UpdateCartFn: func(username string, cart models.Cart) (*models.Cart, error) {
			items := append([]models.CartItem{}, cart.Items...)
			carts[username] = items
			return &models.Cart{Username: username, Items: items}, nil
		},
	}
}

func newCartService(users ...models.User) *CartService {
	return NewCartService(memoryCartRepo(), &fakeUserRepository{FindByUsernameFn: userLookup(users...)})
}

func TestGetCartLazilyCreates(t *testing.T) {
	svc := newCartService(buyerOne)

	cart, err := svc.GetCart("buyerOne")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Username != "buyerOne" || len(cart.Items) != 0 {
		t.Fatalf("expected a fresh empty cart, got %+v", cart)
	}
}

func TestGetCartRequiresBuyer(t *testing.T) {
	svc := newCartService(sellerOne)

	_, err := svc.GetCart("ghost")
	assertAppError(t, err, http.StatusNotFound)

	_, err = svc.GetCart("sellerOne")
	assertAppError(t, err, http.StatusForbidden)
}

func TestAddToCart(t *testing.T) {
	svc := newCartService(buyerOne)

	cart, err := svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []models.CartItem{{ProductID: "sku123", Quantity: 5}}
	if !reflect.DeepEqual(cart.Items, want) {
		t.Fatalf("expected %v, got %v", want, cart.Items)
	}
}

func TestAddToCartMergesQuantities(t *testing.T) {
	svc := newCartService(buyerOne)

	if _, err := svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart, err := svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 7 {
		t.Fatalf("expected a single merged line item with quantity 7, got %v", cart.Items)
	}
}

// Two adds of the same product are equivalent to one add with the summed
// quantity.
func TestAddToCartMergeIsCommutative(t *testing.T) {
	split := newCartService(buyerOne)
	split.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(3)})
	splitCart, err := split.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	single := newCartService(buyerOne)
	singleCart, err := single.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(splitCart.Items, singleCart.Items) {
		t.Fatalf("expected %v, got %v", singleCart.Items, splitCart.Items)
	}
}

func TestAddToCartQuantityDefaultsToOne(t *testing.T) {
	svc := newCartService(buyerOne)

	cart, err := svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", cart.Items[0].Quantity)
	}
}

func TestAddToCartQuantityTruncatesTowardZero(t *testing.T) {
	svc := newCartService(buyerOne)

	cart, err := svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(2.9)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected truncated quantity 2, got %d", cart.Items[0].Quantity)
	}

	// 0.9 truncates to 0, which is rejected.
	_, err = svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(0.9)})
	assertAppError(t, err, http.StatusBadRequest)
}

func TestAddToCartPayloadValidation(t *testing.T) {
	svc := newCartService(buyerOne)

	_, err := svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "", Quantity: qty(1)})
	assertAppError(t, err, http.StatusBadRequest)

	_, err = svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "   ", Quantity: qty(1)})
	assertAppError(t, err, http.StatusBadRequest)

	_, err = svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(0)})
	assertAppError(t, err, http.StatusBadRequest)

	_, err = svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(-3)})
	assertAppError(t, err, http.StatusBadRequest)
}

func TestRemoveFromCartDecrements(t *testing.T) {
	svc := newCartService(buyerOne)
	svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(5)})

	cart, err := svc.RemoveFromCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %v", cart.Items)
	}
}

func TestRemoveFromCartDrainsLineItem(t *testing.T) {
	// Reducing to exactly zero removes the line item.
	svc := newCartService(buyerOne)
	svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(5)})

	cart, err := svc.RemoveFromCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected an empty cart, got %v", cart.Items)
	}

	// Reducing below zero also removes it; no negative quantity survives.
	svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(2)})
	cart, err = svc.RemoveFromCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected an empty cart, got %v", cart.Items)
	}
}

func TestRemoveFromCartMissingProduct(t *testing.T) {
	svc := newCartService(buyerOne)
	svc.AddToCart("buyerOne", models.CartItemInput{ProductID: "sku123", Quantity: qty(1)})

	_, err := svc.RemoveFromCart("buyerOne", models.CartItemInput{ProductID: "sku999", Quantity: qty(1)})
	assertAppError(t, err, http.StatusNotFound)
}

func TestCartLineItemLifecycle(t *testing.T) {
	svc := newCartService(models.User{Username: "a", Name: "A", Email: "a@x.com", Role: "buyer"})

	cart, err := svc.AddToCart("a", models.CartItemInput{ProductID: "p1", Quantity: qty(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cart.Items, []models.CartItem{{ProductID: "p1", Quantity: 3}}) {
		t.Fatalf("unexpected items: %v", cart.Items)
	}

	cart, err = svc.AddToCart("a", models.CartItemInput{ProductID: "p1", Quantity: qty(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cart.Items, []models.CartItem{{ProductID: "p1", Quantity: 5}}) {
		t.Fatalf("unexpected items: %v", cart.Items)
	}

	cart, err = svc.RemoveFromCart("a", models.CartItemInput{ProductID: "p1", Quantity: qty(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected an empty cart, got %v", cart.Items)
	}
}
