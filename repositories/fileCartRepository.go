package repositories

import "github.com/silvaronna/marketplace-api/models"

type fileCartRepository struct {
	store *FileStore
}

func NewFileCartRepository(store *FileStore) CartRepository {
	return &fileCartRepository{store: store}
}

func (r *fileCartRepository) GetCart(username string) (*models.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.store.load()
	for i := range doc.Carts {
		if doc.Carts[i].Username == username {
			cart := models.Cart{
				Username: username,
				Items:    append([]models.CartItem{}, doc.Carts[i].Items...),
			}
			return &cart, nil
		}
	}

	// First access creates an empty cart.
	cart := models.Cart{Username: username, Items: []models.CartItem{}}
	doc.Carts = append(doc.Carts, cart)
	if err := r.store.save(doc); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *fileCartRepository) UpdateCart(username string, cart models.Cart) (*models.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	cart.Username = username

	doc := r.store.load()
	replaced := false
	for i := range doc.Carts {
		if doc.Carts[i].Username == username {
			doc.Carts[i] = cart
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Carts = append(doc.Carts, cart)
	}

	if err := r.store.save(doc); err != nil {
		return nil, err
	}
	return &cart, nil
}
