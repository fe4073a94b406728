package repositories

import "github.com/silvaronna/marketplace-api/models"

type fileProductRepository struct {
	store *FileStore
}

func NewFileProductRepository(store *FileStore) ProductRepository {
	return &fileProductRepository{store: store}
}

func (r *fileProductRepository) GetAll(owner string) ([]models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.store.load()
	if owner == "" {
		return doc.Products, nil
	}

	filtered := []models.Product{}
	for _, product := range doc.Products {
		if product.Owner == owner {
			filtered = append(filtered, product)
		}
	}
	return filtered, nil
}

func (r *fileProductRepository) FindByName(name string) (*models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.store.load()
	for i := range doc.Products {
		if doc.Products[i].Name == name {
			product := doc.Products[i]
			return &product, nil
		}
	}
	return nil, nil
}

func (r *fileProductRepository) Add(product models.Product) (*models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.store.load()
	doc.Products = append(doc.Products, product)
	if err := r.store.save(doc); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *fileProductRepository) Update(name string, product models.Product) (*models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.store.load()
	for i := range doc.Products {
		if doc.Products[i].Name == name {
			doc.Products[i] = product
			if err := r.store.save(doc); err != nil {
				return nil, err
			}
			return &product, nil
		}
	}
	return nil, nil
}

func (r *fileProductRepository) Delete(name string) (*models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.store.load()
	for i := range doc.Products {
		if doc.Products[i].Name == name {
			deleted := doc.Products[i]
			doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
			if err := r.store.save(doc); err != nil {
				return nil, err
			}
			return &deleted, nil
		}
	}
	return nil, nil
}
