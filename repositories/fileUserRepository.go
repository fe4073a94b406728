package repositories

import "github.com/silvaronna/marketplace-api/models"

type fileUserRepository struct {
	store *FileStore
}

func NewFileUserRepository(store *FileStore) UserRepository {
	return &fileUserRepository{store: store}
}

func (r *fileUserRepository) GetAll() ([]models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.store.load()
	return doc.Users, nil
}

func (r *fileUserRepository) FindByUsername(username string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.store.load()
	for i := range doc.Users {
		if doc.Users[i].Username == username {
			user := doc.Users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *fileUserRepository) Add(user models.User) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.store.load()
	doc.Users = append(doc.Users, user)
	if err := r.store.save(doc); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *fileUserRepository) Update(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.store.load()
	for i := range doc.Users {
		if doc.Users[i].Username == user.Username {
			doc.Users[i] = *user
			return r.store.save(doc)
		}
	}
	// The service has already checked existence; a vanished record is a no-op.
	return nil
}

func (r *fileUserRepository) Delete(username string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := r.store.load()
	for i := range doc.Users {
		if doc.Users[i].Username == username {
			deleted := doc.Users[i]
			doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)
			if err := r.store.save(doc); err != nil {
				return nil, err
			}
			return &deleted, nil
		}
	}
	return nil, nil
}
