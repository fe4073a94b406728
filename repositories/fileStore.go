package repositories

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/silvaronna/marketplace-api/models"
)

// document is the top-level shape of the JSON data file.
type document struct {
	Users    []models.User    `json:"users"`
	Products []models.Product `json:"products"`
	Carts    []models.Cart    `json:"carts"`
}

func emptyDocument() *document {
	return &document{
		Users:    []models.User{},
		Products: []models.Product{},
		Carts:    []models.Cart{},
	}
}

// FileStore persists the whole data set as a single JSON document that is
// read fully, mutated and written back wholesale. mu serializes every
// read-modify-write cycle so concurrent handlers never share an unguarded
// mutable buffer.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// load reads the document. A missing or unreadable file counts as empty.
// Callers must hold mu.
func (s *FileStore) load() *document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return emptyDocument()
	}

	doc := emptyDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return emptyDocument()
	}
	if doc.Users == nil {
		doc.Users = []models.User{}
	}
	if doc.Products == nil {
		doc.Products = []models.Product{}
	}
	if doc.Carts == nil {
		doc.Carts = []models.Cart{}
	}
	return doc
}

// save writes the document back in full. Callers must hold mu.
func (s *FileStore) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
