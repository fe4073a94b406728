package services

import (
	"github.com/silvaronna/marketplace-api/apperrors"
	"github.com/silvaronna/marketplace-api/models"
	"github.com/silvaronna/marketplace-api/repositories"
)

type UserService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

func (s *UserService) AddUser(input models.CreateUserInput) (*models.User, error) {
	if input.Username == "" || input.Name == "" || input.Email == "" || input.Role == "" {
		return nil, apperrors.Validation("all fields are required")
	}

	existing, err := s.repo.FindByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("username is already taken")
	}

	if !models.ValidRole(input.Role) {
		return nil, apperrors.Validation("invalid role, only buyer or seller is allowed")
	}

	user := models.User{
		Username: input.Username,
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
	}
	return s.repo.Add(user)
}

// UpdateUser applies a partial update: only the provided fields overwrite.
func (s *UserService) UpdateUser(username string, input models.UpdateUserInput) (*models.User, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	if input.Role != "" && !models.ValidRole(input.Role) {
		return nil, apperrors.Validation("invalid role, only buyer or seller is allowed")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Role != "" {
		user.Role = input.Role
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(username string) (*models.User, error) {
	deleted, err := s.repo.Delete(username)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NotFound("user not found")
	}
	return deleted, nil
}
