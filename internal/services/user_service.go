package services

import (
	"roadbuddy/internal/domain"
	"roadbuddy/internal/domain/models"
	"roadbuddy/internal/repositories"
)

type UserService struct {
	Directory repositories.UserDirectory
}

func (s UserService) Get(id string) (models.User, error) {
	u, ok := s.Directory.Get(id)
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "User"}
	}
	return u, nil
}
