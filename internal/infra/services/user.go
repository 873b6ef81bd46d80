// Package services holds the stateless services the application controller
// routes requests to.
package services

import (
	"fmt"

	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

// UserService formats user lookups.
type UserService struct{}

func NewUserService() *UserService { return &UserService{} }

var _ ports.UserService = (*UserService)(nil)

func (s *UserService) GetUser(id int) string {
	return fmt.Sprintf("Datos del usuario con ID %d", id)
}
