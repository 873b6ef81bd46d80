package services

import (
	"fmt"

	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

// ProductService formats product lookups.
type ProductService struct{}

func NewProductService() *ProductService { return &ProductService{} }

var _ ports.ProductService = (*ProductService)(nil)

func (s *ProductService) GetProduct(id int) string {
	return fmt.Sprintf("Detalles del producto con ID %d", id)
}
