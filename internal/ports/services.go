package ports

// UserService answers user lookups routed by the controller.
type UserService interface {
	GetUser(id int) string
}

// ProductService answers product lookups routed by the controller.
type ProductService interface {
	GetProduct(id int) string
}
