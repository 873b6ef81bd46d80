package ports

import "github.com/danielgomezobraztsov/web-presentation/internal/domain"

// RequestDecoder turns an encoded request body into a raw request.
type RequestDecoder interface {
	Decode(body []byte) (domain.RawRequest, error)
}
