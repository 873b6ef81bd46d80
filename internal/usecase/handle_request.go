package usecase

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

// ApplicationController routes requests to the user or product service.
// Its services are fixed at construction.
type ApplicationController struct {
	users    ports.UserService
	products ports.ProductService

	log   *slog.Logger
	newID func() string
}

type ControllerOption func(*ApplicationController)

func WithLogger(l *slog.Logger) ControllerOption {
	return func(c *ApplicationController) {
		if l != nil {
			c.log = l
		}
	}
}

// WithRequestID overrides correlation id generation (useful for tests).
func WithRequestID(gen func() string) ControllerOption {
	return func(c *ApplicationController) {
		if gen != nil {
			c.newID = gen
		}
	}
}

func NewApplicationController(users ports.UserService, products ports.ProductService, opts ...ControllerOption) *ApplicationController {
	c := &ApplicationController{
		users:    users,
		products: products,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Route dispatches a validated request. An UnsupportedRequest yields an
// unsupported_route error.
func (c *ApplicationController) Route(req domain.Request) (string, error) {
	switch r := req.(type) {
	case domain.UserRequest:
		return c.users.GetUser(r.UserID), nil
	case domain.ProductRequest:
		return c.products.GetProduct(r.ProductID), nil
	case domain.UnsupportedRequest:
		return "", &domain.OpError{
			Op:   "controller.route",
			Kind: domain.KindUnsupportedRoute,
			Err:  fmt.Errorf("type %q action %q: %w", r.TypeName, r.ActionName, domain.ErrUnsupportedRoute),
		}
	default:
		return "", &domain.OpError{
			Op:   "controller.route",
			Kind: domain.KindInvalidRequest,
			Err:  fmt.Errorf("unexpected request %T: %w", req, domain.ErrInvalidRequest),
		}
	}
}

// HandleRequest parses and routes a raw request.
//
// A request that matches no route answers domain.InvalidRequestMessage with a
// nil error. Malformed requests for a known route (missing or mistyped id)
// are returned as errors.
func (c *ApplicationController) HandleRequest(raw domain.RawRequest) (string, error) {
	id := c.newID()

	req, err := domain.ParseRequest(raw)
	if err != nil {
		c.log.Warn("request.rejected", "request_id", id, "error", err.Error())
		return "", err
	}

	out, err := c.Route(req)
	if err != nil {
		if domain.IsKind(err, domain.KindUnsupportedRoute) {
			c.log.Info("request.unrouted",
				"request_id", id,
				"type", string(req.Service()),
				"action", string(req.Action()),
			)
			return domain.InvalidRequestMessage, nil
		}
		c.log.Error("request.failed", "request_id", id, "error", err.Error())
		return "", err
	}

	c.log.Info("request.routed",
		"request_id", id,
		"service", string(req.Service()),
		"action", string(req.Action()),
	)
	return out, nil
}
