package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/infra/services"
)

type fakeUsers struct{ calls []int }

func (f *fakeUsers) GetUser(id int) string {
	f.calls = append(f.calls, id)
	return fmt.Sprintf("user-%d", id)
}

type fakeProducts struct{ calls []int }

func (f *fakeProducts) GetProduct(id int) string {
	f.calls = append(f.calls, id)
	return fmt.Sprintf("product-%d", id)
}

func newTestController() (*ApplicationController, *fakeUsers, *fakeProducts) {
	u, p := &fakeUsers{}, &fakeProducts{}
	return NewApplicationController(u, p), u, p
}

func TestRouteDispatchesByVariant(t *testing.T) {
	c, u, p := newTestController()

	out, err := c.Route(domain.UserRequest{UserID: 1})
	if err != nil || out != "user-1" {
		t.Fatalf("Route(user) = %q, %v", out, err)
	}
	out, err = c.Route(domain.ProductRequest{ProductID: 2})
	if err != nil || out != "product-2" {
		t.Fatalf("Route(product) = %q, %v", out, err)
	}

	if len(u.calls) != 1 || u.calls[0] != 1 {
		t.Fatalf("expected one user call with id 1, got %v", u.calls)
	}
	if len(p.calls) != 1 || p.calls[0] != 2 {
		t.Fatalf("expected one product call with id 2, got %v", p.calls)
	}
}

func TestRouteUnsupported(t *testing.T) {
	c, u, p := newTestController()

	_, err := c.Route(domain.UnsupportedRequest{TypeName: "unknown", ActionName: "invalid_action"})
	if !errors.Is(err, domain.ErrUnsupportedRoute) {
		t.Fatalf("expected ErrUnsupportedRoute, got %v", err)
	}
	if !domain.IsKind(err, domain.KindUnsupportedRoute) {
		t.Fatalf("expected unsupported_route kind, got %v", err)
	}
	if len(u.calls)+len(p.calls) != 0 {
		t.Fatalf("expected no service calls")
	}
}

func TestRouteNilRequest(t *testing.T) {
	c, _, _ := newTestController()
	_, err := c.Route(nil)
	if !domain.IsKind(err, domain.KindInvalidRequest) {
		t.Fatalf("expected invalid_request for nil request, got %v", err)
	}
}

func TestHandleRequestScenarios(t *testing.T) {
	c := NewApplicationController(services.NewUserService(), services.NewProductService())

	cases := []struct {
		name string
		raw  domain.RawRequest
		want string
	}{
		{
			name: "user",
			raw:  domain.RawRequest{"type": "user", "action": "get_user", "user_id": 123},
			want: "Datos del usuario con ID 123",
		},
		{
			name: "product",
			raw:  domain.RawRequest{"type": "product", "action": "get_product", "product_id": 456},
			want: "Detalles del producto con ID 456",
		},
		{
			name: "invalid",
			raw:  domain.RawRequest{"type": "unknown", "action": "invalid_action"},
			want: "Error: Solicitud no válida",
		},
		{
			name: "crossed pair",
			raw:  domain.RawRequest{"type": "user", "action": "get_product", "product_id": 1},
			want: "Error: Solicitud no válida",
		},
		{
			name: "empty",
			raw:  domain.RawRequest{},
			want: "Error: Solicitud no válida",
		},
	}

	for _, tc := range cases {
		got, err := c.HandleRequest(tc.raw)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestHandleRequestForAnyID(t *testing.T) {
	c := NewApplicationController(services.NewUserService(), services.NewProductService())

	for _, n := range []int{0, 1, 42, 999999, -3} {
		got, err := c.HandleRequest(domain.RawRequest{"type": "user", "action": "get_user", "user_id": n})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := fmt.Sprintf("Datos del usuario con ID %d", n); got != want {
			t.Errorf("got %q, want %q", got, want)
		}

		got, err = c.HandleRequest(domain.RawRequest{"type": "product", "action": "get_product", "product_id": n})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := fmt.Sprintf("Detalles del producto con ID %d", n); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestHandleRequestMissingID(t *testing.T) {
	c, u, _ := newTestController()

	out, err := c.HandleRequest(domain.RawRequest{"type": "user", "action": "get_user"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if out != "" {
		t.Fatalf("expected empty output on error, got %q", out)
	}
	if !domain.IsKind(err, domain.KindMissingField) {
		t.Fatalf("expected missing_field, got %v", err)
	}
	if len(u.calls) != 0 {
		t.Fatalf("expected service not to be called")
	}
}

func TestHandleRequestLogsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	u, p := &fakeUsers{}, &fakeProducts{}
	c := NewApplicationController(u, p,
		WithLogger(log),
		WithRequestID(func() string { return "req-1" }),
	)

	if _, err := c.HandleRequest(domain.RawRequest{"type": "user", "action": "get_user", "user_id": 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.HandleRequest(domain.RawRequest{"type": "x", "action": "y"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"msg":"request.routed"`, `"msg":"request.unrouted"`, `"request_id":"req-1"`, `"service":"user"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in log output:\n%s", want, out)
		}
	}
}
