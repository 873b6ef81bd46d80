package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// InvalidRequestMessage is what callers see when a request matches no route.
const InvalidRequestMessage = "Error: Solicitud no válida"

// Keys recognized in a RawRequest.
const (
	KeyType      = "type"
	KeyAction    = "action"
	KeyUserID    = "user_id"
	KeyProductID = "product_id"
)

// ServiceKind names one of the services known to the controller.
type ServiceKind string

const (
	ServiceUser    ServiceKind = "user"
	ServiceProduct ServiceKind = "product"
)

// Action names an operation exposed by a service.
type Action string

const (
	ActionGetUser    Action = "get_user"
	ActionGetProduct Action = "get_product"
)

// RawRequest is a request as received at the boundary (CLI flags, JSON body).
// Values are loosely typed until ParseRequest turns them into a Request.
type RawRequest map[string]any

// Request is a validated request. The set of variants is closed:
// UserRequest, ProductRequest and UnsupportedRequest.
type Request interface {
	Service() ServiceKind
	Action() Action
	isRequest()
}

// UserRequest asks the user service for one user.
type UserRequest struct {
	UserID int
}

func (UserRequest) Service() ServiceKind { return ServiceUser }
func (UserRequest) Action() Action       { return ActionGetUser }
func (UserRequest) isRequest()           {}

// ProductRequest asks the product service for one product.
type ProductRequest struct {
	ProductID int
}

func (ProductRequest) Service() ServiceKind { return ServiceProduct }
func (ProductRequest) Action() Action       { return ActionGetProduct }
func (ProductRequest) isRequest()           {}

// UnsupportedRequest carries a type/action pair that matches no route.
type UnsupportedRequest struct {
	TypeName   string
	ActionName string
}

func (r UnsupportedRequest) Service() ServiceKind { return ServiceKind(r.TypeName) }
func (r UnsupportedRequest) Action() Action       { return Action(r.ActionName) }
func (UnsupportedRequest) isRequest()             {}

// ParseRequest validates a raw request.
//
// An unknown type/action pair is not an error: it yields an UnsupportedRequest
// and the controller decides how to answer it. A supported pair with a missing
// or mistyped id is an error.
func ParseRequest(raw RawRequest) (Request, error) {
	typ := stringValue(raw, KeyType)
	action := stringValue(raw, KeyAction)

	switch {
	case ServiceKind(typ) == ServiceUser && Action(action) == ActionGetUser:
		id, err := intField(raw, KeyUserID)
		if err != nil {
			return nil, err
		}
		return UserRequest{UserID: id}, nil

	case ServiceKind(typ) == ServiceProduct && Action(action) == ActionGetProduct:
		id, err := intField(raw, KeyProductID)
		if err != nil {
			return nil, err
		}
		return ProductRequest{ProductID: id}, nil

	default:
		return UnsupportedRequest{TypeName: typ, ActionName: action}, nil
	}
}

func stringValue(raw RawRequest, key string) string {
	if raw == nil {
		return ""
	}
	s, _ := raw[key].(string)
	return s
}

func intField(raw RawRequest, key string) (int, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, &OpError{
			Op:   "request.parse",
			Kind: KindMissingField,
			Err:  fmt.Errorf("field %s: %w", key, ErrMissingField),
		}
	}

	id, ok := toInt(v)
	if !ok {
		return 0, &OpError{
			Op:   "request.parse",
			Kind: KindInvalidRequest,
			Err:  fmt.Errorf("field %s: expected integer, got %T: %w", key, v, ErrInvalidRequest),
		}
	}
	return id, nil
}

// toInt accepts any integer type, or a float without a fractional part,
// as long as the value fits in an int.
func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		return int64ToInt(t)
	case uint:
		return uint64ToInt(uint64(t))
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return uint64ToInt(uint64(t))
	case uint64:
		return uint64ToInt(t)
	case float64:
		return floatToInt(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int64ToInt(n)
		}
		// 1.0 and 1e2 are integral too.
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	default:
		return 0, false
	}
}

func int64ToInt(n int64) (int, bool) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func uint64ToInt(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// float64(math.MaxInt) rounds up to 2^63 on 64-bit platforms.
	if f < float64(math.MinInt) || f >= float64(math.MaxInt) {
		return 0, false
	}
	return int(f), true
}
