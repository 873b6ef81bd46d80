package jsonrequest

import (
	"encoding/json"
	"testing"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
)

func TestDecodeUserRequest(t *testing.T) {
	raw, err := NewDecoder().Decode([]byte(`{"type":"user","action":"get_user","user_id":123}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw["type"] != "user" || raw["action"] != "get_user" {
		t.Fatalf("unexpected type/action: %#v", raw)
	}
	if raw["user_id"] != json.Number("123") {
		t.Fatalf("expected user_id as json.Number, got %#v", raw["user_id"])
	}
	if _, ok := raw["product_id"]; ok {
		t.Fatalf("expected absent product_id to be left out")
	}

	req, err := domain.ParseRequest(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if req != (domain.UserRequest{UserID: 123}) {
		t.Fatalf("unexpected request %#v", req)
	}
}

func TestDecodeMissingIDIsReportedByParse(t *testing.T) {
	raw, err := NewDecoder().Decode([]byte(`{"type":"product","action":"get_product"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = domain.ParseRequest(raw)
	if !domain.IsKind(err, domain.KindMissingField) {
		t.Fatalf("expected missing_field, got %v", err)
	}
}

func TestDecodeNullIsAbsent(t *testing.T) {
	raw, err := NewDecoder().Decode([]byte(`{"type":"user","action":"get_user","user_id":null}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := raw["user_id"]; ok {
		t.Fatalf("expected null user_id to be left out")
	}
}

func TestDecodeFractionalIDRejectedByParse(t *testing.T) {
	raw, err := NewDecoder().Decode([]byte(`{"type":"user","action":"get_user","user_id":1.5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = domain.ParseRequest(raw)
	if !domain.IsKind(err, domain.KindInvalidRequest) {
		t.Fatalf("expected invalid_request, got %v", err)
	}
}

func TestDecodeInvalidBodies(t *testing.T) {
	cases := []string{"", "   ", "not json", "[1,2]", "\"user\""}
	for _, c := range cases {
		_, err := NewDecoder().Decode([]byte(c))
		if err == nil {
			t.Fatalf("expected error for %q", c)
		}
		if !domain.IsKind(err, domain.KindInvalidRequest) {
			t.Errorf("expected invalid_request for %q, got %v", c, err)
		}
	}
}

func TestDecodeWithCustomPath(t *testing.T) {
	body := `{"type":"user","action":"get_user","user":{"id":42}}`
	raw, err := NewDecoder(WithPath(domain.KeyUserID, "$.user.id")).Decode([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req, err := domain.ParseRequest(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if req != (domain.UserRequest{UserID: 42}) {
		t.Fatalf("unexpected request %#v", req)
	}
}

func TestDecodeArrayValuedIDIsInvalid(t *testing.T) {
	for _, body := range []string{
		`{"type":"user","action":"get_user","user_id":[123]}`,
		`{"type":"user","action":"get_user","user_id":[]}`,
		`{"type":"product","action":"get_product","product_id":[1,2]}`,
	} {
		raw, err := NewDecoder().Decode([]byte(body))
		if err != nil {
			t.Fatalf("%s: unexpected decode error: %v", body, err)
		}
		_, err = domain.ParseRequest(raw)
		if !domain.IsKind(err, domain.KindInvalidRequest) {
			t.Errorf("%s: expected invalid_request, got %v", body, err)
		}
	}
}

func TestDecodeArrayValuedTypeIsUnsupported(t *testing.T) {
	for _, body := range []string{
		`{"type":["user"],"action":["get_user"],"user_id":7}`,
		`{"type":"user","action":["get_user"],"user_id":7}`,
	} {
		raw, err := NewDecoder().Decode([]byte(body))
		if err != nil {
			t.Fatalf("%s: unexpected decode error: %v", body, err)
		}
		req, err := domain.ParseRequest(raw)
		if err != nil {
			t.Fatalf("%s: unexpected parse error: %v", body, err)
		}
		if _, ok := req.(domain.UnsupportedRequest); !ok {
			t.Errorf("%s: expected UnsupportedRequest, got %#v", body, req)
		}
	}
}

func TestDecodeIntegralFloatID(t *testing.T) {
	raw, err := NewDecoder().Decode([]byte(`{"type":"user","action":"get_user","user_id":1.0}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req, err := domain.ParseRequest(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if req != (domain.UserRequest{UserID: 1}) {
		t.Fatalf("unexpected request %#v", req)
	}
}

func TestDecodeWildcardPathTakesSingleMatch(t *testing.T) {
	body := `{"type":"user","action":"get_user","users":[{"id":9}]}`
	raw, err := NewDecoder(WithPath(domain.KeyUserID, "$.users[*].id")).Decode([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req, err := domain.ParseRequest(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if req != (domain.UserRequest{UserID: 9}) {
		t.Fatalf("unexpected request %#v", req)
	}
}

func TestDecodeWildcardWithoutMatchIsAbsent(t *testing.T) {
	raw, err := NewDecoder(WithPath(domain.KeyUserID, "$.users[*].id")).Decode([]byte(`{"type":"user","action":"get_user","users":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := raw[domain.KeyUserID]; ok {
		t.Fatalf("expected empty wildcard result to be left out, got %#v", raw[domain.KeyUserID])
	}
}
