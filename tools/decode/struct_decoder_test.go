package decode

import (
	"testing"
)

type samplePayload struct {
	ProjectID string `json:"projectId"`
	UserID    string `json:"userId"`
	Count     int    `json:"count"`
}

func TestDecodeMap(t *testing.T) {
	m := map[string]any{
		"projectId": "p1",
		"userId":    "u1",
		"count":     float64(3), // JSON numbers arrive as float64
	}
	p, err := DecodeMap[samplePayload](m)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ProjectID != "p1" || p.UserID != "u1" || p.Count != 3 {
		t.Fatalf("unexpected result %+v", p)
	}
}

func TestDecodeMapWeaklyTyped(t *testing.T) {
	m := map[string]any{
		"projectId": "p1",
		"userId":    float64(42), // numeric id from a JS client
	}
	p, err := DecodeMap[samplePayload](m)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.UserID != "42" {
		t.Fatalf("userId = %q, want \"42\"", p.UserID)
	}
}

func TestDecodeMapStrict(t *testing.T) {
	m := map[string]any{"userId": float64(42)}
	if _, err := DecodeMap[samplePayload](m, WithWeaklyTypedInput(false)); err == nil {
		t.Fatalf("strict decode must reject number-into-string")
	}
}

func TestDecodeMapNil(t *testing.T) {
	if _, err := DecodeMap[samplePayload](nil); err == nil {
		t.Fatalf("nil map must be rejected")
	}
}
