package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ventas-dashboard/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestClient_ForwardsTokenAndDecodes(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"p1","nombre":"Camisa","precio":19.99,"stock":3}]`))
	})

	ctx := WithToken(context.Background(), "tok-1")
	var out []domain.Product
	if err := c.Get(ctx, "/products", map[string][]string{"marca": {"acme"}}, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotPath != "/products" || gotQuery != "marca=acme" {
		t.Fatalf("unexpected request %s?%s", gotPath, gotQuery)
	}
	if len(out) != 1 || out[0].ID != "p1" || out[0].Price.String() != "19.99" {
		t.Fatalf("unexpected products %+v", out)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var hadAuth bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	})
	if err := c.Delete(context.Background(), "/categories/c1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if hadAuth {
		t.Fatalf("expected no Authorization header without a token")
	}
}

func TestClient_PostSendsJSON(t *testing.T) {
	var got domain.CreateSaleInput
	var contentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"o1","userId":"u1","total":10}`))
	})

	var order domain.Order
	err := c.Post(context.Background(), "/sales/generate", domain.CreateSaleInput{
		UserID: "u1",
		Items:  []domain.SaleLineItem{{ProductID: "p1", Quantity: 2}},
	}, &order)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if contentType != "application/json" {
		t.Fatalf("unexpected content type %q", contentType)
	}
	if got.UserID != "u1" || len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Fatalf("unexpected payload %+v", got)
	}
	if order.ID != "o1" || order.Total.String() != "10" {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantIs  error
		wantMsg string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"Unauthorized"}`, wantIs: domain.ErrUnauthorized, wantMsg: "Unauthorized"},
		{name: "not found", status: http.StatusNotFound, body: `{}`, wantIs: domain.ErrNotFound},
		{name: "not found with message", status: http.StatusNotFound, body: `{"message":"Producto p1 no encontrado"}`, wantIs: domain.ErrNotFound, wantMsg: "Producto p1 no encontrado"},
		{name: "string message", status: http.StatusBadRequest, body: `{"message":"stock insuficiente","statusCode":400}`, wantMsg: "stock insuficiente"},
		{name: "list message", status: http.StatusBadRequest, body: `{"message":["nombre should not be empty","precio must be a number"]}`, wantMsg: "nombre should not be empty; precio must be a number"},
		{name: "no message", status: http.StatusInternalServerError, body: `oops`, wantMsg: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			err := c.Get(context.Background(), "/x", nil, nil)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.wantIs != nil && !errors.Is(err, tc.wantIs) {
				t.Fatalf("expected %v, got %v", tc.wantIs, err)
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if apiErr.StatusCode != tc.status || apiErr.UserMessage() != tc.wantMsg {
				t.Fatalf("unexpected api error %+v", apiErr)
			}
		})
	}
}

func TestAPIError_IsOnlyMatchesItsStatus(t *testing.T) {
	if errors.Is(&APIError{StatusCode: http.StatusNotFound}, domain.ErrUnauthorized) {
		t.Fatalf("404 must not match ErrUnauthorized")
	}
	if errors.Is(&APIError{StatusCode: http.StatusBadRequest}, domain.ErrNotFound) {
		t.Fatalf("400 must not match ErrNotFound")
	}
}

func TestIsClientError(t *testing.T) {
	if !IsClientError(&APIError{StatusCode: 409}) {
		t.Fatalf("409 should be a client error")
	}
	if IsClientError(&APIError{StatusCode: 503}) {
		t.Fatalf("503 should not be a client error")
	}
	if IsClientError(errors.New("boom")) {
		t.Fatalf("plain error should not be a client error")
	}
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	if _, err := New("localhost:3000", time.Second, nil); err == nil {
		t.Fatalf("expected error for relative base url")
	}
}
