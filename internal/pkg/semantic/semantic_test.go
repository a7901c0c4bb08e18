package semantic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Text != "intro programming" || req.K != 5 {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(queryResponse{IDs: []int64{3, 1, 7}})
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL})
	ids, err := client.Query(context.Background(), "intro programming", 5)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(ids) != 3 || ids[0] != 3 {
		t.Errorf("ids = %v", ids)
	}
}

func TestQueryServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL})
	if _, err := client.Query(context.Background(), "x", 1); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestNewClientNoEndpoint(t *testing.T) {
	if c := NewClient(Config{}); c != nil {
		t.Fatal("expected nil client without an endpoint")
	}
}
