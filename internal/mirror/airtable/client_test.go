package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moverhub/backend/internal/domain/mirror"
)

func TestClientFindByEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("FindByEmail method = %s, want GET", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key123" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if formula := r.URL.Query().Get("filterByFormula"); formula != `{Email}="a@b.com"` {
			t.Errorf("filterByFormula = %q", formula)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"records": []map[string]interface{}{
				{"id": "rec1", "fields": map[string]interface{}{"Email": "a@b.com", "Name": "Acme Movers"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, BaseID: "base1", APIKey: "key123"})
	rec, err := c.FindByEmail(context.Background(), "Movers", "a@b.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if rec == nil || rec.ID != "rec1" {
		t.Fatalf("FindByEmail() = %+v, want rec1", rec)
	}
	if rec.Fields["Name"] != "Acme Movers" {
		t.Errorf("FindByEmail() fields = %v", rec.Fields)
	}
}

func TestClientFindByEmailNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"records": []interface{}{}})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, BaseID: "base1", APIKey: "key123"})
	rec, err := c.FindByEmail(context.Background(), "Movers", "missing@b.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if rec != nil {
		t.Errorf("FindByEmail() = %+v, want nil for no match", rec)
	}
}

func TestClientCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Create method = %s, want POST", r.Method)
		}
		var payload struct {
			Fields mirror.Fields `json:"fields"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if payload.Fields["Email"] != "a@b.com" {
			t.Errorf("Create fields = %v", payload.Fields)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "rec9", "fields": payload.Fields})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, BaseID: "base1", APIKey: "key123"})
	id, err := c.Create(context.Background(), "Movers", mirror.Fields{"Email": "a@b.com"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id != "rec9" {
		t.Errorf("Create() id = %q, want rec9", id)
	}
}

func TestClientUpdate(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, BaseID: "base1", APIKey: "key123"})
	err := c.Update(context.Background(), "Movers", "rec1", mirror.Fields{"City": "Austin"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Errorf("Update method = %s, want PATCH", gotMethod)
	}
	if gotPath != "/base1/Movers/rec1" {
		t.Errorf("Update path = %q", gotPath)
	}
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"INVALID_API_KEY"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, BaseID: "base1", APIKey: "bad"})
	if _, err := c.FindByEmail(context.Background(), "Movers", "a@b.com"); err == nil {
		t.Error("FindByEmail() expected error on 401 response")
	}
}
