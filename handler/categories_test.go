package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StevenGabule/portfolio/handler/payload"
	handlertests "github.com/StevenGabule/portfolio/handler/tests"
)

func TestCategoriesHandler(t *testing.T) {
	store := handlertests.MakeStore(t)
	h := MakeCategoriesHandler(store)

	req := httptest.NewRequest("GET", "/categories", nil)
	rec := httptest.NewRecorder()

	if err := h.Handle(rec, req); err != nil {
		t.Fatalf("handle err: %v", err)
	}

	var resp payload.CategoriesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []payload.CategoryResponse{
		{ID: "All", Label: "All Posts", Count: 3},
		{ID: "Tutorial", Label: "Tutorials", Count: 1},
		{ID: "Business", Label: "Business", Count: 1},
		{ID: "Process", Label: "Process", Count: 1},
	}

	if len(resp.Data) != len(want) {
		t.Fatalf("unexpected categories %+v", resp.Data)
	}

	for i, c := range want {
		if resp.Data[i] != c {
			t.Fatalf("category %d: want %+v got %+v", i, c, resp.Data[i])
		}
	}

	if resp.Version != store.Version() {
		t.Fatalf("unexpected version %q", resp.Version)
	}

	req2 := httptest.NewRequest("GET", "/categories", nil)
	req2.Header.Set("If-None-Match", rec.Header().Get("ETag"))
	rec2 := httptest.NewRecorder()

	if err := h.Handle(rec2, req2); err != nil {
		t.Fatalf("handle err: %v", err)
	}

	if rec2.Code != http.StatusNotModified {
		t.Fatalf("status %d", rec2.Code)
	}
}
