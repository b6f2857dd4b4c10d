package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/StevenGabule/portfolio/handler/payload"
	handlertests "github.com/StevenGabule/portfolio/handler/tests"
)

func TestPostsHandlerIndexUnfiltered(t *testing.T) {
	h := MakePostsHandler(handlertests.MakeStore(t))

	req := httptest.NewRequest("GET", "/posts", nil)
	rec := httptest.NewRecorder()

	if err := h.Index(rec, req); err != nil {
		t.Fatalf("index err: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var resp payload.PostsListingResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Featured == nil || resp.Featured.Slug != "getting-started-with-nextjs-15" {
		t.Fatalf("expected featured post, got %+v", resp.Featured)
	}

	if len(resp.Posts) != 2 || resp.Posts[0].Slug != "why-hire-full-stack-developer" {
		t.Fatalf("unexpected grid %+v", resp.Posts)
	}

	if resp.Empty {
		t.Fatalf("listing should not be empty")
	}

	if resp.Filters.Category != "All" {
		t.Fatalf("expected All category filter, got %q", resp.Filters.Category)
	}

	if len(resp.Categories) != 4 || resp.Categories[0].Count != 3 {
		t.Fatalf("unexpected categories %+v", resp.Categories)
	}

	if resp.Featured.Date != "January 1, 2025" {
		t.Fatalf("unexpected display date %q", resp.Featured.Date)
	}
}

func TestPostsHandlerIndexFiltered(t *testing.T) {
	h := MakePostsHandler(handlertests.MakeStore(t))

	req := httptest.NewRequest("GET", "/posts?category=Business&q=HIRE", nil)
	rec := httptest.NewRecorder()

	if err := h.Index(rec, req); err != nil {
		t.Fatalf("index err: %v", err)
	}

	var resp payload.PostsListingResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Featured != nil {
		t.Fatalf("filtered view should not surface a featured post")
	}

	if len(resp.Posts) != 1 || resp.Posts[0].Slug != "why-hire-full-stack-developer" {
		t.Fatalf("unexpected posts %+v", resp.Posts)
	}

	if resp.Filters.Search != "HIRE" {
		t.Fatalf("search should be echoed as given, got %q", resp.Filters.Search)
	}
}

func TestPostsHandlerIndexEmpty(t *testing.T) {
	h := MakePostsHandler(handlertests.MakeStore(t))

	req := httptest.NewRequest("GET", "/posts?q=kubernetes", nil)
	rec := httptest.NewRecorder()

	if err := h.Index(rec, req); err != nil {
		t.Fatalf("index err: %v", err)
	}

	body := rec.Body.String()

	if !strings.Contains(body, `"posts":[]`) || !strings.Contains(body, `"empty":true`) {
		t.Fatalf("expected empty state, got %s", body)
	}
}

func TestPostsHandlerIndexNotModified(t *testing.T) {
	store := handlertests.MakeStore(t)
	h := MakePostsHandler(store)

	req := httptest.NewRequest("GET", "/posts", nil)
	req.Header.Set("If-None-Match", `"`+store.Version()+`"`)
	rec := httptest.NewRecorder()

	if err := h.Index(rec, req); err != nil {
		t.Fatalf("index err: %v", err)
	}

	if rec.Code != http.StatusNotModified {
		t.Fatalf("status %d", rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("304 must not carry a body")
	}
}

func TestPostsHandlerShow(t *testing.T) {
	h := MakePostsHandler(handlertests.MakeStore(t))

	req := httptest.NewRequest("GET", "/posts/getting-started-with-nextjs-15", nil)
	req.SetPathValue("slug", "getting-started-with-nextjs-15")
	rec := httptest.NewRecorder()

	if err := h.Show(rec, req); err != nil {
		t.Fatalf("show err: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var resp payload.PostDetailResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Title != "Getting Started with Next.js 15" {
		t.Fatalf("unexpected title %q", resp.Title)
	}

	// heading, spacer, bullet and the fence interior as a paragraph
	if len(resp.Blocks) != 4 {
		t.Fatalf("expected 4 elements, got %+v", resp.Blocks)
	}

	html := string(resp.HTML)

	if !strings.Contains(html, "Introduction") || !strings.Contains(html, "<strong>Layouts</strong>") {
		t.Fatalf("unexpected html %s", html)
	}

	if strings.Contains(html, "<main>") || !strings.Contains(html, "&lt;main&gt;") {
		t.Fatalf("source text must be escaped: %s", html)
	}

	if len(resp.Related) != 2 {
		t.Fatalf("expected 2 related posts, got %d", len(resp.Related))
	}
}

func TestPostsHandlerShowNotFound(t *testing.T) {
	h := MakePostsHandler(handlertests.MakeStore(t))

	req := httptest.NewRequest("GET", "/posts/Getting-Started-With-Nextjs-15", nil)
	req.SetPathValue("slug", "Getting-Started-With-Nextjs-15")
	rec := httptest.NewRecorder()

	err := h.Show(rec, req)

	if err == nil || err.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %#v", err)
	}
}
