package artwork_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fineart/internal/domain/entity"
	"fineart/internal/handler/http/artwork"
	"fineart/internal/repository"
	artUC "fineart/internal/usecase/artwork"
)

type stubArtworkRepo struct {
	data   map[int64]*entity.Artwork
	nextID int64
	err    error
}

func newArtworkStub() *stubArtworkRepo {
	return &stubArtworkRepo{data: map[int64]*entity.Artwork{}, nextID: 1}
}

func (s *stubArtworkRepo) Get(_ context.Context, id int64) (*entity.Artwork, error) {
	return s.data[id], s.err
}

func (s *stubArtworkRepo) GetWithArtist(_ context.Context, id int64) (*entity.Artwork, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	a := s.data[id]
	if a == nil {
		return nil, "", nil
	}
	return a, "Test Artist", nil
}

func (s *stubArtworkRepo) QueryWithArtist(_ context.Context, _ repository.ArtworkFilter, _ repository.ArtworkSort, _, _ int) ([]repository.ArtworkWithArtist, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []repository.ArtworkWithArtist
	for _, v := range s.data {
		out = append(out, repository.ArtworkWithArtist{Artwork: v, ArtistName: "Test Artist"})
	}
	return out, nil
}

func (s *stubArtworkRepo) Count(_ context.Context, _ repository.ArtworkFilter) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.data)), nil
}

func (s *stubArtworkRepo) Create(_ context.Context, a *entity.Artwork) error {
	if s.err != nil {
		return s.err
	}
	a.ID = s.nextID
	s.nextID++
	s.data[a.ID] = a
	return nil
}

func (s *stubArtworkRepo) Update(_ context.Context, a *entity.Artwork) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[a.ID]; !ok {
		return entity.ErrNotFound
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubArtworkRepo) Delete(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

type stubArtistRepo struct {
	existing map[int64]bool
}

func (s *stubArtistRepo) Get(_ context.Context, _ int64) (*entity.Artist, error) { return nil, nil }
func (s *stubArtistRepo) List(_ context.Context) ([]*entity.Artist, error)       { return nil, nil }
func (s *stubArtistRepo) Exists(_ context.Context, id int64) (bool, error) {
	return s.existing[id], nil
}
func (s *stubArtistRepo) Create(_ context.Context, _ *entity.Artist) error { return nil }
func (s *stubArtistRepo) Update(_ context.Context, _ *entity.Artist) error { return nil }
func (s *stubArtistRepo) Delete(_ context.Context, _ int64) (bool, error)  { return false, nil }

func newSvc(artworks *stubArtworkRepo, artistIDs ...int64) *artUC.Service {
	existing := map[int64]bool{}
	for _, id := range artistIDs {
		existing[id] = true
	}
	return &artUC.Service{
		Repo:    artworks,
		Artists: &stubArtistRepo{existing: existing},
		Now:     func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", rec.Body.String(), err)
	}
	return body.Message
}

/* ───────── List ───────── */

func TestListHandler(t *testing.T) {
	stub := newArtworkStub()
	stub.data[1] = &entity.Artwork{ID: 1, Title: "Sunrise", Price: 1200, Status: entity.StatusSold, ArtistID: 1}

	h := artwork.ListHandler{Svc: newSvc(stub, 1)}
	req := httptest.NewRequest("GET", "/api/artworks?page=1&size=10", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Total int64 `json:"total"`
		Page  int   `json:"page"`
		Size  int   `json:"size"`
		Items []struct {
			Title      string `json:"title"`
			Price      int64  `json:"price"`
			Status     string `json:"status"`
			ArtistName string `json:"artistName"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Total != 1 || body.Page != 1 || body.Size != 10 || len(body.Items) != 1 {
		t.Fatalf("body = %+v", body)
	}
	item := body.Items[0]
	if item.Title != "Sunrise" || item.Price != 1200 || item.Status != "Sold" || item.ArtistName != "Test Artist" {
		t.Fatalf("item = %+v", item)
	}
}

func TestListHandler_emptyPage(t *testing.T) {
	h := artwork.ListHandler{Svc: newSvc(newArtworkStub())}
	req := httptest.NewRequest("GET", "/api/artworks?page=99", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for empty page", rec.Code)
	}
	// items must be an empty array, never null.
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

/* ───────── Get ───────── */

func TestGetHandler(t *testing.T) {
	stub := newArtworkStub()
	stub.data[7] = &entity.Artwork{ID: 7, Title: "Sunrise", Price: 1200, Status: entity.StatusForSale, ArtistID: 1}

	h := artwork.GetHandler{Svc: newSvc(stub, 1)}
	req := httptest.NewRequest("GET", "/api/artworks/7", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var dto struct {
		ID         int64  `json:"id"`
		Status     string `json:"status"`
		ArtistName string `json:"artistName"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if dto.ID != 7 || dto.Status != "ForSale" || dto.ArtistName != "Test Artist" {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestGetHandler_notFound(t *testing.T) {
	h := artwork.GetHandler{Svc: newSvc(newArtworkStub())}
	req := httptest.NewRequest("GET", "/api/artworks/99", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := errorBody(t, rec); got != "Artwork not found." {
		t.Fatalf("message = %q", got)
	}
}

func TestGetHandler_invalidID(t *testing.T) {
	h := artwork.GetHandler{Svc: newSvc(newArtworkStub())}
	for _, raw := range []string{"abc", "0", "-1"} {
		req := httptest.NewRequest("GET", "/api/artworks/"+raw, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("id %q: status = %d, want 400", raw, rec.Code)
		}
		if got := errorBody(t, rec); got != "Invalid artwork ID." {
			t.Fatalf("id %q: message = %q", raw, got)
		}
	}
}

/* ───────── Create ───────── */

func postCreate(h artwork.CreateHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/artworks", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateHandler(t *testing.T) {
	stub := newArtworkStub()
	h := artwork.CreateHandler{Svc: newSvc(stub, 1)}

	rec := postCreate(h, `{"title":"Sunrise","price":1200,"artistId":1}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/api/artworks/1" {
		t.Fatalf("Location = %q", loc)
	}
	var dto struct {
		ID     int64  `json:"id"`
		Price  int64  `json:"price"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if dto.ID != 1 || dto.Price != 1200 || dto.Status != "ForSale" {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestCreateHandler_invalidTitleOrPrice(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"price":100,"artistId":1}`},
		{"blank title", `{"title":"   ","price":100,"artistId":1}`},
		{"negative price", `{"title":"Sunrise","price":-500,"artistId":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newArtworkStub()
			h := artwork.CreateHandler{Svc: newSvc(stub, 1)}

			rec := postCreate(h, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if got := errorBody(t, rec); got != "Title and price must be valid." {
				t.Fatalf("message = %q", got)
			}
			if len(stub.data) != 0 {
				t.Fatal("nothing must be persisted on a validation failure")
			}
		})
	}
}

func TestCreateHandler_artistNotFound(t *testing.T) {
	h := artwork.CreateHandler{Svc: newSvc(newArtworkStub())}

	rec := postCreate(h, `{"title":"Sunrise","price":1200,"artistId":42}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "Artist not found." {
		t.Fatalf("message = %q", got)
	}
}

func TestCreateHandler_invalidStatus(t *testing.T) {
	h := artwork.CreateHandler{Svc: newSvc(newArtworkStub(), 1)}

	rec := postCreate(h, `{"title":"Sunrise","price":1200,"status":"Bogus","artistId":1}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "Status is not valid." {
		t.Fatalf("message = %q", got)
	}
}

func TestCreateHandler_malformedBody(t *testing.T) {
	h := artwork.CreateHandler{Svc: newSvc(newArtworkStub(), 1)}

	rec := postCreate(h, `{"title":`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "Invalid request body." {
		t.Fatalf("message = %q", got)
	}
}

/* ───────── Update ───────── */

func putUpdate(h artwork.UpdateHandler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("PUT", "/api/artworks/"+id, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestUpdateHandler(t *testing.T) {
	stub := newArtworkStub()
	stub.data[1] = &entity.Artwork{ID: 1, Title: "Sunrise", Price: 1200, Status: entity.StatusForSale, ArtistID: 1}
	h := artwork.UpdateHandler{Svc: newSvc(stub, 1)}

	rec := putUpdate(h, "1", `{"title":"Sunset","price":2400,"status":"Sold","artistId":1}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if stub.data[1].Price != 2400 || stub.data[1].Status != entity.StatusSold {
		t.Fatalf("persisted = %+v", stub.data[1])
	}
}

func TestUpdateHandler_negativePrice(t *testing.T) {
	stub := newArtworkStub()
	stub.data[1] = &entity.Artwork{ID: 1, Title: "Sunrise", Price: 1200, Status: entity.StatusForSale, ArtistID: 1}
	h := artwork.UpdateHandler{Svc: newSvc(stub, 1)}

	rec := putUpdate(h, "1", `{"title":"Sunrise","price":-1,"status":"Sold","artistId":1}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "Title and price must be valid." {
		t.Fatalf("message = %q", got)
	}
	if stub.data[1].Price != 1200 {
		t.Fatal("stored price must be untouched on a validation failure")
	}
}

func TestUpdateHandler_notFound(t *testing.T) {
	h := artwork.UpdateHandler{Svc: newSvc(newArtworkStub(), 1)}

	rec := putUpdate(h, "99", `{"title":"Sunset","price":2400,"status":"Sold","artistId":1}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := errorBody(t, rec); got != "Artwork not found." {
		t.Fatalf("message = %q", got)
	}
}

/* ───────── Delete ───────── */

func TestDeleteHandler(t *testing.T) {
	stub := newArtworkStub()
	stub.data[1] = &entity.Artwork{ID: 1, Title: "Sunrise", ArtistID: 1}
	h := artwork.DeleteHandler{Svc: newSvc(stub, 1)}

	req := httptest.NewRequest("DELETE", "/api/artworks/1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	// Deleting the same artwork again reports not found.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/artworks/1", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}
