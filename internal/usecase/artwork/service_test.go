package artwork_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fineart/internal/domain/entity"
	"fineart/internal/repository"
	artUC "fineart/internal/usecase/artwork"
)

type stubArtworkRepo struct {
	data   map[int64]*entity.Artwork
	nextID int64
	err    error

	lastFilter repository.ArtworkFilter
	lastSort   repository.ArtworkSort
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

func (s *stubArtworkRepo) QueryWithArtist(_ context.Context, filter repository.ArtworkFilter, sort repository.ArtworkSort, offset, limit int) ([]repository.ArtworkWithArtist, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastFilter = filter
	s.lastSort = sort
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

// stubArtistRepo only answers Exists; the artwork service never touches the
// other methods.
type stubArtistRepo struct {
	existing map[int64]bool
	err      error
}

func (s *stubArtistRepo) Get(_ context.Context, _ int64) (*entity.Artist, error) {
	return nil, nil
}
func (s *stubArtistRepo) List(_ context.Context) ([]*entity.Artist, error) { return nil, nil }
func (s *stubArtistRepo) Exists(_ context.Context, id int64) (bool, error) {
	return s.existing[id], s.err
}
func (s *stubArtistRepo) Create(_ context.Context, _ *entity.Artist) error { return nil }
func (s *stubArtistRepo) Update(_ context.Context, _ *entity.Artist) error { return nil }
func (s *stubArtistRepo) Delete(_ context.Context, _ int64) (bool, error) { return false, nil }

func newService(artworks *stubArtworkRepo, artists *stubArtistRepo) artUC.Service {
	return artUC.Service{
		Repo:    artworks,
		Artists: artists,
		Now:     func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

/* ───────── List ───────── */

func TestService_List_lenientStatusFilter(t *testing.T) {
	stub := newArtworkStub()
	svc := newService(stub, &stubArtistRepo{})

	// A valid status becomes a filter.
	if _, err := svc.List(context.Background(), artUC.ListInput{Status: "Sold"}); err != nil {
		t.Fatalf("List err=%v", err)
	}
	if stub.lastFilter.Status == nil || *stub.lastFilter.Status != entity.StatusSold {
		t.Fatalf("status filter not applied: %+v", stub.lastFilter.Status)
	}

	// An unparseable status is skipped, not rejected.
	if _, err := svc.List(context.Background(), artUC.ListInput{Status: "Bogus"}); err != nil {
		t.Fatalf("List with bogus status err=%v", err)
	}
	if stub.lastFilter.Status != nil {
		t.Fatalf("bogus status should be skipped, got %v", *stub.lastFilter.Status)
	}
}

func TestService_List_sortResolution(t *testing.T) {
	tests := []struct {
		sort string
		want repository.ArtworkSort
	}{
		{"", repository.ArtworkSortDefault},
		{"created", repository.ArtworkSortCreated},
		{"-price", repository.ArtworkSortPriceDesc},
		{"+price", repository.ArtworkSortPriceAsc},
		{"bogus", repository.ArtworkSortDefault},
	}
	for _, tt := range tests {
		stub := newArtworkStub()
		svc := newService(stub, &stubArtistRepo{})
		if _, err := svc.List(context.Background(), artUC.ListInput{Sort: tt.sort}); err != nil {
			t.Fatalf("List err=%v", err)
		}
		if stub.lastSort != tt.want {
			t.Errorf("sort %q resolved to %v, want %v", tt.sort, stub.lastSort, tt.want)
		}
	}
}

/* ───────── Create ───────── */

func TestService_Create_defaultsStatus(t *testing.T) {
	stub := newArtworkStub()
	svc := newService(stub, &stubArtistRepo{existing: map[int64]bool{5: true}})

	got, err := svc.Create(context.Background(), artUC.CreateInput{
		Title: "Sunrise", Price: 1200, ArtistID: 5,
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.Status != entity.StatusForSale {
		t.Fatalf("status = %v, want ForSale default", got.Status)
	}
}

func TestService_Create_invalidStatus(t *testing.T) {
	svc := newService(newArtworkStub(), &stubArtistRepo{existing: map[int64]bool{5: true}})

	_, err := svc.Create(context.Background(), artUC.CreateInput{
		Title: "Sunrise", Price: 1200, ArtistID: 5, Status: "Reserved",
	})
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if vErr.Error() != "Status is not valid." {
		t.Fatalf("message = %q", vErr.Error())
	}
}

func TestService_Create_artistNotFound(t *testing.T) {
	svc := newService(newArtworkStub(), &stubArtistRepo{})

	_, err := svc.Create(context.Background(), artUC.CreateInput{
		Title: "Sunrise", Price: 1200, ArtistID: 42,
	})
	if !errors.Is(err, artUC.ErrArtistNotFound) {
		t.Fatalf("want ErrArtistNotFound, got %v", err)
	}
}

/* ───────── Update ───────── */

func TestService_Update_strictStatus(t *testing.T) {
	stub := newArtworkStub()
	stub.data[1] = &entity.Artwork{ID: 1, Title: "old", ArtistID: 5}
	svc := newService(stub, &stubArtistRepo{existing: map[int64]bool{5: true}})

	// The write path requires a parseable status; empty is not accepted.
	_, err := svc.Update(context.Background(), artUC.UpdateInput{
		ID: 1, Title: "new", ArtistID: 5,
	})
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError for empty status, got %v", err)
	}

	got, err := svc.Update(context.Background(), artUC.UpdateInput{
		ID: 1, Title: "new", Price: 900, Status: "Rentable", ArtistID: 5,
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.Status != entity.StatusRentable || got.Price != 900 {
		t.Fatalf("fields not overwritten: %+v", got)
	}
}

func TestService_Update_notFound(t *testing.T) {
	svc := newService(newArtworkStub(), &stubArtistRepo{existing: map[int64]bool{5: true}})

	_, err := svc.Update(context.Background(), artUC.UpdateInput{
		ID: 99, Title: "t", Status: "Sold", ArtistID: 5,
	})
	if !errors.Is(err, artUC.ErrArtworkNotFound) {
		t.Fatalf("want ErrArtworkNotFound, got %v", err)
	}
}

/* ───────── Get / Delete ───────── */

func TestService_Get(t *testing.T) {
	stub := newArtworkStub()
	stub.data[1] = &entity.Artwork{ID: 1, Title: "Sunrise", ArtistID: 5}
	svc := newService(stub, &stubArtistRepo{})

	art, name, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if art.Title != "Sunrise" || name != "Test Artist" {
		t.Fatalf("got %+v name=%q", art, name)
	}

	if _, _, err := svc.Get(context.Background(), 99); !errors.Is(err, artUC.ErrArtworkNotFound) {
		t.Fatalf("want ErrArtworkNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	stub := newArtworkStub()
	stub.data[1] = &entity.Artwork{ID: 1}
	svc := newService(stub, &stubArtistRepo{})

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, artUC.ErrArtworkNotFound) {
		t.Fatalf("want ErrArtworkNotFound, got %v", err)
	}
}
