package exhibition_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fineart/internal/domain/entity"
	"fineart/internal/repository"
	exUC "fineart/internal/usecase/exhibition"
)

type stubRepo struct {
	data   map[int64]*entity.Exhibition
	nextID int64
	err    error

	lastFilter repository.ExhibitionFilter
	lastSort   repository.ExhibitionSort
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Exhibition{}, nextID: 1}
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Exhibition, error) {
	return s.data[id], s.err
}

func (s *stubRepo) Query(_ context.Context, filter repository.ExhibitionFilter, sort repository.ExhibitionSort, offset, limit int) ([]*entity.Exhibition, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastFilter = filter
	s.lastSort = sort
	var out []*entity.Exhibition
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, nil
}

func (s *stubRepo) Count(_ context.Context, _ repository.ExhibitionFilter) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.data)), nil
}

func (s *stubRepo) Create(_ context.Context, e *entity.Exhibition) error {
	if s.err != nil {
		return s.err
	}
	e.ID = s.nextID
	s.nextID++
	s.data[e.ID] = e
	return nil
}

func (s *stubRepo) Update(_ context.Context, e *entity.Exhibition) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[e.ID]; !ok {
		return entity.ErrNotFound
	}
	s.data[e.ID] = e
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

var (
	start = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
)

func TestService_List_lenientCategoryFilter(t *testing.T) {
	stub := newStub()
	svc := exUC.Service{Repo: stub}

	if _, err := svc.List(context.Background(), exUC.ListInput{Category: "Solo"}); err != nil {
		t.Fatalf("List err=%v", err)
	}
	if stub.lastFilter.Category == nil || *stub.lastFilter.Category != entity.CategorySolo {
		t.Fatalf("category filter not applied: %v", stub.lastFilter.Category)
	}

	if _, err := svc.List(context.Background(), exUC.ListInput{Category: "Bogus"}); err != nil {
		t.Fatalf("List with bogus category err=%v", err)
	}
	if stub.lastFilter.Category != nil {
		t.Fatalf("bogus category should be skipped, got %v", *stub.lastFilter.Category)
	}
}

func TestService_List_sortResolution(t *testing.T) {
	stub := newStub()
	svc := exUC.Service{Repo: stub}

	if _, err := svc.List(context.Background(), exUC.ListInput{Sort: "oldest"}); err != nil {
		t.Fatalf("List err=%v", err)
	}
	if stub.lastSort != repository.ExhibitionSortOldest {
		t.Fatalf("sort = %v, want oldest", stub.lastSort)
	}

	if _, err := svc.List(context.Background(), exUC.ListInput{Sort: "anything-else"}); err != nil {
		t.Fatalf("List err=%v", err)
	}
	if stub.lastSort != repository.ExhibitionSortNewest {
		t.Fatalf("sort = %v, want newest default", stub.lastSort)
	}
}

func TestService_Create_defaultsCategory(t *testing.T) {
	stub := newStub()
	svc := exUC.Service{Repo: stub}

	got, err := svc.Create(context.Background(), exUC.CreateInput{
		Title: "Spring Show", StartDate: start, EndDate: end,
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.Category != entity.CategoryGroup {
		t.Fatalf("category = %v, want Group default", got.Category)
	}
}

func TestService_Create_invalidCategory(t *testing.T) {
	svc := exUC.Service{Repo: newStub()}

	_, err := svc.Create(context.Background(), exUC.CreateInput{
		Title: "Spring Show", StartDate: start, EndDate: end, Category: "Retrospective",
	})
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if vErr.Error() != "Category is not valid." {
		t.Fatalf("message = %q", vErr.Error())
	}
}

func TestService_Update_strictCategory(t *testing.T) {
	stub := newStub()
	stub.data[1] = &entity.Exhibition{ID: 1, Title: "old", StartDate: start, EndDate: end}
	svc := exUC.Service{Repo: stub}

	_, err := svc.Update(context.Background(), exUC.UpdateInput{
		ID: 1, Title: "new", StartDate: start, EndDate: end,
	})
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError for empty category, got %v", err)
	}

	got, err := svc.Update(context.Background(), exUC.UpdateInput{
		ID: 1, Title: "new", StartDate: start, EndDate: end, Category: "Digital",
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.Title != "new" || got.Category != entity.CategoryDigital {
		t.Fatalf("fields not overwritten: %+v", got)
	}
}

func TestService_Update_notFound(t *testing.T) {
	svc := exUC.Service{Repo: newStub()}

	_, err := svc.Update(context.Background(), exUC.UpdateInput{
		ID: 99, Title: "t", StartDate: start, EndDate: end, Category: "Solo",
	})
	if !errors.Is(err, exUC.ErrExhibitionNotFound) {
		t.Fatalf("want ErrExhibitionNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	stub := newStub()
	stub.data[1] = &entity.Exhibition{ID: 1}
	svc := exUC.Service{Repo: stub}

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, exUC.ErrExhibitionNotFound) {
		t.Fatalf("want ErrExhibitionNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), 0); !errors.Is(err, exUC.ErrInvalidExhibitionID) {
		t.Fatalf("want ErrInvalidExhibitionID, got %v", err)
	}
}
