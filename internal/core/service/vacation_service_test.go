package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripnest/vacations-api/internal/core/domain"
	"github.com/tripnest/vacations-api/internal/core/ports"
)

type memCountryRepo struct {
	countries map[int64]*domain.Country
}

func (r *memCountryRepo) Create(_ context.Context, c *domain.Country) (*domain.Country, error) {
	clone := *c
	r.countries[clone.ID] = &clone
	return &clone, nil
}

func (r *memCountryRepo) FindByID(_ context.Context, id int64) (*domain.Country, error) {
	c, ok := r.countries[id]
	if !ok {
		return nil, domain.ErrCountryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *memCountryRepo) List(context.Context) ([]*domain.Country, error) { return nil, nil }
func (r *memCountryRepo) Update(context.Context, *domain.Country) error   { return nil }
func (r *memCountryRepo) Delete(context.Context, int64) error             { return nil }

type memVacationRepo struct {
	vacations map[int64]*domain.Vacation
	nextID    int64
}

func newMemVacationRepo() *memVacationRepo {
	return &memVacationRepo{vacations: map[int64]*domain.Vacation{}}
}

func (r *memVacationRepo) Create(_ context.Context, v *domain.Vacation) (*domain.Vacation, error) {
	r.nextID++
	stored := *v
	stored.ID = r.nextID
	r.vacations[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *memVacationRepo) FindByID(_ context.Context, id int64) (*domain.Vacation, error) {
	v, ok := r.vacations[id]
	if !ok {
		return nil, domain.ErrVacationNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *memVacationRepo) List(context.Context) ([]*domain.Vacation, error) {
	out := make([]*domain.Vacation, 0, len(r.vacations))
	for _, v := range r.vacations {
		clone := *v
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memVacationRepo) Update(_ context.Context, v *domain.Vacation) error {
	if _, ok := r.vacations[v.ID]; !ok {
		return domain.ErrVacationNotFound
	}
	clone := *v
	r.vacations[v.ID] = &clone
	return nil
}

func (r *memVacationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.vacations[id]; !ok {
		return domain.ErrVacationNotFound
	}
	delete(r.vacations, id)
	return nil
}

type memLikeRepo struct {
	pairs    map[[2]int64]bool
	countErr error
}

func newMemLikeRepo() *memLikeRepo {
	return &memLikeRepo{pairs: map[[2]int64]bool{}}
}

func (r *memLikeRepo) Add(_ context.Context, userID, vacationID int64) (bool, error) {
	key := [2]int64{userID, vacationID}
	if r.pairs[key] {
		return false, nil
	}
	r.pairs[key] = true
	return true, nil
}

func (r *memLikeRepo) Remove(_ context.Context, userID, vacationID int64) (bool, error) {
	key := [2]int64{userID, vacationID}
	if !r.pairs[key] {
		return false, nil
	}
	delete(r.pairs, key)
	return true, nil
}

func (r *memLikeRepo) CountForVacation(_ context.Context, vacationID int64) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	var n int64
	for key := range r.pairs {
		if key[1] == vacationID {
			n++
		}
	}
	return n, nil
}

func (r *memLikeRepo) ListForUser(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for key := range r.pairs {
		if key[0] == userID {
			ids = append(ids, key[1])
		}
	}
	return ids, nil
}

func (r *memLikeRepo) DeleteForVacation(_ context.Context, vacationID int64) (int64, error) {
	var n int64
	for key := range r.pairs {
		if key[1] == vacationID {
			delete(r.pairs, key)
			n++
		}
	}
	return n, nil
}

func vacationFixture() ports.VacationInput {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return ports.VacationInput{
		CountryID:   1,
		Description: "A week in the Galilee",
		StartsAt:    start,
		EndsAt:      start.AddDate(0, 0, 7),
		Price:       1200,
		Currency:    "ILS",
	}
}

func newVacationService() (*VacationService, *memVacationRepo, *memLikeRepo) {
	countries := &memCountryRepo{countries: map[int64]*domain.Country{
		1: {ID: 1, Name: "Israel"},
	}}
	vacations := newMemVacationRepo()
	likes := newMemLikeRepo()
	return NewVacationService(vacations, countries, likes, zerolog.Nop()), vacations, likes
}

func TestVacation_Create(t *testing.T) {
	svc, _, _ := newVacationService()

	created, err := svc.Create(context.Background(), vacationFixture())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if created.Currency != "ILS" {
		t.Fatalf("expected currency ILS, got %q", created.Currency)
	}
}

func TestVacation_Create_DefaultsCurrency(t *testing.T) {
	svc, _, _ := newVacationService()

	in := vacationFixture()
	in.Currency = ""
	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Currency != "ILS" {
		t.Fatalf("expected default currency ILS, got %q", created.Currency)
	}
}

func TestVacation_Create_Validation(t *testing.T) {
	svc, _, _ := newVacationService()

	cases := []struct {
		name   string
		mutate func(*ports.VacationInput)
		want   error
	}{
		{"empty description", func(in *ports.VacationInput) { in.Description = "" }, domain.ErrValidation},
		{"ends before start", func(in *ports.VacationInput) { in.EndsAt = in.StartsAt.AddDate(0, 0, -1) }, domain.ErrValidation},
		{"ends equals start", func(in *ports.VacationInput) { in.EndsAt = in.StartsAt }, domain.ErrValidation},
		{"negative price", func(in *ports.VacationInput) { in.Price = -1 }, domain.ErrValidation},
		{"price over cap", func(in *ports.VacationInput) { in.Price = 10001 }, domain.ErrValidation},
		{"unknown country", func(in *ports.VacationInput) { in.CountryID = 42 }, domain.ErrCountryNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := vacationFixture()
			tc.mutate(&in)
			if _, err := svc.Create(context.Background(), in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	// Boundary prices are fine.
	for _, price := range []float64{0, 10000} {
		in := vacationFixture()
		in.Price = price
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("price %v should be accepted: %v", price, err)
		}
	}
}

func TestVacation_GetDecoratesLikeCount(t *testing.T) {
	svc, _, likes := newVacationService()
	ctx := context.Background()

	created, err := svc.Create(ctx, vacationFixture())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, userID := range []int64{1, 2, 3} {
		if _, err := likes.Add(ctx, userID, created.ID); err != nil {
			t.Fatalf("seed like: %v", err)
		}
	}

	view, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Likes != 3 {
		t.Fatalf("expected 3 likes, got %d", view.Likes)
	}
}

func TestVacation_GetSurvivesLikeCountFailure(t *testing.T) {
	svc, _, likes := newVacationService()
	ctx := context.Background()

	created, err := svc.Create(ctx, vacationFixture())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	likes.countErr = errors.New("connection reset")

	view, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("a like-count failure must not hide the vacation: %v", err)
	}
	if view.Likes != 0 {
		t.Fatalf("expected 0 likes on count failure, got %d", view.Likes)
	}
}

func TestVacation_DeleteClearsLikes(t *testing.T) {
	svc, _, likes := newVacationService()
	ctx := context.Background()

	created, err := svc.Create(ctx, vacationFixture())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := likes.Add(ctx, 1, created.ID); err != nil {
		t.Fatalf("seed like: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(likes.pairs) != 0 {
		t.Fatalf("expected likes cleared, got %d left", len(likes.pairs))
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrVacationNotFound) {
		t.Fatalf("expected ErrVacationNotFound, got %v", err)
	}
}

func TestLike_Idempotent(t *testing.T) {
	_, vacations, likes := newVacationService()
	ctx := context.Background()

	vacation, err := vacations.Create(ctx, &domain.Vacation{Description: "trip"})
	if err != nil {
		t.Fatalf("seed vacation: %v", err)
	}
	svc := NewLikeService(likes, vacations, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if err := svc.Like(ctx, 1, vacation.ID); err != nil {
			t.Fatalf("like #%d: %v", i+1, err)
		}
	}
	if n, _ := likes.CountForVacation(ctx, vacation.ID); n != 1 {
		t.Fatalf("expected a single like after repeats, got %d", n)
	}

	for i := 0; i < 2; i++ {
		if err := svc.Unlike(ctx, 1, vacation.ID); err != nil {
			t.Fatalf("unlike #%d: %v", i+1, err)
		}
	}
	if n, _ := likes.CountForVacation(ctx, vacation.ID); n != 0 {
		t.Fatalf("expected 0 likes, got %d", n)
	}
}

func TestLike_UnknownVacation(t *testing.T) {
	_, vacations, likes := newVacationService()
	svc := NewLikeService(likes, vacations, zerolog.Nop())

	if err := svc.Like(context.Background(), 1, 42); !errors.Is(err, domain.ErrVacationNotFound) {
		t.Fatalf("expected ErrVacationNotFound, got %v", err)
	}
}
