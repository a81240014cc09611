package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nomadnav/travel-api/internal/core/domain"
	"github.com/nomadnav/travel-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubPriceRepo struct {
	byID    map[string]*domain.Price
	seq     int
	listErr error
}

func newStubPriceRepo() *stubPriceRepo {
	return &stubPriceRepo{byID: make(map[string]*domain.Price)}
}

func (r *stubPriceRepo) Create(_ context.Context, p *domain.Price) (*domain.Price, error) {
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("price_%04d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPriceRepo) FindByID(_ context.Context, id string) (*domain.Price, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPriceNotFound
	}
	clone := *p
	return &clone, nil
}

// List mirrors the real Mongo query: equality filter, createdAt desc with id
// desc as tie-break, then skip/limit.
func (r *stubPriceRepo) List(_ context.Context, f ports.ListPricesFilter) ([]*domain.Price, int64, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}

	var matched []*domain.Price
	for _, p := range r.byID {
		if f.Country != "" && p.Country != f.Country {
			continue
		}
		if f.Category != "" && string(p.Category) != f.Category {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	if f.Skip >= len(matched) {
		return nil, total, nil
	}
	end := f.Skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[f.Skip:end], total, nil
}

func (r *stubPriceRepo) Update(_ context.Context, p *domain.Price) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPriceNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPriceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPriceNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubUserRepo struct {
	usernames map[string]string
	byEmail   map[string]*domain.User
	byID      map[string]*domain.User
	createErr error
	updated   *domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		usernames: make(map[string]string),
		byEmail:   make(map[string]*domain.User),
		byID:      make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, domain.ErrUserExists
	}
	clone := *u
	clone.ID = fmt.Sprintf("user_%04d", len(r.byID)+1)
	r.byEmail[clone.Email] = &clone
	r.byID[clone.ID] = &clone
	r.usernames[clone.ID] = clone.Username
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	clone := *u
	r.updated = &clone
	if prev, ok := r.byID[u.ID]; ok && prev.Email != u.Email {
		delete(r.byEmail, prev.Email)
	}
	r.byID[u.ID] = &clone
	r.byEmail[clone.Email] = &clone
	r.usernames[clone.ID] = clone.Username
	return nil
}

func (r *stubUserRepo) Usernames(_ context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		if name, ok := r.usernames[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var (
	actorAlice = &domain.Actor{ID: "user_alice", Role: domain.RoleUser}
	actorBob   = &domain.Actor{ID: "user_bob", Role: domain.RoleUser}
	actorAdmin = &domain.Actor{ID: "user_root", Role: domain.RoleAdmin}
)

func newPriceService() (*PriceService, *stubPriceRepo, *stubUserRepo) {
	repo := newStubPriceRepo()
	users := newStubUserRepo()
	users.usernames[actorAlice.ID] = "alice"
	users.usernames[actorBob.ID] = "bob"
	users.usernames[actorAdmin.ID] = "root"
	return NewPriceService(repo, users, zerolog.Nop()), repo, users
}

func coffeeInput() ports.CreatePriceInput {
	return ports.CreatePriceInput{
		Country:  "USA",
		Category: "Food",
		Item:     "Coffee",
		Price:    3.50,
		Currency: "USD",
		Location: "NYC",
	}
}

func isValidationError(err error) bool {
	var ve *domain.ValidationError
	return errors.As(err, &ve)
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestPriceService_Create_Success(t *testing.T) {
	svc, repo, _ := newPriceService()

	view, err := svc.Create(context.Background(), actorAlice, coffeeInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.ID == "" {
		t.Error("expected an id on the created report")
	}
	if view.Price != 3.50 {
		t.Errorf("price: want 3.50, got %v", view.Price)
	}
	if view.ReportedBy.ID != actorAlice.ID {
		t.Errorf("reportedBy: want %q, got %q", actorAlice.ID, view.ReportedBy.ID)
	}
	if view.ReportedBy.Username != "alice" {
		t.Errorf("reporter username: want %q, got %q", "alice", view.ReportedBy.Username)
	}
	if view.CreatedAt.IsZero() || view.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}

	stored := repo.byID[view.ID]
	if stored.ReportedBy != actorAlice.ID {
		t.Errorf("persisted reportedBy: want %q, got %q", actorAlice.ID, stored.ReportedBy)
	}
}

func TestPriceService_Create_Anonymous(t *testing.T) {
	svc, repo, _ := newPriceService()

	_, err := svc.Create(context.Background(), nil, coffeeInput())
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("nothing must be persisted on a denied create")
	}
}

func TestPriceService_Create_NegativePrice(t *testing.T) {
	svc, repo, _ := newPriceService()

	in := coffeeInput()
	in.Price = -1
	_, err := svc.Create(context.Background(), actorAlice, in)
	if !isValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("no partial write on validation failure")
	}
}

func TestPriceService_Create_InvalidCategory(t *testing.T) {
	svc, _, _ := newPriceService()

	in := coffeeInput()
	in.Category = "Bribes"
	_, err := svc.Create(context.Background(), actorAlice, in)
	if !isValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPriceService_Create_NamesOffendingFields(t *testing.T) {
	svc, _, _ := newPriceService()

	_, err := svc.Create(context.Background(), actorAlice, ports.CreatePriceInput{
		Country:  "  ",
		Category: "Food",
		Item:     "",
		Price:    1,
		Currency: "USD",
		Location: "x",
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected 2 offending fields (country, item), got %v", ve.Fields)
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func TestPriceService_Update_OwnerAndAdmin(t *testing.T) {
	svc, repo, _ := newPriceService()

	created, err := svc.Create(context.Background(), actorAlice, coffeeInput())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Another plain user may not touch it; the record stays unchanged.
	_, err = svc.Update(context.Background(), actorBob, created.ID, map[string]any{"price": 10.0})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if repo.byID[created.ID].Price != 3.50 {
		t.Errorf("price must stay 3.50 after denied update, got %v", repo.byID[created.ID].Price)
	}

	// Admin may.
	view, err := svc.Update(context.Background(), actorAdmin, created.ID, map[string]any{"price": 10.0})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if view.Price != 10.0 {
		t.Errorf("price: want 10.0, got %v", view.Price)
	}
	if repo.byID[created.ID].Price != 10.0 {
		t.Errorf("persisted price: want 10.0, got %v", repo.byID[created.ID].Price)
	}
	// The reporter never changes.
	if repo.byID[created.ID].ReportedBy != actorAlice.ID {
		t.Errorf("reportedBy must be immutable, got %q", repo.byID[created.ID].ReportedBy)
	}
}

func TestPriceService_Update_OwnerSucceeds(t *testing.T) {
	svc, repo, _ := newPriceService()
	created, _ := svc.Create(context.Background(), actorAlice, coffeeInput())

	before := repo.byID[created.ID].UpdatedAt
	time.Sleep(time.Millisecond)

	view, err := svc.Update(context.Background(), actorAlice, created.ID, map[string]any{
		"item":  "Espresso",
		"notes": "double shot",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Item != "Espresso" || view.Notes != "double shot" {
		t.Errorf("fields not applied: %+v", view)
	}
	if !view.UpdatedAt.After(before) {
		t.Error("updatedAt must be refreshed on mutation")
	}
}

func TestPriceService_Update_DisallowedFieldRejectsWhole(t *testing.T) {
	svc, repo, _ := newPriceService()
	created, _ := svc.Create(context.Background(), actorAlice, coffeeInput())

	_, err := svc.Update(context.Background(), actorAlice, created.ID, map[string]any{
		"price":      9.99,
		"reportedBy": actorBob.ID,
	})
	if !errors.Is(err, domain.ErrInvalidUpdate) {
		t.Fatalf("expected ErrInvalidUpdate, got %v", err)
	}

	stored := repo.byID[created.ID]
	if stored.Price != 3.50 {
		t.Errorf("allowed field in the same request must not be applied; price = %v", stored.Price)
	}
	if stored.ReportedBy != actorAlice.ID {
		t.Errorf("reportedBy must be untouched, got %q", stored.ReportedBy)
	}
}

func TestPriceService_Update_NegativePriceRejected(t *testing.T) {
	svc, repo, _ := newPriceService()
	created, _ := svc.Create(context.Background(), actorAlice, coffeeInput())

	_, err := svc.Update(context.Background(), actorAlice, created.ID, map[string]any{"price": -2.0})
	if !isValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.byID[created.ID].Price != 3.50 {
		t.Errorf("prior value must survive a failed update, got %v", repo.byID[created.ID].Price)
	}
}

func TestPriceService_Update_WrongValueType(t *testing.T) {
	svc, _, _ := newPriceService()
	created, _ := svc.Create(context.Background(), actorAlice, coffeeInput())

	_, err := svc.Update(context.Background(), actorAlice, created.ID, map[string]any{"price": "ten"})
	if !isValidationError(err) {
		t.Fatalf("expected ValidationError for non-numeric price, got %v", err)
	}

	_, err = svc.Update(context.Background(), actorAlice, created.ID, map[string]any{"item": 5.0})
	if !isValidationError(err) {
		t.Fatalf("expected ValidationError for non-string item, got %v", err)
	}
}

func TestPriceService_Update_NotFound(t *testing.T) {
	svc, _, _ := newPriceService()

	_, err := svc.Update(context.Background(), actorAlice, "price_missing", map[string]any{"price": 1.0})
	if !errors.Is(err, domain.ErrPriceNotFound) {
		t.Fatalf("expected ErrPriceNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete tests
// ---------------------------------------------------------------------------

func TestPriceService_Delete_OwnerThenNotFound(t *testing.T) {
	svc, repo, _ := newPriceService()
	created, _ := svc.Create(context.Background(), actorAlice, coffeeInput())

	if err := svc.Delete(context.Background(), actorAlice, created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("record must be hard-deleted")
	}

	// Deleted is terminal: a second delete of the same id is a not-found.
	err := svc.Delete(context.Background(), actorAlice, created.ID)
	if !errors.Is(err, domain.ErrPriceNotFound) {
		t.Fatalf("expected ErrPriceNotFound on second delete, got %v", err)
	}
}

func TestPriceService_Delete_NonOwnerForbidden(t *testing.T) {
	svc, repo, _ := newPriceService()
	created, _ := svc.Create(context.Background(), actorAlice, coffeeInput())

	err := svc.Delete(context.Background(), actorBob, created.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := repo.byID[created.ID]; !ok {
		t.Error("record must survive a denied delete")
	}
}

func TestPriceService_Delete_AdminAllowed(t *testing.T) {
	svc, _, _ := newPriceService()
	created, _ := svc.Create(context.Background(), actorAlice, coffeeInput())

	if err := svc.Delete(context.Background(), actorAdmin, created.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}

// ---------------------------------------------------------------------------
// List / pagination tests
// ---------------------------------------------------------------------------

func seedPrice(t *testing.T, svc *PriceService, country, category string, price float64, createdAt time.Time, repo *stubPriceRepo) string {
	t.Helper()
	view, err := svc.Create(context.Background(), actorAlice, ports.CreatePriceInput{
		Country:  country,
		Category: category,
		Item:     "item",
		Price:    price,
		Currency: "USD",
		Location: "somewhere",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !createdAt.IsZero() {
		repo.byID[view.ID].CreatedAt = createdAt
	}
	return view.ID
}

func TestPriceService_List_PaginationMath(t *testing.T) {
	svc, repo, _ := newPriceService()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedPrice(t, svc, "Egypt", "Food", float64(i), base.Add(time.Duration(i)*time.Hour), repo)
	}

	cases := []struct {
		limit, skip int
		wantLen     int
		wantMore    bool
	}{
		{2, 0, 2, true},
		{2, 2, 2, true},
		{2, 4, 1, false},
		{10, 0, 5, false},
		{5, 5, 0, false},
		{3, 9, 0, false},
	}
	for _, tc := range cases {
		res, err := svc.List(context.Background(), ports.ListPricesInput{Limit: tc.limit, Skip: tc.skip})
		if err != nil {
			t.Fatalf("limit=%d skip=%d: %v", tc.limit, tc.skip, err)
		}
		if res.Total != 5 {
			t.Errorf("limit=%d skip=%d: total want 5, got %d", tc.limit, tc.skip, res.Total)
		}
		if len(res.Prices) != tc.wantLen {
			t.Errorf("limit=%d skip=%d: len want %d, got %d", tc.limit, tc.skip, tc.wantLen, len(res.Prices))
		}
		if res.HasMore != tc.wantMore {
			t.Errorf("limit=%d skip=%d: hasMore want %v, got %v", tc.limit, tc.skip, tc.wantMore, res.HasMore)
		}
	}
}

func TestPriceService_List_NewestFirst(t *testing.T) {
	svc, repo, _ := newPriceService()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	oldID := seedPrice(t, svc, "Egypt", "Food", 1, base, repo)
	newID := seedPrice(t, svc, "Egypt", "Food", 2, base.Add(time.Hour), repo)

	res, err := svc.List(context.Background(), ports.ListPricesInput{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Prices[0].ID != newID || res.Prices[1].ID != oldID {
		t.Errorf("expected newest first, got %s then %s", res.Prices[0].ID, res.Prices[1].ID)
	}
}

func TestPriceService_List_FilteredPage(t *testing.T) {
	// Seeded set of 2 matching records; limit=1 skip=0 must return the most
	// recent one with total=2 and hasMore=true.
	svc, repo, _ := newPriceService()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedPrice(t, svc, "Egypt", "Food", 3, base, repo)
	latest := seedPrice(t, svc, "Egypt", "Food", 4, base.Add(time.Hour), repo)
	seedPrice(t, svc, "Egypt", "Transport", 5, base.Add(2*time.Hour), repo)
	seedPrice(t, svc, "Thailand", "Food", 6, base.Add(3*time.Hour), repo)

	res, err := svc.List(context.Background(), ports.ListPricesInput{
		Country:  "Egypt",
		Category: "Food",
		Limit:    1,
		Skip:     0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 {
		t.Errorf("total: want 2, got %d", res.Total)
	}
	if !res.HasMore {
		t.Error("hasMore: want true")
	}
	if len(res.Prices) != 1 || res.Prices[0].ID != latest {
		t.Errorf("expected the most recent matching record %s, got %+v", latest, res.Prices)
	}
}

func TestPriceService_List_DefaultLimit(t *testing.T) {
	svc, repo, _ := newPriceService()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		seedPrice(t, svc, "Egypt", "Food", float64(i), base.Add(time.Duration(i)*time.Minute), repo)
	}

	res, err := svc.List(context.Background(), ports.ListPricesInput{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Prices) != 20 {
		t.Errorf("default limit: want 20 items, got %d", len(res.Prices))
	}
	if !res.HasMore {
		t.Error("hasMore: want true with 25 records and default limit")
	}
}

func TestPriceService_List_ResolvesUsernames(t *testing.T) {
	svc, repo, users := newPriceService()
	seedPrice(t, svc, "Egypt", "Food", 1, time.Time{}, repo)

	res, err := svc.List(context.Background(), ports.ListPricesInput{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Prices[0].ReportedBy.Username != users.usernames[actorAlice.ID] {
		t.Errorf("reporter username: want %q, got %q", users.usernames[actorAlice.ID], res.Prices[0].ReportedBy.Username)
	}
}

func TestPriceService_List_OrphanedReporterRendersBlank(t *testing.T) {
	svc, repo, users := newPriceService()
	seedPrice(t, svc, "Egypt", "Food", 1, time.Time{}, repo)
	delete(users.usernames, actorAlice.ID)

	res, err := svc.List(context.Background(), ports.ListPricesInput{})
	if err != nil {
		t.Fatalf("orphaned reference must not fail the read: %v", err)
	}
	if res.Prices[0].ReportedBy.Username != "" {
		t.Errorf("expected empty username for unknown reporter, got %q", res.Prices[0].ReportedBy.Username)
	}
}

func TestPriceService_Get_NotFound(t *testing.T) {
	svc, _, _ := newPriceService()

	_, err := svc.Get(context.Background(), "price_missing")
	if !errors.Is(err, domain.ErrPriceNotFound) {
		t.Fatalf("expected ErrPriceNotFound, got %v", err)
	}
}
