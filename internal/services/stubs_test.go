package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlife/internal/models/db_models"
)

// In-memory repository fakes. They mimic the database contract the services
// rely on: generated ids, user scoping, and date-descending list order.

type fakeAccountRepo struct {
	byEmail map[string]*db_models.Account
	err     error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if f.err != nil {
		return f.err
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

type fakeProfileRepo struct {
	byUser map[uuid.UUID]*db_models.Profile
	err    error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUser: make(map[uuid.UUID]*db_models.Profile)}
}

func (f *fakeProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*db_models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[userID], nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, profile *db_models.Profile) error {
	if f.err != nil {
		return f.err
	}
	if existing, ok := f.byUser[profile.UserID]; ok {
		profile.ID = existing.ID
	} else if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.byUser[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) rows() int {
	return len(f.byUser)
}

type fakeDietRepo struct {
	entries  []db_models.DietEntry
	countErr error
}

func (f *fakeDietRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.DietEntry, error) {
	var out []db_models.DietEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeDietRepo) Insert(_ context.Context, entry *db_models.DietEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeDietRepo) DeleteOwned(_ context.Context, userID, entryID uuid.UUID) error {
	for i, e := range f.entries {
		if e.ID == entryID && e.UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeDietRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for _, e := range f.entries {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeProgressRepo struct {
	records  []db_models.ProgressRecord
	countErr error
}

func (f *fakeProgressRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.ProgressRecord, error) {
	var out []db_models.ProgressRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeProgressRepo) Insert(_ context.Context, record *db_models.ProgressRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeProgressRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for _, r := range f.records {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeWorkoutRepo struct {
	plans    []db_models.WorkoutPlan
	countErr error
}

func (f *fakeWorkoutRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]db_models.WorkoutPlan, error) {
	var out []db_models.WorkoutPlan
	for _, p := range f.plans {
		if p.UserID == nil || *p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeWorkoutRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for _, p := range f.plans {
		if p.UserID != nil && *p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeWorkoutRepo) InsertSystemPlans(_ context.Context, plans []db_models.WorkoutPlan) error {
	f.plans = append(f.plans, plans...)
	return nil
}

func (f *fakeWorkoutRepo) CountSystemPlans(_ context.Context) (int64, error) {
	var n int64
	for _, p := range f.plans {
		if p.UserID == nil {
			n++
		}
	}
	return n, nil
}

type fakeRevokedStore struct {
	revoked map[string]bool
}

func newFakeRevokedStore() *fakeRevokedStore {
	return &fakeRevokedStore{revoked: make(map[string]bool)}
}

func (f *fakeRevokedStore) Revoke(token string, _ time.Duration) {
	f.revoked[token] = true
}

func (f *fakeRevokedStore) IsRevoked(token string) bool {
	return f.revoked[token]
}
