package events

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/handlers/slogdiscard"
	"eventHub/internal/models"
	"eventHub/internal/storage/sqlite"
	"eventHub/internal/storage/sqlstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.May, 10, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Service, *sqlstore.Store) {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "event-hub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	svc := New(slogdiscard.NewDiscardLogger(), store, 0)
	svc.now = func() time.Time { return testNow }

	return svc, store
}

func newUser(t *testing.T, store *sqlstore.Store, name string, role models.Role) *models.User {
	t.Helper()

	u := &models.User{Username: name, Email: name + "@example.com", Role: role, PasswordHash: "hash", CreatedAt: testNow}
	require.NoError(t, store.CreateUser(context.Background(), u))

	return u
}

func input(title string) Input {
	return Input{
		Title:    title,
		Date:     testNow.Add(72 * time.Hour),
		Location: "Hall A",
		Capacity: 50,
		Price:    1200,
	}
}

func TestCreateDefaultsAndGates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := setup(t)

	organizer := newUser(t, store, "org", models.RoleOrganizer)
	admin := newUser(t, store, "root", models.RoleAdmin)
	plain := newUser(t, store, "joe", models.RoleUser)

	e, err := svc.Create(ctx, organizer, input("Workshop"))
	require.NoError(t, err)
	assert.Equal(t, models.EventDraft, e.Status)
	assert.Equal(t, organizer.ID, e.CreatorID)

	e, err = svc.Create(ctx, admin, input("Keynote"))
	require.NoError(t, err)
	assert.Equal(t, models.EventPublished, e.Status)

	in := input("Explicit")
	in.Status = models.EventPublished
	e, err = svc.Create(ctx, organizer, in)
	require.NoError(t, err)
	assert.Equal(t, models.EventPublished, e.Status)

	_, err = svc.Create(ctx, plain, input("Nope"))
	assert.ErrorIs(t, err, ErrNotOrganizer)
	assert.ErrorIs(t, err, errs.ErrAuthorization)
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := setup(t)
	organizer := newUser(t, store, "org", models.RoleOrganizer)

	missing := int64(77)

	testCases := []struct {
		name   string
		mutate func(in *Input)
		want   error
	}{
		{name: "blank title", mutate: func(in *Input) { in.Title = "  " }, want: ErrTitleRequired},
		{name: "bad status", mutate: func(in *Input) { in.Status = "archived" }, want: ErrInvalidStatus},
		{name: "negative price", mutate: func(in *Input) { in.Price = -1 }, want: ErrNegativeNumbers},
		{name: "negative capacity", mutate: func(in *Input) { in.Capacity = -5 }, want: ErrNegativeNumbers},
		{name: "unknown category", mutate: func(in *Input) { in.CategoryID = &missing }, want: ErrUnknownCategory},
	}

	for _, tc := range testCases {
		in := input("Event")
		tc.mutate(&in)

		_, err := svc.Create(ctx, organizer, in)
		assert.ErrorIs(t, err, tc.want, tc.name)
		assert.ErrorIs(t, err, errs.ErrValidation, tc.name)
	}
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := setup(t)
	organizer := newUser(t, store, "org", models.RoleOrganizer)
	other := newUser(t, store, "other", models.RoleOrganizer)
	admin := newUser(t, store, "root", models.RoleAdmin)

	e, err := svc.Create(ctx, organizer, input("Draft"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, other, e.ID, input("Hijack"))
	assert.ErrorIs(t, err, ErrCannotEdit)

	in := input("Renamed")
	in.Price = 0
	updated, err := svc.Update(ctx, organizer, e.ID, in)
	require.NoError(t, err)
	assert.Equal(t, models.EventDraft, updated.Status, "status kept when omitted")

	in.Status = models.EventCancelled
	updated, err = svc.Update(ctx, admin, e.ID, in)
	require.NoError(t, err)
	assert.Equal(t, models.EventCancelled, updated.Status)

	stored, err := store.EventByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)
	assert.Equal(t, int64(0), stored.Price)

	_, err = svc.Update(ctx, admin, 999, in)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDetail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := setup(t)
	organizer := newUser(t, store, "org", models.RoleOrganizer)
	guest := newUser(t, store, "guest", models.RoleUser)

	draft, err := svc.Create(ctx, organizer, input("Hidden"))
	require.NoError(t, err)

	_, err = svc.Detail(ctx, nil, draft.ID)
	assert.ErrorIs(t, err, ErrNoAccess)
	_, err = svc.Detail(ctx, guest, draft.ID)
	assert.ErrorIs(t, err, ErrNoAccess)

	d, err := svc.Detail(ctx, organizer, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, d.Event.ID)

	in := input("Open")
	in.Status = models.EventPublished
	open, err := svc.Create(ctx, organizer, in)
	require.NoError(t, err)

	d, err = svc.Detail(ctx, nil, open.ID)
	require.NoError(t, err)
	assert.Nil(t, d.Registration)
	assert.False(t, d.CanCancel)

	reg := &models.Registration{UserID: guest.ID, EventID: open.ID, Status: models.RegistrationConfirmed, PaymentMethod: models.MethodCardMir, CreatedAt: testNow}
	require.NoError(t, store.CreateRegistration(ctx, reg))
	p := &models.Payment{RegistrationID: reg.ID, Amount: 1200, PaymentMethod: models.MethodCardMir, Status: models.PaymentCompleted, CreatedAt: testNow, UpdatedAt: testNow}
	require.NoError(t, store.CreatePayment(ctx, p))

	d, err = svc.Detail(ctx, guest, open.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, d.ConfirmedCount)
	require.NotNil(t, d.Registration)
	assert.Equal(t, reg.ID, d.Registration.ID)
	require.NotNil(t, d.Payment)
	assert.Equal(t, p.ID, d.Payment.ID)
	assert.True(t, d.CanCancel)
	assert.Equal(t, int64(1200), d.RefundAmount)

	svc.now = func() time.Time { return testNow.Add(60 * time.Hour) }
	d, err = svc.Detail(ctx, guest, open.ID)
	require.NoError(t, err)
	assert.False(t, d.CanCancel, "within the cutoff")
}

func TestListAndMyEvents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := setup(t)
	admin := newUser(t, store, "root", models.RoleAdmin)
	organizer := newUser(t, store, "org", models.RoleOrganizer)

	tech, err := svc.CreateCategory(ctx, admin, "Tech", "")
	require.NoError(t, err)

	in := input("Go conference")
	in.CategoryID = &tech.ID
	goConf, err := svc.Create(ctx, admin, in)
	require.NoError(t, err)
	_, err = svc.Create(ctx, admin, input("Poetry evening"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, organizer, input("Draft meetup"))
	require.NoError(t, err)

	all, err := svc.List(ctx, 0, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byCategory, err := svc.List(ctx, tech.ID, "")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, goConf.ID, byCategory[0].ID)

	bySearch, err := svc.List(ctx, 0, "  POETRY ")
	require.NoError(t, err)
	require.Len(t, bySearch, 1)

	reg := &models.Registration{UserID: organizer.ID, EventID: goConf.ID, Status: models.RegistrationConfirmed, PaymentMethod: models.MethodCash, CreatedAt: testNow}
	require.NoError(t, store.CreateRegistration(ctx, reg))

	mine, err := svc.MyEvents(ctx, organizer)
	require.NoError(t, err)
	require.Len(t, mine.Created, 1)
	assert.Equal(t, "Draft meetup", mine.Created[0].Title)
	require.Len(t, mine.Registered, 1)
	assert.Equal(t, goConf.ID, mine.Registered[0].ID)
}

func TestCategories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := setup(t)
	admin := newUser(t, store, "root", models.RoleAdmin)
	organizer := newUser(t, store, "org", models.RoleOrganizer)

	_, err := svc.CreateCategory(ctx, organizer, "Music", "")
	assert.ErrorIs(t, err, ErrNotAdmin)

	_, err = svc.CreateCategory(ctx, admin, " ", "")
	assert.ErrorIs(t, err, ErrCategoryRequired)

	_, err = svc.CreateCategory(ctx, admin, "Music", "live shows")
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, admin, "Art", "")
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, admin, "Music", "")
	assert.ErrorIs(t, err, ErrCategoryExists)

	list, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Art", list[0].Name)
}
