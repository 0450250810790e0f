package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-service/internal/domain"
	userRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/user"
	"github.com/bestbuddies/grooming-service/internal/pricing"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	copied := *b
	copied.ID = uuid.NewString()
	copied.CreatedAt = time.Now()
	r.bookings = append(r.bookings, &copied)
	result := copied
	return &result, nil
}

func (r *fakeBookingRepo) GetByDate(_ context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if !b.Date.Equal(date) {
			continue
		}
		if !includeInactive && !b.IsActive() {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

type fakeHistoryRepo struct {
	entries []*domain.BookingHistoryEntry
}

func (r *fakeHistoryRepo) Append(_ context.Context, e *domain.BookingHistoryEntry) (*domain.BookingHistoryEntry, error) {
	e.Timestamp = time.Now()
	r.entries = append(r.entries, e)
	return e, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeGroomerRepo struct{}

func (fakeGroomerRepo) List(_ context.Context) ([]domain.Groomer, error) {
	return domain.DefaultRoster, nil
}

type fakeCatalogRepo struct{}

func (fakeCatalogRepo) List(_ context.Context) ([]domain.Package, error) {
	return pricing.DefaultPackages, nil
}

type fakeAbsenceRepo struct {
	absences []*domain.StaffAbsence
}

func (r *fakeAbsenceRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.StaffAbsence, error) {
	var out []*domain.StaffAbsence
	for _, a := range r.absences {
		if a.Date.Equal(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeBlackoutRepo struct {
	blackouts map[string]*domain.CalendarBlackout
}

func (r *fakeBlackoutRepo) GetByDate(_ context.Context, date time.Time) (*domain.CalendarBlackout, error) {
	if r.blackouts == nil {
		return nil, nil
	}
	return r.blackouts[date.Format(domain.DateFormat)], nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (t fixedTime) Now() time.Time { return t.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testNow  = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	history  *fakeHistoryRepo
	users    *fakeUserRepo
	absences *fakeAbsenceRepo
	blackout *fakeBlackoutRepo
}

func newFixture() *fixture {
	bookings := &fakeBookingRepo{}
	history := &fakeHistoryRepo{}
	users := &fakeUserRepo{users: map[string]*domain.User{
		"cust-1": {ID: "cust-1", Name: "Maria Santos", Role: domain.RoleCustomer},
	}}
	absences := &fakeAbsenceRepo{}
	blackout := &fakeBlackoutRepo{}

	uc := NewUseCase(bookings, history, users, fakeGroomerRepo{}, fakeCatalogRepo{},
		absences, blackout, fakeTxManager{}, nopLogger{}).
		WithTimeProvider(fixedTime{testNow})

	return &fixture{uc: uc, bookings: bookings, history: history, users: users, absences: absences, blackout: blackout}
}

func validRequest() *Request {
	return &Request{
		CustomerID:    "cust-1",
		CustomerName:  "Maria Santos",
		CustomerPhone: "+639171234567",
		PetName:       "Choco",
		PetSpecies:    "dog",
		WeightLabel:   "5.1 – 8kg",
		PackageID:     "full-basic",
		Date:          testDate,
		Slot:          "9am-12pm",
	}
}

func TestExecute(t *testing.T) {
	f := newFixture()

	got, err := f.uc.Execute(context.Background(), validRequest(), domain.ActorCustomer)
	require.NoError(t, err)

	assert.Equal(t, "pending", got.Status)
	assert.Regexp(t, `^BB-[0-9A-Z]{5}\d{4}$`, got.Code)
	require.NotNil(t, got.GroomerID)
	assert.Equal(t, domain.DefaultRoster[0].ID, *got.GroomerID)
	assert.Equal(t, 630, got.Cost.Subtotal)
	assert.Equal(t, domain.BookingFee, got.Cost.TotalDueToday)

	require.Len(t, f.history.entries, 1)
	assert.Equal(t, domain.ActionCreated, f.history.entries[0].Action)
	assert.Equal(t, domain.ActorCustomer, f.history.entries[0].Actor)
}

func TestExecute_FairAssignmentSpreadsLoad(t *testing.T) {
	f := newFixture()

	first, err := f.uc.Execute(context.Background(), validRequest(), domain.ActorCustomer)
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background(), validRequest(), domain.ActorCustomer)
	require.NoError(t, err)

	assert.NotEqual(t, *first.GroomerID, *second.GroomerID)
}

func TestExecute_AllWindowsTakenLeavesUnassigned(t *testing.T) {
	f := newFixture()
	// every roster groomer already holds the morning window
	for _, g := range domain.DefaultRoster {
		id := g.ID
		f.bookings.bookings = append(f.bookings.bookings, &domain.Booking{
			ID:        uuid.NewString(),
			GroomerID: &id,
			Date:      testDate,
			Slot:      domain.SlotMorning,
			Status:    domain.StatusConfirmed,
		})
	}

	got, err := f.uc.Execute(context.Background(), validRequest(), domain.ActorCustomer)
	require.NoError(t, err)

	assert.Equal(t, "pending", got.Status)
	assert.Nil(t, got.GroomerID)

	// no groomer ends up with two active bookings in the same window
	perGroomer := map[string]int{}
	for _, b := range f.bookings.bookings {
		if b.GroomerID != nil && b.IsActive() && b.Slot == domain.SlotMorning {
			perGroomer[*b.GroomerID]++
		}
	}
	for id, n := range perGroomer {
		assert.Equal(t, 1, n, "groomer %s double-booked", id)
	}
}

func TestExecute_BannedCustomer(t *testing.T) {
	f := newFixture()
	f.users.users["cust-1"].IsBanned = true

	_, err := f.uc.Execute(context.Background(), validRequest(), domain.ActorCustomer)
	assert.ErrorIs(t, err, ErrCustomerBanned)
	assert.Empty(t, f.bookings.bookings)
}

func TestExecute_BlackedOutDay(t *testing.T) {
	f := newFixture()
	f.blackout.blackouts = map[string]*domain.CalendarBlackout{
		testDate.Format(domain.DateFormat): {Date: testDate, Reason: "Deep cleaning"},
	}

	_, err := f.uc.Execute(context.Background(), validRequest(), domain.ActorCustomer)
	assert.ErrorIs(t, err, ErrDayBlackedOut)
}

func TestExecute_RequestedGroomer(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.RequestedGroomerID = "groomer-botchoy"
	got, err := f.uc.Execute(context.Background(), req, domain.ActorCustomer)
	require.NoError(t, err)

	require.NotNil(t, got.GroomerID)
	assert.Equal(t, "groomer-botchoy", *got.GroomerID)
}

func TestExecute_RequestedGroomerSlotTaken(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.RequestedGroomerID = "groomer-sam"
	_, err := f.uc.Execute(context.Background(), req, domain.ActorCustomer)
	require.NoError(t, err)

	// The same groomer, date and slot again
	_, err = f.uc.Execute(context.Background(), req, domain.ActorCustomer)
	assert.ErrorIs(t, err, ErrGroomerNotAvailable)
}

func TestExecute_UnknownRequestedGroomer(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.RequestedGroomerID = "groomer-nobody"
	_, err := f.uc.Execute(context.Background(), req, domain.ActorCustomer)
	assert.ErrorIs(t, err, ErrGroomerNotAvailable)
}

func TestExecute_NoGroomerLeftStaysUnassigned(t *testing.T) {
	f := newFixture()
	for _, g := range domain.DefaultRoster {
		f.absences.absences = append(f.absences.absences, &domain.StaffAbsence{
			GroomerID: g.ID,
			Date:      testDate,
			Status:    domain.AbsenceApproved,
		})
	}

	got, err := f.uc.Execute(context.Background(), validRequest(), domain.ActorCustomer)
	require.NoError(t, err)

	assert.Nil(t, got.GroomerID)
	assert.Equal(t, "pending", got.Status)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"bad phone", func(r *Request) { r.CustomerPhone = "12345" }},
		{"bad species", func(r *Request) { r.PetSpecies = "hamster" }},
		{"bad slot", func(r *Request) { r.Slot = "6pm-9pm" }},
		{"missing pet name", func(r *Request) { r.PetName = "" }},
		{"single service without services", func(r *Request) {
			r.PackageID = domain.SingleServicePackageID
			r.SingleServices = nil
		}},
		{"notes too long", func(r *Request) {
			notes := strings.Repeat("a", domain.MaxNotesLength+1)
			r.Notes = &notes
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := f.uc.Execute(context.Background(), req, domain.ActorCustomer)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_UnknownPackage(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.PackageID = "deluxe-spa"
	_, err := f.uc.Execute(context.Background(), req, domain.ActorCustomer)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}
