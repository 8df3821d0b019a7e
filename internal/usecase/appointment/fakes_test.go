package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/markeugine/atelier-backend/internal/domain/appointment"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/notify"
)

// fakeRepo is an in-memory Repository that also records call order so the
// tests can assert the sweep runs before listing.
type fakeRepo struct {
	appointments map[uint]*models.Appointment
	nextID       uint
	cancels      map[uint]int

	calls []string
	today time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
		cancels:      make(map[uint]int),
		today:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.calls = append(f.calls, "create")
	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	f.calls = append(f.calls, "get")
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) GetAppointmentForUser(ctx context.Context, id, userID uint) (*models.Appointment, error) {
	f.calls = append(f.calls, "getForUser")
	ap, ok := f.appointments[id]
	if !ok || ap.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	f.calls = append(f.calls, "list")
	var out []models.Appointment
	for _, ap := range f.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	f.calls = append(f.calls, "listForUser")
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.calls = append(f.calls, "update")
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, ap *models.Appointment) error {
	f.calls = append(f.calls, "delete")
	delete(f.appointments, ap.ID)
	return nil
}

func (f *fakeRepo) ArchiveExpiredPending(ctx context.Context, today time.Time) (int64, error) {
	f.calls = append(f.calls, "sweep")
	var n int64
	for _, ap := range f.appointments {
		if domain.ShouldArchive(domain.Status(ap.AppointmentStatus), ap.Date, today) {
			ap.AppointmentStatus = string(domain.StatusArchived)
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) IncrementUserCancels(ctx context.Context, userID uint) (int, error) {
	f.calls = append(f.calls, "incrementCancels")
	f.cancels[userID]++
	return f.cancels[userID], nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeNotifier records dispatched events instead of queueing them.
type fakeNotifier struct {
	events []notify.Event
}

func (f *fakeNotifier) Dispatch(ev notify.Event) {
	f.events = append(f.events, ev)
}

var _ notify.Notifier = (*fakeNotifier)(nil)
