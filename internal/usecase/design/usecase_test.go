package design

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"

	domain "github.com/markeugine/atelier-backend/internal/domain/design"
	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/notify"
)

// fakeRepo keeps designs and a few appointments in memory. AppendUpdate
// mirrors the transactional contract: fn runs against the stored row and the
// mutated row is persisted as one step.
type fakeRepo struct {
	designs      map[uint]*models.Design
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		designs:      make(map[uint]*models.Design),
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
	}
}

func (f *fakeRepo) CreateDesign(ctx context.Context, d *models.Design) error {
	d.ID = f.nextID
	f.nextID++
	cp := *d
	f.designs[d.ID] = &cp
	return nil
}

func (f *fakeRepo) DesignExistsForAppointment(ctx context.Context, appointmentID uint) (bool, error) {
	for _, d := range f.designs {
		if d.AppointmentID == appointmentID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) GetDesign(ctx context.Context, id uint) (*models.Design, error) {
	d, ok := f.designs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeRepo) ListDesigns(ctx context.Context) ([]models.Design, error) {
	var out []models.Design
	for _, d := range f.designs {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeRepo) ListDesignsForUser(ctx context.Context, userID uint) ([]models.Design, error) {
	var out []models.Design
	for _, d := range f.designs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateDesign(ctx context.Context, d *models.Design) error {
	cp := *d
	f.designs[d.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteDesign(ctx context.Context, d *models.Design) error {
	delete(f.designs, d.ID)
	return nil
}

func (f *fakeRepo) AppendUpdate(ctx context.Context, designID uint, fn func(d *models.Design) error) (*models.Design, error) {
	d, ok := f.designs[designID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	if err := fn(&cp); err != nil {
		return nil, err
	}
	f.designs[designID] = &cp
	result := cp
	return &result, nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeNotifier struct {
	events []notify.Event
}

func (f *fakeNotifier) Dispatch(ev notify.Event) {
	f.events = append(f.events, ev)
}

func seedDesign(t *testing.T, repo *fakeRepo, total float64) *models.Design {
	t.Helper()

	repo.appointments[1] = &models.Appointment{
		ID:                1,
		UserID:            7,
		AppointmentStatus: "approved",
	}

	uc := NewCreateDesign(repo, &fakeNotifier{})
	d, err := uc.Execute(context.Background(), CreateDesignInput{
		AppointmentID: 1,
		AttireType:    "barong",
		TargetedDate:  "2025-09-01",
		TotalAmount:   total,
	})
	require.NoError(t, err)
	return d
}

func TestCreateDesign(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{ID: 1, UserID: 7}

	notifier := &fakeNotifier{}
	uc := NewCreateDesign(repo, notifier)

	d, err := uc.Execute(context.Background(), CreateDesignInput{
		AppointmentID: 1,
		AttireType:    "gown",
		TargetedDate:  "2025-09-01",
		TotalAmount:   1000,
	})
	require.NoError(t, err)

	// Owner comes from the appointment, never from the caller.
	assert.Equal(t, uint(7), d.UserID)
	assert.Equal(t, 1000.0, d.TotalAmount)
	assert.Equal(t, 0.0, d.AmountPaid)
	assert.Equal(t, 1000.0, d.Balance)
	assert.Equal(t, string(domain.NoPayment), d.PaymentStatus)
	assert.Equal(t, string(domain.ProcessDesigning), d.ProcessStatus)
	assert.JSONEq(t, "[]", string(d.Updates))

	require.Len(t, notifier.events, 1)
	require.NotNil(t, notifier.events[0].ReceiverID)
	assert.Equal(t, uint(7), *notifier.events[0].ReceiverID)
}

func TestCreateDesign_UnknownAppointment(t *testing.T) {
	uc := NewCreateDesign(newFakeRepo(), &fakeNotifier{})

	_, err := uc.Execute(context.Background(), CreateDesignInput{
		AppointmentID: 99,
		AttireType:    "gown",
		TargetedDate:  "2025-09-01",
		TotalAmount:   1000,
	})
	assert.Equal(t, "appointment_not_found", httperr.BusinessCode(err))
}

func TestCreateDesign_DuplicateAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{ID: 1, UserID: 7}

	notifier := &fakeNotifier{}
	uc := NewCreateDesign(repo, notifier)

	in := CreateDesignInput{
		AppointmentID: 1,
		AttireType:    "gown",
		TargetedDate:  "2025-09-01",
		TotalAmount:   1000,
	}
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// One design per appointment, the second attempt is a client error.
	_, err = uc.Execute(context.Background(), in)
	assert.Equal(t, "design_already_exists", httperr.BusinessCode(err))
	assert.Len(t, repo.designs, 1)
	assert.Len(t, notifier.events, 1)
}

func TestAddUpdate_PaymentsAccumulate(t *testing.T) {
	repo := newFakeRepo()
	d := seedDesign(t, repo, 1000)

	notifier := &fakeNotifier{}
	uc := NewAddUpdate(repo, notifier)

	// Deposit.
	updated, err := uc.Execute(context.Background(), AddUpdateInput{
		DesignID:      d.ID,
		Message:       "Deposit received",
		ProcessStatus: "materializing",
		AmountPaid:    400,
	})
	require.NoError(t, err)

	assert.Equal(t, 400.0, updated.AmountPaid)
	assert.Equal(t, 600.0, updated.Balance)
	assert.Equal(t, string(domain.PartialPayment), updated.PaymentStatus)
	assert.Equal(t, "materializing", updated.ProcessStatus)

	// Settle the rest.
	updated, err = uc.Execute(context.Background(), AddUpdateInput{
		DesignID:   d.ID,
		Message:    "Balance settled",
		AmountPaid: 600,
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, updated.AmountPaid)
	assert.Equal(t, 0.0, updated.Balance)
	assert.Equal(t, string(domain.FullyPaid), updated.PaymentStatus)
	// Total never moved.
	assert.Equal(t, 1000.0, updated.TotalAmount)

	var entries []domain.UpdateEntry
	require.NoError(t, json.Unmarshal(updated.Updates, &entries))
	require.Len(t, entries, 2)

	assert.Equal(t, "Deposit received", entries[0].Message)
	assert.Equal(t, 400.0, entries[0].AddedPayment)
	assert.Equal(t, 600.0, entries[0].Balance)

	assert.Equal(t, "Balance settled", entries[1].Message)
	assert.Equal(t, 1000.0, entries[1].AmountPaid)
	assert.Equal(t, 0.0, entries[1].Balance)

	// The owner heard about both updates.
	assert.Len(t, notifier.events, 2)
}

func TestAddUpdate_Validation(t *testing.T) {
	repo := newFakeRepo()
	d := seedDesign(t, repo, 1000)

	uc := NewAddUpdate(repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), AddUpdateInput{
		DesignID: d.ID,
	})
	assert.Equal(t, "message_required", httperr.BusinessCode(err))

	_, err = uc.Execute(context.Background(), AddUpdateInput{
		DesignID:   d.ID,
		Message:    "refund",
		AmountPaid: -100,
	})
	assert.Equal(t, "invalid_amount", httperr.BusinessCode(err))

	_, err = uc.Execute(context.Background(), AddUpdateInput{
		DesignID:      d.ID,
		Message:       "done",
		ProcessStatus: "shipped",
	})
	assert.Equal(t, "invalid_process_status", httperr.BusinessCode(err))

	_, err = uc.Execute(context.Background(), AddUpdateInput{
		DesignID: 999,
		Message:  "hello",
	})
	assert.Equal(t, "design_not_found", httperr.BusinessCode(err))
}

func TestAddUpdate_MessageOnlyLeavesLedgerAlone(t *testing.T) {
	repo := newFakeRepo()
	d := seedDesign(t, repo, 1000)

	uc := NewAddUpdate(repo, &fakeNotifier{})

	updated, err := uc.Execute(context.Background(), AddUpdateInput{
		DesignID: d.ID,
		Message:  "Fabric arrived",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, updated.AmountPaid)
	assert.Equal(t, 1000.0, updated.Balance)
	assert.Equal(t, string(domain.NoPayment), updated.PaymentStatus)

	var entries []domain.UpdateEntry
	require.NoError(t, json.Unmarshal(updated.Updates, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 0.0, entries[0].AddedPayment)
}

func TestUpdateDesign_RecomputesDerivedFields(t *testing.T) {
	repo := newFakeRepo()
	d := seedDesign(t, repo, 1000)

	// Simulate drift a buggy writer could have left behind.
	stored := repo.designs[d.ID]
	stored.AmountPaid = 500
	stored.Balance = 999
	stored.PaymentStatus = string(domain.NoPayment)

	uc := NewUpdateDesign(repo)
	updated, err := uc.Execute(context.Background(), UpdateDesignInput{
		DesignID:    d.ID,
		Description: strPtr("with embroidery"),
	})
	require.NoError(t, err)

	assert.Equal(t, "with embroidery", updated.Description)
	assert.Equal(t, 500.0, updated.Balance)
	assert.Equal(t, string(domain.PartialPayment), updated.PaymentStatus)
}

func TestUpdateDesign_InvalidProcessStatus(t *testing.T) {
	repo := newFakeRepo()
	d := seedDesign(t, repo, 1000)

	uc := NewUpdateDesign(repo)
	_, err := uc.Execute(context.Background(), UpdateDesignInput{
		DesignID:      d.ID,
		ProcessStatus: strPtr("shipped"),
	})
	assert.Equal(t, "invalid_process_status", httperr.BusinessCode(err))
}

func TestListUserDesigns(t *testing.T) {
	repo := newFakeRepo()
	d := seedDesign(t, repo, 1000)

	other := *repo.designs[d.ID]
	other.ID = 99
	other.UserID = 8
	repo.designs[99] = &other

	uc := NewListUserDesigns(repo)
	designs, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, designs, 1)
	assert.Equal(t, uint(7), designs[0].UserID)
}

func strPtr(s string) *string { return &s }
