package design

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecompute(t *testing.T) {
	tests := []struct {
		name        string
		total       float64
		paid        float64
		wantBalance float64
		wantStatus  PaymentStatus
	}{
		{"nothing paid", 1000, 0, 1000, NoPayment},
		{"negative paid treated as none", 1000, -50, 1000, NoPayment},
		{"partial", 1000, 400, 600, PartialPayment},
		{"exactly paid", 1000, 1000, 0, FullyPaid},
		{"overpaid clamps to zero", 1000, 1200, 0, FullyPaid},
		{"zero total with payment", 0, 50, 0, FullyPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, status := Recompute(tt.total, tt.paid)
			assert.Equal(t, tt.wantBalance, balance)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestApplyUpdate_PaymentAccumulates(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	// First payment against a 1000 total.
	paid, balance, payStatus, process, entry := ApplyUpdate(
		1000, 0, ProcessDesigning,
		"First fitting done, deposit received",
		ProcessMaterializing, 400, "", now,
	)

	assert.Equal(t, 400.0, paid)
	assert.Equal(t, 600.0, balance)
	assert.Equal(t, PartialPayment, payStatus)
	assert.Equal(t, ProcessMaterializing, process)

	assert.Equal(t, 400.0, entry.AddedPayment)
	assert.Equal(t, 400.0, entry.AmountPaid)
	assert.Equal(t, 600.0, entry.Balance)
	assert.Equal(t, now, entry.Timestamp)

	// Second payment adds on top, never replaces.
	paid, balance, payStatus, _, entry = ApplyUpdate(
		1000, paid, process,
		"Balance settled",
		"", 600, "", now.Add(time.Hour),
	)

	assert.Equal(t, 1000.0, paid)
	assert.Equal(t, 0.0, balance)
	assert.Equal(t, FullyPaid, payStatus)
	assert.Equal(t, 600.0, entry.AddedPayment)
}

func TestApplyUpdate_ZeroPaymentKeepsLedger(t *testing.T) {
	now := time.Now()

	paid, balance, payStatus, _, entry := ApplyUpdate(
		1000, 400, ProcessMaterializing,
		"Fabric arrived",
		"", 0, "", now,
	)

	assert.Equal(t, 400.0, paid)
	assert.Equal(t, 600.0, balance)
	assert.Equal(t, PartialPayment, payStatus)
	assert.Equal(t, 0.0, entry.AddedPayment)
}

func TestApplyUpdate_ProcessStatus(t *testing.T) {
	now := time.Now()

	// Empty process status keeps the current one.
	_, _, _, process, _ := ApplyUpdate(1000, 0, ProcessDesigning, "note", "", 0, "", now)
	assert.Equal(t, ProcessDesigning, process)

	// Unknown process status is ignored.
	_, _, _, process, _ = ApplyUpdate(1000, 0, ProcessDesigning, "note", "shipped", 0, "", now)
	assert.Equal(t, ProcessDesigning, process)

	// Valid one moves the design forward.
	_, _, _, process, _ = ApplyUpdate(1000, 0, ProcessDesigning, "note", ProcessReady, 0, "", now)
	assert.Equal(t, ProcessReady, process)
}

func TestApplyUpdate_EntrySnapshotsImage(t *testing.T) {
	now := time.Now()

	_, _, _, _, entry := ApplyUpdate(
		500, 0, ProcessDesigning,
		"Progress photo",
		"", 0, "https://cdn.example.com/progress.webp", now,
	)

	assert.Equal(t, "https://cdn.example.com/progress.webp", entry.Image)
	assert.Equal(t, "Progress photo", entry.Message)
}

func TestValidProcessStatus(t *testing.T) {
	assert.True(t, ValidProcessStatus(ProcessDesigning))
	assert.True(t, ValidProcessStatus(ProcessDone))
	assert.False(t, ValidProcessStatus("finished"))
	assert.False(t, ValidProcessStatus(""))
}
