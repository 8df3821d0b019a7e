package design

import "time"

// ===============================
// Process / Payment Status
// ===============================

type ProcessStatus string

const (
	ProcessDesigning     ProcessStatus = "designing"
	ProcessMaterializing ProcessStatus = "materializing"
	ProcessReady         ProcessStatus = "ready"
	ProcessDone          ProcessStatus = "done"
)

func ValidProcessStatus(s ProcessStatus) bool {
	switch s {
	case ProcessDesigning, ProcessMaterializing, ProcessReady, ProcessDone:
		return true
	}
	return false
}

type PaymentStatus string

const (
	NoPayment      PaymentStatus = "no_payment"
	PartialPayment PaymentStatus = "partial_payment"
	FullyPaid      PaymentStatus = "fully_paid"
)

// ===============================
// Ledger arithmetic
// ===============================

// Recompute derives the balance and payment status from the two source
// amounts. Runs on every persist; callers never supply these values.
func Recompute(totalAmount, amountPaid float64) (balance float64, status PaymentStatus) {
	balance = totalAmount - amountPaid
	if balance < 0 {
		balance = 0
	}

	switch {
	case amountPaid <= 0:
		status = NoPayment
	case amountPaid >= totalAmount:
		status = FullyPaid
	default:
		status = PartialPayment
	}
	return balance, status
}

// ===============================
// Update log
// ===============================

// UpdateEntry is one appended record in a design's audit trail. Entries are
// written once and never rewritten.
type UpdateEntry struct {
	Message       string        `json:"message"`
	ProcessStatus ProcessStatus `json:"process_status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	AmountPaid    float64       `json:"amount_paid"`
	AddedPayment  float64       `json:"added_payment"`
	Balance       float64       `json:"balance"`
	Image         string        `json:"image,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

// ApplyUpdate folds one add-update operation into the running ledger state
// and produces the log entry capturing the post-update snapshot. The payment
// delta is cumulative: it adds to amountPaid, never replaces it.
func ApplyUpdate(
	totalAmount float64,
	amountPaid float64,
	currentProcess ProcessStatus,
	message string,
	newProcess ProcessStatus,
	addedPayment float64,
	image string,
	now time.Time,
) (newPaid float64, newBalance float64, newPayStatus PaymentStatus, process ProcessStatus, entry UpdateEntry) {

	process = currentProcess
	if newProcess != "" && ValidProcessStatus(newProcess) {
		process = newProcess
	}

	newPaid = amountPaid
	if addedPayment > 0 {
		newPaid += addedPayment
	}

	newBalance, newPayStatus = Recompute(totalAmount, newPaid)

	entry = UpdateEntry{
		Message:       message,
		ProcessStatus: process,
		PaymentStatus: newPayStatus,
		AmountPaid:    newPaid,
		AddedPayment:  addedPayment,
		Balance:       newBalance,
		Image:         image,
		Timestamp:     now,
	}

	return newPaid, newBalance, newPayStatus, process, entry
}
