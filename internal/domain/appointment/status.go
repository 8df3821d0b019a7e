package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusArchived  Status = "archived"
	StatusDone      Status = "done"
)

func InitialStatus() Status {
	return StatusPending
}

// ValidStatus reports whether s is one of the known statuses. Transitions
// themselves are unrestricted for staff; the expected flow is
// pending -> approved/rejected/cancelled -> archived/done.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected,
		StatusCancelled, StatusArchived, StatusDone:
		return true
	}
	return false
}

// CountsAsCancellation reports whether an owner-initiated status change must
// bump the owner's cancels counter. Only approved -> cancelled qualifies;
// backing out of a pending request is free.
func CountsAsCancellation(old, next Status) bool {
	return old == StatusApproved && next == StatusCancelled
}

// ===============================
// Appointment Type
// ===============================

type Type string

const (
	TypeFitting Type = "fitting"
	TypeInquiry Type = "inquiry"
)

func ValidType(t Type) bool {
	return t == TypeFitting || t == TypeInquiry
}

// ===============================
// Follow-up
// ===============================

type FollowUpStatus string

const (
	FollowUpPending      FollowUpStatus = "pending"
	FollowUpSuccessful   FollowUpStatus = "successful"
	FollowUpUnsuccessful FollowUpStatus = "unsuccessful"
)

type ClientResponse string

const (
	ResponseNone      ClientResponse = "none"
	ResponseAgreed    ClientResponse = "agreed"
	ResponseDisagreed ClientResponse = "disagreed"
)

func ValidFollowUpStatus(s FollowUpStatus) bool {
	return s == FollowUpPending || s == FollowUpSuccessful || s == FollowUpUnsuccessful
}

func ValidClientResponse(r ClientResponse) bool {
	return r == ResponseNone || r == ResponseAgreed || r == ResponseDisagreed
}
