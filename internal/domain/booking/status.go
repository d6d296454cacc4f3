package booking

type Status string

const (
	StatusNew            Status = "new"
	StatusInProgress     Status = "booking_in_progress"
	StatusClientConfirms Status = "client_confirms"
	StatusConfirmed      Status = "confirmed"
	StatusContractSent   Status = "contract_sent"
	StatusContractSigned Status = "contract_signed"
	StatusInvoiced       Status = "invoiced"
	StatusCompleted      Status = "completed"
	StatusRejected       Status = "rejected"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusClientConfirms, StatusConfirmed,
		StatusContractSent, StatusContractSigned, StatusInvoiced,
		StatusCompleted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// NeedsAction reports whether the booking belongs in the working views.
// Terminal statuses still take part in conflict detection.
func (s Status) NeedsAction() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCancelled:
		return false
	default:
		return true
	}
}
