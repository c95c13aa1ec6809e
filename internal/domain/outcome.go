package domain

// Outcome is the terminal state of the new-folder dialog
type Outcome int

const (
	// OutcomeCancelled means the dialog closed without touching the filesystem
	OutcomeCancelled Outcome = iota
	// OutcomeConfirmed means the folder was created
	OutcomeConfirmed
	// OutcomeFailed means the user confirmed but the folder could not be created
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
