package valueobjects

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusExpired   PaymentStatus = "expired"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed,
		PaymentStatusRefunded, PaymentStatusExpired:
		return true
	}
	return false
}

// IsFinal reports whether the status accepts no further transitions except
// completed -> refunded.
func (s PaymentStatus) IsFinal() bool {
	switch s {
	case PaymentStatusFailed, PaymentStatusRefunded, PaymentStatusExpired:
		return true
	}
	return false
}
