package entity

const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

func IsPaymentStatus(s string) bool {
	return s == PaymentPending || s == PaymentPaid
}
