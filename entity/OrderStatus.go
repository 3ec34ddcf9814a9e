package entity

const (
	StatusReceived   = "Received"
	StatusSentToChef = "Sent to Chef"
	StatusPreparing  = "Preparing"
	StatusReady      = "Ready"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

var orderStatuses = map[string]bool{
	StatusReceived:   true,
	StatusSentToChef: true,
	StatusPreparing:  true,
	StatusReady:      true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func IsOrderStatus(s string) bool {
	return orderStatuses[s]
}

// IsSettledStatus reports whether the status counts toward bulk clearing
// (together with a Paid payment status).
func IsSettledStatus(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}
