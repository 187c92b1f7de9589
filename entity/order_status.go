package entity

// OrderStatus is the order state machine: PLACED -> DELIVERED.
// DELIVERED is terminal; transitions out of it are rejected.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"
	StatusDelivered OrderStatus = "DELIVERED"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPlaced, StatusDelivered:
		return OrderStatus(s), true
	}
	return "", false
}
