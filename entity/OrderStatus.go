package entity

// Order lifecycle. PLACED moves forward one step at a time; CANCELLED is
// only reachable from PLACED. DELIVERED and CANCELLED are terminal.
const (
	StatusPlaced    = "PLACED"
	StatusPreparing = "PREPARING"
	StatusReady     = "READY"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPlaced, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
