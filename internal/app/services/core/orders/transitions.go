package orders

import "pidelocal-service/internal/pkg/constvars"

var nextStatuses = map[string][]string{
	constvars.OrderStatusPending:         {constvars.OrderStatusConfirmed},
	constvars.OrderStatusAwaitingPayment: {constvars.OrderStatusPaid},
	constvars.OrderStatusPaid:            {constvars.OrderStatusConfirmed},
	constvars.OrderStatusConfirmed:       {constvars.OrderStatusPreparing},
	constvars.OrderStatusPreparing:       {constvars.OrderStatusReady},
	constvars.OrderStatusReady:           {constvars.OrderStatusCompleted},
}

// IsFinal reports whether no further status change is allowed.
func IsFinal(status string) bool {
	return status == constvars.OrderStatusCompleted || status == constvars.OrderStatusCancelled
}

// CanTransition reports whether an order may move from one status to another.
// Every non-final status can be cancelled.
func CanTransition(from, to string) bool {
	if IsFinal(from) {
		return false
	}
	if to == constvars.OrderStatusCancelled {
		return true
	}
	for _, next := range nextStatuses[from] {
		if next == to {
			return true
		}
	}
	return false
}
