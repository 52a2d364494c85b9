package statemachine

import (
	"food-ordering-backend/models"
)

// forward is the canonical happy-path progression. Cancellation is handled
// separately: any non-terminal state may jump to Cancelled.
var forward = map[models.OrderStatus]models.OrderStatus{
	models.StatusPlaced:    models.StatusAccepted,
	models.StatusAccepted:  models.StatusPreparing,
	models.StatusPreparing: models.StatusReady,
	models.StatusReady:     models.StatusDelivered,
}

var allStatuses = []models.OrderStatus{
	models.StatusPlaced,
	models.StatusAccepted,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusDelivered,
	models.StatusCancelled,
}

// ParseStatus maps a raw status value to a known lifecycle state.
func ParseStatus(raw string) (models.OrderStatus, bool) {
	for _, s := range allStatuses {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

// IsTerminal reports whether no further transitions are valid from status.
func IsTerminal(status models.OrderStatus) bool {
	return status == models.StatusDelivered || status == models.StatusCancelled
}

// CanTransition reports whether from → to is a valid single step: the next
// forward state, or Cancelled from any non-terminal state. Skipping states is
// not allowed.
func CanTransition(from, to models.OrderStatus) bool {
	if IsTerminal(from) {
		return false
	}
	if to == models.StatusCancelled {
		return true
	}
	return forward[from] == to
}

// NextStatuses returns all valid next states from a given state, for error
// messages and client hints.
func NextStatuses(from models.OrderStatus) []models.OrderStatus {
	if IsTerminal(from) {
		return nil
	}
	next := []models.OrderStatus{forward[from]}
	return append(next, models.StatusCancelled)
}
