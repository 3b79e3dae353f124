package statemachine

import (
	"errors"

	"github.com/AtharvMirajkar/delivery-management-system/models"
)

// Transition defines a valid status change
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition.
// Who may trigger a transition is decided at the handler boundary;
// the table only constrains from → to pairs.
//
// "cancelled" is part of the status domain but has no producing
// transition here; no current operation reaches it.
var validTransitions = []Transition{
	// Admin binds a partner to the order
	{From: models.StatusPending, To: models.StatusAssigned},
	// Assigned partner (or admin) collects the package
	{From: models.StatusAssigned, To: models.StatusPickedUp},
	// Assigned partner (or admin) completes the delivery
	{From: models.StatusPickedUp, To: models.StatusDelivered},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed. Valid transitions from " + string(from) +
			" are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine definition
func GetAllTransitions() []Transition {
	return validTransitions
}
