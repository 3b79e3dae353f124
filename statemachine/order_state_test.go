package statemachine

import (
	"strings"
	"testing"

	"github.com/AtharvMirajkar/delivery-management-system/models"
)

func TestCanTransitionAllowed(t *testing.T) {
	allowed := []struct {
		from, to models.OrderStatus
	}{
		{models.StatusPending, models.StatusAssigned},
		{models.StatusAssigned, models.StatusPickedUp},
		{models.StatusPickedUp, models.StatusDelivered},
	}
	for _, tc := range allowed {
		if err := CanTransition(tc.from, tc.to); err != nil {
			t.Errorf("expected %s -> %s to be allowed, got %v", tc.from, tc.to, err)
		}
	}
}

func TestCanTransitionRejected(t *testing.T) {
	rejected := []struct {
		from, to models.OrderStatus
	}{
		{models.StatusPending, models.StatusPickedUp},
		{models.StatusPending, models.StatusDelivered},
		{models.StatusAssigned, models.StatusDelivered},
		{models.StatusAssigned, models.StatusPending},
		{models.StatusPickedUp, models.StatusAssigned},
		{models.StatusDelivered, models.StatusPickedUp},
		{models.StatusDelivered, models.StatusDelivered},
		// cancelled has no producing transition and no outgoing ones
		{models.StatusPending, models.StatusCancelled},
		{models.StatusCancelled, models.StatusAssigned},
	}
	for _, tc := range rejected {
		err := CanTransition(tc.from, tc.to)
		if err == nil {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
			continue
		}
		if !strings.Contains(err.Error(), "invalid transition") {
			t.Errorf("unexpected error message: %v", err)
		}
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPending)
	if len(nexts) != 1 || nexts[0] != models.StatusAssigned {
		t.Fatalf("expected [assigned], got %v", nexts)
	}
	if got := ValidTransitionsFrom(models.StatusDelivered); len(got) != 0 {
		t.Fatalf("expected delivered to be terminal, got %v", got)
	}
	if got := ValidTransitionsFrom(models.StatusCancelled); len(got) != 0 {
		t.Fatalf("expected cancelled to be terminal, got %v", got)
	}
}

func TestGetAllTransitions(t *testing.T) {
	if got := len(GetAllTransitions()); got != 3 {
		t.Fatalf("expected 3 transitions, got %d", got)
	}
}
