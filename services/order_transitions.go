package services

import (
	"errors"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"

	"gorm.io/gorm"
)

// The order lifecycle as an explicit table instead of view conditionals:
// each status maps to the single status a provider may advance it to.
// Terminal states are absent from the table. The one side exit,
// PLACED -> CANCELLED, belongs to the customer and is handled by Cancel.
var nextStatus = map[string]string{
	entity.StatusPlaced:    entity.StatusPreparing,
	entity.StatusPreparing: entity.StatusReady,
	entity.StatusReady:     entity.StatusDelivered,
}

// NextStatus reports the provider-advanced successor of a status. The
// second return is false for terminal states, in which case no action is
// offered at all.
func NextStatus(current string) (string, bool) {
	next, ok := nextStatus[current]
	return next, ok
}

// CanCancel gates the customer side exit: only while the status is exactly
// PLACED.
func CanCancel(current string) bool {
	return current == entity.StatusPlaced
}

var (
	ErrForbidden         = errors.New("forbidden")
	ErrTerminalStatus    = errors.New("order is in a terminal status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotCancellable    = errors.New("only PLACED orders can be cancelled")
)

// Advance moves an order one step along the lifecycle on behalf of the
// provider that owns it. The requested status must be exactly the table's
// successor of the order's current status; the write is a guarded UPDATE,
// so a concurrent transition makes the request fail rather than skip a
// step.
func (s *OrderService) Advance(userID, orderID uint, requested string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	ok, err := s.ProviderRepo.IsOwnedBy(o.ProviderID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	next, hasNext := NextStatus(o.Status)
	if !hasNext {
		return nil, ErrTerminalStatus
	}
	if requested != "" && requested != next {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Metrics.StatusTransition(next)
	o.Status = next
	return o, nil
}

// Cancel is the customer's side exit from PLACED.
func (s *OrderService) Cancel(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}
	if !CanCancel(o.Status) {
		return nil, ErrNotCancellable
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.StatusPlaced, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotCancellable
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Metrics.StatusTransition(entity.StatusCancelled)
	o.Status = entity.StatusCancelled
	return o, nil
}
