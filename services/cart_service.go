package services

import (
	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/cartbus"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/metrics"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/repository"

	"github.com/sirupsen/logrus"
)

// CartService is the single source of truth for a user's pending,
// unsubmitted selection. Every mutation persists the whole list back to the
// store, then emits exactly one payload-less change notification on the
// user's cart topic; subscribers re-read the store themselves.
//
// Persistence failures are logged and swallowed: the cart trades durability
// for never failing the surrounding request.
type CartService struct {
	Store   repository.CartStore
	Bus     *cartbus.Bus
	Log     *logrus.Logger
	Metrics *metrics.Metrics
}

func NewCartService(store repository.CartStore, bus *cartbus.Bus, log *logrus.Logger, m *metrics.Metrics) *CartService {
	return &CartService{Store: store, Bus: bus, Log: log, Metrics: m}
}

func (s *CartService) Read(userID uint) []entity.CartLine {
	return s.Store.Load(userID)
}

// Add merges by meal id: an existing line gains one unit, a new line starts
// at qty 1 with the supplied display snapshot.
func (s *CartService) Add(userID uint, line entity.CartLine) []entity.CartLine {
	lines := s.Store.Load(userID)

	merged := false
	for i := range lines {
		if lines[i].MealID == line.MealID {
			if lines[i].Qty < 1 {
				lines[i].Qty = 1
			}
			lines[i].Qty++
			merged = true
			break
		}
	}
	if !merged {
		line.Qty = 1
		lines = append(lines, line)
	}

	s.persist(userID, "add", lines)
	return lines
}

func (s *CartService) Remove(userID, mealID uint) []entity.CartLine {
	lines := s.Store.Load(userID)
	next := lines[:0]
	for _, l := range lines {
		if l.MealID != mealID {
			next = append(next, l)
		}
	}

	s.persist(userID, "remove", next)
	return next
}

// UpdateQty floors the quantity at 1; removing a line is Remove's job.
func (s *CartService) UpdateQty(userID, mealID uint, qty int) []entity.CartLine {
	if qty < 1 {
		qty = 1
	}
	lines := s.Store.Load(userID)
	for i := range lines {
		if lines[i].MealID == mealID {
			lines[i].Qty = qty
			break
		}
	}

	s.persist(userID, "updateQty", lines)
	return lines
}

// ClearForProvider drops one seller group after its order was submitted.
// entity.UnknownProvider clears the lines that carry no provider.
func (s *CartService) ClearForProvider(userID, providerID uint) []entity.CartLine {
	lines := s.Store.Load(userID)
	next := lines[:0]
	for _, l := range lines {
		if l.ProviderID != providerID {
			next = append(next, l)
		}
	}

	s.persist(userID, "clearForProvider", next)
	return next
}

func (s *CartService) persist(userID uint, op string, lines []entity.CartLine) {
	if err := s.Store.Save(userID, lines); err != nil {
		s.Log.WithError(err).WithFields(logrus.Fields{
			"userId": userID,
			"op":     op,
		}).Warn("cart save failed, keeping request alive")
	}
	s.Bus.Emit(cartbus.CartTopic(userID))
	s.Metrics.CartMutation(op)
}
