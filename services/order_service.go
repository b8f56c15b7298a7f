package services

import (
	"errors"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/metrics"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DeliveryFee is a flat fee per provider order.
const DeliveryFee int64 = 20

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	MealRepo     *repository.MealRepository
	ProviderRepo *repository.ProviderRepository
	Cart         *CartService
	Log          *logrus.Logger
	Metrics      *metrics.Metrics
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	mealRepo *repository.MealRepository,
	providerRepo *repository.ProviderRepository,
	cart *CartService,
	log *logrus.Logger,
	m *metrics.Metrics,
) *OrderService {
	return &OrderService{
		DB:           db,
		Repo:         repo,
		MealRepo:     mealRepo,
		ProviderRepo: providerRepo,
		Cart:         cart,
		Log:          log,
		Metrics:      m,
	}
}

type OrderItemIn struct {
	MealID   uint `json:"mealId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	ProviderID      uint          `json:"providerId" binding:"required"`
	DeliveryAddress string        `json:"deliveryAddress" binding:"required"`
	Items           []OrderItemIn `json:"items" binding:"required,min=1"`
	Note            string        `json:"note"`
}

// Create places one order for one provider group. Prices come from the
// current catalog rows, not from whatever snapshot the cart was carrying.
// On success the provider's group is cleared from the user's cart, which
// emits the usual cart-changed notification.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	ok, err := s.ProviderRepo.Exists(req.ProviderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("provider not found")
	}

	type row struct {
		mealID uint
		qty    int
		unit   int64
	}
	rows := make([]row, 0, len(req.Items))
	var subtotal int64
	for _, it := range req.Items {
		m, err := s.MealRepo.GetBasics(it.MealID)
		if err != nil {
			return nil, errors.New("meal not found")
		}
		if m.ProviderID != req.ProviderID {
			return nil, errors.New("meal does not belong to this provider")
		}
		if !m.Available {
			return nil, errors.New("meal is not available: " + m.Name)
		}
		subtotal += m.Price * int64(it.Quantity)
		rows = append(rows, row{mealID: m.ID, qty: it.Quantity, unit: m.Price})
	}

	order := entity.Order{
		Code:            uuid.NewString(),
		Status:          entity.StatusPlaced,
		Subtotal:        subtotal,
		DeliveryFee:     DeliveryFee,
		TotalAmount:     subtotal + DeliveryFee,
		DeliveryAddress: req.DeliveryAddress,
		Note:            req.Note,
		UserID:          userID,
		ProviderID:      req.ProviderID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, r := range rows {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				MealID:    r.mealID,
				Quantity:  r.qty,
				UnitPrice: r.unit,
				Total:     r.unit * int64(r.qty),
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Cart.ClearForProvider(userID, req.ProviderID)
	s.Metrics.OrderCreated()
	s.Log.WithFields(logrus.Fields{
		"orderId":    order.ID,
		"userId":     userID,
		"providerId": req.ProviderID,
		"total":      order.TotalAmount,
	}).Info("order created")

	return &order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetOrderForUser(userID, orderID)
}

// ListForProvider resolves the caller's provider profile first; a user
// without one gets a forbidden error rather than an empty list.
func (s *OrderService) ListForProvider(userID uint) ([]entity.Order, error) {
	p, err := s.ProviderRepo.ForUser(userID)
	if err != nil {
		return nil, ErrForbidden
	}
	return s.Repo.ListForProvider(p.ID)
}
