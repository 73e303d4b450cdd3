package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/qqJonni/star-burger/internal/menu"
	"github.com/qqJonni/star-burger/internal/ranking"
	"github.com/qqJonni/star-burger/internal/restaurant"
)

// PriceSource yields current unit prices for product ids.
type PriceSource interface {
	GetPrices(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error)
}

// RestaurantSource yields every restaurant.
type RestaurantSource interface {
	ListAll(ctx context.Context) ([]*restaurant.Restaurant, error)
}

// MenuSource yields every menu entry.
type MenuSource interface {
	ListEntries(ctx context.Context) ([]menu.Entry, error)
}

// CandidateRanker produces the distance-ordered candidate list.
type CandidateRanker interface {
	Rank(
		ctx context.Context,
		ord ranking.Subject,
		restaurants []*restaurant.Restaurant,
		entries []menu.Entry,
	) []ranking.Candidate
}

type Service struct {
	repo        Repository
	prices      PriceSource
	restaurants RestaurantSource
	menus       MenuSource
	ranker      CandidateRanker
	log         logrus.FieldLogger
}

func NewService(
	repo Repository,
	prices PriceSource,
	restaurants RestaurantSource,
	menus MenuSource,
	ranker CandidateRanker,
	log logrus.FieldLogger,
) *Service {
	return &Service{
		repo:        repo,
		prices:      prices,
		restaurants: restaurants,
		menus:       menus,
		ranker:      ranker,
		log:         log,
	}
}

// --------------------------------------------------
// Register a new order
// --------------------------------------------------

type RegisterLine struct {
	ProductID int64
	Quantity  int
}

type RegisterInput struct {
	Firstname   string
	Lastname    string
	Phonenumber string
	Address     string
	Comment     string
	Payment     string
	Products    []RegisterLine
}

// Register creates a new unassigned order. Unit prices are snapshotted
// from the catalog and the total is computed from the snapshots.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Order, error) {
	ids := make([]int64, 0, len(input.Products))
	for _, line := range input.Products {
		ids = append(ids, line.ProductID)
	}

	prices, err := s.prices.GetPrices(ctx, ids)
	if err != nil {
		return nil, err
	}

	payment := input.Payment
	if payment == "" {
		payment = PaymentCashless
	}

	ord := &Order{
		Status:      StatusNew,
		Payment:     payment,
		Firstname:   input.Firstname,
		Lastname:    input.Lastname,
		Phonenumber: input.Phonenumber,
		Address:     input.Address,
		Comment:     input.Comment,
		TotalPrice:  decimal.Zero,
	}

	for _, line := range input.Products {
		price, ok := prices[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("unknown product %d", line.ProductID)
		}

		ord.Lines = append(ord.Lines, Line{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     price,
		})
		ord.TotalPrice = ord.TotalPrice.Add(
			price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		)
	}

	if err := s.repo.Create(ctx, ord); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"order_id": ord.ID,
		"total":    ord.TotalPrice.String(),
	}).Info("order registered")

	return ord, nil
}

// --------------------------------------------------
// Unassigned orders with ranked candidates
// --------------------------------------------------

// UnassignedOrder is the staff-facing view of one order awaiting a
// restaurant, with its candidate list.
type UnassignedOrder struct {
	ID          int64               `json:"id"`
	Status      string              `json:"status"`
	Payment     string              `json:"payment"`
	Firstname   string              `json:"firstname"`
	Lastname    string              `json:"lastname"`
	Phonenumber string              `json:"phonenumber"`
	Address     string              `json:"address"`
	Comment     string              `json:"comment"`
	TotalPrice  decimal.Decimal     `json:"total_price"`
	Candidates  []ranking.Candidate `json:"candidates"`
}

// UnassignedOrders returns every order still needing a restaurant,
// each with its distance-ranked candidate list. Restaurant and menu
// data are read once per call; candidate lists are never cached.
func (s *Service) UnassignedOrders(ctx context.Context) ([]UnassignedOrder, error) {
	orders, err := s.repo.ListUnassigned(ctx)
	if err != nil {
		return nil, err
	}

	restaurants, err := s.restaurants.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.menus.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]UnassignedOrder, 0, len(orders))

	for _, ord := range orders {
		candidates := s.ranker.Rank(ctx, ranking.Subject{
			Address:    ord.Address,
			Delivered:  ord.Status == StatusDelivered,
			Assigned:   ord.RestaurantID != nil,
			ProductIDs: ord.ProductIDs(),
		}, restaurants, entries)

		if candidates == nil {
			candidates = []ranking.Candidate{}
		}

		views = append(views, UnassignedOrder{
			ID:          ord.ID,
			Status:      ord.Status,
			Payment:     ord.Payment,
			Firstname:   ord.Firstname,
			Lastname:    ord.Lastname,
			Phonenumber: ord.Phonenumber,
			Address:     ord.Address,
			Comment:     ord.Comment,
			TotalPrice:  ord.TotalPrice,
			Candidates:  candidates,
		})
	}

	return views, nil
}
