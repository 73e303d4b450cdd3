package restaurant

import (
	"context"
	"errors"

	"github.com/ttacon/libphonenumber"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create restaurant
// --------------------------------------------------
func (s *Service) CreateRestaurant(
	ctx context.Context,
	name string,
	address string,
	contactPhone string,
) (*Restaurant, error) {

	if name == "" || address == "" {
		return nil, errors.New("missing required fields")
	}

	if contactPhone != "" {
		parsed, err := libphonenumber.Parse(contactPhone, "RU")
		if err != nil || !libphonenumber.IsValidNumber(parsed) {
			return nil, errors.New("invalid contact phone")
		}
	}

	restaurant := &Restaurant{
		Name:         name,
		Address:      address,
		ContactPhone: contactPhone,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// --------------------------------------------------
// List restaurants
// --------------------------------------------------
func (s *Service) ListRestaurants(ctx context.Context) ([]*Restaurant, error) {
	return s.repo.ListAll(ctx)
}
