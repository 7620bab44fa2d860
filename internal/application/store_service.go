package application

import (
	"context"
	"fmt"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
	"github.com/draperhq/storefront-api/internal/domain/entity"
	repo "github.com/draperhq/storefront-api/internal/domain/repository"
)

// StoreService backs the store locator: public reads, admin writes.
type StoreService struct {
	Repo repo.StoreRepository
}

func (s *StoreService) List(ctx context.Context) ([]entity.Store, error) {
	return s.Repo.List(ctx)
}

func (s *StoreService) Get(ctx context.Context, id string) (*entity.Store, error) {
	store, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("store: %w", apperr.ErrNotFound)
	}
	return store, nil
}

type StoreInput struct {
	Name         string
	Street       string
	City         string
	Country      string
	Phone        string
	Latitude     float64
	Longitude    float64
	OpeningHours string
}

func (s *StoreService) Create(ctx context.Context, in StoreInput) (*entity.Store, error) {
	store := &entity.Store{
		Name:         in.Name,
		Street:       in.Street,
		City:         in.City,
		Country:      in.Country,
		Phone:        in.Phone,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		OpeningHours: in.OpeningHours,
	}
	if err := s.Repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) Update(ctx context.Context, id string, in StoreInput) (*entity.Store, error) {
	store, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	store.Name = in.Name
	store.Street = in.Street
	store.City = in.City
	store.Country = in.Country
	store.Phone = in.Phone
	store.Latitude = in.Latitude
	store.Longitude = in.Longitude
	store.OpeningHours = in.OpeningHours
	if err := s.Repo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
