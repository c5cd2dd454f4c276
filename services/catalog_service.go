package services

import (
	"foodie-finder/models"
	"foodie-finder/repositories"
)

type CatalogService struct {
	catalog *repositories.CatalogRepository
}

func NewCatalogService(catalog *repositories.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) GetRestaurants(filter repositories.RestaurantFilter) []models.Restaurant {
	return s.catalog.GetRestaurants(filter)
}

func (s *CatalogService) GetRestaurantByID(id int) (*models.Restaurant, error) {
	return s.catalog.GetRestaurantByID(id)
}

func (s *CatalogService) GetMenu(restaurantID int) ([]models.MenuItem, error) {
	if _, err := s.catalog.GetRestaurantByID(restaurantID); err != nil {
		return nil, err
	}
	return s.catalog.GetMenu(restaurantID), nil
}

func (s *CatalogService) GetDeals() []models.Deal {
	return s.catalog.GetDeals()
}

func (s *CatalogService) GetPickupLocations() []models.PickupLocation {
	return s.catalog.GetPickupLocations()
}
