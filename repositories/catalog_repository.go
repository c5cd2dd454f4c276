package repositories

import (
	"strings"

	"foodie-finder/models"
)

// CatalogRepository serves the read-only browsing data. The fixtures are
// seeded once at construction and never mutated, so reads need no locking.
type CatalogRepository struct {
	restaurants     []models.Restaurant
	menuItems       []models.MenuItem
	deals           []models.Deal
	pickupLocations []models.PickupLocation
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		restaurants:     restaurantFixtures,
		menuItems:       menuItemFixtures,
		deals:           dealFixtures,
		pickupLocations: pickupLocationFixtures,
	}
}

type RestaurantFilter struct {
	Cuisine  string
	Location string
	Featured *bool
}

func (r *CatalogRepository) GetRestaurants(filter RestaurantFilter) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(r.restaurants))
	for _, rest := range r.restaurants {
		if filter.Cuisine != "" && !strings.EqualFold(rest.Cuisine, filter.Cuisine) {
			continue
		}
		if filter.Location != "" && !strings.EqualFold(rest.Location, filter.Location) {
			continue
		}
		if filter.Featured != nil && rest.Featured != *filter.Featured {
			continue
		}
		out = append(out, rest)
	}
	return out
}

func (r *CatalogRepository) GetRestaurantByID(id int) (*models.Restaurant, error) {
	for _, rest := range r.restaurants {
		if rest.ID == id {
			copied := rest
			return &copied, nil
		}
	}
	return nil, models.ErrRestaurantNotFound
}

func (r *CatalogRepository) GetMenu(restaurantID int) []models.MenuItem {
	out := []models.MenuItem{}
	for _, item := range r.menuItems {
		if item.RestaurantID == restaurantID {
			out = append(out, item)
		}
	}
	return out
}

func (r *CatalogRepository) GetDeals() []models.Deal {
	out := make([]models.Deal, len(r.deals))
	copy(out, r.deals)
	return out
}

func (r *CatalogRepository) GetPickupLocations() []models.PickupLocation {
	out := make([]models.PickupLocation, len(r.pickupLocations))
	copy(out, r.pickupLocations)
	return out
}
