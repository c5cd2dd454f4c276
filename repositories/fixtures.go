package repositories

import "foodie-finder/models"

// Sample browsing data, in lieu of a real catalog service.

var restaurantFixtures = []models.Restaurant{
	{
		ID:           1,
		Name:         "Hunky Dory",
		Image:        "/images/hunky-dory.jpg",
		Rating:       4.7,
		Price:        "$$",
		Cuisine:      "Seafood",
		DeliveryTime: "25-35 min",
		DeliveryFee:  "$5.99",
		Address:      "Melbourne, VIC",
		Featured:     true,
		MustTry:      "Beer-Battered Flathead",
		Location:     "Melbourne",
		Reviews: []models.Review{
			{ID: 1, User: "Foodie123", Avatar: "/images/avatar1.jpg", Rating: 5, Comment: "Best fish and chips in Melbourne!", Date: "2 days ago"},
		},
	},
	{
		ID:           2,
		Name:         "Lord of the Fries",
		Image:        "/images/lord-of-the-fries.jpg",
		Rating:       4.5,
		Price:        "$",
		Cuisine:      "Vegan Fast Food",
		DeliveryTime: "20-30 min",
		DeliveryFee:  "$3.99",
		Address:      "Melbourne, VIC",
		Featured:     true,
		MustTry:      "Vegan Poutine",
		Location:     "Melbourne",
	},
	{
		ID:           3,
		Name:         "Belle's Hot Chicken",
		Image:        "/images/belles.jpg",
		Rating:       4.8,
		Price:        "$$",
		Cuisine:      "Fried Chicken",
		DeliveryTime: "25-35 min",
		DeliveryFee:  "$4.99",
		Address:      "Melbourne, VIC",
		Featured:     true,
		MustTry:      "Spicy Fried Chicken Sandwich",
		Location:     "Melbourne",
	},
	{
		ID:           4,
		Name:         "8bit",
		Image:        "/images/8bit.jpg",
		Rating:       4.6,
		Price:        "$$",
		Cuisine:      "Burgers",
		DeliveryTime: "20-30 min",
		DeliveryFee:  "$4.99",
		Address:      "Melbourne, VIC",
		Featured:     true,
		MustTry:      "Double Dragon Burger",
		Location:     "Melbourne",
	},
	{
		ID:           5,
		Name:         "McDonald's",
		Image:        "/images/mcdonalds.jpg",
		Rating:       4.2,
		Price:        "$",
		Cuisine:      "Fast Food",
		DeliveryTime: "15-25 min",
		DeliveryFee:  "$2.99",
		Address:      "123 Elizabeth St, Melbourne VIC 3000",
		Featured:     false,
		MustTry:      "Big Mac",
		Location:     "Australia-wide",
	},
}

var menuItemFixtures = []models.MenuItem{
	{ID: 1, RestaurantID: 5, Name: "Big Mac", Description: "Two all-beef patties, special sauce, lettuce, cheese, pickles, onions on a sesame seed bun", Price: 5.99, Category: "Burgers", Popular: true},
	{ID: 2, RestaurantID: 5, Name: "Quarter Pounder", Description: "Fresh beef burger with cheese, onions, pickles, and condiments", Price: 6.49, Category: "Burgers"},
	{ID: 3, RestaurantID: 5, Name: "French Fries", Description: "Golden crispy fries served hot and fresh", Price: 3.99, Category: "Sides", Popular: true},
	{ID: 4, RestaurantID: 5, Name: "Chicken McNuggets", Description: "Tender, juicy chicken nuggets with your choice of sauce", Price: 4.99, Category: "Chicken", Popular: true},
	{ID: 5, RestaurantID: 5, Name: "McFlurry", Description: "Soft serve ice cream with your favorite mix-ins", Price: 3.49, Category: "Desserts"},
	{ID: 6, RestaurantID: 1, Name: "Beer-Battered Flathead", Description: "Flathead fillets in a crisp beer batter with chips", Price: 16.50, Category: "Seafood", Popular: true},
	{ID: 7, RestaurantID: 1, Name: "Grilled Barramundi", Description: "Grilled barramundi with lemon and herb butter", Price: 19.00, Category: "Seafood"},
	{ID: 8, RestaurantID: 2, Name: "Vegan Poutine", Description: "Fries loaded with vegan gravy and cheese", Price: 9.50, Category: "Sides", Popular: true},
	{ID: 9, RestaurantID: 3, Name: "Spicy Fried Chicken Sandwich", Description: "Buttermilk fried chicken with hot sauce and slaw", Price: 13.90, Category: "Chicken", Popular: true},
	{ID: 10, RestaurantID: 4, Name: "Double Dragon Burger", Description: "Double beef, double cheese, 8bit sauce", Price: 14.50, Category: "Burgers", Popular: true},
}

var dealFixtures = []models.Deal{
	{ID: 1, Title: "2 for 1 Whoppers", Merchant: "Hungry Jack's", Image: "/images/whopper.jpg", Description: "Buy one Whopper, get one free", OriginalPrice: 9.95, DiscountedPrice: 4.98, ExpiryDate: "2025-02-25", Code: "WHOPPER241"},
	{ID: 2, Title: "30% Off First Order", Merchant: "Grill'd", Image: "/images/grilld.jpg", Description: "Healthy burgers delivered to your door", OriginalPrice: 25.00, DiscountedPrice: 17.50, ExpiryDate: "2025-03-01"},
	{ID: 3, Title: "Free Delivery Weekend", Merchant: "Nando's", Image: "/images/nandos.jpg", Description: "No delivery fee on orders over $20", OriginalPrice: 4.99, DiscountedPrice: 0, ExpiryDate: "2025-03-10", Code: "FREEDEL"},
}

var pickupLocationFixtures = []models.PickupLocation{
	{ID: 1, Name: "McDonald's", Image: "/images/mcdonalds.jpg", Rating: 4.2, Address: "123 Elizabeth St, Melbourne VIC 3000", Distance: "0.3 miles", PreparationTime: "5-10 min", IsOpen: true, OpenUntil: "24 hours"},
	{ID: 2, Name: "KFC", Image: "/images/kfc.jpg", Rating: 4.0, Address: "456 Swanston St, Melbourne VIC 3000", Distance: "0.5 miles", PreparationTime: "7-12 min", IsOpen: true, OpenUntil: "11:00 PM"},
	{ID: 3, Name: "Subway", Image: "/images/subway.jpg", Rating: 4.3, Address: "789 Bourke St, Melbourne VIC 3000", Distance: "0.4 miles", PreparationTime: "5-8 min", IsOpen: true, OpenUntil: "10:00 PM"},
}
