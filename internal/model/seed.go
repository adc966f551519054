package model

import "time"

// SeedMenu returns the default catalog used when no stored menu exists.
func SeedMenu() []MenuItem {
	return []MenuItem{
		// Naan Pizzas
		{ID: "p1", Name: "Lamb Keema Pizza", Price: 14.95, Cost: 4.50, Category: CategoryPizza, Description: "Minced lamb on a naan base, green peppers, onions, spices."},
		{ID: "p2", Name: "Makhani Pizza", Price: 14.95, Cost: 4.00, Category: CategoryPizza, Description: "Naan base with Makhani sauce, peppers, onions. Choice of Chicken/Paneer."},
		{ID: "p3", Name: "Tikka Masala Pizza", Price: 14.95, Cost: 4.25, Category: CategoryPizza, Description: "Spicy Tikka sauce base on naan with mozzarella and cilantro."},

		// Appetizers
		{ID: "a1", Name: "Vegetable Samosa", Price: 6.95, Cost: 1.50, Category: CategoryAppetizer, Description: "Crispy turnovers filled with potatoes and peas."},
		{ID: "a2", Name: "Chicken Pakora", Price: 8.50, Cost: 2.50, Category: CategoryAppetizer, Description: "Chicken fritters fried in gram flour batter."},
		{ID: "a3", Name: "Fish Pakora", Price: 12.95, Cost: 4.00, Category: CategoryAppetizer, Description: "Fish marinated in spices and fried."},

		// Chicken Specialties
		{ID: "c1", Name: "Chicken Tikka Masala", Price: 19.95, Cost: 5.50, Category: CategoryChicken, Description: "Roasted chicken in creamy tomato sauce."},
		{ID: "c2", Name: "Chicken Makhani", Price: 18.99, Cost: 5.00, Category: CategoryChicken, Description: "Butter chicken cooked in a rich tomato gravy."},
		{ID: "c3", Name: "Chicken Vindaloo", Price: 18.99, Cost: 5.00, Category: CategoryChicken, Description: "Goan style spicy curry with potatoes."},

		// Lamb
		{ID: "l1", Name: "Lamb Rogan Josh", Price: 20.99, Cost: 6.50, Category: CategoryLamb, Description: "Kashmiri style lamb curry with yogurt and saffron."},
		{ID: "l2", Name: "Lamb Korma", Price: 21.99, Cost: 7.00, Category: CategoryLamb, Description: "Lamb cooked in a mild cashew nut sauce."},

		// Vegetarian
		{ID: "v1", Name: "Palak Paneer", Price: 17.95, Cost: 4.00, Category: CategoryVegetarian, Description: "Fresh spinach cooked with homemade cottage cheese."},
		{ID: "v2", Name: "Dal Makhani", Price: 17.95, Cost: 3.50, Category: CategoryVegetarian, Description: "Black lentils cooked with butter and cream."},
		{ID: "v3", Name: "Malai Kofta", Price: 17.95, Cost: 4.00, Category: CategoryVegetarian, Description: "Vegetable balls in a rich creamy sauce."},

		// Breads
		{ID: "b1", Name: "Plain Naan", Price: 3.50, Cost: 0.50, Category: CategoryBread, Description: "Leavened white flour bread baked in clay oven."},
		{ID: "b2", Name: "Garlic Naan", Price: 4.00, Cost: 0.75, Category: CategoryBread, Description: "Naan topped with fresh garlic and cilantro."},

		// Drinks/Desserts
		{ID: "d1", Name: "Mango Lassi", Price: 5.50, Cost: 1.50, Category: CategoryBeverage, Description: "Refreshing yogurt drink with mango pulp."},
		{ID: "ds1", Name: "Gulab Jamun", Price: 5.50, Cost: 1.00, Category: CategoryDessert, Description: "Fried milk balls soaked in honey syrup."},
	}
}

// SeedInventory returns the default stock levels.
func SeedInventory() []InventoryItem {
	return []InventoryItem{
		{ID: "1", Name: "Basmati Rice", Quantity: 150, Unit: "lbs", MinThreshold: 50},
		{ID: "2", Name: "Boneless Chicken", Quantity: 45, Unit: "lbs", MinThreshold: 20},
		{ID: "3", Name: "Lamb Meat", Quantity: 30, Unit: "lbs", MinThreshold: 15},
		{ID: "4", Name: "Paneer Blocks", Quantity: 25, Unit: "lbs", MinThreshold: 10},
		{ID: "5", Name: "Naan Dough Balls", Quantity: 80, Unit: "pcs", MinThreshold: 30},
		{ID: "6", Name: "Makhani Sauce Base", Quantity: 5, Unit: "gallons", MinThreshold: 2},
		{ID: "7", Name: "Mozzarella Cheese", Quantity: 15, Unit: "lbs", MinThreshold: 5},
		{ID: "8", Name: "Cooking Oil", Quantity: 10, Unit: "gallons", MinThreshold: 4},
		{ID: "9", Name: "Spices (Garam Masala)", Quantity: 5, Unit: "lbs", MinThreshold: 1},
	}
}

// SeedExpenses returns a few opening expenses with timestamps relative to now.
func SeedExpenses() []Expense {
	now := time.Now()
	daysAgo := func(d int) int64 {
		return now.AddDate(0, 0, -d).UnixMilli()
	}
	return []Expense{
		{ID: "1", Timestamp: daysAgo(2), Description: "Restaurant Depot - Weekly Grocery", Amount: 1250.00, Category: "Grocery"},
		{ID: "2", Timestamp: daysAgo(5), Description: "Patel Brothers - Spices & Produce", Amount: 345.50, Category: "Grocery"},
		{ID: "3", Timestamp: daysAgo(10), Description: "BGE - Electric & Gas", Amount: 850.00, Category: "Utilities"},
		{ID: "4", Timestamp: daysAgo(1), Description: "Sysco - Paper Goods", Amount: 180.00, Category: "Supplies"},
	}
}
