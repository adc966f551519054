package model

// Category is the fixed set of menu categories.
type Category string

const (
	CategoryPizza      Category = "Naan Pizza"
	CategoryAppetizer  Category = "Appetizer"
	CategoryChicken    Category = "Chicken"
	CategoryLamb       Category = "Lamb"
	CategorySeafood    Category = "Seafood"
	CategoryVegetarian Category = "Vegetarian"
	CategoryRice       Category = "Rice"
	CategoryBread      Category = "Indian Bread"
	CategoryDessert    Category = "Dessert"
	CategoryBeverage   Category = "Beverage"
	CategoryOther      Category = "Other"
)

// Categories lists every valid menu category, in display order.
var Categories = []Category{
	CategoryPizza,
	CategoryAppetizer,
	CategoryChicken,
	CategoryLamb,
	CategorySeafood,
	CategoryVegetarian,
	CategoryRice,
	CategoryBread,
	CategoryDessert,
	CategoryBeverage,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MenuItem is one entry in the catalog. Items are immutable after creation;
// the only lifecycle operations are add and delete.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Cost        float64  `json:"cost" validate:"gte=0"` // Cost to produce
	Category    Category `json:"category" validate:"menu_category"`
	Description string   `json:"description,omitempty"`
}
