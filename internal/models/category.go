package models

// Category represents a transaction category. Non-custom categories are
// the seeded defaults; they cannot be deleted.
type Category struct {
	Base
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Color    string `gorm:"not null" json:"color"`
	Icon     string `gorm:"not null" json:"icon"`
	IsCustom bool   `gorm:"default:false" json:"is_custom"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}

// FallbackCategoryName is the category that absorbs transactions of a
// deleted custom category.
const FallbackCategoryName = "Miscellaneous"

// DefaultCategories is the fixed seed set created on first startup.
var DefaultCategories = []Category{
	{Name: "Rent", Color: "#FF6B6B", Icon: "home"},
	{Name: "EMI", Color: "#4ECDC4", Icon: "credit-card"},
	{Name: "Travel", Color: "#45B7D1", Icon: "plane"},
	{Name: "Groceries", Color: "#FFA07A", Icon: "shopping-cart"},
	{Name: "Eating Out", Color: "#98D8C8", Icon: "utensils"},
	{Name: "Utilities", Color: "#F7DC6F", Icon: "zap"},
	{Name: "Transport", Color: "#BB8FCE", Icon: "car"},
	{Name: "Household", Color: "#85C1E9", Icon: "home"},
	{Name: "Grooming & PC", Color: "#F8C471", Icon: "scissors"},
	{Name: FallbackCategoryName, Color: "#D5A6BD", Icon: "more-horizontal"},
}
