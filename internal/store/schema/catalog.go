package schema

// Category represents the categories table (display categories)
type Category struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null;type:text"`
	// DefaultSortPosition is the fallback display position of the category
	DefaultSortPosition int `gorm:"column:default_sort_position;not null;default:0"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// Product represents the products table (read-only catalog)
type Product struct {
	ID         string `gorm:"column:id;primaryKey;type:text"`
	Name       string `gorm:"column:name;not null;type:text"`
	CategoryID *int64 `gorm:"column:category_id"`
	// DemandGroup is the top-level merchandising group, e.g. "Dairy"
	DemandGroup *string `gorm:"column:demand_group;type:text"`
	// DemandSubGroup is the finer classification within the demand group
	DemandSubGroup *string `gorm:"column:demand_sub_group;type:text"`
	// PopularityScore breaks ties in the default product order
	PopularityScore *float64 `gorm:"column:popularity_score"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
