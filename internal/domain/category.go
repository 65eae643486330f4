package domain

type CategoryType string

const (
	CategoryVehicleTaxonomy CategoryType = "vehicle"
	CategoryExpenseTaxonomy CategoryType = "expense"
)

type Category struct {
	ID   string       `json:"id"`
	Name string       `json:"name" validate:"required"`
	Type CategoryType `json:"type"`
}
