package v1

import (
	"github.com/fluxo-app/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name        string `json:"name" example:"Marketing" default:""`                   // Name of the category, unique
	Description string `json:"description" example:"Everything promotion" default:""` // Description of the category
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:        editable.Name,
		Description: editable.Description,
	}
}

type Category struct {
	models.DefaultModel
	CategoryEditable
}

func newCategory(model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:        model.Name,
			Description: model.Description,
		},
	}
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryQueryFilter struct {
	Name        string `form:"name" filterField:"false"`        // By name
	Description string `form:"description" filterField:"false"` // By description
	Search      string `form:"search" filterField:"false"`      // Search for this text in name and description
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first Category returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{}
}
