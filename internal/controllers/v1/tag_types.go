package v1

import (
	"github.com/fluxo-app/backend/internal/models"
)

// TagEditable represents all user configurable parameters
type TagEditable struct {
	Name        string `json:"name" example:"recurring" default:""`                  // Name of the tag, unique
	Description string `json:"description" example:"Repeats every month" default:""` // Description of the tag
}

func (editable TagEditable) model() models.Tag {
	return models.Tag{
		Name:        editable.Name,
		Description: editable.Description,
	}
}

type Tag struct {
	models.DefaultModel
	TagEditable
}

func newTag(model models.Tag) Tag {
	return Tag{
		DefaultModel: model.DefaultModel,
		TagEditable: TagEditable{
			Name:        model.Name,
			Description: model.Description,
		},
	}
}

type TagResponse struct {
	Data  *Tag    `json:"data"`                                                          // Data for the Tag
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TagListResponse struct {
	Data       []Tag       `json:"data"`                                                          // List of Tags
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type TagQueryFilter struct {
	Name        string `form:"name" filterField:"false"`        // By name
	Description string `form:"description" filterField:"false"` // By description
	Search      string `form:"search" filterField:"false"`      // Search for this text in name and description
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first Tag returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of Tags to return. Defaults to 50.
}

func (f TagQueryFilter) model() models.Tag {
	return models.Tag{}
}
