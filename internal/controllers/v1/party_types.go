package v1

import (
	"github.com/fluxo-app/backend/internal/models"
)

// PartyEditable represents all user configurable parameters
type PartyEditable struct {
	Name        string             `json:"name" example:"Fornecedora de Eventos Ltda" default:""` // Name of the party
	Document    string             `json:"document" example:"12.345.678/0001-90" default:""`      // CPF or CNPJ of the party
	PhoneNumber string             `json:"phoneNumber" example:"+55 41 99999-0000" default:""`    // Phone number of the party
	Email       string             `json:"email" example:"contact@example.com" default:""`        // Email address of the party
	Types       []models.PartyKind `json:"types"`                                                 // Relationships the party has with the organization
	Address     models.Address     `json:"address"`                                               // Postal address of the party
}

func (editable PartyEditable) model() models.Party {
	return models.Party{
		Name:        editable.Name,
		Document:    editable.Document,
		PhoneNumber: editable.PhoneNumber,
		Email:       editable.Email,
		Types:       editable.Types,
		Address:     editable.Address,
	}
}

type Party struct {
	models.DefaultModel
	PartyEditable
}

func newParty(model models.Party) Party {
	return Party{
		DefaultModel: model.DefaultModel,
		PartyEditable: PartyEditable{
			Name:        model.Name,
			Document:    model.Document,
			PhoneNumber: model.PhoneNumber,
			Email:       model.Email,
			Types:       model.Types,
			Address:     model.Address,
		},
	}
}

type PartyResponse struct {
	Data  *Party  `json:"data"`                                                          // Data for the Party
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PartyListResponse struct {
	Data       []Party     `json:"data"`                                                          // List of Parties
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PartyQueryFilter struct {
	Name     string `form:"name" filterField:"false"`     // By name
	Document string `form:"document"`                     // By document
	Type     string `form:"type" filterField:"false"`     // Only parties with this relationship
	Search   string `form:"search" filterField:"false"`   // Search for this text in name and document
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first Party returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of Parties to return. Defaults to 50.
}

func (f PartyQueryFilter) model() models.Party {
	return models.Party{
		Document: f.Document,
	}
}
