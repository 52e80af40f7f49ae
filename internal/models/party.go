package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// PartyKind describes the relationship a party has with the organization.
type PartyKind string

const (
	PartySupplier     PartyKind = "supplier"
	PartySeatHolder   PartyKind = "seat_holder"
	PartySponsor      PartyKind = "sponsor"
	PartyDirectorship PartyKind = "directorship"
	PartyCollaborator PartyKind = "collaborator"
	PartyCustomer     PartyKind = "customer"
)

// Valid reports whether the kind is one of the allowed values.
func (k PartyKind) Valid() bool {
	switch k {
	case PartySupplier, PartySeatHolder, PartySponsor, PartyDirectorship, PartyCollaborator, PartyCustomer:
		return true
	}

	return false
}

// Address is the postal address of a party.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ZipCode      string `json:"zipCode"`
}

// Party is a person or organization that cash entries settle with.
type Party struct {
	DefaultModel
	Name        string      `json:"name"`
	Document    string      `json:"document"`
	PhoneNumber string      `json:"phoneNumber"`
	Email       string      `json:"email"`
	Types       []PartyKind `json:"types" gorm:"serializer:json"`
	Address     Address     `json:"address" gorm:"embedded;embeddedPrefix:address_"`
}

var ErrPartyTypeInvalid = errors.New("the specified party type is invalid")

func (p *Party) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Document = strings.TrimSpace(p.Document)

	return nil
}

func (p *Party) AfterSave(_ *gorm.DB) error {
	for _, kind := range p.Types {
		if !kind.Valid() {
			return ErrPartyTypeInvalid
		}
	}

	return nil
}
