package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Tag is a free-form label that can be attached to entries.
type Tag struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex"`
	Description string `json:"description"`
}

var ErrTagNameNotUnique = errors.New("a tag with this name already exists")

func (t *Tag) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Description = strings.TrimSpace(t.Description)

	return nil
}
