package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Category groups entries for reporting.
type Category struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex"`
	Description string `json:"description"`
}

var ErrCategoryNameNotUnique = errors.New("a category with this name already exists")

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	return nil
}
