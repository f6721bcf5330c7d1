package models

import (
	"strings"

	"gorm.io/gorm"
)

// Month is a calendar grouping for projects and for orders that are not
// assigned to a project.
//
// Months do not declare associations on purpose: deleting a month must
// not block on or touch the projects and orders referencing it. Their
// month id simply becomes unresolved.
type Month struct {
	DefaultModel
	Name string `json:"name"`
}

// BeforeSave trims whitespace.
func (m *Month) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	return nil
}
