package models

import (
	"strings"

	"gorm.io/gorm"
)

// Project groups the orders for one advertiser within one month.
//
// MonthID and AdvertiserID are plain columns without database
// constraints: deleting a month or advertiser leaves the reference
// dangling and readers resolve it as unknown. The Orders and Documents
// associations carry ON DELETE CASCADE, deleting a project takes its
// orders and documents with it.
type Project struct {
	DefaultModel
	Name         string     `json:"name"`
	MonthID      *uint      `json:"monthId"`
	AdvertiserID *uint      `json:"advertiserId"`
	Description  string     `json:"description"`
	Status       string     `json:"status" gorm:"default:active"`
	Orders       []Order    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Documents    []Document `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// BeforeSave trims whitespace and checks required fields.
func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrProjectNameRequired
	}

	return nil
}
