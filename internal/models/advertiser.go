package models

import (
	"strings"

	"gorm.io/gorm"
)

// Advertiser represents a client paying for collaborations.
//
// As with bloggers, names are not unique in storage.
type Advertiser struct {
	DefaultModel
	Name     string `json:"name"`
	Telegram string `json:"telegram"`
}

// BeforeSave trims whitespace and checks required fields.
func (a *Advertiser) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return ErrAdvertiserNameRequired
	}

	return nil
}

// UniqueAdvertisers removes later duplicates of the same name, compared
// case-insensitively. The input order is kept.
func UniqueAdvertisers(advertisers []Advertiser) []Advertiser {
	seen := make(map[string]bool, len(advertisers))
	unique := make([]Advertiser, 0, len(advertisers))

	for _, advertiser := range advertisers {
		key := strings.ToLower(strings.TrimSpace(advertiser.Name))
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, advertiser)
	}

	return unique
}
