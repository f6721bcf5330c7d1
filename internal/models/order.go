package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a single paid collaboration: one post by one blogger for one
// advertiser, optionally grouped under a project and a month.
//
// BloggerID, AdvertiserID and MonthID are plain columns without
// database constraints. Deleting a blogger or advertiser keeps the
// order and leaves the reference dangling, which readers surface as an
// unknown blogger or advertiser. ProjectID on the other hand is a real
// foreign key, see Project.
//
// ProjectID and MonthID are independent: an order can carry a month
// without belonging to any project.
type Order struct {
	DefaultModel
	Date         *time.Time      `json:"-"`
	BloggerID    *uint           `json:"bloggerId"`
	AdvertiserID *uint           `json:"advertiserId"`
	ProjectID    *uint           `json:"projectId"`
	MonthID      *uint           `json:"monthId"`
	Product      string          `json:"product"`
	Cost         decimal.Decimal `json:"cost" gorm:"type:DECIMAL(20,8);default:0"`
	BloggerFee   decimal.Decimal `json:"bloggerFee" gorm:"type:DECIMAL(20,8);default:0"`
	Status       string          `json:"status" gorm:"default:negotiation"`
	Notes        string          `json:"notes"`
	Link         string          `json:"link"`
	Documents    []Document      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// OrderStatuses is the allowed status vocabulary, enforced at the
// request boundary only. The column itself stores free-form strings so
// that rows written by earlier revisions stay readable.
var OrderStatuses = []string{"negotiation", "agreed", "paid", "published"}

// AfterFind updates the posting date to use UTC as timezone, see
// DefaultModel.AfterFind.
func (o *Order) AfterFind(tx *gorm.DB) error {
	_ = o.DefaultModel.AfterFind(tx)

	if o.Date != nil {
		date := o.Date.In(time.UTC)
		o.Date = &date
	}

	return nil
}

// BeforeSave sets the timezone for the posting date to UTC. An unset
// date stays unset, orders without a confirmed posting date are valid.
func (o *Order) BeforeSave(_ *gorm.DB) error {
	if o.Date != nil {
		date := o.Date.In(time.UTC)
		o.Date = &date
	}

	return nil
}

// Profit is what the agency keeps from the order.
func (o Order) Profit() decimal.Decimal {
	return o.Cost.Sub(o.BloggerFee)
}
