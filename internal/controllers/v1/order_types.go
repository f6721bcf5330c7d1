package v1

import (
	"strings"
	"time"

	"github.com/bloggerdesk/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderEditable struct {
	// Posting date in dd.mm.yyyy format. Empty means not scheduled yet.
	Date string `json:"date" example:"15.01.2024"`

	// ID of the blogger. The sentinel value 0 requests creation of a
	// new blogger from NewBloggerName within the same operation.
	BloggerID *uint `json:"bloggerId" example:"4"`

	// ID of the advertiser. The sentinel value 0 requests creation of a
	// new advertiser from NewAdvertiserName within the same operation.
	AdvertiserID *uint `json:"advertiserId" example:"12"`

	ProjectID *uint `json:"projectId" example:"7"` // ID of the project, independent of the month
	MonthID   *uint `json:"monthId" example:"3"`   // ID of the month, independent of the project

	Product    string          `json:"product" example:"Vitamin C serum"`
	Cost       decimal.Decimal `json:"cost" example:"1500"`      // What the advertiser pays
	BloggerFee decimal.Decimal `json:"bloggerFee" example:"900"` // What the blogger gets
	Status     string          `json:"status" example:"agreed"`  // One of negotiation, agreed, paid, published
	Notes      string          `json:"notes" example:"repost to channel included"`
	Link       string          `json:"link" example:"https://instagram.com/p/abc"`

	// Names for inline creation, only used with the 0 sentinel above.
	// A blank name skips the creation and leaves the reference unset.
	NewBloggerName        string `json:"newBloggerName" example:"dasha.reviews"`
	NewBloggerPlatform    string `json:"newBloggerPlatform" example:"insta"`
	NewAdvertiserName     string `json:"newAdvertiserName" example:"GlowSkin Cosmetics"`
	NewAdvertiserTelegram string `json:"newAdvertiserTelegram" example:"@glowskin_pr"`
}

// model returns the database resource for the API representation of the editable fields
func (editable OrderEditable) model() (models.Order, error) {
	date, err := parseDate(editable.Date)
	if err != nil {
		return models.Order{}, err
	}

	return models.Order{
		Date:         date,
		BloggerID:    editable.BloggerID,
		AdvertiserID: editable.AdvertiserID,
		ProjectID:    editable.ProjectID,
		MonthID:      editable.MonthID,
		Product:      editable.Product,
		Cost:         editable.Cost,
		BloggerFee:   editable.BloggerFee,
		Status:       editable.Status,
		Notes:        editable.Notes,
		Link:         editable.Link,
	}, nil
}

// parseDate parses the dd.mm.yyyy wire format. An empty string is a
// valid unscheduled date.
func parseDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return nil, errOrderDateFormat
	}

	date = date.In(time.UTC)
	return &date, nil
}

// formatDate renders the date the way it was submitted, see dateLayout.
func formatDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(dateLayout)
}

// Order is the API representation of an order.
//
// BloggerName and AdvertiserName are resolved leniently: a dangling
// reference left behind by a deleted blogger or advertiser renders as
// an empty name, never as an error.
type Order struct {
	models.DefaultModel
	Date           string          `json:"date" example:"15.01.2024"` // Posting date in dd.mm.yyyy format
	BloggerID      *uint           `json:"bloggerId"`
	BloggerName    string          `json:"bloggerName"`
	AdvertiserID   *uint           `json:"advertiserId"`
	AdvertiserName string          `json:"advertiserName"`
	ProjectID      *uint           `json:"projectId"`
	MonthID        *uint           `json:"monthId"`
	Product        string          `json:"product"`
	Cost           decimal.Decimal `json:"cost"`
	BloggerFee     decimal.Decimal `json:"bloggerFee"`
	Profit         decimal.Decimal `json:"profit"` // Derived: cost minus blogger fee
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
	Link           string          `json:"link"`
}

// newOrder returns the API representation of the resource
func newOrder(db *gorm.DB, model models.Order) Order {
	return Order{
		DefaultModel:   model.DefaultModel,
		Date:           formatDate(model.Date),
		BloggerID:      model.BloggerID,
		BloggerName:    resolveBloggerName(db, model.BloggerID),
		AdvertiserID:   model.AdvertiserID,
		AdvertiserName: resolveAdvertiserName(db, model.AdvertiserID),
		ProjectID:      model.ProjectID,
		MonthID:        model.MonthID,
		Product:        model.Product,
		Cost:           model.Cost,
		BloggerFee:     model.BloggerFee,
		Profit:         model.Profit(),
		Status:         model.Status,
		Notes:          model.Notes,
		Link:           model.Link,
	}
}

// resolveBloggerName looks up the name of the referenced blogger.
// Unset and dangling references resolve to an empty name: the order
// outlives the blogger it pointed at.
func resolveBloggerName(db *gorm.DB, id *uint) string {
	if id == nil {
		return ""
	}

	var blogger models.Blogger
	if err := db.First(&blogger, *id).Error; err != nil {
		return ""
	}

	return blogger.Name
}

// resolveAdvertiserName looks up the name of the referenced advertiser,
// with the same lenient semantics as resolveBloggerName.
func resolveAdvertiserName(db *gorm.DB, id *uint) string {
	if id == nil {
		return ""
	}

	var advertiser models.Advertiser
	if err := db.First(&advertiser, *id).Error; err != nil {
		return ""
	}

	return advertiser.Name
}

type OrderResponse struct {
	Data  *Order  `json:"data"`  // The order data, if the request was successful
	Error *string `json:"error"` // The error, if any occurred
}

type OrderListResponse struct {
	Data  []Order `json:"data"`  // List of orders
	Error *string `json:"error"` // The error, if any occurred
}

type OrderQueryFilter struct {
	Status       string `form:"status"`     // Exact match on the status
	BloggerID    uint   `form:"blogger"`    // Filter by blogger ID
	AdvertiserID uint   `form:"advertiser"` // Filter by advertiser ID
	ProjectID    uint   `form:"project"`    // Filter by project ID
	MonthID      uint   `form:"month"`      // Filter by month ID
	NoProject    bool   `form:"noProject"`  // Only orders without a project
}
