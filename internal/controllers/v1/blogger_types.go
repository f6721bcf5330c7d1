package v1

import (
	"github.com/bloggerdesk/backend/internal/models"
)

type BloggerEditable struct {
	Name        string `json:"name" example:"dasha.reviews"`         // Name of the blogger
	Platform    string `json:"platform" example:"insta"`             // One of tiktok, tg, insta, youtube
	Link        string `json:"link" example:"https://instagram.com/dasha.reviews"`
	ContactLink string `json:"contactLink" example:"https://t.me/dasha_mgmt"`
	RknInfo     string `json:"rknInfo" example:"registered 01.2024"` // RKN register state
	Telegram    string `json:"telegram" example:"@dasha_mgmt"`
}

// model returns the database resource for the API representation of the editable fields
func (editable BloggerEditable) model() models.Blogger {
	return models.Blogger{
		Name:        editable.Name,
		Platform:    editable.Platform,
		Link:        editable.Link,
		ContactLink: editable.ContactLink,
		RknInfo:     editable.RknInfo,
		Telegram:    editable.Telegram,
	}
}

// Blogger is the API representation of a blogger.
type Blogger struct {
	models.DefaultModel
	BloggerEditable
}

// newBlogger returns the API representation of the resource
func newBlogger(model models.Blogger) Blogger {
	return Blogger{
		DefaultModel: model.DefaultModel,
		BloggerEditable: BloggerEditable{
			Name:        model.Name,
			Platform:    model.Platform,
			Link:        model.Link,
			ContactLink: model.ContactLink,
			RknInfo:     model.RknInfo,
			Telegram:    model.Telegram,
		},
	}
}

type BloggerResponse struct {
	Data  *Blogger `json:"data"`  // The blogger data, if the request was successful
	Error *string  `json:"error"` // The error, if any occurred
}

type BloggerListResponse struct {
	Data  []Blogger `json:"data"`  // List of bloggers
	Error *string   `json:"error"` // The error, if any occurred
}

type BloggerQueryFilter struct {
	Name     string `form:"name"`     // Substring match on the name, case-insensitive
	Platform string `form:"platform"` // Exact match on the platform
}
