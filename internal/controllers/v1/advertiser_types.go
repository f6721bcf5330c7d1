package v1

import (
	"github.com/bloggerdesk/backend/internal/models"
)

type AdvertiserEditable struct {
	Name     string `json:"name" example:"GlowSkin Cosmetics"` // Name of the advertiser
	Telegram string `json:"telegram" example:"@glowskin_pr"`
}

// model returns the database resource for the API representation of the editable fields
func (editable AdvertiserEditable) model() models.Advertiser {
	return models.Advertiser{
		Name:     editable.Name,
		Telegram: editable.Telegram,
	}
}

// Advertiser is the API representation of an advertiser.
type Advertiser struct {
	models.DefaultModel
	AdvertiserEditable
}

// newAdvertiser returns the API representation of the resource
func newAdvertiser(model models.Advertiser) Advertiser {
	return Advertiser{
		DefaultModel: model.DefaultModel,
		AdvertiserEditable: AdvertiserEditable{
			Name:     model.Name,
			Telegram: model.Telegram,
		},
	}
}

type AdvertiserResponse struct {
	Data  *Advertiser `json:"data"`  // The advertiser data, if the request was successful
	Error *string     `json:"error"` // The error, if any occurred
}

type AdvertiserListResponse struct {
	Data  []Advertiser `json:"data"`  // List of advertisers
	Error *string      `json:"error"` // The error, if any occurred
}

type AdvertiserQueryFilter struct {
	Name string `form:"name"` // Substring match on the name, case-insensitive
}
