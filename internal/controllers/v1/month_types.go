package v1

import (
	"github.com/bloggerdesk/backend/internal/models"
)

type MonthEditable struct {
	Name string `json:"name" example:"March 2024"` // Display name of the month
}

// model returns the database resource for the API representation of the editable fields
func (editable MonthEditable) model() models.Month {
	return models.Month{
		Name: editable.Name,
	}
}

// Month is the API representation of a month.
type Month struct {
	models.DefaultModel
	MonthEditable
}

// newMonth returns the API representation of the resource
func newMonth(model models.Month) Month {
	return Month{
		DefaultModel: model.DefaultModel,
		MonthEditable: MonthEditable{
			Name: model.Name,
		},
	}
}

// MonthDetail is the month view: its projects plus the orders that
// carry the month directly without belonging to any project.
type MonthDetail struct {
	Month
	Projects     []Project `json:"projects"`     // Projects grouped under this month
	DirectOrders []Order   `json:"directOrders"` // Orders with this month and no project
}

type MonthResponse struct {
	Data  *MonthDetail `json:"data"`  // The month data, if the request was successful
	Error *string      `json:"error"` // The error, if any occurred
}

type MonthListResponse struct {
	Data  []Month `json:"data"`  // List of months
	Error *string `json:"error"` // The error, if any occurred
}
