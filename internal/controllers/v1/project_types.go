package v1

import (
	"github.com/bloggerdesk/backend/internal/models"
	"github.com/shopspring/decimal"
)

type ProjectEditable struct {
	Name         string `json:"name" example:"GlowSkin March push"` // Name of the project
	MonthID      *uint  `json:"monthId" example:"3"`                // ID of the month the project is grouped under
	AdvertiserID *uint  `json:"advertiserId" example:"12"`          // ID of the advertiser paying for the project
	Description  string `json:"description" example:"10 integrations, stories only"`
}

// model returns the database resource for the API representation of the editable fields
func (editable ProjectEditable) model() models.Project {
	return models.Project{
		Name:         editable.Name,
		MonthID:      editable.MonthID,
		AdvertiserID: editable.AdvertiserID,
		Description:  editable.Description,
	}
}

// Project is the API representation of a project.
//
// Status is reported but no longer editable: the field was dropped from
// the form, storage keeps it with its default.
type Project struct {
	models.DefaultModel
	ProjectEditable
	Status string          `json:"status" example:"active"`
	Profit decimal.Decimal `json:"profit" example:"1250"` // Derived: sum of cost minus blogger fee over the orders
}

// newProject returns the API representation of the resource
func newProject(model models.Project, profit decimal.Decimal) Project {
	return Project{
		DefaultModel: model.DefaultModel,
		ProjectEditable: ProjectEditable{
			Name:         model.Name,
			MonthID:      model.MonthID,
			AdvertiserID: model.AdvertiserID,
			Description:  model.Description,
		},
		Status: model.Status,
		Profit: profit,
	}
}

// ProjectDetail is the project view: the project with its orders,
// sorted by posting date ascending.
type ProjectDetail struct {
	Project
	Orders []Order `json:"orders"`
}

type ProjectResponse struct {
	Data  *Project `json:"data"`  // The project data, if the request was successful
	Error *string  `json:"error"` // The error, if any occurred
}

type ProjectDetailResponse struct {
	Data  *ProjectDetail `json:"data"`  // The project with its orders
	Error *string        `json:"error"` // The error, if any occurred
}

type ProjectListResponse struct {
	Data  []Project `json:"data"`  // List of projects
	Error *string   `json:"error"` // The error, if any occurred
}

type ProjectQueryFilter struct {
	Name         string `form:"name"`       // Substring match on the name, case-insensitive
	Status       string `form:"status"`     // Exact match on the stored status
	MonthID      uint   `form:"month"`      // Filter by month ID
	AdvertiserID uint   `form:"advertiser"` // Filter by advertiser ID
}
