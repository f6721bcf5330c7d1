package v1

import (
	"net/http"

	"github.com/bloggerdesk/backend/internal/httputil"
	"github.com/bloggerdesk/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// Dashboard is the aggregated landing view: the totals, the
// publications coming up before month end and the latest projects.
type Dashboard struct {
	Stats          Stats     `json:"stats"`
	UpcomingExits  []Order   `json:"upcomingExits"`  // The next publications, at most 10
	RecentProjects []Project `json:"recentProjects"` // The latest projects, at most 5
}

// Stats is the API representation of the aggregated totals.
type Stats struct {
	OrderCount   int64           `json:"orderCount" example:"120"`
	Revenue      decimal.Decimal `json:"revenue" example:"54000"`  // Sum of all order costs
	PaidOut      decimal.Decimal `json:"paidOut" example:"31000"`  // Sum of all blogger fees
	Profit       decimal.Decimal `json:"profit" example:"23000"`   // Revenue minus what was paid out
	ProjectCount int64           `json:"projectCount" example:"14"`
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`  // The dashboard data, if the request was successful
	Error *string    `json:"error"` // The error, if any occurred
}

type DashboardQuery struct {
	Day int `form:"day"` // Reference day of month for the upcoming window, defaults to today
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the aggregated totals, the upcoming publications and the most recent projects
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Param			day	query		int	false	"Reference day of month for the upcoming window"
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var query DashboardQuery
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{Error: &e})
		return
	}

	stats, err := models.CalculateStats()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	exits, err := models.UpcomingExits(query.Day)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	var projects []models.Project
	if err := models.DB.Order("id DESC").Limit(5).Find(&projects).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	profits, err := models.ProjectProfits()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	data := Dashboard{
		Stats: Stats{
			OrderCount:   stats.TotalOrders,
			Revenue:      stats.Revenue,
			PaidOut:      stats.PaidOut,
			Profit:       stats.Profit,
			ProjectCount: stats.Projects,
		},
		UpcomingExits:  make([]Order, 0),
		RecentProjects: make([]Project, 0),
	}

	for _, order := range exits {
		data.UpcomingExits = append(data.UpcomingExits, newOrder(models.DB, order))
	}

	for _, project := range projects {
		profit, ok := profits[project.ID]
		if !ok {
			profit = decimal.Zero
		}
		data.RecentProjects = append(data.RecentProjects, newProject(project, profit))
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
