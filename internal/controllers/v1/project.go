package v1

import (
	"net/http"

	"github.com/bloggerdesk/backend/internal/httputil"
	"github.com/bloggerdesk/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterProjectRoutes registers the routes for projects with
// the RouterGroup that is passed.
func RegisterProjectRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProjectList)
		r.GET("", GetProjects)
		r.POST("", CreateProject)
	}

	// Project with ID
	{
		r.OPTIONS("/:id", OptionsProjectDetail)
		r.GET("/:id", GetProject)
		r.PATCH("/:id", UpdateProject)
		r.DELETE("/:id", DeleteProject)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/v1/projects [options]
func OptionsProjectList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the project"
// @Router			/v1/projects/{id} [options]
func OptionsProjectDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.First(&models.Project{}, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create project
// @Description	Creates a new project
// @Tags			Projects
// @Produce		json
// @Success		201		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects [post]
func CreateProject(c *gin.Context) {
	var editable ProjectEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProjectResponse{Error: &e})
		return
	}

	project := editable.model()
	if err := models.DB.Create(&project).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &e})
		return
	}

	data := newProject(project, decimal.Zero)
	c.JSON(http.StatusCreated, ProjectResponse{Data: &data})
}

// @Summary		Get projects
// @Description	Returns the list of projects with their aggregated profit, newest first
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectListResponse
// @Failure		500	{object}	ProjectListResponse
// @Param			name		query	string	false	"Filter by name, substring match"
// @Param			status		query	string	false	"Filter by status"
// @Param			month		query	uint	false	"Filter by month ID"
// @Param			advertiser	query	uint	false	"Filter by advertiser ID"
// @Router			/v1/projects [get]
func GetProjects(c *gin.Context) {
	var filter ProjectQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProjectListResponse{Error: &e})
		return
	}

	q := models.DB.Order("id DESC")

	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if filter.MonthID != 0 {
		q = q.Where("month_id = ?", filter.MonthID)
	}

	if filter.AdvertiserID != 0 {
		q = q.Where("advertiser_id = ?", filter.AdvertiserID)
	}

	var projects []models.Project
	if err := q.Find(&projects).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectListResponse{Error: &e})
		return
	}

	profits, err := models.ProjectProfits()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectListResponse{Error: &e})
		return
	}

	data := make([]Project, 0)
	for _, project := range projects {
		profit, ok := profits[project.ID]
		if !ok {
			profit = decimal.Zero
		}
		data = append(data, newProject(project, profit))
	}

	c.JSON(http.StatusOK, ProjectListResponse{Data: data})
}

// @Summary		Get project
// @Description	Returns a specific project with its orders sorted by posting date
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectDetailResponse
// @Failure		404	{object}	ProjectDetailResponse
// @Param			id	path		uint	true	"ID of the project"
// @Router			/v1/projects/{id} [get]
func GetProject(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectDetailResponse{Error: &e})
		return
	}

	var project models.Project
	if err := models.DB.First(&project, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectDetailResponse{Error: &e})
		return
	}

	profit, err := models.ProjectProfit(project.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectDetailResponse{Error: &e})
		return
	}

	var orders []models.Order
	err = models.DB.
		Where("project_id = ?", project.ID).
		Order("date ASC, id ASC").
		Find(&orders).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectDetailResponse{Error: &e})
		return
	}

	data := ProjectDetail{
		Project: newProject(project, profit),
		Orders:  make([]Order, 0),
	}
	for _, order := range orders {
		data.Orders = append(data.Orders, newOrder(models.DB, order))
	}

	c.JSON(http.StatusOK, ProjectDetailResponse{Data: &data})
}

// @Summary		Update project
// @Description	Updates an existing project. All editable fields are replaced with the submitted values. The status is not editable.
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		404		{object}	ProjectResponse
// @Param			id		path		uint			true	"ID of the project"
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects/{id} [patch]
func UpdateProject(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &e})
		return
	}

	var project models.Project
	if err := models.DB.First(&project, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &e})
		return
	}

	var editable ProjectEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProjectResponse{Error: &e})
		return
	}

	// The status keeps its stored value on update
	err := models.DB.Model(&project).Select("*").Omit("id", "created_at", "status").Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &e})
		return
	}

	profit, err := models.ProjectProfit(project.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &e})
		return
	}

	data := newProject(project, profit)
	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}

// @Summary		Delete project
// @Description	Deletes a project together with all orders and documents attached to it
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the project"
// @Router			/v1/projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var project models.Project
	if err := models.DB.First(&project, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&project).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
