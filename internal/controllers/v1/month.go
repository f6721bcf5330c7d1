package v1

import (
	"net/http"

	"github.com/bloggerdesk/backend/internal/httputil"
	"github.com/bloggerdesk/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMonthList)
		r.GET("", GetMonths)
		r.POST("", CreateMonth)
	}

	// Month with ID
	{
		r.OPTIONS("/:id", OptionsMonthDetail)
		r.GET("/:id", GetMonth)
		r.PATCH("/:id", UpdateMonth)
		r.DELETE("/:id", DeleteMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonthList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the month"
// @Router			/v1/months/{id} [options]
func OptionsMonthDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.First(&models.Month{}, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create month
// @Description	Creates a new month
// @Tags			Months
// @Produce		json
// @Success		201		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Param			month	body		MonthEditable	true	"Month"
// @Router			/v1/months [post]
func CreateMonth(c *gin.Context) {
	var editable MonthEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{Error: &e})
		return
	}

	month := editable.model()
	if err := models.DB.Create(&month).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	data := MonthDetail{
		Month:        newMonth(month),
		Projects:     make([]Project, 0),
		DirectOrders: make([]Order, 0),
	}
	c.JSON(http.StatusCreated, MonthResponse{Data: &data})
}

// @Summary		Get months
// @Description	Returns the list of months, newest first
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthListResponse
// @Failure		500	{object}	MonthListResponse
// @Router			/v1/months [get]
func GetMonths(c *gin.Context) {
	var months []models.Month
	if err := models.DB.Order("id DESC").Find(&months).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), MonthListResponse{Error: &e})
		return
	}

	data := make([]Month, 0)
	for _, month := range months {
		data = append(data, newMonth(month))
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: data})
}

// @Summary		Get month
// @Description	Returns a specific month with its projects and the orders attached to the month directly
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		404	{object}	MonthResponse
// @Param			id	path		uint	true	"ID of the month"
// @Router			/v1/months/{id} [get]
func GetMonth(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	var month models.Month
	if err := models.DB.First(&month, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	var projects []models.Project
	if err := models.DB.Where("month_id = ?", month.ID).Order("id ASC").Find(&projects).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	profits, err := models.ProjectProfits()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	// Orders that carry the month directly without a project show up
	// next to the projects in the month view
	var directOrders []models.Order
	err = models.DB.
		Where("month_id = ? AND project_id IS NULL", month.ID).
		Order("date ASC, id ASC").
		Find(&directOrders).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	data := MonthDetail{
		Month:        newMonth(month),
		Projects:     make([]Project, 0),
		DirectOrders: make([]Order, 0),
	}

	for _, project := range projects {
		profit, ok := profits[project.ID]
		if !ok {
			profit = decimal.Zero
		}
		data.Projects = append(data.Projects, newProject(project, profit))
	}

	for _, order := range directOrders {
		data.DirectOrders = append(data.DirectOrders, newOrder(models.DB, order))
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Update month
// @Description	Updates an existing month. All editable fields are replaced with the submitted values.
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Param			id		path		uint			true	"ID of the month"
// @Param			month	body		MonthEditable	true	"Month"
// @Router			/v1/months/{id} [patch]
func UpdateMonth(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	var month models.Month
	if err := models.DB.First(&month, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	var editable MonthEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{Error: &e})
		return
	}

	err := models.DB.Model(&month).Select("*").Omit("id", "created_at").Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	data := MonthDetail{
		Month:        newMonth(month),
		Projects:     make([]Project, 0),
		DirectOrders: make([]Order, 0),
	}
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Delete month
// @Description	Deletes a month. Projects and orders grouped under it are kept, their month reference becomes unresolved.
// @Tags			Months
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the month"
// @Router			/v1/months/{id} [delete]
func DeleteMonth(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var month models.Month
	if err := models.DB.First(&month, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&month).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
