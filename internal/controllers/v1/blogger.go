package v1

import (
	"net/http"

	"github.com/bloggerdesk/backend/internal/httputil"
	"github.com/bloggerdesk/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/thoas/go-funk"
)

// RegisterBloggerRoutes registers the routes for bloggers with
// the RouterGroup that is passed.
func RegisterBloggerRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBloggerList)
		r.GET("", GetBloggers)
		r.POST("", CreateBlogger)
	}

	// Blogger with ID
	{
		r.OPTIONS("/:id", OptionsBloggerDetail)
		r.GET("/:id", GetBlogger)
		r.PATCH("/:id", UpdateBlogger)
		r.DELETE("/:id", DeleteBlogger)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bloggers
// @Success		204
// @Router			/v1/bloggers [options]
func OptionsBloggerList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bloggers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the blogger"
// @Router			/v1/bloggers/{id} [options]
func OptionsBloggerDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.First(&models.Blogger{}, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create blogger
// @Description	Creates a new blogger
// @Tags			Bloggers
// @Produce		json
// @Success		201		{object}	BloggerResponse
// @Failure		400		{object}	BloggerResponse
// @Param			blogger	body		BloggerEditable	true	"Blogger"
// @Router			/v1/bloggers [post]
func CreateBlogger(c *gin.Context) {
	var editable BloggerEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BloggerResponse{Error: &e})
		return
	}

	if editable.Platform != "" && !funk.ContainsString(models.BloggerPlatforms, editable.Platform) {
		e := errBloggerPlatformInvalid.Error()
		c.JSON(http.StatusBadRequest, BloggerResponse{Error: &e})
		return
	}

	blogger := editable.model()
	if err := models.DB.Create(&blogger).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), BloggerResponse{Error: &e})
		return
	}

	data := newBlogger(blogger)
	c.JSON(http.StatusCreated, BloggerResponse{Data: &data})
}

// @Summary		Get bloggers
// @Description	Returns the list of bloggers, ordered by name. Duplicate names are collapsed into the oldest entry.
// @Tags			Bloggers
// @Produce		json
// @Success		200	{object}	BloggerListResponse
// @Failure		500	{object}	BloggerListResponse
// @Param			name		query	string	false	"Filter by name, substring match"
// @Param			platform	query	string	false	"Filter by platform"
// @Router			/v1/bloggers [get]
func GetBloggers(c *gin.Context) {
	var filter BloggerQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BloggerListResponse{Error: &e})
		return
	}

	q := models.DB.Order("name ASC, id ASC")

	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}

	if filter.Platform != "" {
		q = q.Where("platform = ?", filter.Platform)
	}

	var bloggers []models.Blogger
	if err := q.Find(&bloggers).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), BloggerListResponse{Error: &e})
		return
	}

	// Names are not unique in storage, the list collapses them
	data := make([]Blogger, 0)
	for _, blogger := range models.UniqueBloggers(bloggers) {
		data = append(data, newBlogger(blogger))
	}

	c.JSON(http.StatusOK, BloggerListResponse{Data: data})
}

// @Summary		Get blogger
// @Description	Returns a specific blogger
// @Tags			Bloggers
// @Produce		json
// @Success		200	{object}	BloggerResponse
// @Failure		404	{object}	BloggerResponse
// @Param			id	path		uint	true	"ID of the blogger"
// @Router			/v1/bloggers/{id} [get]
func GetBlogger(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), BloggerResponse{Error: &e})
		return
	}

	var blogger models.Blogger
	if err := models.DB.First(&blogger, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), BloggerResponse{Error: &e})
		return
	}

	data := newBlogger(blogger)
	c.JSON(http.StatusOK, BloggerResponse{Data: &data})
}

// @Summary		Update blogger
// @Description	Updates an existing blogger. All editable fields are replaced with the submitted values.
// @Tags			Bloggers
// @Accept			json
// @Produce		json
// @Success		200		{object}	BloggerResponse
// @Failure		400		{object}	BloggerResponse
// @Failure		404		{object}	BloggerResponse
// @Param			id		path		uint			true	"ID of the blogger"
// @Param			blogger	body		BloggerEditable	true	"Blogger"
// @Router			/v1/bloggers/{id} [patch]
func UpdateBlogger(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), BloggerResponse{Error: &e})
		return
	}

	var blogger models.Blogger
	if err := models.DB.First(&blogger, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), BloggerResponse{Error: &e})
		return
	}

	var editable BloggerEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BloggerResponse{Error: &e})
		return
	}

	if editable.Platform != "" && !funk.ContainsString(models.BloggerPlatforms, editable.Platform) {
		e := errBloggerPlatformInvalid.Error()
		c.JSON(http.StatusBadRequest, BloggerResponse{Error: &e})
		return
	}

	err := models.DB.Model(&blogger).Select("*").Omit("id", "created_at").Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BloggerResponse{Error: &e})
		return
	}

	data := newBlogger(blogger)
	c.JSON(http.StatusOK, BloggerResponse{Data: &data})
}

// @Summary		Delete blogger
// @Description	Deletes a blogger. Orders referencing it are kept, their blogger reference becomes unresolved.
// @Tags			Bloggers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the blogger"
// @Router			/v1/bloggers/{id} [delete]
func DeleteBlogger(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var blogger models.Blogger
	if err := models.DB.First(&blogger, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&blogger).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
