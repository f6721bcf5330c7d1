package v1

import (
	"net/http"

	"github.com/bloggerdesk/backend/internal/httputil"
	"github.com/bloggerdesk/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAdvertiserRoutes registers the routes for advertisers with
// the RouterGroup that is passed.
func RegisterAdvertiserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAdvertiserList)
		r.GET("", GetAdvertisers)
		r.POST("", CreateAdvertiser)
	}

	// Advertiser with ID
	{
		r.OPTIONS("/:id", OptionsAdvertiserDetail)
		r.GET("/:id", GetAdvertiser)
		r.PATCH("/:id", UpdateAdvertiser)
		r.DELETE("/:id", DeleteAdvertiser)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Advertisers
// @Success		204
// @Router			/v1/advertisers [options]
func OptionsAdvertiserList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Advertisers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the advertiser"
// @Router			/v1/advertisers/{id} [options]
func OptionsAdvertiserDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.First(&models.Advertiser{}, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create advertiser
// @Description	Creates a new advertiser
// @Tags			Advertisers
// @Produce		json
// @Success		201			{object}	AdvertiserResponse
// @Failure		400			{object}	AdvertiserResponse
// @Param			advertiser	body		AdvertiserEditable	true	"Advertiser"
// @Router			/v1/advertisers [post]
func CreateAdvertiser(c *gin.Context) {
	var editable AdvertiserEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AdvertiserResponse{Error: &e})
		return
	}

	advertiser := editable.model()
	if err := models.DB.Create(&advertiser).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), AdvertiserResponse{Error: &e})
		return
	}

	data := newAdvertiser(advertiser)
	c.JSON(http.StatusCreated, AdvertiserResponse{Data: &data})
}

// @Summary		Get advertisers
// @Description	Returns the list of advertisers, ordered by name. Duplicate names are collapsed into the oldest entry.
// @Tags			Advertisers
// @Produce		json
// @Success		200	{object}	AdvertiserListResponse
// @Failure		500	{object}	AdvertiserListResponse
// @Param			name	query	string	false	"Filter by name, substring match"
// @Router			/v1/advertisers [get]
func GetAdvertisers(c *gin.Context) {
	var filter AdvertiserQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AdvertiserListResponse{Error: &e})
		return
	}

	q := models.DB.Order("name ASC, id ASC")

	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}

	var advertisers []models.Advertiser
	if err := q.Find(&advertisers).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), AdvertiserListResponse{Error: &e})
		return
	}

	// Names are not unique in storage, the list collapses them
	data := make([]Advertiser, 0)
	for _, advertiser := range models.UniqueAdvertisers(advertisers) {
		data = append(data, newAdvertiser(advertiser))
	}

	c.JSON(http.StatusOK, AdvertiserListResponse{Data: data})
}

// @Summary		Get advertiser
// @Description	Returns a specific advertiser
// @Tags			Advertisers
// @Produce		json
// @Success		200	{object}	AdvertiserResponse
// @Failure		404	{object}	AdvertiserResponse
// @Param			id	path		uint	true	"ID of the advertiser"
// @Router			/v1/advertisers/{id} [get]
func GetAdvertiser(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), AdvertiserResponse{Error: &e})
		return
	}

	var advertiser models.Advertiser
	if err := models.DB.First(&advertiser, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), AdvertiserResponse{Error: &e})
		return
	}

	data := newAdvertiser(advertiser)
	c.JSON(http.StatusOK, AdvertiserResponse{Data: &data})
}

// @Summary		Update advertiser
// @Description	Updates an existing advertiser. All editable fields are replaced with the submitted values.
// @Tags			Advertisers
// @Accept			json
// @Produce		json
// @Success		200			{object}	AdvertiserResponse
// @Failure		400			{object}	AdvertiserResponse
// @Failure		404			{object}	AdvertiserResponse
// @Param			id			path		uint				true	"ID of the advertiser"
// @Param			advertiser	body		AdvertiserEditable	true	"Advertiser"
// @Router			/v1/advertisers/{id} [patch]
func UpdateAdvertiser(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), AdvertiserResponse{Error: &e})
		return
	}

	var advertiser models.Advertiser
	if err := models.DB.First(&advertiser, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), AdvertiserResponse{Error: &e})
		return
	}

	var editable AdvertiserEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AdvertiserResponse{Error: &e})
		return
	}

	err := models.DB.Model(&advertiser).Select("*").Omit("id", "created_at").Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdvertiserResponse{Error: &e})
		return
	}

	data := newAdvertiser(advertiser)
	c.JSON(http.StatusOK, AdvertiserResponse{Data: &data})
}

// @Summary		Delete advertiser
// @Description	Deletes an advertiser. Orders and projects referencing it are kept, their advertiser reference becomes unresolved.
// @Tags			Advertisers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the advertiser"
// @Router			/v1/advertisers/{id} [delete]
func DeleteAdvertiser(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var advertiser models.Advertiser
	if err := models.DB.First(&advertiser, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&advertiser).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
