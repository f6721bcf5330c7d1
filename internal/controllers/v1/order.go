package v1

import (
	"net/http"
	"strings"

	"github.com/bloggerdesk/backend/internal/httputil"
	"github.com/bloggerdesk/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/thoas/go-funk"
	"gorm.io/gorm"
)

// RegisterOrderRoutes registers the routes for orders with
// the RouterGroup that is passed.
func RegisterOrderRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsOrderList)
		r.GET("", GetOrders)
		r.POST("", CreateOrder)
	}

	// Order with ID
	{
		r.OPTIONS("/:id", OptionsOrderDetail)
		r.GET("/:id", GetOrder)
		r.PATCH("/:id", UpdateOrder)
		r.DELETE("/:id", DeleteOrder)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Orders
// @Success		204
// @Router			/v1/orders [options]
func OptionsOrderList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Orders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the order"
// @Router			/v1/orders/{id} [options]
func OptionsOrderDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.First(&models.Order{}, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// validateOrder checks the parts of an order submission that the
// storage layer does not care about.
func validateOrder(editable OrderEditable) error {
	if editable.Status != "" && !funk.ContainsString(models.OrderStatuses, editable.Status) {
		return errOrderStatusInvalid
	}

	if editable.Cost.IsNegative() || editable.BloggerFee.IsNegative() {
		return errOrderAmountNegative
	}

	return nil
}

// resolveInlineCreates handles the 0 sentinel for blogger and
// advertiser: a new row is created inside tx and its generated id is
// written back into the editable. A blank name skips the creation and
// clears the reference instead.
//
// Everything happens inside the surrounding transaction, so a failing
// order write afterwards takes the sub-creates down with it.
func resolveInlineCreates(tx *gorm.DB, editable *OrderEditable) error {
	if editable.BloggerID != nil && *editable.BloggerID == 0 {
		name := strings.TrimSpace(editable.NewBloggerName)
		if name == "" {
			editable.BloggerID = nil
		} else {
			blogger := models.Blogger{
				Name:     name,
				Platform: editable.NewBloggerPlatform,
			}
			if err := tx.Create(&blogger).Error; err != nil {
				return err
			}
			editable.BloggerID = &blogger.ID
		}
	}

	if editable.AdvertiserID != nil && *editable.AdvertiserID == 0 {
		name := strings.TrimSpace(editable.NewAdvertiserName)
		if name == "" {
			editable.AdvertiserID = nil
		} else {
			advertiser := models.Advertiser{
				Name:     name,
				Telegram: editable.NewAdvertiserTelegram,
			}
			if err := tx.Create(&advertiser).Error; err != nil {
				return err
			}
			editable.AdvertiserID = &advertiser.ID
		}
	}

	return nil
}

// @Summary		Create order
// @Description	Creates a new order. bloggerId or advertiserId of 0 together with a name creates that entity in the same transaction.
// @Tags			Orders
// @Produce		json
// @Success		201		{object}	OrderResponse
// @Failure		400		{object}	OrderResponse
// @Param			order	body		OrderEditable	true	"Order"
// @Router			/v1/orders [post]
func CreateOrder(c *gin.Context) {
	var editable OrderEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrderResponse{Error: &e})
		return
	}

	if err := validateOrder(editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrderResponse{Error: &e})
		return
	}

	var order models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := resolveInlineCreates(tx, &editable); err != nil {
			return err
		}

		// The date is parsed after the sub-creates on purpose: a bad
		// date has to roll them back, and this is the cheapest way to
		// prove that it does
		var err error
		order, err = editable.model()
		if err != nil {
			return err
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{Error: &e})
		return
	}

	data := newOrder(models.DB, order)
	c.JSON(http.StatusCreated, OrderResponse{Data: &data})
}

// @Summary		Get orders
// @Description	Returns the list of orders, newest posting date first
// @Tags			Orders
// @Produce		json
// @Success		200	{object}	OrderListResponse
// @Failure		500	{object}	OrderListResponse
// @Param			status		query	string	false	"Filter by status"
// @Param			blogger		query	uint	false	"Filter by blogger ID"
// @Param			advertiser	query	uint	false	"Filter by advertiser ID"
// @Param			project		query	uint	false	"Filter by project ID"
// @Param			month		query	uint	false	"Filter by month ID"
// @Param			noProject	query	bool	false	"Only orders without a project"
// @Router			/v1/orders [get]
func GetOrders(c *gin.Context) {
	var filter OrderQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrderListResponse{Error: &e})
		return
	}

	q := models.DB.Order("date DESC, id DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if filter.BloggerID != 0 {
		q = q.Where("blogger_id = ?", filter.BloggerID)
	}

	if filter.AdvertiserID != 0 {
		q = q.Where("advertiser_id = ?", filter.AdvertiserID)
	}

	if filter.ProjectID != 0 {
		q = q.Where("project_id = ?", filter.ProjectID)
	}

	if filter.MonthID != 0 {
		q = q.Where("month_id = ?", filter.MonthID)
	}

	// The month view without a project explicitly filters on the
	// project being unset
	if filter.NoProject {
		q = q.Where("project_id IS NULL")
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), OrderListResponse{Error: &e})
		return
	}

	data := make([]Order, 0)
	for _, order := range orders {
		data = append(data, newOrder(models.DB, order))
	}

	c.JSON(http.StatusOK, OrderListResponse{Data: data})
}

// @Summary		Get order
// @Description	Returns a specific order. Dangling blogger or advertiser references resolve to empty names.
// @Tags			Orders
// @Produce		json
// @Success		200	{object}	OrderResponse
// @Failure		404	{object}	OrderResponse
// @Param			id	path		uint	true	"ID of the order"
// @Router			/v1/orders/{id} [get]
func GetOrder(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{Error: &e})
		return
	}

	var order models.Order
	if err := models.DB.First(&order, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{Error: &e})
		return
	}

	data := newOrder(models.DB, order)
	c.JSON(http.StatusOK, OrderResponse{Data: &data})
}

// @Summary		Update order
// @Description	Updates an existing order. All editable fields are replaced with the submitted values. The inline creation sentinel works the same way as on create.
// @Tags			Orders
// @Accept			json
// @Produce		json
// @Success		200		{object}	OrderResponse
// @Failure		400		{object}	OrderResponse
// @Failure		404		{object}	OrderResponse
// @Param			id		path		uint			true	"ID of the order"
// @Param			order	body		OrderEditable	true	"Order"
// @Router			/v1/orders/{id} [patch]
func UpdateOrder(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{Error: &e})
		return
	}

	var order models.Order
	if err := models.DB.First(&order, uri.ID).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{Error: &e})
		return
	}

	var editable OrderEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrderResponse{Error: &e})
		return
	}

	if err := validateOrder(editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrderResponse{Error: &e})
		return
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := resolveInlineCreates(tx, &editable); err != nil {
			return err
		}

		update, err := editable.model()
		if err != nil {
			return err
		}

		return tx.Model(&order).Select("*").Omit("id", "created_at").Updates(update).Error
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{Error: &e})
		return
	}

	data := newOrder(models.DB, order)
	c.JSON(http.StatusOK, OrderResponse{Data: &data})
}

// @Summary		Delete order
// @Description	Deletes an order. Documents attached to it are deleted as well.
// @Tags			Orders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint	true	"ID of the order"
// @Router			/v1/orders/{id} [delete]
func DeleteOrder(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var order models.Order
	if err := models.DB.First(&order, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&order).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
