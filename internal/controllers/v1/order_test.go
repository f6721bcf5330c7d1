package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/bloggerdesk/backend/internal/controllers/v1"
	"github.com/bloggerdesk/backend/internal/models"
	"github.com/bloggerdesk/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestOrder(body any) v1.OrderResponse {
	recorder := suite.request(http.MethodPost, "/v1/orders", body)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.OrderResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestOrderDateRoundTrip() {
	response := suite.createTestOrder(`{"product": "serum", "date": "15.01.2024"}`)
	assert.Equal(suite.T(), "15.01.2024", response.Data.Date)

	// The date survives a read unchanged
	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/orders/%d", response.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var reloaded v1.OrderResponse
	test.DecodeResponse(suite.T(), &recorder, &reloaded)
	assert.Equal(suite.T(), "15.01.2024", reloaded.Data.Date)
}

func (suite *TestSuiteStandard) TestOrderDateEmpty() {
	response := suite.createTestOrder(`{"product": "serum"}`)
	assert.Equal(suite.T(), "", response.Data.Date)
}

func (suite *TestSuiteStandard) TestOrderDateInvalid() {
	recorder := suite.request(http.MethodPost, "/v1/orders", `{"date": "2024-01-15"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestOrderDefaults() {
	response := suite.createTestOrder(`{"product": "serum"}`)

	assert.Equal(suite.T(), "negotiation", response.Data.Status)
	assert.True(suite.T(), response.Data.Cost.IsZero())
	assert.True(suite.T(), response.Data.BloggerFee.IsZero())
}

func (suite *TestSuiteStandard) TestOrderProfitDerived() {
	response := suite.createTestOrder(`{"cost": 1500, "bloggerFee": 900}`)
	assert.True(suite.T(), response.Data.Profit.Equal(decimal.NewFromFloat(600)), "Profit is %s, expected 600", response.Data.Profit)
}

func (suite *TestSuiteStandard) TestOrderNegativeAmountsRejected() {
	recorder := suite.request(http.MethodPost, "/v1/orders", `{"cost": -10}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = suite.request(http.MethodPost, "/v1/orders", `{"bloggerFee": -1}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestOrderStatusInvalid() {
	recorder := suite.request(http.MethodPost, "/v1/orders", `{"status": "maybe"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestOrderInlineBloggerCreate() {
	response := suite.createTestOrder(`{"bloggerId": 0, "newBloggerName": "dasha.reviews", "newBloggerPlatform": "insta"}`)

	require.NotNil(suite.T(), response.Data.BloggerID)
	assert.NotZero(suite.T(), *response.Data.BloggerID)
	assert.Equal(suite.T(), "dasha.reviews", response.Data.BloggerName)

	// The blogger exists as a full resource
	var blogger models.Blogger
	require.Nil(suite.T(), models.DB.First(&blogger, *response.Data.BloggerID).Error)
	assert.Equal(suite.T(), "insta", blogger.Platform)
}

func (suite *TestSuiteStandard) TestOrderInlineCreateBlankName() {
	// The 0 sentinel with a blank name quietly skips the creation
	response := suite.createTestOrder(`{"bloggerId": 0, "newBloggerName": "  ", "advertiserId": 0}`)

	assert.Nil(suite.T(), response.Data.BloggerID)
	assert.Nil(suite.T(), response.Data.AdvertiserID)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Blogger{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestOrderInlineCreateRollsBack() {
	// The invalid date fails the order after the blogger sub-create,
	// which has to take the blogger down with it
	recorder := suite.request(http.MethodPost, "/v1/orders", `{"bloggerId": 0, "newBloggerName": "doomed", "date": "not a date"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Blogger{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestOrderDanglingBloggerName() {
	blogger := v1.BloggerResponse{}
	recorder := suite.request(http.MethodPost, "/v1/bloggers", `{"name": "dasha.reviews"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &blogger)

	order := suite.createTestOrder(fmt.Sprintf(`{"bloggerId": %d}`, blogger.Data.ID))
	assert.Equal(suite.T(), "dasha.reviews", order.Data.BloggerName)

	recorder = suite.request(http.MethodDelete, fmt.Sprintf("/v1/bloggers/%d", blogger.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	// The order survives, the name resolves to empty
	recorder = suite.request(http.MethodGet, fmt.Sprintf("/v1/orders/%d", order.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var reloaded v1.OrderResponse
	test.DecodeResponse(suite.T(), &recorder, &reloaded)
	assert.Equal(suite.T(), "", reloaded.Data.BloggerName)
	require.NotNil(suite.T(), reloaded.Data.BloggerID)
	assert.Equal(suite.T(), blogger.Data.ID, *reloaded.Data.BloggerID)
}

func (suite *TestSuiteStandard) TestOrderUpdate() {
	response := suite.createTestOrder(`{"product": "serum", "cost": 100}`)

	recorder := suite.request(http.MethodPatch, fmt.Sprintf("/v1/orders/%d", response.Data.ID), `{"product": "face cream", "cost": 0, "status": "paid"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var updated v1.OrderResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.Equal(suite.T(), "face cream", updated.Data.Product)
	assert.Equal(suite.T(), "paid", updated.Data.Status)

	// Zero values are persisted, not skipped
	assert.True(suite.T(), updated.Data.Cost.IsZero(), "Cost is %s, expected 0", updated.Data.Cost)
}

func (suite *TestSuiteStandard) TestOrderFilters() {
	project := suite.createTestProject(`{"name": "GlowSkin"}`)

	_ = suite.createTestOrder(fmt.Sprintf(`{"projectId": %d, "status": "paid"}`, project.Data.ID))
	_ = suite.createTestOrder(`{"status": "agreed", "monthId": 1}`)

	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/orders?project=%d", project.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.OrderListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)

	recorder = suite.request(http.MethodGet, "/v1/orders?noProject=true", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "agreed", response.Data[0].Status)
}

func (suite *TestSuiteStandard) TestOrderDelete() {
	response := suite.createTestOrder(`{"product": "serum"}`)

	recorder := suite.request(http.MethodDelete, fmt.Sprintf("/v1/orders/%d", response.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = suite.request(http.MethodGet, fmt.Sprintf("/v1/orders/%d", response.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
