package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/bloggerdesk/backend/internal/controllers/v1"
	"github.com/bloggerdesk/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestProject(body any) v1.ProjectResponse {
	recorder := suite.request(http.MethodPost, "/v1/projects", body)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestProjectCreate() {
	response := suite.createTestProject(`{"name": "GlowSkin March push"}`)

	assert.Equal(suite.T(), "GlowSkin March push", response.Data.Name)
	assert.Equal(suite.T(), "active", response.Data.Status)
	assert.True(suite.T(), response.Data.Profit.IsZero())
}

func (suite *TestSuiteStandard) TestProjectNameRequired() {
	recorder := suite.request(http.MethodPost, "/v1/projects", `{"name": "  "}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestProjectProfitAggregated() {
	project := suite.createTestProject(`{"name": "GlowSkin"}`)

	_ = suite.createTestOrder(fmt.Sprintf(`{"projectId": %d, "cost": 100, "bloggerFee": 60}`, project.Data.ID))
	_ = suite.createTestOrder(fmt.Sprintf(`{"projectId": %d, "cost": 50, "bloggerFee": 10}`, project.Data.ID))

	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/projects/%d", project.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ProjectDetailResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.Profit.Equal(decimal.NewFromFloat(80)), "Profit is %s, expected 80", response.Data.Profit)
	assert.Len(suite.T(), response.Data.Orders, 2)
}

func (suite *TestSuiteStandard) TestProjectDetailOrdersSorted() {
	project := suite.createTestProject(`{"name": "GlowSkin"}`)

	_ = suite.createTestOrder(fmt.Sprintf(`{"projectId": %d, "date": "20.03.2024", "product": "second"}`, project.Data.ID))
	_ = suite.createTestOrder(fmt.Sprintf(`{"projectId": %d, "date": "05.03.2024", "product": "first"}`, project.Data.ID))

	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/projects/%d", project.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ProjectDetailResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data.Orders, 2)
	assert.Equal(suite.T(), "first", response.Data.Orders[0].Product)
	assert.Equal(suite.T(), "second", response.Data.Orders[1].Product)
}

func (suite *TestSuiteStandard) TestProjectListProfits() {
	busy := suite.createTestProject(`{"name": "Busy"}`)
	_ = suite.createTestProject(`{"name": "Empty"}`)

	_ = suite.createTestOrder(fmt.Sprintf(`{"projectId": %d, "cost": 30, "bloggerFee": 12}`, busy.Data.ID))

	recorder := suite.request(http.MethodGet, "/v1/projects", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ProjectListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 2)

	// Newest first
	assert.Equal(suite.T(), "Empty", response.Data[0].Name)
	assert.True(suite.T(), response.Data[0].Profit.IsZero())
	assert.Equal(suite.T(), "Busy", response.Data[1].Name)
	assert.True(suite.T(), response.Data[1].Profit.Equal(decimal.NewFromFloat(18)), "Profit is %s, expected 18", response.Data[1].Profit)
}

func (suite *TestSuiteStandard) TestProjectDeleteCascades() {
	project := suite.createTestProject(`{"name": "Doomed"}`)
	order := suite.createTestOrder(fmt.Sprintf(`{"projectId": %d}`, project.Data.ID))

	recorder := suite.request(http.MethodDelete, fmt.Sprintf("/v1/projects/%d", project.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = suite.request(http.MethodGet, fmt.Sprintf("/v1/orders/%d", order.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestProjectUpdateKeepsStatus() {
	project := suite.createTestProject(`{"name": "Renamed later"}`)

	recorder := suite.request(http.MethodPatch, fmt.Sprintf("/v1/projects/%d", project.Data.ID), `{"name": "Renamed", "status": "finished"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Renamed", response.Data.Name)

	// The status is not part of the form anymore
	assert.Equal(suite.T(), "active", response.Data.Status)
}
