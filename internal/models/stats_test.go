package models_test

import (
	"time"

	"github.com/bloggerdesk/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func (suite *TestSuiteStandard) TestCalculateStatsEmpty() {
	stats, err := models.CalculateStats()
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), int64(0), stats.TotalOrders)
	assert.True(suite.T(), stats.Revenue.IsZero(), "Revenue is %s, expected 0", stats.Revenue)
	assert.True(suite.T(), stats.PaidOut.IsZero(), "PaidOut is %s, expected 0", stats.PaidOut)
	assert.True(suite.T(), stats.Profit.IsZero(), "Profit is %s, expected 0", stats.Profit)
	assert.Equal(suite.T(), int64(0), stats.Projects)
}

func (suite *TestSuiteStandard) TestCalculateStats() {
	_ = suite.createTestOrder(models.Order{
		Cost:       decimal.NewFromFloat(100),
		BloggerFee: decimal.NewFromFloat(60),
	})
	_ = suite.createTestOrder(models.Order{
		Cost:       decimal.NewFromFloat(50),
		BloggerFee: decimal.NewFromFloat(10),
	})

	// Finished projects count like active ones
	_ = suite.createTestProject(models.Project{Name: "Active"})
	finished := suite.createTestProject(models.Project{Name: "Finished"})
	require.Nil(suite.T(), models.DB.Model(&finished).Update("status", "finished").Error)

	stats, err := models.CalculateStats()
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), int64(2), stats.TotalOrders)
	assert.True(suite.T(), stats.Revenue.Equal(decimal.NewFromFloat(150)), "Revenue is %s, expected 150", stats.Revenue)
	assert.True(suite.T(), stats.PaidOut.Equal(decimal.NewFromFloat(70)), "PaidOut is %s, expected 70", stats.PaidOut)
	assert.True(suite.T(), stats.Profit.Equal(decimal.NewFromFloat(80)), "Profit is %s, expected 80", stats.Profit)
	assert.Equal(suite.T(), int64(2), stats.Projects)
}

func (suite *TestSuiteStandard) TestProjectProfit() {
	project := suite.createTestProject(models.Project{Name: "GlowSkin"})

	_ = suite.createTestOrder(models.Order{
		ProjectID:  &project.ID,
		Cost:       decimal.NewFromFloat(100),
		BloggerFee: decimal.NewFromFloat(60),
	})
	_ = suite.createTestOrder(models.Order{
		ProjectID:  &project.ID,
		Cost:       decimal.NewFromFloat(50),
		BloggerFee: decimal.NewFromFloat(10),
	})

	// This order belongs to another project and must not count
	other := suite.createTestProject(models.Project{Name: "Other"})
	_ = suite.createTestOrder(models.Order{
		ProjectID: &other.ID,
		Cost:      decimal.NewFromFloat(1000),
	})

	profit, err := models.ProjectProfit(project.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), profit.Equal(decimal.NewFromFloat(80)), "Profit is %s, expected 80", profit)
}

func (suite *TestSuiteStandard) TestProjectProfitNoOrders() {
	project := suite.createTestProject(models.Project{Name: "Empty"})

	profit, err := models.ProjectProfit(project.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), profit.IsZero(), "Profit is %s, expected 0", profit)
}

func (suite *TestSuiteStandard) TestProjectProfits() {
	busy := suite.createTestProject(models.Project{Name: "Busy"})
	empty := suite.createTestProject(models.Project{Name: "Empty"})

	_ = suite.createTestOrder(models.Order{
		ProjectID:  &busy.ID,
		Cost:       decimal.NewFromFloat(30),
		BloggerFee: decimal.NewFromFloat(12),
	})

	profits, err := models.ProjectProfits()
	require.Nil(suite.T(), err)
	require.Len(suite.T(), profits, 2)

	assert.True(suite.T(), profits[busy.ID].Equal(decimal.NewFromFloat(18)), "Profit is %s, expected 18", profits[busy.ID])
	assert.True(suite.T(), profits[empty.ID].IsZero(), "Profit is %s, expected 0", profits[empty.ID])
}

func (suite *TestSuiteStandard) TestUpcomingExits() {
	now := time.Now().In(time.UTC)

	early := suite.createTestOrder(models.Order{
		Date:    date(now.Year(), now.Month(), 5),
		Product: "early",
	})
	late := suite.createTestOrder(models.Order{
		Date:    date(now.Year(), now.Month(), 28),
		Product: "late",
	})
	mid := suite.createTestOrder(models.Order{
		Date:    date(now.Year(), now.Month(), 15),
		Product: "mid",
	})

	// Orders without a posting date never show up
	_ = suite.createTestOrder(models.Order{Product: "unscheduled"})

	orders, err := models.UpcomingExits(5)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), orders, 3)

	// Sorted by date ascending
	assert.Equal(suite.T(), early.ID, orders[0].ID)
	assert.Equal(suite.T(), mid.ID, orders[1].ID)
	assert.Equal(suite.T(), late.ID, orders[2].ID)

	orders, err = models.UpcomingExits(16)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), orders, 1)
	assert.Equal(suite.T(), late.ID, orders[0].ID)
}

func (suite *TestSuiteStandard) TestUpcomingExitsDayClamped() {
	now := time.Now().In(time.UTC)

	last := suite.createTestOrder(models.Order{
		Date:    date(now.Year(), now.Month(), 28),
		Product: "last possible",
	})
	_ = suite.createTestOrder(models.Order{
		Date:    date(now.Year(), now.Month(), 10),
		Product: "too early",
	})

	// A day beyond 28 is clamped to 28, so only day 28 remains in the
	// window
	orders, err := models.UpcomingExits(30)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), orders, 1)
	assert.Equal(suite.T(), last.ID, orders[0].ID)
}

func (suite *TestSuiteStandard) TestUpcomingExitsLimit() {
	now := time.Now().In(time.UTC)

	for i := 0; i < 12; i++ {
		_ = suite.createTestOrder(models.Order{
			Date: date(now.Year(), now.Month(), 14),
		})
	}

	orders, err := models.UpcomingExits(1)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), orders, 10)
}
