package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Stats is the global rollup shown on the dashboard.
type Stats struct {
	TotalOrders int64           `json:"totalOrders"`
	Revenue     decimal.Decimal `json:"revenue"`
	PaidOut     decimal.Decimal `json:"paidOut"`
	Profit      decimal.Decimal `json:"profit"`
	Projects    int64           `json:"projects"`
}

// CalculateStats computes the unfiltered totals over all orders and
// projects. All sums over an empty table are 0, never an error.
//
// The project count includes finished projects. Earlier revisions
// counted active ones only, the current behavior is intentional.
func CalculateStats() (Stats, error) {
	var stats Stats

	err := DB.Model(&Order{}).Count(&stats.TotalOrders).Error
	if err != nil {
		return Stats{}, fmt.Errorf("counting orders failed: %w", err)
	}

	var revenue, paidOut decimal.NullDecimal

	err = DB.Table("orders").
		Select("SUM(cost)").
		Row().
		Scan(&revenue)
	if err != nil {
		return Stats{}, fmt.Errorf("summing order costs failed: %w", err)
	}

	err = DB.Table("orders").
		Select("SUM(blogger_fee)").
		Row().
		Scan(&paidOut)
	if err != nil {
		return Stats{}, fmt.Errorf("summing blogger fees failed: %w", err)
	}

	// The zero value of a NULL sum is already decimal zero
	stats.Revenue = revenue.Decimal
	stats.PaidOut = paidOut.Decimal
	stats.Profit = stats.Revenue.Sub(stats.PaidOut)

	err = DB.Model(&Project{}).Count(&stats.Projects).Error
	if err != nil {
		return Stats{}, fmt.Errorf("counting projects failed: %w", err)
	}

	return stats, nil
}

// UpcomingExits returns up to 10 orders with a posting date in the
// current month, on or after the given day of month, sorted by date
// ascending. A day below 1 means today.
//
// Days above 28 are clamped to 28 so that the window never runs past
// February or a 30 day month. The window upper bound is always day 28,
// not the real end of the month. This is a known simplification.
func UpcomingExits(day int) ([]Order, error) {
	now := time.Now().In(time.UTC)

	if day < 1 {
		day = now.Day()
	}
	if day > 28 {
		day = 28
	}

	from := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.UTC)
	until := time.Date(now.Year(), now.Month(), 29, 0, 0, 0, 0, time.UTC)

	var orders []Order
	err := DB.
		Where("date >= date(?)", from).
		Where("date < date(?)", until).
		Order("date ASC").
		Limit(10).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("getting upcoming orders failed: %w", err)
	}

	return orders, nil
}

// ProjectProfit sums cost minus blogger fee over the orders of one
// project. A project without orders reports 0.
func ProjectProfit(projectID uint) (decimal.Decimal, error) {
	var profit decimal.NullDecimal

	err := DB.Table("orders").
		Where("project_id = ?", projectID).
		Select("SUM(cost - blogger_fee)").
		Row().
		Scan(&profit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing profit for project %d failed: %w", projectID, err)
	}

	return profit.Decimal, nil
}

// ProjectProfits returns the derived profit for every project in one
// query. Projects without orders are present with profit 0.
func ProjectProfits() (map[uint]decimal.Decimal, error) {
	rows, err := DB.Table("projects").
		Select("projects.id, COALESCE(SUM(orders.cost - orders.blogger_fee), 0)").
		Joins("LEFT JOIN orders ON orders.project_id = projects.id").
		Group("projects.id").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("summing profits per project failed: %w", err)
	}
	defer rows.Close()

	profits := make(map[uint]decimal.Decimal)
	for rows.Next() {
		var id uint
		var profit decimal.Decimal
		if err := rows.Scan(&id, &profit); err != nil {
			return nil, fmt.Errorf("reading profits per project failed: %w", err)
		}
		profits[id] = profit
	}

	return profits, rows.Err()
}
