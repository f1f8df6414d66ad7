// Package cost turns per-workspace resource counts into a monetary
// report.
package cost

import (
	"github.com/shopspring/decimal"
)

// ResourceHourlyRate is the Terraform Cloud price per managed resource
// per hour, in USD. Fixed assumption as of 2023-07-12, not fetched live;
// reprice here.
var ResourceHourlyRate = decimal.NewFromFloat(0.00014)

// ResourceRate is the per-resource rate used for monthly estimates: the
// hourly rate extrapolated to a full day of tracking.
var ResourceRate = ResourceHourlyRate.Mul(decimal.NewFromInt(24))

// costPlaces is the rounding precision applied to every cost figure
const costPlaces = 4

// MonthlyCost estimates the monthly cost of a workspace from its
// resource count, rounded to four decimal places (half away from zero).
func MonthlyCost(resources int) decimal.Decimal {
	return decimal.NewFromInt(int64(resources)).Mul(ResourceRate).Round(costPlaces)
}

// Rollup is the aggregate over all workspace rows
type Rollup struct {
	TotalResources   int
	TotalMonthlyCost decimal.Decimal
	TotalYearlyCost  decimal.Decimal
}

// Summarize totals the rows. The ordering is deliberate and load-bearing
// for numeric parity: each row is already rounded, the sum is rounded
// again, and the yearly figure is rounded after the multiply. Summing
// exact values first would differ by sub-cent amounts.
func Summarize(rows []Row) Rollup {
	totalResources := 0
	totalMonthly := decimal.Zero
	for _, row := range rows {
		totalResources += row.ResourceCount
		totalMonthly = totalMonthly.Add(row.MonthlyCost)
	}
	totalMonthly = totalMonthly.Round(costPlaces)

	return Rollup{
		TotalResources:   totalResources,
		TotalMonthlyCost: totalMonthly,
		TotalYearlyCost:  totalMonthly.Mul(decimal.NewFromInt(12)).Round(costPlaces),
	}
}
