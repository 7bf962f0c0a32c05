// Package authz holds the operation -> required roles table. Role checks
// happen once, at the route boundary, instead of ad-hoc string comparisons
// inside handlers.
package authz

import "github.com/Alubalulu/sales-forecast-app/internal/models"

type Op string

const (
	OpSubmitForecast  Op = "forecast.submit"
	OpViewRollup      Op = "rollup.view"
	OpExportRollup    Op = "rollup.export"
	OpManageWhitelist Op = "whitelist.manage"
)

var policy = map[Op][]models.Role{
	OpSubmitForecast:  {models.RoleIndividual, models.RoleManager, models.RoleAdmin},
	OpViewRollup:      {models.RoleManager, models.RoleAdmin},
	OpExportRollup:    {models.RoleManager, models.RoleAdmin},
	OpManageWhitelist: {models.RoleAdmin},
}

// Allowed reports whether role may perform op. Unknown operations are denied.
func Allowed(op Op, role models.Role) bool {
	for _, r := range policy[op] {
		if r == role {
			return true
		}
	}
	return false
}
