package authz_test

import (
	"testing"

	"github.com/Alubalulu/sales-forecast-app/internal/http/authz"
	"github.com/Alubalulu/sales-forecast-app/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		name string
		op   authz.Op
		role models.Role
		want bool
	}{
		{"individual submits forecast", authz.OpSubmitForecast, models.RoleIndividual, true},
		{"manager submits forecast", authz.OpSubmitForecast, models.RoleManager, true},
		{"admin submits forecast", authz.OpSubmitForecast, models.RoleAdmin, true},
		{"individual denied rollup", authz.OpViewRollup, models.RoleIndividual, false},
		{"manager views rollup", authz.OpViewRollup, models.RoleManager, true},
		{"admin views rollup", authz.OpViewRollup, models.RoleAdmin, true},
		{"individual denied export", authz.OpExportRollup, models.RoleIndividual, false},
		{"manager exports", authz.OpExportRollup, models.RoleManager, true},
		{"manager denied whitelist", authz.OpManageWhitelist, models.RoleManager, false},
		{"admin manages whitelist", authz.OpManageWhitelist, models.RoleAdmin, true},
		{"unknown op denied", authz.Op("nope"), models.RoleAdmin, false},
		{"unknown role denied", authz.OpSubmitForecast, models.Role("Guest"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, authz.Allowed(tc.op, tc.role))
		})
	}
}
