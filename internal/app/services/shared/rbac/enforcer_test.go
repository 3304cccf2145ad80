package rbac

import (
	"net/http"
	"testing"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnforcer(t *testing.T) {
	enforcer, err := NewEnforcer([]Permission{
		{Method: http.MethodGet, Pattern: "/api/v1/reports/", Roles: []models.Role{models.RoleAdmin, models.RoleStudent}},
		{Method: "patch", Pattern: "/api/v1/reports/{report_id}/archive", Roles: []models.Role{models.RoleSecretary, models.RoleSecretary}},
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		role    models.Role
		method  string
		object  string
		allowed bool
	}{
		{name: "collection without slash", role: models.RoleStudent, method: http.MethodGet, object: "/api/v1/reports", allowed: true},
		{name: "role outside policy", role: models.RoleProfessor, method: http.MethodGet, object: "/api/v1/reports", allowed: false},
		{name: "method is upper cased", role: models.RoleSecretary, method: http.MethodPatch, object: "/api/v1/reports/{report_id}/archive", allowed: true},
		{name: "wrong method", role: models.RoleSecretary, method: http.MethodDelete, object: "/api/v1/reports/{report_id}/archive", allowed: false},
		{name: "concrete path is not a pattern", role: models.RoleAdmin, method: http.MethodGet, object: "/api/v1/reports/42", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := enforcer.Enforce(tt.role.String(), tt.method, tt.object)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestPolicies_DropsRepeats(t *testing.T) {
	rules := Policies([]Permission{
		{Method: http.MethodDelete, Pattern: "/r/{id}", Roles: []models.Role{models.RoleAdmin}},
		{Method: http.MethodDelete, Pattern: "/r/{id}/", Roles: []models.Role{models.RoleAdmin}},
	})
	assert.Equal(t, [][]string{{"admin", http.MethodDelete, "/r/{id}"}}, rules)
}

func TestNewEnforcer_EmptyDeniesEverything(t *testing.T) {
	enforcer, err := NewEnforcer(nil)
	require.NoError(t, err)

	allowed, err := enforcer.Enforce("admin", http.MethodGet, "/")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestNormalizeObject(t *testing.T) {
	assert.Equal(t, "/api/v1/reports", NormalizeObject("/api/v1/reports/"))
	assert.Equal(t, "/api/v1/reports", NormalizeObject("/api/v1/reports//"))
	assert.Equal(t, "/api/v1/reports/{report_id}", NormalizeObject("/api/v1/reports/{report_id}"))
	assert.Equal(t, "/", NormalizeObject("/"))
	assert.Equal(t, "", NormalizeObject(""))
}
