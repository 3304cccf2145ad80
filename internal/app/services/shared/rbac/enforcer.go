package rbac

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed rbac_model.conf
var modelText string

// Permission grants Roles the Method on the route Pattern, written the way chi
// reports it, e.g. /api/v1/reports/{report_id}.
type Permission struct {
	Method  string
	Pattern string
	Roles   []models.Role
}

// NewEnforcer builds an in-memory enforcer holding one policy line per role of
// every permission.
func NewEnforcer(permissions []Permission) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac: parse model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("rbac: create enforcer: %w", err)
	}

	rules := Policies(permissions)
	if len(rules) == 0 {
		return enforcer, nil
	}
	if _, err := enforcer.AddPolicies(rules); err != nil {
		return nil, fmt.Errorf("rbac: load policies: %w", err)
	}
	return enforcer, nil
}

// Policies expands permissions into casbin rules, dropping repeats.
func Policies(permissions []Permission) [][]string {
	seen := make(map[string]struct{})
	var rules [][]string
	for _, permission := range permissions {
		object := NormalizeObject(permission.Pattern)
		method := strings.ToUpper(permission.Method)
		for _, role := range permission.Roles {
			rule := []string{role.String(), method, object}
			key := strings.Join(rule, " ")
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			rules = append(rules, rule)
		}
	}
	return rules
}

// NormalizeObject drops the trailing slashes chi leaves on collection routes of
// mounted routers. An empty pattern stays empty and matches no policy.
func NormalizeObject(pattern string) string {
	trimmed := strings.TrimRight(pattern, "/")
	if trimmed == "" && pattern != "" {
		return "/"
	}
	return trimmed
}
