// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package authz

import (
	"fmt"
	"os"
	"time"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/cache"
)

// Roles known to the built-in policy.
const (
	RoleAnonymous     = "anon"
	RoleAuthenticated = "authenticated"
	RoleService       = "service_role"
)

// Resources and actions.
const (
	ObjectRecommendations = "recommendations"
	ActionRead            = "read"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

var builtinPolicies = [][]string{
	{RoleAuthenticated, ObjectRecommendations, ActionRead},
	{RoleService, "*", "*"},
}

var builtinGroupings = [][]string{
	{RoleService, RoleAuthenticated},
}

// Config configures the Enforcer.
type Config struct {
	// PolicyPath is a Casbin CSV policy file. Empty uses the built-in policy.
	PolicyPath string

	// DecisionTTL is how long a decision is cached. Zero disables caching.
	DecisionTTL time.Duration
}

// Enforcer wraps a synced Casbin enforcer with a decision cache.
type Enforcer struct {
	enforcer  *casbin.SyncedEnforcer
	decisions *cache.LRU[bool]
}

// NewEnforcer loads the model and policy.
func NewEnforcer(cfg Config) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	var e *casbin.SyncedEnforcer
	if cfg.PolicyPath != "" {
		if _, statErr := os.Stat(cfg.PolicyPath); statErr != nil {
			return nil, fmt.Errorf("authz policy file: %w", statErr)
		}
		e, err = casbin.NewSyncedEnforcer(m, fileadapter.NewAdapter(cfg.PolicyPath))
	} else {
		e, err = casbin.NewSyncedEnforcer(m)
		if err == nil {
			err = loadBuiltinPolicy(e)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	enf := &Enforcer{enforcer: e}
	if cfg.DecisionTTL > 0 {
		enf.decisions = cache.NewLRU[bool](1024, cfg.DecisionTTL)
	}
	return enf, nil
}

func loadBuiltinPolicy(e *casbin.SyncedEnforcer) error {
	if _, err := e.AddPolicies(builtinPolicies); err != nil {
		return fmt.Errorf("add policies: %w", err)
	}
	for _, g := range builtinGroupings {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return fmt.Errorf("add grouping %v: %w", g, err)
		}
	}
	return nil
}

// Enforce reports whether role may perform action on object.
func (e *Enforcer) Enforce(role, object, action string) (bool, error) {
	if role == "" {
		role = RoleAnonymous
	}
	key := role + "\x00" + object + "\x00" + action
	if e.decisions != nil {
		if allowed, ok := e.decisions.Get(key); ok {
			return allowed, nil
		}
	}

	allowed, err := e.enforcer.Enforce(role, object, action)
	if err != nil {
		return false, fmt.Errorf("enforcement failed: %w", err)
	}

	if e.decisions != nil {
		e.decisions.Set(key, allowed)
	}
	return allowed, nil
}

// PolicyCount returns the number of p rules loaded.
func (e *Enforcer) PolicyCount() int {
	rules, err := e.enforcer.GetPolicy()
	if err != nil {
		return 0
	}
	return len(rules)
}
