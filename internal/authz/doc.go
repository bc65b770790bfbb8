// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

// Package authz decides which authenticated roles may call which API
// resources, using a Casbin RBAC model.
//
// The role comes from the "role" claim of the caller's access token.
// Tokens issued to signed-in planners carry "authenticated"; backend jobs
// use "service_role", which inherits every "authenticated" permission and
// may do anything else. A token without a role is treated as "anon" and is
// granted nothing by the built-in policy.
//
// A CSV policy file (AUTHZ_POLICY_PATH) replaces the built-in policy:
//
//	p, authenticated, recommendations, read
//	p, service_role, *, *
//	g, service_role, authenticated
package authz
