// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

// Package auth verifies bearer tokens issued by the managed auth provider
// (HS256, optional issuer and audience) and exposes the caller's claims to
// handlers. Sign-in flows live with the provider; this service only checks
// the tokens it is handed.
package auth
