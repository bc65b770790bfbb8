// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

// @title Vendor Recommendation API
// @version 1.0
// @description Ranked vendor recommendations for Arangetram events.
// @description
// @description For every category an event still needs, the service picks published
// @description vendors near the event, within budget and free on the date, then asks a
// @description language model to rank them. At most three vendors are returned per category.
// @description
// @description ## Authentication
// @description
// @description Data routes take a bearer JWT issued by the planning app's auth provider.
// @description Health, metrics and documentation routes are public.
// @description
// @description ## Rate Limiting
// @description
// @description Requests are limited per client IP (default 30 per minute). Exceeding the
// @description limit returns 429 with code TOO_MANY_REQUESTS.
//
// @contact.name Arangetram Planning
// @contact.url https://github.com/sreshtalluri/arangetaram-planning
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token: "Bearer {jwt}"

package main
