// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

// Package docs registers the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/sreshtalluri/arangetaram-planning/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/events/{eventID}/recommendations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns up to three ranked vendors, each with an explanation, for every category the event needs. An event with no eligible vendors returns 200 with empty lists and no_candidates=true.",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Vendor recommendations for an event",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Event ID (UUID)",
                        "name": "eventID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Recommendations by category",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.RecommendationResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid event ID", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "Event not found", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "502": {"description": "Ranking service returned a malformed response", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Ranking service or vendor data unavailable", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "504": {"description": "Request timed out", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Store unreachable", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "ORACLE_UNAVAILABLE"},
                "message": {"type": "string"},
                "retryable": {"type": "boolean"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "models.APIMeta": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string", "format": "date-time"},
                "duration_ms": {"type": "integer"},
                "request_id": {"type": "string"}
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"$ref": "#/definitions/models.APIError"},
                "meta": {"$ref": "#/definitions/models.APIMeta"}
            }
        },
        "models.RecommendedVendor": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "business_name": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "service_areas": {"type": "array", "items": {"type": "string"}},
                "price_min": {"type": "number"},
                "price_max": {"type": "number"},
                "profile_photo_url": {"type": "string"},
                "distance_miles": {"type": "number"},
                "explanation": {"type": "string"}
            }
        },
        "models.RecommendationResult": {
            "type": "object",
            "properties": {
                "event_id": {"type": "string"},
                "categories": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "maxItems": 3,
                        "items": {"$ref": "#/definitions/models.RecommendedVendor"}
                    }
                },
                "no_candidates": {"type": "boolean"},
                "geo_filtered": {"type": "boolean"},
                "unavailable_categories": {"type": "array", "items": {"type": "string"}},
                "generated_at": {"type": "string", "format": "date-time"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Access token from the managed auth provider, as 'Bearer <token>'.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Arangetram Vendor Recommendation API",
	Description:      "Ranked, explained vendor shortlists for Arangetram events.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
