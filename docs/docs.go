// Package docs registers the Swagger spec served at /swagger/doc.json.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "produces": ["application/json"], "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "produces": ["application/json"], "responses": {"200": {"description": "API is ready"}, "503": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "produces": ["application/json"], "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/auth/start": {
            "post": {
                "tags": ["Auth"],
                "summary": "Start session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/session.startReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.startResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Unable to start session", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/auth/session": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current session",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/session.currentResp"}}}
            },
            "delete": {
                "tags": ["Auth"],
                "summary": "Sign out",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/checklist": {
            "get": {
                "tags": ["Checklist"],
                "summary": "Get checklist",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/checklist.renderResp"}}}
            }
        },
        "/api/v1/checklist/items": {
            "post": {
                "tags": ["Checklist"],
                "summary": "Add checklist item",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/checklist.addItemReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/checklist.addItemResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Unable to save checklist", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/checklist/items/{id}/phases/{phase}": {
            "put": {
                "tags": ["Checklist"],
                "summary": "Set a phase",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true, "description": "Item ID"},
                    {"type": "integer", "in": "path", "name": "phase", "required": true, "description": "Phase index (0-2)"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/checklist.togglePhaseReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/checklist.togglePhaseResp"}},
                    "500": {"description": "Unable to save checklist", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/checklist/items/{id}": {
            "delete": {
                "tags": ["Checklist"],
                "summary": "Remove checklist item",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true, "description": "Item ID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/checklist.removeItemResp"}},
                    "500": {"description": "Unable to save checklist", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/routines": {
            "get": {
                "tags": ["Routines"],
                "summary": "List routine tasks",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/routine.listResp"}},
                    "401": {"description": "You need to sign in first.", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "tags": ["Routines"],
                "summary": "Create routine task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/routine.createReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/routine.listResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/routines/{id}/completed": {
            "patch": {
                "tags": ["Routines"],
                "summary": "Set routine completion",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true, "description": "Routine ID"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/routine.setCompletedReq"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/routine.listResp"}}}
            }
        },
        "/api/v1/routines/{id}": {
            "delete": {
                "tags": ["Routines"],
                "summary": "Delete routine task",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true, "description": "Routine ID"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/routine.listResp"}}}
            }
        },
        "/api/v1/stats/overview": {
            "get": {
                "tags": ["Stats"],
                "summary": "Overview stats",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/stats.overviewResp"}},
                    "401": {"description": "You need to sign in first.", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "response.Resp": {"type": "object", "properties": {"error_code": {"type": "integer"}, "message": {"type": "string"}, "data": {}, "errors": {}}},
        "session.startReq": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}}},
        "session.profileResp": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "initial": {"type": "string"}, "title": {"type": "string"}}},
        "session.startResp": {"type": "object", "properties": {"user_id": {"type": "string"}, "profile": {"$ref": "#/definitions/session.profileResp"}}},
        "session.currentResp": {"type": "object", "properties": {"signed_in": {"type": "boolean"}, "profile": {"$ref": "#/definitions/session.profileResp"}}},
        "checklist.addItemReq": {"type": "object", "properties": {"title": {"type": "string"}}},
        "checklist.togglePhaseReq": {"type": "object", "properties": {"value": {"type": "boolean"}}},
        "checklist.itemResp": {"type": "object", "properties": {"id": {"type": "string"}, "title": {"type": "string"}, "phases": {"type": "array", "items": {"type": "boolean"}}, "status_label": {"type": "string"}, "status_category": {"type": "string"}}},
        "checklist.summaryResp": {"type": "object", "properties": {"complete_count": {"type": "integer"}, "total_count": {"type": "integer"}, "text": {"type": "string"}}},
        "checklist.renderResp": {"type": "object", "properties": {"user_key": {"type": "string"}, "items": {"type": "array", "items": {"$ref": "#/definitions/checklist.itemResp"}}, "summary": {"$ref": "#/definitions/checklist.summaryResp"}}},
        "checklist.addItemResp": {"type": "object", "properties": {"added": {"type": "boolean"}, "id": {"type": "string"}, "model": {"$ref": "#/definitions/checklist.renderResp"}}},
        "checklist.togglePhaseResp": {"type": "object", "properties": {"toggled": {"type": "boolean"}, "model": {"$ref": "#/definitions/checklist.renderResp"}}},
        "checklist.removeItemResp": {"type": "object", "properties": {"removed": {"type": "boolean"}, "model": {"$ref": "#/definitions/checklist.renderResp"}}},
        "routine.createReq": {"type": "object", "properties": {"title": {"type": "string"}, "description": {"type": "string"}, "target_date": {"type": "string"}}},
        "routine.setCompletedReq": {"type": "object", "properties": {"value": {"type": "boolean"}}},
        "routine.taskResp": {"type": "object", "properties": {"id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"}, "target_date": {"type": "string"}, "meta": {"type": "string"}, "completed": {"type": "boolean"}}},
        "routine.listResp": {"type": "object", "properties": {"tasks": {"type": "array", "items": {"$ref": "#/definitions/routine.taskResp"}}, "count_label": {"type": "string"}}},
        "stats.overviewResp": {"type": "object", "properties": {"streak": {"type": "string"}, "consistency": {"type": "string"}, "workouts": {"type": "string"}, "average_duration": {"type": "string"}, "consistency_note": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8090",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "TrackFit Companion API",
	Description:      "Local companion for the TrackFit dashboard: phased checklist, session, routines and stats.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
