// Package docs registers the Swagger document served at /swagger/*.
// Regenerate with `swag init -g cmd/server/main.go`.
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
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new account", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/auth/refresh": {"post": {"tags": ["auth"], "summary": "Refresh access token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Logout", "responses": {"200": {"description": "OK"}}}},
        "/auth/verify-email": {"post": {"tags": ["auth"], "summary": "Confirm email ownership", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/auth/verify-email/resend": {"post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Send the verification email again", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current profile", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/professionals": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["professionals"], "summary": "List the caller's professionals, newest first", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["professionals"], "summary": "Add a professional to the caller's network", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}
        },
        "/courses": {"get": {"security": [{"BearerAuth": []}], "tags": ["courses"], "summary": "Course catalog", "parameters": [{"type": "string", "description": "Professional ID", "name": "professionalId", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/ce/send": {"post": {"security": [{"BearerAuth": []}], "tags": ["ce"], "summary": "Send a CE course with a single-use coupon", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.SendResult"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/ce/mark-redeemed": {"post": {"security": [{"BearerAuth": []}], "tags": ["ce"], "summary": "Mark a received course as redeemed", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/ce/my-courses": {"get": {"security": [{"BearerAuth": []}], "tags": ["ce"], "summary": "List the courses sent to the caller", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/ce/send-reminder": {"post": {"security": [{"BearerAuth": []}], "tags": ["ce"], "summary": "Email a reminder for an earlier send", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/ce/history": {"get": {"security": [{"BearerAuth": []}], "tags": ["ce"], "summary": "List the caller's sends, newest first", "responses": {"200": {"description": "OK"}}}},
        "/manager/stats": {"get": {"security": [{"BearerAuth": []}], "tags": ["manager"], "summary": "Organization statistics and rep leaderboard", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/manager/invites": {"post": {"security": [{"BearerAuth": []}], "tags": ["manager"], "summary": "Invite a rep or manager into the caller's organization", "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/coupons/create": {"post": {"security": [{"BearerAuth": []}], "tags": ["coupons"], "summary": "Create a store coupon", "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/seed/catalog": {"post": {"security": [{"BearerAuth": []}], "tags": ["seed"], "summary": "Seed the course catalog", "responses": {"200": {"description": "OK"}}}}
    },
    "definitions": {
        "errors.ErrorResponse": {"type": "object", "properties": {"code": {"type": "string"}, "error": {"type": "string"}}},
        "service.SendResult": {"type": "object", "properties": {"couponCode": {"type": "string"}, "success": {"type": "boolean"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and JWT token.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Pulse API",
	Description:      "CE course distribution CRM: professional directory, coupon-backed course sends and manager statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
