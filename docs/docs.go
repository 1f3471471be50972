// Package docs registers the OpenAPI description served at /swagger.
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
        "/health": {"get": {"tags": ["system"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/register": {"post": {"tags": ["auth"], "summary": "Register", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/login": {"post": {"security": [{"BasicAuth": []}], "tags": ["auth"], "summary": "Log in", "produces": ["application/json"],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/activate": {"post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Activate account",
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}},
        "/users/all": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List users (admin)",
            "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/users/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/users/{id}/verification": {"post": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Request activation token",
            "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/projects": {"post": {"security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Create project",
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateProjectRequest"}}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}},
        "/projects/all": {"get": {"security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "List own projects",
            "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/projects/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Get project", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Update project", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Delete project", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/projects/{id}/labels": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Attach labels to project", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Detach label from project", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/tasks": {"post": {"security": [{"BearerAuth": []}], "tags": ["tasks"], "summary": "Create task",
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTaskRequest"}}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/tasks/all": {"get": {"security": [{"BearerAuth": []}], "tags": ["tasks"], "summary": "List own tasks",
            "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/tasks/stream": {"get": {"security": [{"BearerAuth": []}], "tags": ["tasks"], "summary": "Stream own tasks (WebSocket)",
            "parameters": [{"type": "string", "name": "interval", "in": "query"}, {"type": "integer", "name": "interval_ms", "in": "query"}],
            "responses": {"101": {"description": "Switching Protocols"}, "401": {"description": "Unauthorized"}}}},
        "/tasks/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["tasks"], "summary": "Get task", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["tasks"], "summary": "Update task", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["tasks"], "summary": "Delete task", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/tasks/{id}/labels": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["tasks"], "summary": "Attach labels to task", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["tasks"], "summary": "Detach label from task", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/labels": {"post": {"security": [{"BearerAuth": []}], "tags": ["labels"], "summary": "Create label",
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateLabelRequest"}}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}},
        "/labels/all": {"get": {"security": [{"BearerAuth": []}], "tags": ["labels"], "summary": "List own labels",
            "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/labels/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["labels"], "summary": "Get label", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["labels"], "summary": "Update label", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["labels"], "summary": "Delete label", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        }
    },
    "definitions": {
        "handlers.RegisterRequest": {"type": "object", "required": ["email", "name", "password", "username"],
            "properties": {"email": {"type": "string"}, "username": {"type": "string"}, "name": {"type": "string"}, "password": {"type": "string"}}},
        "handlers.CreateProjectRequest": {"type": "object", "required": ["name"],
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "creator": {"type": "integer"}, "ends": {"type": "string", "example": "2030-01-31"}, "labels": {"type": "array", "items": {"type": "integer"}}}},
        "handlers.CreateTaskRequest": {"type": "object", "required": ["name", "project"],
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "creator": {"type": "integer"}, "project": {"type": "integer"}, "due": {"type": "string", "example": "2030-01-15"}, "labels": {"type": "array", "items": {"type": "integer"}}}},
        "handlers.CreateLabelRequest": {"type": "object", "required": ["name"],
            "properties": {"name": {"type": "string"}, "color": {"type": "string"}, "owner": {"type": "integer"}}}
    },
    "securityDefinitions": {
        "BasicAuth": {"type": "basic"},
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Task Manager API",
	Description:      "Projects, tasks and labels per user, with bearer-token auth.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
