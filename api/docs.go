// Package api contains the OpenAPI documentation served at /docs.
package api

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
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/router.RootResponse"}}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns 204 if the database is reachable",
                "tags": ["Health"],
                "summary": "Get health",
                "responses": {"204": {"description": "No Content"}, "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": ["General"],
                "summary": "API version",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/router.VersionResponse"}}}
            }
        },
        "/auth/callback": {
            "post": {
                "description": "Exchanges the session ID of a completed login at the authentication provider for a session.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Complete login",
                "parameters": [{"type": "string", "description": "Session ID from the authentication provider", "name": "session_id", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/v1.UserResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/httputil.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/v1.UserResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "description": "Returns the authenticated user",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Deletes the session and clears the session cookie",
                "tags": ["Auth"],
                "summary": "Logout",
                "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httputil.HTTPError"}}}
            }
        },
        "/categories": {
            "get": {
                "description": "Returns all categories of the current user, ordered by name",
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Get categories",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.CategoryListResponse"}}}
            },
            "post": {
                "description": "Creates a new category",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Create category",
                "parameters": [{"description": "Category", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.CategoryEditable"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.CategoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.CategoryResponse"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "description": "Returns a list of transactions of the current user, newest first",
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Get transactions",
                "parameters": [
                    {"type": "string", "description": "Filter by type, income or expense", "name": "type", "in": "query"},
                    {"type": "string", "description": "Filter by category ID", "name": "category", "in": "query"},
                    {"type": "string", "description": "Transactions at and after this RFC3339 timestamp", "name": "fromDate", "in": "query"},
                    {"type": "string", "description": "Transactions before this RFC3339 timestamp", "name": "untilDate", "in": "query"},
                    {"type": "integer", "description": "The offset of the first Transaction returned", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "Maximum number of transactions to return", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.TransactionListResponse"}}}
            },
            "post": {
                "description": "Creates a new transaction. If no category_id is set, the category of the first matching category rule is used.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Create transaction",
                "parameters": [{"description": "Transaction", "name": "transaction", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.TransactionEditable"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.TransactionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.TransactionResponse"}}
                }
            }
        },
        "/goals/{id}/add-amount": {
            "put": {
                "description": "Adds money to the current amount of a goal. The goal is completed once the target amount is reached.",
                "produces": ["application/json"],
                "tags": ["Goals"],
                "summary": "Add amount to goal",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "number", "description": "The amount to add", "name": "amount", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.GoalResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.GoalResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/v1.GoalResponse"}}
                }
            }
        },
        "/reports/monthly/{year}/{month}": {
            "get": {
                "description": "Returns income, expenses, balance and the spending per category of the current user for one month",
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Get monthly report",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "description": "Month, 1 to 12", "name": "month", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.ReportResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.ReportResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httputil.HTTPError": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "An ID specified in the query string was not a valid UUID"}}
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Financial Guardian API"}, "links": {"type": "object"}}
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {"data": {"type": "object", "properties": {"version": {"type": "string", "example": "1.1.0"}}}}
        },
        "v1.UserResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "object", "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}, "picture": {"type": "string"}}},
                "error": {"type": "string"}
            }
        },
        "v1.CategoryEditable": {
            "type": "object",
            "properties": {"name": {"type": "string", "example": "Food"}, "color": {"type": "string", "example": "#EF4444"}, "icon": {"type": "string", "example": "🍔"}}
        },
        "v1.CategoryResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/v1.CategoryEditable"}, "error": {"type": "string"}}
        },
        "v1.CategoryListResponse": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/v1.CategoryEditable"}}, "error": {"type": "string"}}
        },
        "v1.TransactionEditable": {
            "type": "object",
            "properties": {
                "amount": {"type": "number", "minimum": 0, "example": 42.5},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "category_id": {"type": "string"},
                "description": {"type": "string", "example": "Groceries"},
                "date": {"type": "string", "example": "2025-01-15T12:00:00Z"}
            }
        },
        "v1.TransactionResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/v1.TransactionEditable"}, "error": {"type": "string"}}
        },
        "v1.TransactionListResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/v1.TransactionEditable"}},
                "error": {"type": "string"},
                "pagination": {"type": "object", "properties": {"count": {"type": "integer"}, "offset": {"type": "integer"}, "limit": {"type": "integer"}, "total": {"type": "integer"}}}
            }
        },
        "v1.GoalResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "name": {"type": "string"},
                        "target_amount": {"type": "number"},
                        "current_amount": {"type": "number"},
                        "deadline": {"type": "string"},
                        "status": {"type": "string", "enum": ["in_progress", "completed"]}
                    }
                },
                "error": {"type": "string"}
            }
        },
        "v1.ReportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "year": {"type": "integer", "example": 2025},
                        "month": {"type": "integer", "example": 1},
                        "total_income": {"type": "number"},
                        "total_expenses": {"type": "number"},
                        "balance": {"type": "number"},
                        "transactions_count": {"type": "integer"},
                        "top_categories": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "properties": {
                                    "category_id": {"type": "string"},
                                    "category": {"type": "string"},
                                    "color": {"type": "string"},
                                    "amount": {"type": "number"},
                                    "percentage": {"type": "number"}
                                }
                            }
                        }
                    }
                },
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
