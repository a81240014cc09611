// Package docs provides the Swagger specification served at /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and the JWT."
        }
    },
    "paths": {
        "/api/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Token and created user"},
                    "400": {"description": "Validation failure"},
                    "409": {"description": "Username or email already taken"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token and user"},
                    "400": {"description": "Validation failure"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current user profile",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "The authenticated user"},
                    "401": {"description": "Missing or invalid token"}
                }
            },
            "patch": {
                "tags": ["auth"],
                "summary": "Update own profile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/updateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated user"},
                    "400": {"description": "Validation failure"},
                    "401": {"description": "Missing or invalid token"},
                    "409": {"description": "Username or email already taken"}
                }
            }
        },
        "/api/prices": {
            "get": {
                "tags": ["prices"],
                "summary": "List price reports",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "country", "in": "query", "type": "string", "description": "Country name filter"},
                    {"name": "category", "in": "query", "type": "string", "description": "Category filter"},
                    {"name": "limit", "in": "query", "type": "integer", "description": "Page size (default 20, max 100)"},
                    {"name": "skip", "in": "query", "type": "integer", "description": "Offset into the result set"}
                ],
                "responses": {
                    "200": {"description": "Page of price reports with total and hasMore"},
                    "400": {"description": "Non-integer limit or skip"}
                }
            },
            "post": {
                "tags": ["prices"],
                "summary": "Submit a price report",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/createPriceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created report, attributed to the caller"},
                    "400": {"description": "Validation failure"},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/api/prices/{id}": {
            "get": {
                "tags": ["prices"],
                "summary": "Get a price report",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true, "description": "Price report id"}
                ],
                "responses": {
                    "200": {"description": "The price report"},
                    "404": {"description": "Price not found"}
                }
            },
            "patch": {
                "tags": ["prices"],
                "summary": "Update a price report (owner or admin)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true, "description": "Price report id"},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Allow-listed field changes"}
                ],
                "responses": {
                    "200": {"description": "Updated report"},
                    "400": {"description": "Unknown field or invalid value"},
                    "401": {"description": "Missing or invalid token"},
                    "403": {"description": "Not the reporter and not an admin"},
                    "404": {"description": "Price not found"}
                }
            },
            "delete": {
                "tags": ["prices"],
                "summary": "Delete a price report (owner or admin)",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true, "description": "Price report id"}
                ],
                "responses": {
                    "200": {"description": "Deletion confirmation"},
                    "401": {"description": "Missing or invalid token"},
                    "403": {"description": "Not the reporter and not an admin"},
                    "404": {"description": "Price not found"}
                }
            }
        },
        "/api/countries": {
            "get": {
                "tags": ["countries"],
                "summary": "List countries",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Summary projection of every country"}
                }
            },
            "post": {
                "tags": ["countries"],
                "summary": "Create a country (admin only)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/createCountryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created country"},
                    "400": {"description": "Validation failure"},
                    "401": {"description": "Missing or invalid token"},
                    "403": {"description": "Caller is not an admin"},
                    "409": {"description": "Country code already exists"}
                }
            }
        },
        "/api/countries/{code}": {
            "get": {
                "tags": ["countries"],
                "summary": "Get a country by code (case-insensitive)",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "code", "in": "path", "type": "string", "required": true, "description": "Country code (e.g. TH)"}
                ],
                "responses": {
                    "200": {"description": "The country"},
                    "404": {"description": "Country not found"}
                }
            },
            "patch": {
                "tags": ["countries"],
                "summary": "Update a country (admin only; code is immutable)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "code", "in": "path", "type": "string", "required": true, "description": "Country code"},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}, "description": "Allow-listed field changes"}
                ],
                "responses": {
                    "200": {"description": "Updated country"},
                    "400": {"description": "Unknown field or invalid value"},
                    "401": {"description": "Missing or invalid token"},
                    "403": {"description": "Caller is not an admin"},
                    "404": {"description": "Country not found"}
                }
            },
            "delete": {
                "tags": ["countries"],
                "summary": "Delete a country (admin only)",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "code", "in": "path", "type": "string", "required": true, "description": "Country code"}
                ],
                "responses": {
                    "200": {"description": "Deletion confirmation"},
                    "401": {"description": "Missing or invalid token"},
                    "403": {"description": "Caller is not an admin"},
                    "404": {"description": "Country not found"}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Process is alive"}
                }
            }
        },
        "/health/ready": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness probe (MongoDB and Redis)",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Dependencies reachable"},
                    "503": {"description": "MongoDB unreachable"}
                }
            }
        }
    },
    "definitions": {
        "registerRequest": {
            "type": "object",
            "required": ["username", "email", "password"],
            "properties": {
                "username": {"type": "string", "minLength": 3},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "updateProfileRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "createPriceRequest": {
            "type": "object",
            "required": ["country", "category", "item", "price", "currency", "location"],
            "properties": {
                "country": {"type": "string"},
                "category": {"type": "string", "enum": ["Transport", "Food", "Accommodation", "Activities", "Shopping", "Other"]},
                "item": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "currency": {"type": "string"},
                "location": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "createCountryRequest": {
            "type": "object",
            "required": ["name", "code", "currency", "language", "emergencyNumbers"],
            "properties": {
                "name": {"type": "string"},
                "code": {"type": "string", "minLength": 2, "maxLength": 2},
                "currency": {"type": "string"},
                "language": {"type": "string"},
                "emergencyNumbers": {
                    "type": "object",
                    "required": ["police", "ambulance", "fire"],
                    "properties": {
                        "police": {"type": "string"},
                        "ambulance": {"type": "string"},
                        "fire": {"type": "string"},
                        "touristPolice": {"type": "string"}
                    }
                },
                "visaRequirements": {"type": "string"},
                "guides": {"type": "array", "items": {"type": "object"}},
                "transport": {"type": "array", "items": {"type": "object"}},
                "hagglingTips": {"type": "array", "items": {"type": "object"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "NomadNav Travel API",
	Description:      "Community-reported travel prices and country reference data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
