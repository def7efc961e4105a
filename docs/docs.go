package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "ZarinPOS Core API Documentation",
        "title": "ZarinPOS Core API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api/v1",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/v1/auth/token": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Issue Terminal Token",
                "description": "Exchange a terminal API key for a JWT access token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "description": "Terminal API key",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "api_key": {
                                    "type": "string",
                                    "example": "d7f3a1b2-4c5e-6f70-8192-a3b4c5d6e7f8.9f86d081884c7d659a2feaa0c55ad015"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Token issued"
                    },
                    "401": {
                        "description": "Invalid credentials"
                    },
                    "403": {
                        "description": "Terminal revoked"
                    }
                }
            }
        },
        "/api/v1/calendar/today": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Today",
                "description": "Current Jalali date with holiday and weekend flags",
                "produces": ["application/json"],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Current Jalali date"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/api/v1/calendar/to-jalali": {
            "post": {
                "tags": ["Calendar"],
                "summary": "Convert to Jalali",
                "description": "Convert a Gregorian date to the Jalali calendar",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "date",
                        "description": "Gregorian date",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {
                                    "type": "string",
                                    "example": "2024-08-05"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Converted date"
                    },
                    "400": {
                        "description": "Invalid date"
                    }
                }
            }
        },
        "/api/v1/calendar/ranges/{key}": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Resolve Range Preset",
                "description": "Resolve a named range preset against today",
                "produces": ["application/json"],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "key",
                        "type": "string",
                        "description": "Preset key",
                        "required": true,
                        "enum": ["today", "yesterday", "this-week", "last-week", "this-month", "last-month", "this-year", "last-year", "q1", "q2", "q3", "q4", "last-year-q1", "last-year-q2", "last-year-q3", "last-year-q4"]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Resolved range"
                    },
                    "404": {
                        "description": "Unknown preset"
                    }
                }
            }
        },
        "/api/v1/pricing/quote": {
            "post": {
                "tags": ["Pricing"],
                "summary": "Price Quote",
                "description": "Quote a gold sale from weight, rate and percentages",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "sale",
                        "description": "Sale to price",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "weight": {
                                    "type": "number",
                                    "example": 1
                                },
                                "unit": {
                                    "type": "string",
                                    "enum": ["gram", "mesghal", "soot", "dirham", "ounce", "tola"],
                                    "example": "mesghal"
                                },
                                "price_per_gram": {
                                    "type": "integer",
                                    "example": 5000000
                                },
                                "wage_percent": {
                                    "type": "number",
                                    "example": 7
                                },
                                "profit_percent": {
                                    "type": "number",
                                    "example": 7
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Itemized quote"
                    },
                    "400": {
                        "description": "Invalid input"
                    },
                    "404": {
                        "description": "No rate recorded"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and JWT token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "ZarinPOS Core API",
	Description:      "ZarinPOS Core API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
