// Package api holds the OpenAPI document that is served at /docs. It is
// built from the swag annotations of the controllers.
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
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/root.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/auth/sign-in": {
            "post": {
                "description": "Returns a token for the user. Send it as Bearer token in the Authorization header.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Sign in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.SignInRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SessionResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.SessionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SessionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Auth"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/auth/sign-up": {
            "post": {
                "description": "Creates a new user. The currency is derived from the country code or, if none is given, from the coordinates.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Sign up",
                "parameters": [
                    {
                        "description": "User",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.SignUpRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Auth"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/categories": {
            "get": {
                "description": "Returns a list of categories. Categories are shared by all users.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Get categories",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by type, 'income' or 'expense'",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by name, ignoring case",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first Category returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of Categories to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/categories/{id}": {
            "get": {
                "description": "Returns a specific category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Get category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/charts": {
            "get": {
                "description": "Returns links to the chart endpoints",
                "tags": [
                    "Charts"
                ],
                "summary": "Charts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartsResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Charts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/charts/balances": {
            "get": {
                "description": "Returns one bucket per month with the sum of one side of the monthly balances",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Charts"
                ],
                "summary": "Balance chart",
                "parameters": [
                    {
                        "type": "string",
                        "description": "First month, YYYY-MM",
                        "name": "fromMonth",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Last month, YYYY-MM",
                        "name": "untilMonth",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "'income' or 'expense'. Defaults to expense",
                        "name": "type",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Charts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/charts/daily": {
            "get": {
                "description": "Returns one bucket per day of the month with the sum of the transactions of the type",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Charts"
                ],
                "summary": "Daily chart",
                "parameters": [
                    {
                        "type": "string",
                        "description": "The month in YYYY-MM format",
                        "name": "month",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "'income' or 'expense'. Defaults to expense",
                        "name": "type",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Charts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/charts/range": {
            "get": {
                "description": "For a full calendar year, returns one bucket per month. For any other range, returns one bucket per day from the start of the month of fromDate to the end of the month of untilDate.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Charts"
                ],
                "summary": "Range chart",
                "parameters": [
                    {
                        "type": "string",
                        "description": "First day, YYYY-MM-DD",
                        "name": "fromDate",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Last day, YYYY-MM-DD",
                        "name": "untilDate",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "'income' or 'expense'. Defaults to expense",
                        "name": "type",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Charts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/charts/yearly": {
            "get": {
                "description": "Returns one bucket per year that has monthly balances, oldest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Charts"
                ],
                "summary": "Yearly chart",
                "parameters": [
                    {
                        "type": "string",
                        "description": "'income' or 'expense'. Defaults to expense",
                        "name": "type",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ChartResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Charts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/currencies": {
            "get": {
                "description": "Returns the currencies amounts can be formatted in",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Currencies"
                ],
                "summary": "Get currencies",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CurrencyListResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Currencies"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/match-rules": {
            "get": {
                "description": "Returns a list of the match rules of the authenticated user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Match Rules"
                ],
                "summary": "Get match rules",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Filter by priority",
                        "name": "priority",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by match",
                        "name": "match",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by category ID",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first Match Rule returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of Match Rules to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates match rules from the list of submitted match rule data. The response code is the highest response code number that a single match rule creation would have caused. If it is not equal to 201, at least one match rule has an error.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Match Rules"
                ],
                "summary": "Create match rules",
                "parameters": [
                    {
                        "description": "MatchRules",
                        "name": "matchRules",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.MatchRuleEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleCreateResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Match Rules"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/match-rules/{id}": {
            "get": {
                "description": "Returns a specific match rule",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Match Rules"
                ],
                "summary": "Get match rule",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a match rule",
                "tags": [
                    "Match Rules"
                ],
                "summary": "Delete match rule",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Match Rules"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Update a match rule. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Match Rules"
                ],
                "summary": "Update match rule",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "MatchRule",
                        "name": "matchRule",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.MatchRuleResponse"
                        }
                    }
                }
            }
        },
        "/v1/monthly-balances": {
            "get": {
                "description": "Returns the monthly balances of the authenticated user, newest month first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Monthly Balances"
                ],
                "summary": "Get monthly balances",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by category type, 'income' or 'expense'",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by category ID",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by category name, ignoring case",
                        "name": "categoryName",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Filter by year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Balances from this month on, YYYY-MM",
                        "name": "fromMonth",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Balances until and including this month, YYYY-MM",
                        "name": "untilMonth",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first Monthly Balance returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of Monthly Balances to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyBalanceListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyBalanceListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyBalanceListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Recalculates all monthly balances of the authenticated user from their transactions and returns them",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Monthly Balances"
                ],
                "summary": "Rebuild monthly balances",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyBalanceListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyBalanceListResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Monthly Balances"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/monthly-balances/{id}": {
            "get": {
                "description": "Returns a specific monthly balance",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Monthly Balances"
                ],
                "summary": "Get monthly balance",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyBalanceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyBalanceResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyBalanceResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyBalanceResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Monthly Balances"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/receipts": {
            "post": {
                "description": "Reads date, total, category and description from the image of a receipt. The result can be submitted to the transactions endpoint.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Receipts"
                ],
                "summary": "Scan receipt",
                "parameters": [
                    {
                        "type": "file",
                        "description": "JPEG, PNG or WebP image, at most 5 MB",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Receipts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/summary": {
            "get": {
                "description": "Returns income, expense and balance totals of the authenticated user for a month, a year or all time",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Summary"
                ],
                "summary": "Get summary",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Only this year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Only this month, YYYY-MM",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Summary"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/transactions": {
            "get": {
                "description": "Returns a list of transactions of the authenticated user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transactions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by type, 'income' or 'expense'",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by category ID",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by category name, ignoring case",
                        "name": "categoryName",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Transactions in this year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Transactions in this month, YYYY-MM",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Transactions at and after this date, YYYY-MM-DD",
                        "name": "fromDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Transactions before and at this date, YYYY-MM-DD",
                        "name": "untilDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Description or category name starts with this, ignoring case. '*' matches any characters",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Amount less than or equal to this",
                        "name": "amountLessOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Amount more than or equal to this",
                        "name": "amountMoreOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Sort by createdAt, updatedAt, date or amount. Defaults to createdAt",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Sort order, asc or desc. Defaults to desc",
                        "name": "order",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first Transaction returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of Transactions to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates transactions from the list of submitted transaction data and updates the monthly balances. The response code is the highest response code number that a single transaction creation would have caused. If it is not equal to 201, at least one transaction has an error.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Create transactions",
                "parameters": [
                    {
                        "description": "Transactions",
                        "name": "transactions",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.TransactionEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/transactions/{id}": {
            "get": {
                "description": "Returns a specific transaction",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a transaction and removes its amount from its monthly balance",
                "tags": [
                    "Transactions"
                ],
                "summary": "Delete transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates an existing transaction and moves its amount between monthly balances as needed. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Update transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Transaction",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                }
            }
        },
        "/v1/users/me": {
            "get": {
                "description": "Returns the authenticated user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Get user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Users"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "patch": {
                "description": "Updates the profile of the authenticated user. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Update user",
                "parameters": [
                    {
                        "description": "User",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.UserEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/version.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "charts.Point": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string",
                    "description": "Label of the bucket",
                    "example": "Jan 2"
                },
                "amount": {
                    "type": "number",
                    "description": "Sum of all amounts in the bucket",
                    "example": 31.5
                }
            }
        },
        "currency.Currency": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "description": "ISO 4217 code",
                    "example": "EUR"
                },
                "symbol": {
                    "type": "string",
                    "description": "Symbol used when formatting amounts",
                    "example": "€"
                }
            }
        },
        "httperror.Error": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the transaction amount must be positive"
                }
            }
        },
        "models.TransactionType": {
            "type": "string",
            "enum": [
                "income",
                "expense"
            ],
            "x-enum-varnames": [
                "TypeIncome",
                "TypeExpense"
            ]
        },
        "root.Links": {
            "type": "object",
            "properties": {
                "docs": {
                    "type": "string",
                    "description": "Swagger API documentation",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "type": "string",
                    "description": "Health of the backend and its database",
                    "example": "https://example.com/api/healthz"
                },
                "version": {
                    "type": "string",
                    "description": "Version of the backend",
                    "example": "https://example.com/api/version"
                },
                "metrics": {
                    "type": "string",
                    "description": "Prometheus metrics",
                    "example": "https://example.com/api/metrics"
                },
                "pprof": {
                    "type": "string",
                    "description": "Runtime profiles, only when enabled",
                    "example": "https://example.com/debug/pprof/"
                },
                "v1": {
                    "type": "string",
                    "description": "Links to all v1 resources",
                    "example": "https://example.com/api/v1"
                }
            }
        },
        "root.Response": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "description": "Name of the service",
                    "example": "FinOra"
                },
                "links": {
                    "$ref": "#/definitions/root.Links"
                }
            }
        },
        "v1.Category": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2024-04-22T21:01:05.058161Z"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the category",
                    "example": "Food & Drinks"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "description": "Type of transactions the category is used for",
                    "example": "expense"
                },
                "description": {
                    "type": "string",
                    "description": "Description of the category",
                    "example": "Groceries, restaurants, cafés"
                },
                "links": {
                    "$ref": "#/definitions/v1.CategoryLinks"
                }
            }
        },
        "v1.CategoryLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The category itself",
                    "example": "https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "transactions": {
                    "type": "string",
                    "description": "The transactions of the user in this category",
                    "example": "https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"
                }
            }
        },
        "v1.CategoryListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Category"
                    },
                    "description": "List of Categories"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the type must be 'income' or 'expense'"
                },
                "pagination": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ],
                    "description": "Pagination information"
                }
            }
        },
        "v1.CategoryResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Category"
                        }
                    ],
                    "description": "Data for the Category"
                }
            }
        },
        "v1.ChartLinks": {
            "type": "object",
            "properties": {
                "daily": {
                    "type": "string",
                    "description": "One bucket per day of a month",
                    "example": "https://example.com/api/v1/charts/daily"
                },
                "range": {
                    "type": "string",
                    "description": "Buckets for a date range",
                    "example": "https://example.com/api/v1/charts/range"
                },
                "balances": {
                    "type": "string",
                    "description": "One bucket per month from the monthly balances",
                    "example": "https://example.com/api/v1/charts/balances"
                },
                "yearly": {
                    "type": "string",
                    "description": "One bucket per year from the monthly balances",
                    "example": "https://example.com/api/v1/charts/yearly"
                }
            }
        },
        "v1.ChartResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the month query parameter must be set"
                },
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/charts.Point"
                    },
                    "description": "The buckets of the chart"
                }
            }
        },
        "v1.ChartsResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.ChartLinks"
                        }
                    ],
                    "description": "Links to the charts"
                }
            }
        },
        "v1.CurrencyListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/currency.Currency"
                    },
                    "description": "List of supported currencies"
                }
            }
        },
        "v1.Links": {
            "type": "object",
            "properties": {
                "auth": {
                    "type": "string",
                    "description": "URL of the authentication endpoints",
                    "example": "https://example.com/api/v1/auth"
                },
                "users": {
                    "type": "string",
                    "description": "URL of the authenticated user",
                    "example": "https://example.com/api/v1/users/me"
                },
                "categories": {
                    "type": "string",
                    "description": "URL of Category collection endpoint",
                    "example": "https://example.com/api/v1/categories"
                },
                "transactions": {
                    "type": "string",
                    "description": "URL of Transaction collection endpoint",
                    "example": "https://example.com/api/v1/transactions"
                },
                "monthlyBalances": {
                    "type": "string",
                    "description": "URL of Monthly Balance collection endpoint",
                    "example": "https://example.com/api/v1/monthly-balances"
                },
                "matchRules": {
                    "type": "string",
                    "description": "URL of Match Rule collection endpoint",
                    "example": "https://example.com/api/v1/match-rules"
                },
                "summary": {
                    "type": "string",
                    "description": "URL of the summary endpoint",
                    "example": "https://example.com/api/v1/summary"
                },
                "charts": {
                    "type": "string",
                    "description": "URL of the chart endpoints",
                    "example": "https://example.com/api/v1/charts"
                },
                "receipts": {
                    "type": "string",
                    "description": "URL of the receipt scanning endpoint",
                    "example": "https://example.com/api/v1/receipts"
                },
                "currencies": {
                    "type": "string",
                    "description": "URL of the supported currencies",
                    "example": "https://example.com/api/v1/currencies"
                }
            }
        },
        "v1.MatchRule": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2024-04-22T21:01:05.058161Z"
                },
                "categoryId": {
                    "type": "string",
                    "description": "The category to assign matching transactions to",
                    "example": "f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"
                },
                "priority": {
                    "type": "integer",
                    "description": "The priority of the match rule. Lower priorities are evaluated first",
                    "example": 3
                },
                "match": {
                    "type": "string",
                    "description": "Glob pattern applied to the description. Matching ignores case",
                    "example": "*grab*"
                },
                "links": {
                    "$ref": "#/definitions/v1.MatchRuleLinks"
                }
            }
        },
        "v1.MatchRuleCreateResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.MatchRuleResponse"
                    },
                    "description": "List of created Match Rules"
                }
            }
        },
        "v1.MatchRuleEditable": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "description": "The category to assign matching transactions to",
                    "example": "f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"
                },
                "priority": {
                    "type": "integer",
                    "description": "The priority of the match rule. Lower priorities are evaluated first",
                    "example": 3
                },
                "match": {
                    "type": "string",
                    "description": "Glob pattern applied to the description. Matching ignores case",
                    "example": "*grab*"
                }
            }
        },
        "v1.MatchRuleLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The match rule itself",
                    "example": "https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"
                },
                "category": {
                    "type": "string",
                    "description": "The category the rule assigns",
                    "example": "https://example.com/api/v1/categories/f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"
                }
            }
        },
        "v1.MatchRuleListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.MatchRule"
                    },
                    "description": "List of Match Rules"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ],
                    "description": "Pagination information"
                }
            }
        },
        "v1.MatchRuleResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this Match Rule",
                    "example": "the match rule must not be empty"
                },
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.MatchRule"
                        }
                    ],
                    "description": "The Match Rule data, if creation was successful"
                }
            }
        },
        "v1.MonthlyBalance": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2024-04-22T21:01:05.058161Z"
                },
                "categoryId": {
                    "type": "string",
                    "description": "ID of the category",
                    "example": "3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "categoryName": {
                    "type": "string",
                    "description": "Name of the category",
                    "example": "Food & Drinks"
                },
                "year": {
                    "type": "integer",
                    "description": "Year of the balance",
                    "example": 2024
                },
                "month": {
                    "type": "integer",
                    "description": "Month of the balance, 1 is January",
                    "minimum": 1,
                    "maximum": 12,
                    "example": 3
                },
                "amountIncome": {
                    "type": "number",
                    "description": "Sum of the income transactions",
                    "example": 0
                },
                "amountExpense": {
                    "type": "number",
                    "description": "Sum of the expense transactions",
                    "example": 512.35
                },
                "balance": {
                    "type": "number",
                    "description": "Income minus expense",
                    "example": -512.35
                },
                "links": {
                    "$ref": "#/definitions/v1.MonthlyBalanceLinks"
                }
            }
        },
        "v1.MonthlyBalanceLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The monthly balance itself",
                    "example": "https://example.com/api/v1/monthly-balances/0b4b5bbc-8a4d-4e36-a4a0-6f3a1d5f0c8e"
                },
                "category": {
                    "type": "string",
                    "description": "The category of the monthly balance",
                    "example": "https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "transactions": {
                    "type": "string",
                    "description": "The transactions the balance is made of",
                    "example": "https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f&month=2024-03"
                }
            }
        },
        "v1.MonthlyBalanceListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.MonthlyBalance"
                    },
                    "description": "List of Monthly Balances"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the type must be 'income' or 'expense'"
                },
                "pagination": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ],
                    "description": "Pagination information"
                }
            }
        },
        "v1.MonthlyBalanceResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.MonthlyBalance"
                        }
                    ],
                    "description": "Data for the Monthly Balance"
                }
            }
        },
        "v1.Pagination": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer",
                    "description": "The amount of records returned in this response",
                    "example": 25
                },
                "offset": {
                    "type": "integer",
                    "description": "The offset for the first record returned",
                    "example": 50
                },
                "limit": {
                    "type": "integer",
                    "description": "The maximum amount of resources to return for this request",
                    "example": 25
                },
                "total": {
                    "type": "integer",
                    "description": "The total number of resources matching the query",
                    "example": 827
                }
            }
        },
        "v1.ReceiptDraft": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "description": "ID of the category. When empty, the match rules are applied to the description",
                    "example": "3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "description": "Type of the transaction. Defaults to the type of the category",
                    "example": "expense"
                },
                "amount": {
                    "type": "number",
                    "description": "The amount for the transaction, always positive",
                    "minimum": 1e-08,
                    "maximum": 1000000000000.0,
                    "multipleOf": 1e-08,
                    "example": 14.03
                },
                "date": {
                    "type": "string",
                    "description": "Date of the transaction. Defaults to now",
                    "example": "2024-03-09T12:00:00Z"
                },
                "description": {
                    "type": "string",
                    "description": "A description",
                    "default": "",
                    "example": "Lunch"
                },
                "categoryName": {
                    "type": "string",
                    "description": "Name of the category",
                    "example": "Food & Drinks"
                }
            }
        },
        "v1.ReceiptResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "receipt scanning is not configured"
                },
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.ReceiptDraft"
                        }
                    ],
                    "description": "The draft transaction"
                }
            }
        },
        "v1.Response": {
            "type": "object",
            "properties": {
                "links": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Links"
                        }
                    ],
                    "description": "Links for the v1 API"
                }
            }
        },
        "v1.Session": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string",
                    "description": "Bearer token for the Authorization header",
                    "example": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30.signature"
                },
                "expiresAt": {
                    "type": "string",
                    "description": "Time the token expires at",
                    "example": "2024-04-09T19:28:44Z"
                },
                "user": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.User"
                        }
                    ],
                    "description": "The signed in user"
                }
            }
        },
        "v1.SessionResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the email address or the password is wrong"
                },
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Session"
                        }
                    ],
                    "description": "The session, if sign in was successful"
                }
            }
        },
        "v1.SignInRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "description": "Email address of the user",
                    "example": "ada@example.com"
                },
                "password": {
                    "type": "string",
                    "description": "Password of the user",
                    "example": "correct horse"
                }
            }
        },
        "v1.SignUpRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "description": "Email address, used to sign in",
                    "example": "ada@example.com"
                },
                "password": {
                    "type": "string",
                    "description": "At least 8 characters",
                    "example": "correct horse"
                },
                "name": {
                    "type": "string",
                    "description": "Display name",
                    "example": "Ada Lovelace"
                },
                "countryCode": {
                    "type": "string",
                    "description": "ISO 3166-1 alpha-2 code. Determines the currency",
                    "example": "ID"
                },
                "latitude": {
                    "type": "number",
                    "description": "Used to look up the country when no country code is given",
                    "example": -6.2
                },
                "longitude": {
                    "type": "number",
                    "description": "Used to look up the country when no country code is given",
                    "example": 106.816666
                }
            }
        },
        "v1.Summary": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string",
                    "description": "\"YYYY-MM\", \"YYYY\" or \"all\"",
                    "example": "2024-03"
                },
                "currency": {
                    "type": "string",
                    "description": "Currency of the user",
                    "example": "IDR"
                },
                "income": {
                    "type": "number",
                    "description": "Sum of all income",
                    "example": 5000000
                },
                "expense": {
                    "type": "number",
                    "description": "Sum of all expenses",
                    "example": 3250000
                },
                "balance": {
                    "type": "number",
                    "description": "Income minus expenses",
                    "example": 1750000
                },
                "incomeFormatted": {
                    "type": "string",
                    "description": "Income in the currency of the user",
                    "example": "Rp5,000,000"
                },
                "expenseFormatted": {
                    "type": "string",
                    "description": "Expenses in the currency of the user",
                    "example": "Rp3,250,000"
                },
                "balanceFormatted": {
                    "type": "string",
                    "description": "Balance in the currency of the user",
                    "example": "Rp1,750,000"
                }
            }
        },
        "v1.SummaryResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the type must be 'income' or 'expense'"
                },
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Summary"
                        }
                    ],
                    "description": "The summary"
                }
            }
        },
        "v1.Transaction": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2024-04-22T21:01:05.058161Z"
                },
                "categoryId": {
                    "type": "string",
                    "description": "ID of the category. When empty, the match rules are applied to the description",
                    "example": "3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "description": "Type of the transaction. Defaults to the type of the category",
                    "example": "expense"
                },
                "amount": {
                    "type": "number",
                    "description": "The amount for the transaction, always positive",
                    "minimum": 1e-08,
                    "maximum": 1000000000000.0,
                    "multipleOf": 1e-08,
                    "example": 14.03
                },
                "date": {
                    "type": "string",
                    "description": "Date of the transaction. Defaults to now",
                    "example": "2024-03-09T12:00:00Z"
                },
                "description": {
                    "type": "string",
                    "description": "A description",
                    "default": "",
                    "example": "Lunch"
                },
                "categoryName": {
                    "type": "string",
                    "description": "Name of the category",
                    "example": "Food & Drinks"
                },
                "links": {
                    "$ref": "#/definitions/v1.TransactionLinks"
                }
            }
        },
        "v1.TransactionCreateResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.TransactionResponse"
                    },
                    "description": "List of created Transactions"
                }
            }
        },
        "v1.TransactionEditable": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "description": "ID of the category. When empty, the match rules are applied to the description",
                    "example": "3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "description": "Type of the transaction. Defaults to the type of the category",
                    "example": "expense"
                },
                "amount": {
                    "type": "number",
                    "description": "The amount for the transaction, always positive",
                    "minimum": 1e-08,
                    "maximum": 1000000000000.0,
                    "multipleOf": 1e-08,
                    "example": 14.03
                },
                "date": {
                    "type": "string",
                    "description": "Date of the transaction. Defaults to now",
                    "example": "2024-03-09T12:00:00Z"
                },
                "description": {
                    "type": "string",
                    "description": "A description",
                    "default": "",
                    "example": "Lunch"
                }
            }
        },
        "v1.TransactionLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The transaction itself",
                    "example": "https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"
                },
                "category": {
                    "type": "string",
                    "description": "The category of the transaction",
                    "example": "https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"
                }
            }
        },
        "v1.TransactionListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Transaction"
                    },
                    "description": "List of transactions"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ],
                    "description": "Pagination information"
                }
            }
        },
        "v1.TransactionResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this transaction",
                    "example": "the transaction amount must be positive"
                },
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Transaction"
                        }
                    ],
                    "description": "The Transaction data, if creation was successful"
                }
            }
        },
        "v1.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2024-04-22T21:01:05.058161Z"
                },
                "name": {
                    "type": "string",
                    "description": "Display name",
                    "example": "Ada Lovelace"
                },
                "bio": {
                    "type": "string",
                    "description": "Free text shown on the profile",
                    "example": "Saving for a trip to Japan"
                },
                "currency": {
                    "type": "string",
                    "description": "ISO 4217 code of the currency amounts are formatted in",
                    "example": "IDR"
                },
                "avatar": {
                    "type": "string",
                    "description": "URL of the profile picture",
                    "example": "https://example.com/avatars/ada.png"
                },
                "email": {
                    "type": "string",
                    "description": "Email address used to sign in",
                    "example": "ada@example.com"
                },
                "countryCode": {
                    "type": "string",
                    "description": "ISO 3166-1 alpha-2 code of the country, if known",
                    "example": "ID"
                },
                "links": {
                    "$ref": "#/definitions/v1.UserLinks"
                }
            }
        },
        "v1.UserEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "description": "Display name",
                    "example": "Ada Lovelace"
                },
                "bio": {
                    "type": "string",
                    "description": "Free text shown on the profile",
                    "example": "Saving for a trip to Japan"
                },
                "currency": {
                    "type": "string",
                    "description": "ISO 4217 code of the currency amounts are formatted in",
                    "example": "IDR"
                },
                "avatar": {
                    "type": "string",
                    "description": "URL of the profile picture",
                    "example": "https://example.com/avatars/ada.png"
                }
            }
        },
        "v1.UserLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The user itself",
                    "example": "https://example.com/api/v1/users/me"
                }
            }
        },
        "v1.UserResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the currency is not supported"
                },
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.User"
                        }
                    ],
                    "description": "The user data"
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "version.Info": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "string",
                    "description": "Version of the FinOra backend, set at build time",
                    "example": "1.1.0"
                },
                "revision": {
                    "type": "string",
                    "description": "VCS revision the binary was built from, if known",
                    "example": "4f7c2a1e9d3b8c6a5f0e1d2c3b4a59687f6e5d4c"
                },
                "go": {
                    "type": "string",
                    "description": "Go version the binary was built with",
                    "example": "go1.25.5"
                }
            }
        },
        "version.Response": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/version.Info"
                        }
                    ],
                    "description": "Data object for the version endpoint"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
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
