// Package docs registers the OpenAPI description served under /swagger.
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
        "/auth/token": {
            "post": {
                "summary": "Exchange operator credentials for a JWT",
                "tags": [
                    "auth"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        },
                        "description": "username and password"
                    }
                ]
            }
        },
        "/draws": {
            "get": {
                "summary": "List draws",
                "tags": [
                    "draws"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                }
            },
            "post": {
                "summary": "Generate a draw",
                "tags": [
                    "draws"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        },
                        "description": "drawType, drawSize, participantIds, groupSize, matchUpFormat, qualifying options"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/draws/{drawID}": {
            "get": {
                "summary": "Get a draw document",
                "tags": [
                    "draws"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "drawID",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "delete": {
                "summary": "Delete a draw",
                "tags": [
                    "draws"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "drawID",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/draws/{drawID}/links/qualifying": {
            "post": {
                "summary": "Link a qualifying structure to the main structure",
                "tags": [
                    "draws"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "drawID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        },
                        "description": "link endpoints"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/draws/{drawID}/snapshots": {
            "post": {
                "summary": "Archive the draw document to object storage",
                "tags": [
                    "draws"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "drawID",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/draws/{drawID}/structures/{structureID}/adhoc-matchups": {
            "post": {
                "summary": "Append a round of ad hoc matchUps",
                "tags": [
                    "draws"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "drawID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "structureID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        },
                        "description": "pairings or matchUpsCount"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/draws/{drawID}/structures/{structureID}/tally": {
            "get": {
                "summary": "Round robin standings",
                "tags": [
                    "scores"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "drawID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "structureID",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/draws/{drawID}/matchups/{matchUpID}/score": {
            "put": {
                "summary": "Replace the score of a matchUp",
                "tags": [
                    "scores"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "drawID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "matchUpID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        },
                        "description": "sets, matchUpStatus, winningSide"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/draws/{drawID}/matchups/{matchUpID}/sets/{setNumber}": {
            "patch": {
                "summary": "Change one field of one set",
                "tags": [
                    "scores"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "drawID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "matchUpID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "name": "setNumber",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        },
                        "description": "field and value"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/draws/{drawID}/matchups/{matchUpID}/score-string": {
            "get": {
                "summary": "Render the score string of a matchUp",
                "tags": [
                    "scores"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "drawID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "matchUpID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "name": "reversed",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "boolean",
                        "name": "winnerFirst",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/draws/{drawID}/matchups/{matchUpID}/score-history": {
            "get": {
                "summary": "Previous scores of a matchUp",
                "tags": [
                    "scores"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "drawID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "matchUpID",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "delete": {
                "summary": "Restore the previous score of a matchUp",
                "tags": [
                    "scores"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "drawID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "matchUpID",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/matchup-formats": {
            "get": {
                "summary": "Canonical matchUp formats",
                "tags": [
                    "matchup-formats"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                }
            }
        },
        "/matchup-formats/parse": {
            "post": {
                "summary": "Parse a matchUp format code",
                "tags": [
                    "matchup-formats"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        },
                        "description": "matchUpFormat code"
                    }
                ]
            }
        },
        "/matchup-formats/stringify": {
            "post": {
                "summary": "Render a matchUp format descriptor as a code",
                "tags": [
                    "matchup-formats"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        },
                        "description": "matchUpFormat descriptor"
                    }
                ]
            }
        },
        "/matchup-formats/validate": {
            "get": {
                "summary": "Check that a code round-trips",
                "tags": [
                    "matchup-formats"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "code",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/ws/draws/{drawID}": {
            "get": {
                "summary": "Live notifications of a draw",
                "tags": [
                    "draws"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "101": {
                        "description": "success record",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "default": {
                        "description": "error record",
                        "schema": {
                            "$ref": "#/definitions/errorRecord"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "drawID",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        }
    },
    "definitions": {
        "errorRecord": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {
                            "type": "string",
                            "example": "INVALID_DRAW_SIZE"
                        },
                        "message": {
                            "type": "string"
                        }
                    }
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
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tournament Draws API",
	Description:      "Draw generation, scoring and standings for tournament draws.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
