// Package docs provides the Swagger specification served at /swagger/.
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
        "/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Authenticate an admin",
                "responses": {
                    "200": {"description": "Admin authenticated with token"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/center/video-upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Upload a video for a site content block",
                "responses": {
                    "201": {"description": "Content record updated"},
                    "400": {"description": "Validation failure"},
                    "413": {"description": "Payload too large"}
                }
            }
        },
        "/csv-import/csv": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["csv-import"],
                "summary": "Import a weekly sales CSV",
                "responses": {
                    "201": {"description": "Import recorded"},
                    "400": {"description": "Validation failure"}
                }
            }
        },
        "/csv-import/csv-json": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["csv-import"],
                "summary": "Import a weekly sales CSV in JSON chunks",
                "responses": {
                    "200": {"description": "Chunk received"},
                    "201": {"description": "Import recorded"}
                }
            }
        },
        "/csv-import/{importId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["csv-import"],
                "summary": "Get one CSV import record",
                "responses": {
                    "200": {"description": "Import record"},
                    "404": {"description": "Unknown import"}
                }
            }
        },
        "/content/{section}/{key}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Get one content block",
                "responses": {
                    "200": {"description": "Content record"},
                    "404": {"description": "Unknown section/key"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Update a content block's title and body",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Updated record"},
                    "404": {"description": "Unknown section/key"}
                }
            }
        },
        "/file/video-settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["file"],
                "summary": "Get the current video slot",
                "responses": {
                    "200": {"description": "Current slot state"}
                }
            }
        },
        "/file/delete-video": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["file"],
                "summary": "Delete the current video slot",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Deleted filenames"}
                }
            }
        },
        "/raw-upload/image": {
            "post": {
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Upload an image from a raw request body",
                "responses": {
                    "200": {"description": "Stored asset"},
                    "400": {"description": "Validation failure"},
                    "413": {"description": "Payload too large"}
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Cedarbrook Content Service API",
	Description:      "Upload pipeline and site content API for the wellness center backend",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
