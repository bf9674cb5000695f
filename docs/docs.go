// Package docs registers the OpenAPI specification with the swag runtime.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.1",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/agile/ecommerce-backend"
        },
        "version": "{{.Version}}"
    },
    "servers": [
        {
            "url": "//{{.Host}}{{.BasePath}}"
        }
    ],
    "paths": {}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "E-Commerce Backend API",
	Description:      "REST API for managing a product catalog and customer orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
