// Package docs registers the swagger document of the lookup endpoints.
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
        "/get_cities_for_region/{id}": {
            "get": {
                "description": "Cities of a region in store order, used to refill the city dropdown",
                "produces": ["application/json"],
                "tags": ["Lookup"],
                "summary": "Get Cities For Region",
                "parameters": [
                    {"type": "integer", "description": "Region ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CitiesResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorStruct"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorStruct"}}
                }
            }
        },
        "/get_regions_for_country/{id}": {
            "get": {
                "description": "Regions of a country in store order, used to refill the region dropdown",
                "produces": ["application/json"],
                "tags": ["Lookup"],
                "summary": "Get Regions For Country",
                "parameters": [
                    {"type": "integer", "description": "Country ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RegionsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorStruct"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorStruct"}}
                }
            }
        }
    },
    "definitions": {
        "CitiesResponse": {
            "type": "object",
            "properties": {
                "cities": {"type": "array", "items": {"$ref": "#/definitions/Option"}}
            }
        },
        "ErrorStruct": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "error_message": {"type": "string"}
            }
        },
        "Option": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "RegionsResponse": {
            "type": "object",
            "properties": {
                "regions": {"type": "array", "items": {"$ref": "#/definitions/Option"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Locations API",
	Description:      "Lookup endpoints feeding the cascading country → region → city dropdowns.",
	InfoInstanceName: "internal",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
