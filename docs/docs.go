// Package docs holds the OpenAPI document served under /swagger and registered with swag.
// Keep it in step with the @ annotations on the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/backfill/omdb/{media}": {
            "post": {
                "description": "Pick up to num random rows with missing catalog fields and fill them from OMDb.\nUpdates are matched by title only, so rows sharing a title all receive the same data.",
                "produces": ["application/json"],
                "tags": ["backfill"],
                "summary": "Backfill catalog fields from OMDb",
                "parameters": [
                    {"enum": ["movie", "show"], "type": "string", "description": "Media type", "name": "media", "in": "path", "required": true},
                    {"type": "integer", "default": 10, "description": "Number of rows to backfill", "name": "num", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Backfill completed", "schema": {"allOf": [{"$ref": "#/definitions/utils.StandardResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.BackfillLog"}}}]}},
                    "400": {"description": "Invalid parameter", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Unknown media type", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "500": {"description": "Backfill failed", "schema": {"allOf": [{"$ref": "#/definitions/utils.StandardResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.BackfillLog"}}}]}}
                }
            }
        },
        "/backfill/omdb/{media}/last": {
            "get": {
                "description": "Get the most recent backfill run of a media type",
                "produces": ["application/json"],
                "tags": ["backfill"],
                "summary": "Get the last backfill log",
                "parameters": [
                    {"enum": ["movie", "show"], "type": "string", "description": "Media type", "name": "media", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Last backfill log", "schema": {"allOf": [{"$ref": "#/definitions/utils.StandardResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.BackfillLog"}}}]}},
                    "404": {"description": "Unknown media type", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "500": {"description": "Failed to retrieve backfill log", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/q/{media}": {
            "get": {
                "description": "List titles of a media type, rendered as \"Title (Period)\", with optional filters and sorting",
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Query titles",
                "parameters": [
                    {"enum": ["movie", "show"], "type": "string", "description": "Media type", "name": "media", "in": "path", "required": true},
                    {"type": "string", "description": "Case-insensitive genre substring", "name": "genre", "in": "query"},
                    {"enum": ["Watched", "Dropped", "Plan to Watch", "In Progress"], "type": "string", "description": "Status", "name": "status", "in": "query"},
                    {"type": "integer", "description": "Runtime strictly below, in minutes", "name": "length", "in": "query"},
                    {"enum": ["length", "random", "releasedate", "criticsrating", "myrating", "watchdate"], "type": "string", "description": "Sort key", "name": "sort", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "description": "Sort order", "name": "order", "in": "query"},
                    {"type": "integer", "description": "Maximum number of titles", "name": "num", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "List of titles", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid parameter", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Unknown media type", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            },
            "put": {
                "description": "Insert a title or fully replace the matching one, enriched from OMDb unless noimdb is present.\nMatching uses the title and, when year or years is given, the period.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Create or replace a title",
                "parameters": [
                    {"enum": ["movie", "show"], "type": "string", "description": "Media type", "name": "media", "in": "path", "required": true},
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Release year", "name": "year", "in": "formData"},
                    {"type": "string", "description": "Airing years", "name": "years", "in": "formData"},
                    {"type": "string", "default": "Plan to Watch", "description": "Status", "name": "status", "in": "formData"},
                    {"type": "string", "description": "Skip enrichment when present", "name": "noimdb", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "Title replaced", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "201": {"description": "Title created", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid parameter", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Unknown media type or title not found on OMDb", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "502": {"description": "OMDb unreachable", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            },
            "post": {
                "description": "Insert a title, enriched from OMDb unless noimdb is present. Fails when the title already exists.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Create a title",
                "parameters": [
                    {"enum": ["movie", "show"], "type": "string", "description": "Media type", "name": "media", "in": "path", "required": true},
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Release year", "name": "year", "in": "formData"},
                    {"type": "string", "description": "Airing years", "name": "years", "in": "formData"},
                    {"type": "string", "default": "Plan to Watch", "description": "Status", "name": "status", "in": "formData"},
                    {"type": "string", "description": "Sub status", "name": "substatus", "in": "formData"},
                    {"type": "boolean", "description": "Favorite", "name": "favorite", "in": "formData"},
                    {"type": "number", "description": "Personal rating", "name": "rating", "in": "formData"},
                    {"type": "string", "description": "Watch date (YYYY-MM-DD)", "name": "watchdate", "in": "formData"},
                    {"type": "string", "description": "First watch date (YYYY-MM-DD)", "name": "firstwatchdate", "in": "formData"},
                    {"type": "string", "description": "Last watch date (YYYY-MM-DD)", "name": "lastwatchdate", "in": "formData"},
                    {"type": "string", "description": "Watched with", "name": "watchedwith", "in": "formData"},
                    {"type": "string", "description": "Comments", "name": "comments", "in": "formData"},
                    {"type": "integer", "description": "Last watched season (shows)", "name": "season", "in": "formData"},
                    {"type": "integer", "description": "Last watched episode (shows)", "name": "episode", "in": "formData"},
                    {"type": "string", "description": "Skip enrichment when present", "name": "noimdb", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Title created", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid parameter or title already exists", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Unknown media type or title not found on OMDb", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "502": {"description": "OMDb unreachable", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            },
            "delete": {
                "description": "Delete every row with the title, or only the rows of the given year",
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Delete titles",
                "parameters": [
                    {"enum": ["movie", "show"], "type": "string", "description": "Media type", "name": "media", "in": "path", "required": true},
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Release year or airing years", "name": "year", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "Rows deleted", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid parameter", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Unknown media type", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            },
            "patch": {
                "description": "Same as PUT but never calls OMDb.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Create or replace a title without enrichment",
                "parameters": [
                    {"enum": ["movie", "show"], "type": "string", "description": "Media type", "name": "media", "in": "path", "required": true},
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Release year", "name": "year", "in": "formData"},
                    {"type": "string", "description": "Airing years", "name": "years", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "Title replaced", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "201": {"description": "Title created", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid parameter", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Unknown media type", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/snapshots/{media}": {
            "post": {
                "description": "Write every row of the media table as CSV to object storage and return a presigned download URL",
                "produces": ["application/json"],
                "tags": ["snapshots"],
                "summary": "Export a media table snapshot",
                "parameters": [
                    {"enum": ["movie", "show"], "type": "string", "description": "Media type", "name": "media", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Snapshot exported", "schema": {"allOf": [{"$ref": "#/definitions/utils.StandardResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/services.SnapshotResult"}}}]}},
                    "404": {"description": "Unknown media type", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "500": {"description": "Export failed", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "503": {"description": "Object storage not configured", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/snapshots/{media}/restore": {
            "post": {
                "description": "Insert the snapshot rows whose title and period are not already stored",
                "produces": ["application/json"],
                "tags": ["snapshots"],
                "summary": "Restore a media table snapshot",
                "parameters": [
                    {"enum": ["movie", "show"], "type": "string", "description": "Media type", "name": "media", "in": "path", "required": true},
                    {"type": "string", "description": "Snapshot object path", "name": "object", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Snapshot restored", "schema": {"allOf": [{"$ref": "#/definitions/utils.StandardResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/services.RestoreResult"}}}]}},
                    "400": {"description": "Invalid parameter or snapshot", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Unknown media type", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "500": {"description": "Restore failed", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "503": {"description": "Object storage not configured", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.BackfillLog": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "error_message": {"type": "string"},
                "failed": {"type": "array", "items": {"type": "string"}},
                "finished_at": {"type": "string"},
                "id": {"type": "integer", "example": 1},
                "media_type": {"type": "string", "example": "movie"},
                "not_found": {"type": "array", "items": {"type": "string"}},
                "requested": {"type": "integer", "example": 10},
                "rows_affected": {"type": "integer", "example": 6},
                "run_id": {"type": "string", "example": "5f0c7d2e-8a43-4c8e-9d0b-0b4d3f1e2a11"},
                "selected": {"type": "integer", "example": 7},
                "started_at": {"type": "string"},
                "status": {"type": "string", "example": "success"},
                "updated": {"type": "integer", "example": 5},
                "updated_titles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "services.RestoreResult": {
            "type": "object",
            "properties": {
                "inserted": {"type": "integer", "example": 3},
                "object": {"type": "string"},
                "skipped": {"type": "integer", "example": 117}
            }
        },
        "services.SnapshotResult": {
            "type": "object",
            "properties": {
                "object": {"type": "string", "example": "snapshots/movie/20260101T120000Z_1a2b3c4d.csv"},
                "presigned_url": {"type": "string"},
                "public_url": {"type": "string"},
                "rows": {"type": "integer", "example": 120}
            }
        },
        "utils.StandardResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "message": {"type": "string"},
                "meta": {},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8010",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "watchlog API",
	Description:      "Personal movie and show tracker with OMDb enrichment, backfill and CSV snapshots",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
