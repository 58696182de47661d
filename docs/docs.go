// Package docs holds the OpenAPI document served at /swagger.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler annotations.
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
        "/filters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Фильтры"],
                "summary": "Состояние фильтров",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/filterbar.State"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Фильтры"],
                "summary": "Применить фильтры",
                "parameters": [
                    {"description": "Поиск, категория и сортировка", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/store.Filter"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/filterbar.State"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.readyResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.readyResponse"}}
                }
            }
        },
        "/resumes": {
            "get": {
                "description": "Видимые карточки с учётом поиска, фильтра и сортировки.",
                "produces": ["application/json"],
                "tags": ["Резюме"],
                "summary": "Карточки на доске",
                "parameters": [
                    {"type": "integer", "description": "Размер страницы (по умолчанию itemsPerPage)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Смещение", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.ListResponse-card_View"}}
                }
            }
        },
        "/resumes/all": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Резюме"],
                "summary": "Вся коллекция",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.ListResponse-resume_Record"}}
                }
            }
        },
        "/resumes/facets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Резюме"],
                "summary": "Позиции и категории",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}}
                }
            }
        },
        "/resumes/refresh": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Резюме"],
                "summary": "Перезагрузить список с бэкенда",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/resumes/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Резюме"],
                "summary": "Удалить резюме на бэкенде",
                "parameters": [
                    {"type": "string", "description": "ID резюме", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/samples": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Загрузка"],
                "summary": "Добавить демо-резюме",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/presenter.ListResponse-resume_Record"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/settings": {
            "get": {
                "description": "Токен бэкенда в ответе скрыт.",
                "produces": ["application/json"],
                "tags": ["Настройки"],
                "summary": "Настройки дашборда",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/settings.Settings"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Частичное обновление; excellent должен быть строго больше good.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Настройки"],
                "summary": "Изменить настройки",
                "parameters": [
                    {"description": "Изменяемые поля", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/settings.Edit"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/settings.Settings"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/uploads": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Принимает PDF/DOCX и сразу отвечает заглушками; обработка идёт в фоне.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Загрузка"],
                "summary": "Загрузить резюме",
                "parameters": [
                    {"type": "file", "description": "Файлы резюме (PDF/DOCX)", "name": "files", "in": "formData", "required": true}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/presenter.ListResponse-resume_Record"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "card.Badge": {
            "type": "object",
            "properties": {
                "borderClass": {"type": "string"},
                "label": {"type": "string"},
                "level": {"type": "string", "enum": ["excellent", "good", "fair", "neutral"]},
                "textClass": {"type": "string"}
            }
        },
        "card.View": {
            "type": "object",
            "properties": {
                "badge": {"$ref": "#/definitions/card.Badge"},
                "categories": {"type": "string"},
                "id": {"type": "string"},
                "idLabel": {"type": "string"},
                "image": {"type": "string"},
                "imageAlt": {"type": "string"},
                "name": {"type": "string"},
                "overview": {"type": "string"},
                "position": {"type": "string"},
                "score": {"type": "integer"},
                "scoreLabel": {"type": "string"},
                "status": {"type": "string", "enum": ["uploading", "ready"]}
            }
        },
        "filterbar.Option": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "filterbar.Select": {
            "type": "object",
            "properties": {
                "options": {"type": "array", "items": {"$ref": "#/definitions/filterbar.Option"}},
                "selected": {"type": "string"}
            }
        },
        "filterbar.State": {
            "type": "object",
            "properties": {
                "category": {"$ref": "#/definitions/filterbar.Select"},
                "search": {"type": "string"},
                "sort": {"$ref": "#/definitions/filterbar.Select"}
            }
        },
        "handlers.readyResponse": {
            "type": "object",
            "properties": {
                "checks": {"type": "object", "additionalProperties": {"type": "string"}},
                "details": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "presenter.ListResponse-card_View": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/card.View"}},
                "total": {"type": "integer"}
            }
        },
        "presenter.ListResponse-resume_Record": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/resume.Record"}},
                "total": {"type": "integer"}
            }
        },
        "resume.Record": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}},
                "date": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "imageAlt": {"type": "string"},
                "name": {"type": "string"},
                "overview": {"type": "string"},
                "position": {"type": "string"},
                "score": {"type": "integer"},
                "status": {"type": "string", "enum": ["uploading", "ready"]}
            }
        },
        "settings.Edit": {
            "type": "object",
            "properties": {
                "apiBaseUrl": {"type": "string"},
                "apiToken": {"type": "string"},
                "defaultSort": {"type": "string"},
                "demoUpload": {"type": "boolean"},
                "excellent": {"type": "integer"},
                "good": {"type": "integer"},
                "itemsPerPage": {"type": "integer"}
            }
        },
        "settings.Settings": {
            "type": "object",
            "properties": {
                "apiBaseUrl": {"type": "string"},
                "apiToken": {"type": "string"},
                "defaultSort": {"type": "string"},
                "demoUpload": {"type": "boolean"},
                "itemsPerPage": {"type": "integer"},
                "scoreThresholds": {"$ref": "#/definitions/settings.Thresholds"}
            }
        },
        "settings.Thresholds": {
            "type": "object",
            "properties": {
                "excellent": {"type": "integer"},
                "good": {"type": "integer"}
            }
        },
        "store.Filter": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "search": {"type": "string"},
                "sort": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Операторский JWT со scope board:write. Поддерживаются форматы: \"Bearer <JWT>\" или \"<JWT>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "resumeboard API",
	Description:      "Дашборд резюме: фильтрация, сортировка и загрузка резюме поверх внешнего бэкенда.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
