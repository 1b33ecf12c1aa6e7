// Package docs Code generated by swaggo/swag. DO NOT EDIT
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "The Carpentries",
            "url": "https://carpentries.org"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/attachments/{id}/presigned-url": {
            "post": {
                "description": "Creates a time-limited presigned URL and caches it on the attachment row",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Attachments"
                ],
                "summary": "Generate a download URL for an attachment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Attachment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "URL lifetime, defaults to 1 hour",
                        "name": "request",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/handlers.PresignedURLRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Attachment with fresh URL",
                        "schema": {
                            "$ref": "#/definitions/handlers.AttachmentResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Storage not configured",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/email-templates": {
            "get": {
                "description": "Returns all templates, optionally only active ones",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Templates"
                ],
                "summary": "List email templates",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Only active templates",
                        "name": "active",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Templates with total count",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Create a template bound to a signal. Subject and body syntax are validated before saving.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Templates"
                ],
                "summary": "Create an email template",
                "parameters": [
                    {
                        "description": "Template fields",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreateTemplateRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created template",
                        "schema": {
                            "$ref": "#/definitions/handlers.TemplateResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request, unknown signal or broken template syntax",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/email-templates/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Templates"
                ],
                "summary": "Get an email template",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Template ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Template",
                        "schema": {
                            "$ref": "#/definitions/handlers.TemplateResponse"
                        }
                    },
                    "404": {
                        "description": "Template not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a template. Existing scheduled emails keep their rendered content and lose only the template link.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Templates"
                ],
                "summary": "Delete an email template",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Template ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Template not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "patch": {
                "description": "Partial update. New subject or body syntax is validated before saving; the signal binding cannot change.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Templates"
                ],
                "summary": "Update an email template",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Template ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.UpdateTemplateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated template",
                        "schema": {
                            "$ref": "#/definitions/handlers.TemplateResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request or broken template syntax",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Template not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/scheduled-emails": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ScheduledEmails"
                ],
                "summary": "List scheduled emails",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by state (scheduled, locked, running, succeeded, failed, cancelled)",
                        "name": "state",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Scheduled emails with total count",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/scheduled-emails/due": {
            "get": {
                "description": "Returns sendable emails (scheduled or failed) whose run time has passed, oldest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ScheduledEmails"
                ],
                "summary": "List due emails",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Maximum number of emails",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Due emails",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/scheduled-emails/duplicates": {
            "get": {
                "description": "Lists groups of pending emails sharing a template and target so operators can clean up after double-scheduling",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ScheduledEmails"
                ],
                "summary": "List duplicate pending emails",
                "responses": {
                    "200": {
                        "description": "Duplicate groups",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/scheduled-emails/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ScheduledEmails"
                ],
                "summary": "Get a scheduled email",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scheduled email ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Scheduled email",
                        "schema": {
                            "$ref": "#/definitions/handlers.ScheduledEmailResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/scheduled-emails/{id}/attachments": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Attachments"
                ],
                "summary": "List attachments of a scheduled email",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scheduled email ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Attachments",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Stores the file in object storage and records the attachment against the email",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Attachments"
                ],
                "summary": "Attach a file to a scheduled email",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scheduled email ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "File to attach",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created attachment",
                        "schema": {
                            "$ref": "#/definitions/handlers.AttachmentResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Storage not configured",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/scheduled-emails/{id}/cancel": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ScheduledEmails"
                ],
                "summary": "Cancel a scheduled email",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scheduled email ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Audit details",
                        "name": "request",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/handlers.StateChangeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated email",
                        "schema": {
                            "$ref": "#/definitions/handlers.ScheduledEmailResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/scheduled-emails/{id}/fail": {
            "post": {
                "description": "Records the failure; repeated failures auto-cancel the email",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ScheduledEmails"
                ],
                "summary": "Mark a scheduled email as failed",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scheduled email ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Audit details",
                        "name": "request",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/handlers.StateChangeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated email",
                        "schema": {
                            "$ref": "#/definitions/handlers.ScheduledEmailResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/scheduled-emails/{id}/lock": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ScheduledEmails"
                ],
                "summary": "Lock a scheduled email for sending",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scheduled email ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Audit details",
                        "name": "request",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/handlers.StateChangeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated email",
                        "schema": {
                            "$ref": "#/definitions/handlers.ScheduledEmailResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/scheduled-emails/{id}/logs": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ScheduledEmails"
                ],
                "summary": "Get the audit history of a scheduled email",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scheduled email ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Log entries, newest first",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/scheduled-emails/{id}/reschedule": {
            "post": {
                "description": "Changes the run time. A cancelled email is brought back to scheduled.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ScheduledEmails"
                ],
                "summary": "Reschedule a scheduled email",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scheduled email ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New run time",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.RescheduleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated email",
                        "schema": {
                            "$ref": "#/definitions/handlers.ScheduledEmailResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/scheduled-emails/{id}/succeed": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ScheduledEmails"
                ],
                "summary": "Mark a scheduled email as sent",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scheduled email ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Audit details",
                        "name": "request",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/handlers.StateChangeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated email",
                        "schema": {
                            "$ref": "#/definitions/handlers.ScheduledEmailResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/signals": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Signals"
                ],
                "summary": "List known signals",
                "responses": {
                    "200": {
                        "description": "Signal names with their target kinds",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/signals/{signal}/evaluate": {
            "post": {
                "description": "Re-runs the signal's condition against current data and creates, updates or cancels the matching scheduled email",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Signals"
                ],
                "summary": "Evaluate a signal for a domain object",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Signal name",
                        "name": "signal",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Target object",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.EvaluateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Decision taken",
                        "schema": {
                            "$ref": "#/definitions/handlers.EvaluateResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Unknown signal or target",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.AttachmentResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "filename": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "presigned_url": {
                    "type": "string"
                },
                "presigned_url_expiration": {
                    "type": "string"
                },
                "s3_bucket": {
                    "type": "string"
                },
                "s3_path": {
                    "type": "string"
                },
                "scheduled_email_id": {
                    "type": "string"
                }
            }
        },
        "handlers.CreateTemplateRequest": {
            "type": "object",
            "required": [
                "body",
                "from_header",
                "name",
                "signal",
                "subject"
            ],
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "bcc_header": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "body": {
                    "type": "string"
                },
                "cc_header": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "from_header": {
                    "type": "string"
                },
                "name": {
                    "type": "string",
                    "maxLength": 255,
                    "minLength": 1
                },
                "reply_to_header": {
                    "type": "string"
                },
                "signal": {
                    "type": "string"
                },
                "subject": {
                    "type": "string",
                    "maxLength": 255
                }
            }
        },
        "handlers.EvaluateRequest": {
            "type": "object",
            "required": [
                "related_id",
                "related_to"
            ],
            "properties": {
                "related_id": {
                    "type": "integer",
                    "minimum": 1
                },
                "related_to": {
                    "type": "string"
                }
            }
        },
        "handlers.EvaluateResponse": {
            "type": "object",
            "properties": {
                "decision": {
                    "type": "string"
                },
                "outcome": {
                    "type": "string"
                },
                "related_id": {
                    "type": "integer"
                },
                "related_to": {
                    "type": "string"
                },
                "signal": {
                    "type": "string"
                }
            }
        },
        "handlers.PresignedURLRequest": {
            "type": "object",
            "properties": {
                "expires_in_seconds": {
                    "type": "integer",
                    "maximum": 604800,
                    "minimum": 60
                }
            }
        },
        "handlers.RescheduleRequest": {
            "type": "object",
            "required": [
                "scheduled_at"
            ],
            "properties": {
                "author_id": {
                    "type": "integer"
                },
                "scheduled_at": {
                    "type": "string"
                }
            }
        },
        "handlers.ScheduledEmailResponse": {
            "type": "object",
            "properties": {
                "bcc_header": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "body": {
                    "type": "string"
                },
                "cc_header": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "context_json": {
                    "type": "object",
                    "additionalProperties": {}
                },
                "created_at": {
                    "type": "string"
                },
                "from_header": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "related_id": {
                    "type": "integer"
                },
                "related_to": {
                    "type": "string"
                },
                "reply_to_header": {
                    "type": "string"
                },
                "scheduled_at": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "template_id": {
                    "type": "string"
                },
                "to_header": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "to_header_context_json": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ToHeaderRef"
                    }
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "handlers.StateChangeRequest": {
            "type": "object",
            "properties": {
                "author_id": {
                    "type": "integer"
                },
                "details": {
                    "type": "string",
                    "maxLength": 255
                }
            }
        },
        "handlers.TemplateResponse": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "bcc_header": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "body": {
                    "type": "string"
                },
                "cc_header": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "created_at": {
                    "type": "string"
                },
                "from_header": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "reply_to_header": {
                    "type": "string"
                },
                "signal": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "handlers.UpdateTemplateRequest": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "bcc_header": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "body": {
                    "type": "string"
                },
                "cc_header": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "from_header": {
                    "type": "string"
                },
                "name": {
                    "type": "string",
                    "maxLength": 255,
                    "minLength": 1
                },
                "reply_to_header": {
                    "type": "string"
                },
                "subject": {
                    "type": "string",
                    "maxLength": 255
                }
            }
        },
        "models.ToHeaderRef": {
            "type": "object",
            "properties": {
                "api_uri": {
                    "type": "string"
                },
                "property": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the worker API token.",
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
	Schemes:          []string{},
	Title:            "Mailflow API",
	Description:      "Email scheduling service for workshop administration. Templates, scheduled emails and their audit history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
