package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Rawabi Workshop API",
        "description": "Data-collection backend for due-diligence workshop sessions",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Sessions", "description": "Workshop session lifecycle and progress"},
        {"name": "Questions", "description": "Seeded questionnaire"},
        {"name": "Answers", "description": "Answer capture and bulk status"},
        {"name": "Attachments", "description": "Audio recordings and documents"},
        {"name": "Participants", "description": "Session roster"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/sessions": {
            "get": {
                "tags": ["Sessions"],
                "summary": "List workshop sessions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Session"}}}
                }
            }
        },
        "/sessions/{id}": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Get one session",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Session"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/sessions/{id}/status": {
            "patch": {
                "tags": ["Sessions"],
                "summary": "Update session status",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSessionStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Session"}},
                    "400": {"description": "Invalid status", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/sessions/{id}/progress": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Per-entity completion percentages",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/EntityProgress"}}}
                }
            }
        },
        "/sessions/{id}/export": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Export a session report",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Report file"}
                }
            }
        },
        "/questions": {
            "get": {
                "tags": ["Questions"],
                "summary": "List questions with answer state and attachment counts",
                "parameters": [
                    {"name": "session_id", "in": "query", "type": "integer"},
                    {"name": "entity_id", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/questions/{id}": {
            "get": {
                "tags": ["Questions"],
                "summary": "Question with answer, attachments and navigation",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/questions/session/{sessionId}/by-category": {
            "get": {
                "tags": ["Questions"],
                "summary": "Session questions grouped by category",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "integer", "required": true},
                    {"name": "entity_id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/answers/question/{questionId}": {
            "post": {
                "tags": ["Answers"],
                "summary": "Create or partially update the answer for a question",
                "parameters": [
                    {"name": "questionId", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertAnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Answer"}}
                }
            }
        },
        "/answers/bulk-status": {
            "post": {
                "tags": ["Answers"],
                "summary": "Bulk status update",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BulkStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/BulkStatusResponse"}}
                }
            }
        },
        "/answers/{answerId}": {
            "get": {
                "tags": ["Answers"],
                "summary": "Answer with attachments",
                "parameters": [
                    {"name": "answerId", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/answers/{answerId}/audio": {
            "post": {
                "tags": ["Attachments"],
                "summary": "Upload an audio recording",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "answerId", "in": "path", "type": "integer", "required": true},
                    {"name": "audio", "in": "formData", "type": "file", "required": true},
                    {"name": "duration_seconds", "in": "formData", "type": "number"}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid file type", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/answers/{answerId}/document": {
            "post": {
                "tags": ["Attachments"],
                "summary": "Upload a document",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "answerId", "in": "path", "type": "integer", "required": true},
                    {"name": "document", "in": "formData", "type": "file", "required": true},
                    {"name": "description", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid file type", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/answers/audio/{audioId}": {
            "delete": {
                "tags": ["Attachments"],
                "summary": "Delete an audio recording",
                "parameters": [
                    {"name": "audioId", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/answers/document/{documentId}": {
            "delete": {
                "tags": ["Attachments"],
                "summary": "Delete a document",
                "parameters": [
                    {"name": "documentId", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/participants/session/{sessionId}": {
            "get": {
                "tags": ["Participants"],
                "summary": "List a session's participants",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Participant"}}}
                }
            },
            "post": {
                "tags": ["Participants"],
                "summary": "Add a participant",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateParticipantRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Participant"}}
                }
            }
        },
        "/participants/session/{sessionId}/bulk": {
            "post": {
                "tags": ["Participants"],
                "summary": "Add many participants at once",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BulkParticipantsRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/Participant"}}}
                }
            }
        },
        "/participants/{id}": {
            "patch": {
                "tags": ["Participants"],
                "summary": "Update a participant",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateParticipantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Participant"}}
                }
            },
            "delete": {
                "tags": ["Participants"],
                "summary": "Remove a participant",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/participants/{id}/presence": {
            "patch": {
                "tags": ["Participants"],
                "summary": "Toggle attendance",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PresenceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Participant"}}
                }
            }
        }
    },
    "definitions": {
        "Session": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "session_number": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["not_started", "in_progress", "completed"]},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "EntityProgress": {
            "type": "object",
            "properties": {
                "entity_id": {"type": "integer"},
                "entity_code": {"type": "string"},
                "entity_name": {"type": "string"},
                "total_questions": {"type": "integer"},
                "answered_questions": {"type": "integer"},
                "percentage": {"type": "integer"}
            }
        },
        "Answer": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "question_id": {"type": "integer"},
                "text_response": {"type": "string"},
                "respondent_name": {"type": "string"},
                "respondent_role": {"type": "string"},
                "notes": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "in_progress", "completed"]},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "Participant": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "session_id": {"type": "integer"},
                "name": {"type": "string"},
                "role": {"type": "string"},
                "company": {"type": "string"},
                "email": {"type": "string"},
                "is_present": {"type": "boolean"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "UpsertAnswerRequest": {
            "type": "object",
            "properties": {
                "text_response": {"type": "string"},
                "respondent_name": {"type": "string"},
                "respondent_role": {"type": "string"},
                "notes": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "BulkStatusRequest": {
            "type": "object",
            "required": ["question_ids", "status"],
            "properties": {
                "question_ids": {"type": "array", "items": {"type": "integer"}},
                "status": {"type": "string"}
            }
        },
        "BulkStatusResponse": {
            "type": "object",
            "properties": {
                "updated": {"type": "integer"}
            }
        },
        "UpdateSessionStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["not_started", "in_progress", "completed"]}
            }
        },
        "CreateParticipantRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "role": {"type": "string"},
                "company": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "BulkParticipantsRequest": {
            "type": "object",
            "properties": {
                "participants": {"type": "array", "items": {"$ref": "#/definitions/CreateParticipantRequest"}}
            }
        },
        "UpdateParticipantRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "role": {"type": "string"},
                "company": {"type": "string"},
                "email": {"type": "string"},
                "is_present": {"type": "boolean"}
            }
        },
        "PresenceRequest": {
            "type": "object",
            "required": ["is_present"],
            "properties": {
                "is_present": {"type": "boolean"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
