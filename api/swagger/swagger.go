package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Parish Admin API",
        "description": "Back office for sacrament requests, certificates, volunteers and staff",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Requests", "description": "Sacrament and service request intake and workflow"},
        {"name": "Authentication", "description": "Staff login and registration"},
        {"name": "Staff", "description": "Staff account management"},
        {"name": "Users", "description": "Parishioner directory"},
        {"name": "Dashboard", "description": "Landing page counters and charts"},
        {"name": "Reports", "description": "Aggregations and exports"},
        {"name": "Schedules", "description": "Per-sacrament calendars"},
        {"name": "History", "description": "Parishioner submission history"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Liveness and database check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/{requestType}": {
            "get": {
                "tags": ["Requests"],
                "summary": "List requests of one type",
                "parameters": [
                    {"name": "requestType", "in": "path", "required": true, "type": "string", "description": "baptism, confirmation, marriage, funeral, blessing, pamisa, holy-orders, sickcall, certificates or volunteer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/SacramentRequest"}}}
                }
            },
            "post": {
                "tags": ["Requests"],
                "summary": "Submit a request",
                "parameters": [
                    {"name": "requestType", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/SacramentRequest"}},
                    "400": {"description": "Missing required fields", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/{requestType}/{id}": {
            "get": {
                "tags": ["Requests"],
                "summary": "Get one request",
                "parameters": [
                    {"name": "requestType", "in": "path", "required": true, "type": "string"},
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SacramentRequest"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            },
            "put": {
                "tags": ["Requests"],
                "summary": "Update a request",
                "description": "Status changes require a reason when cancelling or rejecting; concurrent edits return 409",
                "parameters": [
                    {"name": "requestType", "in": "path", "required": true, "type": "string"},
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SacramentRequest"}},
                    "400": {"description": "Invalid transition", "schema": {"$ref": "#/definitions/ErrorMessage"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}},
                    "409": {"description": "Concurrent edit", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            },
            "delete": {
                "tags": ["Requests"],
                "summary": "Delete a request",
                "parameters": [
                    {"name": "requestType", "in": "path", "required": true, "type": "string"},
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/ErrorMessage"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/{requestType}/{id}/payment": {
            "put": {
                "tags": ["Requests"],
                "summary": "Record a payment",
                "description": "Available on fee-bearing request types only",
                "parameters": [
                    {"name": "requestType", "in": "path", "required": true, "type": "string"},
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SacramentRequest"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate staff",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Bad credentials", "schema": {"$ref": "#/definitions/ErrorMessage"}},
                    "403": {"description": "Inactive account", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a staff account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/StaffAccount"}},
                    "409": {"description": "Username taken", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/staff": {
            "get": {
                "tags": ["Staff"],
                "summary": "List staff accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StaffAccount"}}}
                }
            }
        },
        "/staff/{id}": {
            "get": {
                "tags": ["Staff"],
                "summary": "Get one staff account",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StaffAccount"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            },
            "put": {
                "tags": ["Staff"],
                "summary": "Update a staff account",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StaffAccount"}},
                    "409": {"description": "Username taken", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            },
            "delete": {
                "tags": ["Staff"],
                "summary": "Delete a staff account",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/staff/{id}/status": {
            "put": {
                "tags": ["Staff"],
                "summary": "Activate or deactivate a staff account",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"isActive": {"type": "boolean"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StaffAccount"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List parishioners",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/users/{id}": {
            "delete": {
                "tags": ["Users"],
                "summary": "Delete a parishioner account",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted"}
                }
            }
        },
        "/dashboard/recent-activity": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Recent activity feed",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/reports/summary": {
            "get": {
                "tags": ["Reports"],
                "summary": "Report headline totals",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/reports/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download the report as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/reports/export/archive/{token}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Re-download a previously exported report",
                "parameters": [
                    {"name": "token", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "400": {"description": "Invalid token", "schema": {"$ref": "#/definitions/ErrorMessage"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/schedules/{type}": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Calendar entries for one request type",
                "parameters": [
                    {"name": "type", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown type", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        },
        "/history": {
            "get": {
                "tags": ["History"],
                "summary": "Submission history for one email",
                "parameters": [
                    {"name": "email", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing email", "schema": {"$ref": "#/definitions/ErrorMessage"}}
                }
            }
        }
    },
    "definitions": {
        "SacramentRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "requestType": {"type": "string"},
                "requestNumber": {"type": "string"},
                "sacrament": {"type": "string"},
                "subjectName": {"type": "string"},
                "scheduleDate": {"type": "string"},
                "scheduleTime": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "approved", "ready", "completed", "rejected", "cancelled"]},
                "paymentStatus": {"type": "string"},
                "fee": {"type": "number"},
                "cancellation_reason": {"type": "string"},
                "cancelled_by": {"type": "string"},
                "cancelled_at": {"type": "string"},
                "rejection_reason": {"type": "string"},
                "rejected_by": {"type": "string"},
                "rejected_at": {"type": "string"},
                "approved_by": {"type": "string"},
                "approved_at": {"type": "string"},
                "ready_by": {"type": "string"},
                "ready_at": {"type": "string"},
                "createdAt": {"type": "string"},
                "lastUpdated": {"type": "string"}
            }
        },
        "StaffAccount": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "name": {"type": "string"},
                "username": {"type": "string"},
                "role": {"type": "string"},
                "position": {"type": "string"},
                "department": {"type": "string"},
                "isActive": {"type": "boolean"},
                "createdAt": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "username": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"},
                "address": {"type": "string"},
                "contact": {"type": "string"}
            },
            "required": ["name", "username", "password"]
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/StaffAccount"},
                "userType": {"type": "string"}
            }
        },
        "ErrorMessage": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
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
