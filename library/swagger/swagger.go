// Package swagger serves the OpenAPI description of the library API.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/books": {
            "get": {
                "produces": ["application/json"],
                "summary": "List the catalog or search it",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "enum": ["title", "author", "isbn"], "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Book"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Add a book to the catalog",
                "parameters": [
                    {"name": "book", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddBookRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Message"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/books/{bookID}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get a book",
                "parameters": [{"type": "integer", "name": "bookID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Book"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/books/{bookID}/borrow": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Borrow a book",
                "parameters": [
                    {"type": "integer", "name": "bookID", "in": "path", "required": true},
                    {"name": "patron", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PatronRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Message"}},
                    "409": {"description": "Not available", "schema": {"$ref": "#/definitions/Message"}},
                    "422": {"description": "Borrow limit reached", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/books/{bookID}/return": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Return a borrowed book",
                "parameters": [
                    {"type": "integer", "name": "bookID", "in": "path", "required": true},
                    {"name": "patron", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PatronRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/books/{bookID}/late-fee": {
            "get": {
                "produces": ["application/json"],
                "summary": "Late fee owed for an active borrow",
                "parameters": [
                    {"type": "integer", "name": "bookID", "in": "path", "required": true},
                    {"type": "string", "name": "patronId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/FeeCalculation"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/books/{bookID}/late-fee/payment": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Pay the late fee through the payment gateway",
                "parameters": [
                    {"type": "integer", "name": "bookID", "in": "path", "required": true},
                    {"name": "patron", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PatronRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PaymentReceipt"}},
                    "502": {"description": "Payment failed", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/payments/{transactionID}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Payment status",
                "parameters": [{"type": "string", "name": "transactionID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PaymentStatus"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/PaymentStatus"}}
                }
            }
        },
        "/payments/{transactionID}/refund": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Refund a late fee payment",
                "parameters": [
                    {"type": "string", "name": "transactionID", "in": "path", "required": true},
                    {"name": "refund", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefundRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Message"}},
                    "422": {"description": "Above maximum late fee", "schema": {"$ref": "#/definitions/Message"}},
                    "502": {"description": "Refund failed", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/patrons/{patronID}/status": {
            "get": {
                "produces": ["application/json"],
                "summary": "Patron status report",
                "parameters": [{"type": "string", "name": "patronID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PatronStatusReport"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "summary": "Activity per patron",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ActivityStats"}}
                }
            }
        }
    },
    "definitions": {
        "Message": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "Book": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "author": {"type": "string"},
                "isbn": {"type": "string"},
                "totalCopies": {"type": "integer"},
                "availableCopies": {"type": "integer"}
            }
        },
        "AddBookRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 200},
                "author": {"type": "string", "maxLength": 100},
                "isbn": {"type": "string", "pattern": "^[0-9]{13}$"},
                "totalCopies": {"type": "integer", "minimum": 1}
            }
        },
        "PatronRequest": {
            "type": "object",
            "required": ["patronId"],
            "properties": {"patronId": {"type": "string", "pattern": "^[0-9]{6}$"}}
        },
        "RefundRequest": {
            "type": "object",
            "properties": {"amount": {"type": "number", "maximum": 15}}
        },
        "FeeCalculation": {
            "type": "object",
            "properties": {
                "feeAmount": {"type": "number"},
                "daysOverdue": {"type": "integer"},
                "status": {"type": "string", "enum": ["on_time", "overdue"]}
            }
        },
        "PaymentReceipt": {
            "type": "object",
            "properties": {
                "transactionId": {"type": "string"},
                "amount": {"type": "number"},
                "message": {"type": "string"}
            }
        },
        "PaymentStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["completed", "not_found"]},
                "message": {"type": "string"},
                "transactionId": {"type": "string"},
                "amount": {"type": "number"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "PatronStatusReport": {
            "type": "object",
            "properties": {
                "patronId": {"type": "string"},
                "currentlyBorrowed": {"type": "array", "items": {"type": "object"}},
                "borrowCount": {"type": "integer"},
                "totalLateFees": {"type": "number"},
                "history": {"type": "array", "items": {"type": "object"}}
            }
        },
        "ActivityStats": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"type": "object"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Library catalog API",
	Description:      "Catalog, borrowing, late fees and payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
