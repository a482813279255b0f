/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: wraps a handler with structured request/completion logs
  - CORS: cross-origin headers plus OPTIONS preflight handling

# JSON Helpers

  - JSONResponse: writes a JSON body with a status code
  - ErrorResponse: writes the shared models.ErrorResponse envelope
  - ParseJSONBody: decodes a request body into a struct
*/
package middleware
