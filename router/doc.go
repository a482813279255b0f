/*
Package router defines the HTTP route table.

NewRouter wires the stores, tracker components, and handlers over a single
*sql.DB and registers the routes using Go 1.22+ method routing:

	GET  /health
	POST /habits
	GET  /day
	PATCH /habits/{id}/toggle
	GET  /

All API routes go through the logging middleware.
*/
package router
