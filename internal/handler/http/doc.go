// Package http implements the REST transport of the budget tracker.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, response compression and bearer authentication are handled
// here before requests are delegated to the service layer. Every error body
// is JSON of the form {"detail": "..."}.
package http
