// Package handler implements the HTTP surface of the places API.
//
// Handlers decode JSON bodies, validate them with the model Validate methods,
// call the services and write either a JSON envelope ({"place": ...},
// {"places": [...]}, {"user": ...}, {"users": [...]}, {"message": ...}) or an
// RFC 9457 problem document produced by MapServiceError.
//
// NewRouter wires the handlers onto a chi router under /api together with the
// middleware stack and GET /health.
package handler
