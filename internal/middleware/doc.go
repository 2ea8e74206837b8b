// Package middleware provides HTTP middleware for the places API.
//
// Every middleware has the signature func(http.Handler) http.Handler and is
// mounted on a chi router with Use:
//
//	r.Use(
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.Recovery,
//		middleware.CORS(origins),
//	)
//
// RateLimit keeps a golang.org/x/time/rate token bucket per client IP and is
// mounted only on the signup and login routes.
package middleware
