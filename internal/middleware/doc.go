// Package middleware provides HTTP middleware for the Chrono API server:
// request ID propagation, structured request logging, panic recovery,
// CORS handling, and gzip compression. Middlewares compose with Chain.
package middleware
