// Package handler provides HTTP request handlers for the Chrono API.
//
// Each handler struct encapsulates the service it serves requests for
// (accounts, planners, events). Handlers decode JSON request bodies,
// delegate to the service layer, and render responses through the
// helpers in response.go; service errors are converted to RFC 9457
// Problem Details by MapServiceError.
//
// Two status codes are intentionally unusual and load-bearing for
// existing clients: registering a taken username responds 401, and a
// failed login password comparison responds 412.
package handler
