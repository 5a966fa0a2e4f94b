// Package api contains the HTTP handlers, request/response models, and the
// mapping from internal error kinds to HTTP status codes. Handlers decode
// and validate payloads, call the service layer, and write JSON responses;
// they hold no business logic of their own.
package api
