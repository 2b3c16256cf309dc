// Package http implements the HTTP transport layer of the vault server.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Session authentication, logging and tracing concerns
// are all handled at this layer before requests are forwarded to the
// service layer. Handlers never see plaintext secrets: credential and
// note payloads arrive encrypted and pass through opaque.
package http
