// Package http implements the JSON API of the mystery-message server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as CORS, authentication, request tracing, access logging and
// response compression are handled in this package before requests are
// delegated to the service layer. Service errors are translated to status
// codes and failure kinds by the errorResponses table.
package http
