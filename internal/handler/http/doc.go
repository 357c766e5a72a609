// Package http implements the HTTP transport layer of the server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, security headers, CORS, access logging,
// and the global error boundary are handled in this package before requests
// are delegated to the service layer.
package http
