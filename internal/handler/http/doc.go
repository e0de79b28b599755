// Package http implements the HTTP surface of the registration receiver.
//
// It wires the chi router, the multipart registration handler and the
// middleware every request passes through: panic recovery, request tracing
// and access logging. Decoded uploads are handed to the service layer.
package http
