// Package utils provides small helpers shared across the application: the
// resty-based HTTP client, JSON response writing and prettifying, and the
// session and journal identifier generators.
package utils
