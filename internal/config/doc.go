// Package config provides configuration loading, merging, and validation for
// the capture client and the registration receiver.
//
// Configuration is assembled from several sources. Earlier sources win for
// every non-zero field:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path from -c/-config or CONFIG)
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] and [GetServerConfig], which return
// validated, process-specific views of the merged [StructuredConfig].
package config
