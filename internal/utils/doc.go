// Package utils provides general-purpose helpers shared by the client
// packages: the HTTP client used by the transform adapter, identifier
// generation for history entries, and system clipboard access.
package utils
