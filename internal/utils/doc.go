// Package utils provides general-purpose helper utilities used across
// different parts of the server: JSON response writing, trace identifier
// generation and timestamp formatting.
package utils
