// Package giterror provides error inspection capabilities for GitHub API errors.
// It centralizes the logic for identifying different kinds of failures returned
// by go-github and the HTTP transport, so callers never match on error strings.
package giterror
