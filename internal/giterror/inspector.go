package giterror

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
)

// Inspector provides methods for analyzing GitHub API errors.
type Inspector interface {
	// IsAuthError returns true if the server rejected the credentials (HTTP 401).
	IsAuthError(err error) bool

	// IsNotFoundError returns true if the error represents a resource not found error.
	IsNotFoundError(err error) bool

	// IsRateLimitError returns true if the request was refused because the
	// rate limit quota is exhausted.
	IsRateLimitError(err error) bool

	// IsNetworkError returns true if no HTTP response was received.
	IsNetworkError(err error) bool

	// IsHTTPError returns true if the server answered with a non-success status.
	IsHTTPError(err error) bool

	// RateLimitReset returns when the exhausted quota resets, or the zero
	// time if unknown.
	RateLimitReset(err error) time.Time
}

// GitHubErrorInspector implements the Inspector interface for go-github errors.
// Typed errors are checked first; plain errors fall back to message matching.
type GitHubErrorInspector struct{}

// NewInspector creates a new GitHubErrorInspector.
func NewInspector() Inspector {
	return &GitHubErrorInspector{}
}

// statusCode extracts the HTTP status of a go-github error response, or 0.
func statusCode(err error) int {
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode
	}
	return 0
}

// hasResponse reports whether err carries an HTTP response from the server.
func hasResponse(err error) bool {
	var respErr *github.ErrorResponse
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	return errors.As(err, &respErr) || errors.As(err, &rateErr) || errors.As(err, &abuseErr)
}

// isTransportError reports whether err came from the connection rather than
// from a server answer. Its message embeds the request URL, so it must never
// be matched against status text.
func isTransportError(err error) bool {
	var urlErr *url.Error
	var netErr net.Error
	return errors.As(err, &urlErr) || errors.As(err, &netErr)
}

// IsAuthError checks if the error is an authentication error.
func (i *GitHubErrorInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	if hasResponse(err) {
		return statusCode(err) == http.StatusUnauthorized
	}
	if isTransportError(err) {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "401") ||
		strings.Contains(errStr, "bad credentials")
}

// IsNotFoundError checks if the error is a not found error.
func (i *GitHubErrorInspector) IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if hasResponse(err) {
		return statusCode(err) == http.StatusNotFound
	}
	if isTransportError(err) {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "404 not found")
}

// IsRateLimitError checks if the error is a rate limit error. A 403 only
// counts when the response reports zero remaining requests; go-github
// surfaces exactly that case as *github.RateLimitError.
func (i *GitHubErrorInspector) IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return true
	}
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		r := respErr.Response
		return r != nil &&
			(r.StatusCode == http.StatusForbidden || r.StatusCode == http.StatusTooManyRequests) &&
			r.Header.Get("X-RateLimit-Remaining") == "0"
	}
	if isTransportError(err) {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "api rate limit exceeded")
}

// IsNetworkError checks if the error is a network connectivity error.
func (i *GitHubErrorInspector) IsNetworkError(err error) bool {
	if err == nil || hasResponse(err) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable")
}

// IsHTTPError checks if the server answered with an error status.
func (i *GitHubErrorInspector) IsHTTPError(err error) bool {
	if err == nil {
		return false
	}
	return hasResponse(err)
}

// RateLimitReset returns the reset time reported with a rate limit error.
func (i *GitHubErrorInspector) RateLimitReset(err error) time.Time {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return rateErr.Rate.Reset.Time
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.RetryAfter != nil {
		return time.Now().Add(*abuseErr.RetryAfter)
	}
	return time.Time{}
}
