package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabrielc1317/mdc-pathfinder/internal/types"
)

// LLM error codes. Every one of these is an ExternalCapabilityError from the
// caller's perspective: the advisor recovers by falling back to the
// deterministic recommender instead of surfacing them.
const (
	ErrProviderNotFound     types.ErrorCode = "LLM_PROVIDER_NOT_FOUND"
	ErrProviderUnavailable  types.ErrorCode = "LLM_PROVIDER_UNAVAILABLE"
	ErrProviderUnauthorized types.ErrorCode = "LLM_PROVIDER_UNAUTHORIZED"
	ErrProviderRateLimited  types.ErrorCode = "LLM_PROVIDER_RATE_LIMITED"

	ErrCompletionFailed    types.ErrorCode = "LLM_COMPLETION_FAILED"
	ErrResponseParseFailed types.ErrorCode = "LLM_RESPONSE_PARSE_FAILED"
	ErrTimeoutExceeded     types.ErrorCode = "LLM_TIMEOUT_EXCEEDED"
	ErrNetworkFailed       types.ErrorCode = "LLM_NETWORK_FAILED"

	ErrToolNotFound    types.ErrorCode = "LLM_TOOL_NOT_FOUND"
	ErrInvalidToolArgs types.ErrorCode = "LLM_INVALID_TOOL_ARGS"
)

// IsRetryable determines if an error is transient and may succeed on retry.
func IsRetryable(err error) bool {
	var pfErr *types.PathfinderError
	if !errors.As(err, &pfErr) {
		return false
	}
	if pfErr.Retryable {
		return true
	}

	switch pfErr.Code {
	case ErrNetworkFailed, ErrProviderRateLimited, ErrProviderUnavailable, ErrTimeoutExceeded:
		return true
	default:
		return false
	}
}

// NewAuthError creates an authentication error for a provider.
func NewAuthError(provider string, cause error) *types.PathfinderError {
	return &types.PathfinderError{
		Code:    ErrProviderUnauthorized,
		Message: fmt.Sprintf("provider '%s' authentication failed", provider),
		Cause:   cause,
	}
}

// NewProviderUnavailableError creates a retryable error for a temporarily unavailable provider.
func NewProviderUnavailableError(provider string, cause error) *types.PathfinderError {
	return &types.PathfinderError{
		Code:      ErrProviderUnavailable,
		Message:   "provider temporarily unavailable: " + provider,
		Retryable: true,
		Cause:     cause,
	}
}

// NewRateLimitError creates a retryable error for rate limiting.
func NewRateLimitError(provider string) *types.PathfinderError {
	return &types.PathfinderError{
		Code:      ErrProviderRateLimited,
		Message:   "rate limit exceeded for provider: " + provider,
		Retryable: true,
	}
}

// NewTimeoutError creates a retryable error for timeout failures.
func NewTimeoutError(message string) *types.PathfinderError {
	return &types.PathfinderError{
		Code:      ErrTimeoutExceeded,
		Message:   message,
		Retryable: true,
	}
}

// NewNetworkError creates a retryable error for network failures.
func NewNetworkError(message string, cause error) *types.PathfinderError {
	return &types.PathfinderError{
		Code:      ErrNetworkFailed,
		Message:   message,
		Retryable: true,
		Cause:     cause,
	}
}

// NewCompletionError creates an error for completion failures.
func NewCompletionError(message string, cause error) *types.PathfinderError {
	return types.WrapError(ErrCompletionFailed, message, cause)
}

// TranslateError maps raw provider errors onto the LLM error codes based on
// message content, leaving already-translated errors untouched.
func TranslateError(provider string, err error) error {
	if err == nil {
		return nil
	}

	var pfErr *types.PathfinderError
	if errors.As(err, &pfErr) {
		return err
	}

	lowerMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lowerMsg, "unauthorized") || strings.Contains(lowerMsg, "authentication") || strings.Contains(lowerMsg, "api key"):
		return NewAuthError(provider, err)
	case strings.Contains(lowerMsg, "rate limit") || strings.Contains(lowerMsg, "too many requests"):
		return NewRateLimitError(provider)
	case strings.Contains(lowerMsg, "timeout") || strings.Contains(lowerMsg, "deadline"):
		return NewTimeoutError(err.Error())
	case strings.Contains(lowerMsg, "network") || strings.Contains(lowerMsg, "connection"):
		return NewNetworkError(err.Error(), err)
	default:
		return NewProviderUnavailableError(provider, err)
	}
}
