package visibility

import (
	"fmt"

	"github.com/temirov/repostatus/internal/githubauth"
)

const (
	invalidReferenceTemplateConstant   = "invalid repository reference %q: expected owner/name"
	repositoryNotFoundTemplateConstant = "repository %s not found or private and requiring authentication"
	rateLimitOrAuthTemplateConstant    = "access to %s forbidden: API rate limit exceeded or authentication required"
	networkFailureTemplateConstant     = "%s request for %s failed: %s"
	credentialHintTemplateConstant     = "set the %s environment variable to authenticate"
)

// InvalidRepositoryReferenceError reports a repository argument that does not
// match the owner/name form.
type InvalidRepositoryReferenceError struct {
	Input string
}

// Error describes the malformed reference.
func (referenceError InvalidRepositoryReferenceError) Error() string {
	return fmt.Sprintf(invalidReferenceTemplateConstant, referenceError.Input)
}

// RepositoryNotFoundError reports a 404 for the repository itself, which for
// unauthenticated callers is indistinguishable from a private repository.
type RepositoryNotFoundError struct {
	Repository RepositoryRef
}

// Error describes the missing or inaccessible repository.
func (notFoundError RepositoryNotFoundError) Error() string {
	return fmt.Sprintf(repositoryNotFoundTemplateConstant, notFoundError.Repository)
}

// RemediationHint names the credential that may unlock the repository.
func (notFoundError RepositoryNotFoundError) RemediationHint() string {
	return fmt.Sprintf(credentialHintTemplateConstant, githubauth.EnvGitHubToken)
}

// RateLimitOrAuthError reports a 403, covering both exhausted rate limits and
// missing authentication.
type RateLimitOrAuthError struct {
	Repository RepositoryRef
	Cause      error
}

// Error describes the forbidden response.
func (rateLimitError RateLimitOrAuthError) Error() string {
	return fmt.Sprintf(rateLimitOrAuthTemplateConstant, rateLimitError.Repository)
}

// Unwrap exposes the underlying API error when one was captured.
func (rateLimitError RateLimitOrAuthError) Unwrap() error {
	return rateLimitError.Cause
}

// RemediationHint names the credential that raises the rate limit.
func (rateLimitError RateLimitOrAuthError) RemediationHint() string {
	return fmt.Sprintf(credentialHintTemplateConstant, githubauth.EnvGitHubToken)
}

// NetworkError reports a transport-level failure or an unexpected API
// response. No retry is attempted.
type NetworkError struct {
	Operation  string
	Repository RepositoryRef
	Cause      error
}

// Error describes the failed request.
func (networkError NetworkError) Error() string {
	return fmt.Sprintf(networkFailureTemplateConstant, networkError.Operation, networkError.Repository, networkError.Cause)
}

// Unwrap exposes the underlying transport error.
func (networkError NetworkError) Unwrap() error {
	return networkError.Cause
}
