package visibility

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"golang.org/x/oauth2"
)

const (
	resolveRepositoryOperationNameConstant = "repository metadata"
	resolveBranchOperationNameConstant     = "branch metadata"
	baseURLTrailingSlashConstant           = "/"
	invalidBaseURLMessageConstant          = "invalid API base URL"
	branchFollowRedirectsConstant          = false
)

// MetadataClient resolves repository and branch metadata.
type MetadataClient interface {
	ResolveRepository(executionContext context.Context, reference RepositoryRef) (RepositoryStatus, error)
	ResolveBranch(executionContext context.Context, reference RepositoryRef, branchName string) (BranchStatus, error)
}

// GitHubClientOptions configure a GitHubClient.
type GitHubClientOptions struct {
	// Token is the optional bearer credential attached to every request.
	Token string
	// BaseURL overrides the GitHub API endpoint, primarily for tests.
	BaseURL string
	// HTTPClient overrides the transport used for API calls.
	HTTPClient *http.Client
}

// GitHubClient resolves repository and branch metadata through the GitHub REST API.
type GitHubClient struct {
	apiClient *github.Client
}

var _ MetadataClient = (*GitHubClient)(nil)

// NewGitHubClient constructs a client honoring the provided options.
func NewGitHubClient(options GitHubClientOptions) (*GitHubClient, error) {
	httpClient := options.HTTPClient

	if token := strings.TrimSpace(options.Token); len(token) > 0 {
		tokenContext := context.Background()
		if httpClient != nil {
			tokenContext = context.WithValue(tokenContext, oauth2.HTTPClient, httpClient)
		}
		tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(tokenContext, tokenSource)
	}

	apiClient := github.NewClient(httpClient)

	if baseURL := strings.TrimSpace(options.BaseURL); len(baseURL) > 0 {
		if !strings.HasSuffix(baseURL, baseURLTrailingSlashConstant) {
			baseURL += baseURLTrailingSlashConstant
		}
		parsedBaseURL, parseError := url.Parse(baseURL)
		if parseError != nil {
			return nil, errors.New(invalidBaseURLMessageConstant)
		}
		apiClient.BaseURL = parsedBaseURL
	}

	return &GitHubClient{apiClient: apiClient}, nil
}

// ResolveRepository issues a single GET for repository metadata and classifies
// the outcome into the checker's error taxonomy.
func (client *GitHubClient) ResolveRepository(executionContext context.Context, reference RepositoryRef) (RepositoryStatus, error) {
	repository, _, requestError := client.apiClient.Repositories.Get(executionContext, reference.Owner, reference.Name)
	if requestError != nil {
		return RepositoryStatus{}, client.classifyError(resolveRepositoryOperationNameConstant, reference, requestError)
	}

	repositoryVisibility := VisibilityPublic
	if repository.GetPrivate() {
		repositoryVisibility = VisibilityPrivate
	}

	fullName := repository.GetFullName()
	if len(fullName) == 0 {
		fullName = reference.String()
	}

	return RepositoryStatus{
		FullName:      fullName,
		Visibility:    repositoryVisibility,
		DefaultBranch: repository.GetDefaultBranch(),
	}, nil
}

// ResolveBranch issues a single GET for branch metadata. A 404 after the
// repository resolved means the branch does not exist and is not an error.
// Non-200 statuses arrive as opaque errors from go-github here, so the
// classification reads the HTTP response directly.
func (client *GitHubClient) ResolveBranch(executionContext context.Context, reference RepositoryRef, branchName string) (BranchStatus, error) {
	branch, response, requestError := client.apiClient.Repositories.GetBranch(executionContext, reference.Owner, reference.Name, branchName, branchFollowRedirectsConstant)
	if requestError != nil {
		switch client.responseStatusCode(response) {
		case http.StatusNotFound:
			return BranchStatus{Name: branchName, Exists: false, Protection: ProtectionUnknown}, nil
		case http.StatusForbidden, http.StatusUnauthorized:
			return BranchStatus{}, RateLimitOrAuthError{Repository: reference, Cause: requestError}
		}
		return BranchStatus{}, client.classifyError(resolveBranchOperationNameConstant, reference, requestError)
	}

	branchProtection := ProtectionUnknown
	if branch.Protected != nil {
		branchProtection = ProtectionUnprotected
		if branch.GetProtected() {
			branchProtection = ProtectionProtected
		}
	}

	resolvedName := branch.GetName()
	if len(resolvedName) == 0 {
		resolvedName = branchName
	}

	return BranchStatus{Name: resolvedName, Exists: true, Protection: branchProtection}, nil
}

func (client *GitHubClient) classifyError(operationName string, reference RepositoryRef, requestError error) error {
	var rateLimitError *github.RateLimitError
	if errors.As(requestError, &rateLimitError) {
		return RateLimitOrAuthError{Repository: reference, Cause: requestError}
	}

	var abuseRateLimitError *github.AbuseRateLimitError
	if errors.As(requestError, &abuseRateLimitError) {
		return RateLimitOrAuthError{Repository: reference, Cause: requestError}
	}

	var errorResponse *github.ErrorResponse
	if errors.As(requestError, &errorResponse) && errorResponse.Response != nil {
		switch errorResponse.Response.StatusCode {
		case http.StatusNotFound:
			return RepositoryNotFoundError{Repository: reference}
		case http.StatusForbidden, http.StatusUnauthorized:
			return RateLimitOrAuthError{Repository: reference, Cause: requestError}
		}
	}

	return NetworkError{Operation: operationName, Repository: reference, Cause: requestError}
}

func (client *GitHubClient) responseStatusCode(response *github.Response) int {
	if response == nil || response.Response == nil {
		return 0
	}
	return response.StatusCode
}
