package visibility

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

const (
	clientMissingMessageConstant     = "metadata client not configured"
	branchNameMissingMessageConstant = "branch name must be provided"
	repositoryResolvedLogMessage     = "repository metadata resolved"
	branchResolvedLogMessage         = "branch metadata resolved"
	logFieldRepositoryConstant       = "repository"
	logFieldVisibilityConstant       = "visibility"
	logFieldDefaultBranchConstant    = "default_branch"
	logFieldBranchNameConstant       = "branch"
	logFieldBranchExistsConstant     = "exists"
	logFieldBranchProtectionConstant = "protection"
)

// ErrClientNotConfigured indicates the metadata client dependency was missing.
var ErrClientNotConfigured = errors.New(clientMissingMessageConstant)

// ErrBranchNameRequired indicates the branch name option was empty.
var ErrBranchNameRequired = errors.New(branchNameMissingMessageConstant)

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	Client MetadataClient
	Logger *zap.Logger
}

// Options configure a repository and branch check.
type Options struct {
	Repository RepositoryRef
	BranchName string
}

// Report aggregates the outcome of the two metadata lookups.
type Report struct {
	Repository RepositoryStatus
	Branch     BranchStatus
}

// Service orchestrates the repository and branch metadata lookups.
type Service struct {
	client MetadataClient
	logger *zap.Logger
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.Client == nil {
		return nil, ErrClientNotConfigured
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: dependencies.Client, logger: logger}, nil
}

// Check resolves repository visibility and branch existence sequentially.
// Both lookups completing counts as success regardless of whether the branch
// exists.
func (service *Service) Check(executionContext context.Context, options Options) (Report, error) {
	branchName := strings.TrimSpace(options.BranchName)
	if len(branchName) == 0 {
		return Report{}, ErrBranchNameRequired
	}

	repositoryStatus, repositoryError := service.client.ResolveRepository(executionContext, options.Repository)
	if repositoryError != nil {
		return Report{}, repositoryError
	}

	service.logger.Debug(
		repositoryResolvedLogMessage,
		zap.String(logFieldRepositoryConstant, repositoryStatus.FullName),
		zap.String(logFieldVisibilityConstant, string(repositoryStatus.Visibility)),
		zap.String(logFieldDefaultBranchConstant, repositoryStatus.DefaultBranch),
	)

	branchStatus, branchError := service.client.ResolveBranch(executionContext, options.Repository, branchName)
	if branchError != nil {
		return Report{}, branchError
	}

	service.logger.Debug(
		branchResolvedLogMessage,
		zap.String(logFieldBranchNameConstant, branchStatus.Name),
		zap.Bool(logFieldBranchExistsConstant, branchStatus.Exists),
		zap.String(logFieldBranchProtectionConstant, string(branchStatus.Protection)),
	)

	return Report{Repository: repositoryStatus, Branch: branchStatus}, nil
}
