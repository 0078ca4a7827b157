package localcheck

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/repostatus/internal/execshell"
)

const (
	gitExecutorMissingMessageConstant  = "git executor not configured"
	branchNameMissingMessageConstant   = "branch name must be provided"
	remoteListFailureTemplateConstant  = "failed to query remote branches: %w"
	localListFailureTemplateConstant   = "failed to list local branches: %w"
	defaultRemoteNameConstant          = "origin"
	gitRemoteSubcommandConstant        = "remote"
	gitGetURLSubcommandConstant        = "get-url"
	gitBranchSubcommandConstant        = "branch"
	gitBranchListFlagConstant          = "--list"
	gitLSRemoteSubcommandConstant      = "ls-remote"
	gitHeadsFlagConstant               = "--heads"
	remoteHeadsReferencePrefixConstant = "refs/heads/"
)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrBranchNameRequired indicates the branch name option was empty.
var ErrBranchNameRequired = errors.New(branchNameMissingMessageConstant)

// GitExecutor is the minimal surface the service requires from execshell.ShellExecutor.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	GitExecutor GitExecutor
}

// Options configure a local branch inspection.
type Options struct {
	WorkingDirectory string
	BranchName       string
	RemoteName       string
}

// Inspection captures branch existence as observed through git plumbing.
type Inspection struct {
	BranchName     string
	RemoteURL      string
	ExistsLocally  bool
	ExistsOnRemote bool
	RemoteBranches []string
}

// Service answers branch existence questions using local git commands only.
type Service struct {
	executor GitExecutor
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &Service{executor: dependencies.GitExecutor}, nil
}

// Inspect checks whether the branch exists locally and on the remote. When
// the branch is absent from the remote the available remote branches are
// enumerated for the report.
func (service *Service) Inspect(executionContext context.Context, options Options) (Inspection, error) {
	branchName := strings.TrimSpace(options.BranchName)
	if len(branchName) == 0 {
		return Inspection{}, ErrBranchNameRequired
	}

	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = defaultRemoteNameConstant
	}

	inspection := Inspection{BranchName: branchName}

	// The remote URL is informational only; its absence is not a failure.
	remoteURLResult, remoteURLError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitGetURLSubcommandConstant, remoteName},
		WorkingDirectory: options.WorkingDirectory,
	})
	if remoteURLError == nil {
		inspection.RemoteURL = strings.TrimSpace(remoteURLResult.StandardOutput)
	}

	localListResult, localListError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, gitBranchListFlagConstant, branchName},
		WorkingDirectory: options.WorkingDirectory,
	})
	if localListError != nil {
		return Inspection{}, fmt.Errorf(localListFailureTemplateConstant, localListError)
	}
	inspection.ExistsLocally = len(strings.TrimSpace(localListResult.StandardOutput)) > 0

	remoteListResult, remoteListError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitLSRemoteSubcommandConstant, gitHeadsFlagConstant, remoteName, branchName},
		WorkingDirectory: options.WorkingDirectory,
	})
	if remoteListError != nil {
		return Inspection{}, fmt.Errorf(remoteListFailureTemplateConstant, remoteListError)
	}
	inspection.ExistsOnRemote = len(strings.TrimSpace(remoteListResult.StandardOutput)) > 0

	if !inspection.ExistsOnRemote {
		remoteBranches, enumerationError := service.listRemoteBranches(executionContext, options.WorkingDirectory, remoteName)
		if enumerationError != nil {
			return Inspection{}, enumerationError
		}
		inspection.RemoteBranches = remoteBranches
	}

	return inspection, nil
}

func (service *Service) listRemoteBranches(executionContext context.Context, workingDirectory string, remoteName string) ([]string, error) {
	enumerationResult, enumerationError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitLSRemoteSubcommandConstant, gitHeadsFlagConstant, remoteName},
		WorkingDirectory: workingDirectory,
	})
	if enumerationError != nil {
		return nil, fmt.Errorf(remoteListFailureTemplateConstant, enumerationError)
	}

	var remoteBranches []string
	for _, outputLine := range strings.Split(enumerationResult.StandardOutput, "\n") {
		_, referenceName, prefixFound := strings.Cut(outputLine, remoteHeadsReferencePrefixConstant)
		if !prefixFound {
			continue
		}
		trimmedReference := strings.TrimSpace(referenceName)
		if len(trimmedReference) > 0 {
			remoteBranches = append(remoteBranches, trimmedReference)
		}
	}

	return remoteBranches, nil
}
