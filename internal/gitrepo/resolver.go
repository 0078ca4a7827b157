package gitrepo

import (
	"context"
	"strings"

	"github.com/temirov/repostatus/internal/execshell"
)

const (
	gitRemoteSubcommandConstant = "remote"
	gitGetURLSubcommandConstant = "get-url"
	originRemoteNameConstant    = "origin"
	githubHostConstant          = "github.com"
)

// GitExecutor is the minimal surface the resolver requires from execshell.ShellExecutor.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryResolver detects the GitHub repository backing a working directory.
type RepositoryResolver struct {
	executor GitExecutor
}

// NewRepositoryResolver constructs a resolver bound to the provided git executor.
func NewRepositoryResolver(executor GitExecutor) *RepositoryResolver {
	return &RepositoryResolver{executor: executor}
}

// CurrentRepository reads the origin remote of the working directory and
// reports the GitHub repository it points at. The second return value is false
// when no origin remote exists or the remote does not reference github.com.
func (resolver *RepositoryResolver) CurrentRepository(executionContext context.Context, workingDirectory string) (RemoteURL, bool) {
	if resolver == nil || resolver.executor == nil {
		return RemoteURL{}, false
	}

	executionResult, executionError := resolver.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitGetURLSubcommandConstant, originRemoteNameConstant},
		WorkingDirectory: workingDirectory,
	})
	if executionError != nil {
		return RemoteURL{}, false
	}

	remoteURL, parseError := ParseRemoteURL(strings.TrimSpace(executionResult.StandardOutput))
	if parseError != nil {
		return RemoteURL{}, false
	}
	if !strings.EqualFold(remoteURL.Host, githubHostConstant) {
		return RemoteURL{}, false
	}

	return remoteURL, true
}
