package gitrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repostatus/internal/execshell"
	"github.com/temirov/repostatus/internal/gitrepo"
)

const (
	testGitHubRemoteOutputConstant    = "https://github.com/owner/repo.git\n"
	testForeignHostRemoteConstant     = "https://gitlab.com/owner/repo.git\n"
	testResolverWorkingDirectoryValue = "/tmp/workspace"
)

type stubGitExecutor struct {
	executionResult execshell.ExecutionResult
	executionError  error
	recordedDetails []execshell.CommandDetails
}

func (executor *stubGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedDetails = append(executor.recordedDetails, details)
	return executor.executionResult, executor.executionError
}

func TestCurrentRepositoryResolvesGitHubRemote(testInstance *testing.T) {
	executor := &stubGitExecutor{executionResult: execshell.ExecutionResult{StandardOutput: testGitHubRemoteOutputConstant}}
	resolver := gitrepo.NewRepositoryResolver(executor)

	remoteURL, found := resolver.CurrentRepository(context.Background(), testResolverWorkingDirectoryValue)
	require.True(testInstance, found)
	require.Equal(testInstance, gitrepo.RemoteURL{Host: "github.com", Owner: "owner", Repository: "repo"}, remoteURL)

	require.Len(testInstance, executor.recordedDetails, 1)
	require.Equal(testInstance, []string{"remote", "get-url", "origin"}, executor.recordedDetails[0].Arguments)
	require.Equal(testInstance, testResolverWorkingDirectoryValue, executor.recordedDetails[0].WorkingDirectory)
}

func TestCurrentRepositoryRejectsForeignHosts(testInstance *testing.T) {
	executor := &stubGitExecutor{executionResult: execshell.ExecutionResult{StandardOutput: testForeignHostRemoteConstant}}
	resolver := gitrepo.NewRepositoryResolver(executor)

	_, found := resolver.CurrentRepository(context.Background(), testResolverWorkingDirectoryValue)
	require.False(testInstance, found)
}

func TestCurrentRepositoryReportsAbsenceOnGitFailure(testInstance *testing.T) {
	executor := &stubGitExecutor{executionError: errors.New("no such remote")}
	resolver := gitrepo.NewRepositoryResolver(executor)

	_, found := resolver.CurrentRepository(context.Background(), testResolverWorkingDirectoryValue)
	require.False(testInstance, found)
}
