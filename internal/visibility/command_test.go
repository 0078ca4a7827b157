package visibility_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/temirov/repostatus/internal/execshell"
	"github.com/temirov/repostatus/internal/visibility"
)

const (
	testConfiguredBranchNameConstant = "release"
	testDetectedRemoteOutputConstant = "git@github.com:owner/repo.git\n"
)

type stubGitExecutor struct {
	executionResult execshell.ExecutionResult
	executionError  error
}

func (executor *stubGitExecutor) ExecuteGit(context.Context, execshell.CommandDetails) (execshell.ExecutionResult, error) {
	return executor.executionResult, executor.executionError
}

func buildCheckCommand(testInstance *testing.T, builder *visibility.CommandBuilder, arguments []string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	testInstance.Helper()

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	standardOutput := &bytes.Buffer{}
	standardError := &bytes.Buffer{}
	command.SetOut(standardOutput)
	command.SetErr(standardError)
	command.SetArgs(arguments)
	command.SetContext(context.Background())

	return command, standardOutput, standardError
}

func TestCheckCommandReportsExplicitRepository(testInstance *testing.T) {
	client := &stubMetadataClient{
		repositoryStatus: visibility.RepositoryStatus{FullName: "owner/repo", Visibility: visibility.VisibilityPublic, DefaultBranch: "main"},
		branchStatus:     visibility.BranchStatus{Name: testBranchNameConstant, Exists: true, Protection: visibility.ProtectionUnprotected},
	}

	builder := &visibility.CommandBuilder{Client: client}
	command, standardOutput, _ := buildCheckCommand(testInstance, builder, []string{"owner/repo", testBranchNameConstant})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, standardOutput.String(), "Checking repository: owner/repo")
	require.Contains(testInstance, standardOutput.String(), "SUMMARY:")
	require.Equal(testInstance, []visibility.RepositoryRef{{Owner: "owner", Name: "repo"}}, client.repositoryCalls)
	require.Equal(testInstance, []string{testBranchNameConstant}, client.branchCalls)
}

func TestCheckCommandRejectsMalformedRepositoryBeforeAnyLookup(testInstance *testing.T) {
	client := &stubMetadataClient{}
	builder := &visibility.CommandBuilder{Client: client}
	command, _, _ := buildCheckCommand(testInstance, builder, []string{"not-a-valid-ref"})

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.IsType(testInstance, visibility.InvalidRepositoryReferenceError{}, executionError)
	require.Empty(testInstance, client.repositoryCalls)
	require.Empty(testInstance, client.branchCalls)
}

func TestCheckCommandDetectsRepositoryFromOriginRemote(testInstance *testing.T) {
	client := &stubMetadataClient{
		repositoryStatus: visibility.RepositoryStatus{FullName: "owner/repo", Visibility: visibility.VisibilityPublic, DefaultBranch: "main"},
		branchStatus:     visibility.BranchStatus{Name: testConfiguredBranchNameConstant, Exists: true, Protection: visibility.ProtectionUnknown},
	}

	builder := &visibility.CommandBuilder{
		Client:      client,
		GitExecutor: &stubGitExecutor{executionResult: execshell.ExecutionResult{StandardOutput: testDetectedRemoteOutputConstant}},
		ConfigurationProvider: func() visibility.CommandConfiguration {
			return visibility.CommandConfiguration{Branch: testConfiguredBranchNameConstant}
		},
	}
	command, standardOutput, _ := buildCheckCommand(testInstance, builder, nil)

	require.NoError(testInstance, command.Execute())
	require.Equal(testInstance, []visibility.RepositoryRef{{Owner: "owner", Name: "repo"}}, client.repositoryCalls)
	require.Equal(testInstance, []string{testConfiguredBranchNameConstant}, client.branchCalls)
	require.Contains(testInstance, standardOutput.String(), "Checking branch: "+testConfiguredBranchNameConstant)
}

func TestCheckCommandFailsWhenRepositoryUndetectable(testInstance *testing.T) {
	builder := &visibility.CommandBuilder{
		Client:      &stubMetadataClient{},
		GitExecutor: &stubGitExecutor{executionError: execshell.CommandFailedError{}},
	}
	command, _, _ := buildCheckCommand(testInstance, builder, nil)

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.ErrorContains(testInstance, executionError, "owner/name")
}

func TestCheckCommandPrintsRemediationHint(testInstance *testing.T) {
	client := &stubMetadataClient{
		repositoryError: visibility.RepositoryNotFoundError{Repository: visibility.RepositoryRef{Owner: "owner", Name: "repo"}},
	}
	builder := &visibility.CommandBuilder{Client: client}
	command, _, standardError := buildCheckCommand(testInstance, builder, []string{"owner/repo"})

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.Contains(testInstance, standardError.String(), "GITHUB_TOKEN")
}

func TestCheckCommandReadsCredentialFromEnvironment(testInstance *testing.T) {
	testInstance.Setenv("GITHUB_TOKEN", "environment-credential")

	client := &stubMetadataClient{
		repositoryStatus: visibility.RepositoryStatus{FullName: "owner/repo", Visibility: visibility.VisibilityPublic, DefaultBranch: "main"},
		branchStatus:     visibility.BranchStatus{Name: testBranchNameConstant, Exists: true, Protection: visibility.ProtectionUnprotected},
	}
	builder := &visibility.CommandBuilder{Client: client}
	command, standardOutput, _ := buildCheckCommand(testInstance, builder, []string{"owner/repo", testBranchNameConstant})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, standardOutput.String(), "Using GitHub token for authentication")
}

func TestCheckCommandNoticesMissingCredential(testInstance *testing.T) {
	testInstance.Setenv("GITHUB_TOKEN", "")
	testInstance.Setenv("GH_TOKEN", "")

	client := &stubMetadataClient{
		repositoryStatus: visibility.RepositoryStatus{FullName: "owner/repo", Visibility: visibility.VisibilityPublic, DefaultBranch: "main"},
		branchStatus:     visibility.BranchStatus{Name: testBranchNameConstant, Exists: true, Protection: visibility.ProtectionUnprotected},
	}
	builder := &visibility.CommandBuilder{Client: client}
	command, standardOutput, _ := buildCheckCommand(testInstance, builder, []string{"owner/repo", testBranchNameConstant})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, standardOutput.String(), "No GitHub token provided")
	require.Contains(testInstance, standardOutput.String(), "GITHUB_TOKEN")
}

func TestCheckCommandMissingBranchStillSucceeds(testInstance *testing.T) {
	client := &stubMetadataClient{
		repositoryStatus: visibility.RepositoryStatus{FullName: "owner/repo", Visibility: visibility.VisibilityPublic, DefaultBranch: "main"},
		branchStatus:     visibility.BranchStatus{Name: testAbsentBranchNameConstant, Exists: false, Protection: visibility.ProtectionUnknown},
	}
	builder := &visibility.CommandBuilder{Client: client}
	command, standardOutput, _ := buildCheckCommand(testInstance, builder, []string{"owner/repo", testAbsentBranchNameConstant})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, standardOutput.String(), "does not exist")
}
