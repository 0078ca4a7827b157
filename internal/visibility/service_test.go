package visibility_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repostatus/internal/visibility"
)

type stubMetadataClient struct {
	repositoryStatus visibility.RepositoryStatus
	repositoryError  error
	branchStatus     visibility.BranchStatus
	branchError      error

	repositoryCalls []visibility.RepositoryRef
	branchCalls     []string
}

func (client *stubMetadataClient) ResolveRepository(_ context.Context, reference visibility.RepositoryRef) (visibility.RepositoryStatus, error) {
	client.repositoryCalls = append(client.repositoryCalls, reference)
	return client.repositoryStatus, client.repositoryError
}

func (client *stubMetadataClient) ResolveBranch(_ context.Context, _ visibility.RepositoryRef, branchName string) (visibility.BranchStatus, error) {
	client.branchCalls = append(client.branchCalls, branchName)
	return client.branchStatus, client.branchError
}

func TestServiceRequiresClient(testInstance *testing.T) {
	_, creationError := visibility.NewService(visibility.ServiceDependencies{})
	require.ErrorIs(testInstance, creationError, visibility.ErrClientNotConfigured)
}

func TestCheckResolvesRepositoryThenBranch(testInstance *testing.T) {
	client := &stubMetadataClient{
		repositoryStatus: visibility.RepositoryStatus{FullName: "owner/repo", Visibility: visibility.VisibilityPublic, DefaultBranch: "main"},
		branchStatus:     visibility.BranchStatus{Name: testBranchNameConstant, Exists: true, Protection: visibility.ProtectionUnprotected},
	}

	service, creationError := visibility.NewService(visibility.ServiceDependencies{Client: client})
	require.NoError(testInstance, creationError)

	report, checkError := service.Check(context.Background(), visibility.Options{Repository: testRepositoryReference, BranchName: testBranchNameConstant})
	require.NoError(testInstance, checkError)
	require.Equal(testInstance, client.repositoryStatus, report.Repository)
	require.Equal(testInstance, client.branchStatus, report.Branch)

	require.Equal(testInstance, []visibility.RepositoryRef{testRepositoryReference}, client.repositoryCalls)
	require.Equal(testInstance, []string{testBranchNameConstant}, client.branchCalls)
}

func TestCheckMissingBranchIsSuccess(testInstance *testing.T) {
	client := &stubMetadataClient{
		repositoryStatus: visibility.RepositoryStatus{FullName: "owner/repo", Visibility: visibility.VisibilityPublic, DefaultBranch: "main"},
		branchStatus:     visibility.BranchStatus{Name: testAbsentBranchNameConstant, Exists: false, Protection: visibility.ProtectionUnknown},
	}

	service, creationError := visibility.NewService(visibility.ServiceDependencies{Client: client})
	require.NoError(testInstance, creationError)

	report, checkError := service.Check(context.Background(), visibility.Options{Repository: testRepositoryReference, BranchName: testAbsentBranchNameConstant})
	require.NoError(testInstance, checkError)
	require.False(testInstance, report.Branch.Exists)
}

func TestCheckRejectsEmptyBranchBeforeAnyCall(testInstance *testing.T) {
	client := &stubMetadataClient{}
	service, creationError := visibility.NewService(visibility.ServiceDependencies{Client: client})
	require.NoError(testInstance, creationError)

	_, checkError := service.Check(context.Background(), visibility.Options{Repository: testRepositoryReference, BranchName: "   "})
	require.ErrorIs(testInstance, checkError, visibility.ErrBranchNameRequired)
	require.Empty(testInstance, client.repositoryCalls)
	require.Empty(testInstance, client.branchCalls)
}

func TestCheckStopsAfterRepositoryFailure(testInstance *testing.T) {
	client := &stubMetadataClient{repositoryError: visibility.RepositoryNotFoundError{Repository: testRepositoryReference}}
	service, creationError := visibility.NewService(visibility.ServiceDependencies{Client: client})
	require.NoError(testInstance, creationError)

	_, checkError := service.Check(context.Background(), visibility.Options{Repository: testRepositoryReference, BranchName: testBranchNameConstant})
	require.IsType(testInstance, visibility.RepositoryNotFoundError{}, checkError)
	require.Empty(testInstance, client.branchCalls)
}

func TestCheckPropagatesBranchFailure(testInstance *testing.T) {
	client := &stubMetadataClient{
		repositoryStatus: visibility.RepositoryStatus{FullName: "owner/repo", Visibility: visibility.VisibilityPublic},
		branchError:      visibility.RateLimitOrAuthError{Repository: testRepositoryReference},
	}
	service, creationError := visibility.NewService(visibility.ServiceDependencies{Client: client})
	require.NoError(testInstance, creationError)

	_, checkError := service.Check(context.Background(), visibility.Options{Repository: testRepositoryReference, BranchName: testBranchNameConstant})
	require.IsType(testInstance, visibility.RateLimitOrAuthError{}, checkError)
}
