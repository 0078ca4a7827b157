package localcheck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatInspectionIsPure(testInstance *testing.T) {
	inspection := Inspection{BranchName: testBranchNameConstant, ExistsLocally: true, ExistsOnRemote: true}
	require.Equal(testInstance, FormatInspection(inspection), FormatInspection(inspection))
}

func TestFormatInspectionMissingRemoteURL(testInstance *testing.T) {
	inspection := Inspection{BranchName: testBranchNameConstant, ExistsOnRemote: true}
	renderedReport := FormatInspection(inspection)
	require.Contains(testInstance, renderedReport, "Warning: could not determine remote URL")
	require.Contains(testInstance, renderedReport, "Check it out with: git checkout "+testBranchNameConstant)
}

func TestFormatInspectionTruncatesLongBranchLists(testInstance *testing.T) {
	var remoteBranches []string
	for branchIndex := 0; branchIndex < 13; branchIndex++ {
		remoteBranches = append(remoteBranches, fmt.Sprintf("feature-%d", branchIndex))
	}

	inspection := Inspection{BranchName: testBranchNameConstant, RemoteBranches: remoteBranches}
	renderedReport := FormatInspection(inspection)
	require.Contains(testInstance, renderedReport, "- feature-9")
	require.NotContains(testInstance, renderedReport, "- feature-10")
	require.Contains(testInstance, renderedReport, "... and 3 more")
	require.Contains(testInstance, renderedReport, "does not exist on the remote repository")
}

func TestFormatInspectionEmptyRemoteBranchList(testInstance *testing.T) {
	inspection := Inspection{BranchName: testBranchNameConstant}
	require.Contains(testInstance, FormatInspection(inspection), "(none found)")
}
