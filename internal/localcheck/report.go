package localcheck

import (
	"fmt"
	"strings"
)

const (
	reportCheckingTemplateConstant        = "Checking branch: %s"
	reportRemoteTemplateConstant          = "Repository remote: %s"
	reportRemoteUnknownConstant           = "Warning: could not determine remote URL"
	reportLocalExistsTemplateConstant     = "Branch %q exists locally"
	reportLocalMissingTemplateConstant    = "Branch %q does not exist locally"
	reportRemoteExistsTemplateConstant    = "Branch %q exists on the remote"
	reportRemoteMissingTemplateConstant   = "Branch %q does not exist on the remote"
	reportAvailableBranchesHeaderConstant = "Available remote branches:"
	reportBranchEntryTemplateConstant     = "  - %s"
	reportBranchOverflowTemplateConstant  = "  ... and %d more"
	reportNoBranchesConstant              = "  (none found)"
	reportSummaryHeaderConstant           = "SUMMARY:"
	reportSummaryAccessibleTemplate       = "  Branch %q is accessible on the remote repository"
	reportSummaryCheckoutHintTemplate     = "  Check it out with: git checkout %s"
	reportSummaryLocalOnlyTemplate        = "  Branch %q is not checked out locally"
	reportSummaryAbsentTemplate           = "  Branch %q does not exist on the remote repository"
	reportSeparatorRuneConstant           = "="
	reportSeparatorWidthConstant          = 60
	displayedRemoteBranchLimitConstant    = 10
)

// FormatInspection renders the human-readable summary of a local branch
// inspection. The function is pure.
func FormatInspection(inspection Inspection) string {
	separatorLine := strings.Repeat(reportSeparatorRuneConstant, reportSeparatorWidthConstant)

	reportLines := []string{fmt.Sprintf(reportCheckingTemplateConstant, inspection.BranchName)}
	if len(inspection.RemoteURL) > 0 {
		reportLines = append(reportLines, fmt.Sprintf(reportRemoteTemplateConstant, inspection.RemoteURL))
	} else {
		reportLines = append(reportLines, reportRemoteUnknownConstant)
	}
	reportLines = append(reportLines, "")

	if inspection.ExistsLocally {
		reportLines = append(reportLines, fmt.Sprintf(reportLocalExistsTemplateConstant, inspection.BranchName))
	} else {
		reportLines = append(reportLines, fmt.Sprintf(reportLocalMissingTemplateConstant, inspection.BranchName))
	}

	if inspection.ExistsOnRemote {
		reportLines = append(reportLines, fmt.Sprintf(reportRemoteExistsTemplateConstant, inspection.BranchName))
	} else {
		reportLines = append(reportLines, fmt.Sprintf(reportRemoteMissingTemplateConstant, inspection.BranchName))
		reportLines = append(reportLines, "", reportAvailableBranchesHeaderConstant)
		reportLines = append(reportLines, formatRemoteBranchList(inspection.RemoteBranches)...)
	}

	reportLines = append(reportLines, "", separatorLine, reportSummaryHeaderConstant)
	if inspection.ExistsOnRemote {
		reportLines = append(reportLines, fmt.Sprintf(reportSummaryAccessibleTemplate, inspection.BranchName))
		if !inspection.ExistsLocally {
			reportLines = append(reportLines,
				fmt.Sprintf(reportSummaryLocalOnlyTemplate, inspection.BranchName),
				fmt.Sprintf(reportSummaryCheckoutHintTemplate, inspection.BranchName),
			)
		}
	} else {
		reportLines = append(reportLines, fmt.Sprintf(reportSummaryAbsentTemplate, inspection.BranchName))
	}
	reportLines = append(reportLines, separatorLine)

	return strings.Join(reportLines, "\n")
}

func formatRemoteBranchList(remoteBranches []string) []string {
	if len(remoteBranches) == 0 {
		return []string{reportNoBranchesConstant}
	}

	displayedCount := len(remoteBranches)
	if displayedCount > displayedRemoteBranchLimitConstant {
		displayedCount = displayedRemoteBranchLimitConstant
	}

	var branchLines []string
	for _, remoteBranch := range remoteBranches[:displayedCount] {
		branchLines = append(branchLines, fmt.Sprintf(reportBranchEntryTemplateConstant, remoteBranch))
	}
	if overflowCount := len(remoteBranches) - displayedCount; overflowCount > 0 {
		branchLines = append(branchLines, fmt.Sprintf(reportBranchOverflowTemplateConstant, overflowCount))
	}

	return branchLines
}
