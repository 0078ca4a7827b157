package visibility

import (
	"fmt"
	"strings"
)

const (
	reportVisibilityTemplateConstant        = "Repository visibility: %s"
	reportFullNameTemplateConstant          = "  Full name:      %s"
	reportDefaultBranchTemplateConstant     = "  Default branch: %s"
	reportBranchExistsTemplateConstant      = "Branch %q exists"
	reportBranchMissingTemplateConstant     = "Branch %q does not exist"
	reportProtectionTemplateConstant        = "  Protection: %s"
	reportSummaryHeaderConstant             = "SUMMARY:"
	reportSummaryRepositoryTemplateConstant = "  Repository %q is %s"
	reportSummaryBranchExistsTemplate       = "  Branch %q exists and is accessible"
	reportSummaryBranchMissingTemplate      = "  Branch %q does not exist"
	reportPrivateNoteConstant               = "  Note: this is a private repository"
	reportSeparatorRuneConstant             = "="
	reportSeparatorWidthConstant            = 60
	protectionProtectedLabelConstant        = "protected"
	protectionUnprotectedLabelConstant      = "not protected"
	protectionUnknownLabelConstant          = "unknown"
)

// FormatReport renders the human-readable summary of a completed check. The
// function is pure: identical reports always produce identical text.
func FormatReport(report Report) string {
	separatorLine := strings.Repeat(reportSeparatorRuneConstant, reportSeparatorWidthConstant)

	reportLines := []string{
		fmt.Sprintf(reportVisibilityTemplateConstant, strings.ToUpper(string(report.Repository.Visibility))),
		fmt.Sprintf(reportFullNameTemplateConstant, report.Repository.FullName),
		fmt.Sprintf(reportDefaultBranchTemplateConstant, report.Repository.DefaultBranch),
		"",
	}

	if report.Branch.Exists {
		reportLines = append(reportLines,
			fmt.Sprintf(reportBranchExistsTemplateConstant, report.Branch.Name),
			fmt.Sprintf(reportProtectionTemplateConstant, protectionLabel(report.Branch.Protection)),
		)
	} else {
		reportLines = append(reportLines, fmt.Sprintf(reportBranchMissingTemplateConstant, report.Branch.Name))
	}

	reportLines = append(reportLines,
		"",
		separatorLine,
		reportSummaryHeaderConstant,
		fmt.Sprintf(reportSummaryRepositoryTemplateConstant, report.Repository.FullName, strings.ToUpper(string(report.Repository.Visibility))),
	)

	if report.Branch.Exists {
		reportLines = append(reportLines, fmt.Sprintf(reportSummaryBranchExistsTemplate, report.Branch.Name))
	} else {
		reportLines = append(reportLines, fmt.Sprintf(reportSummaryBranchMissingTemplate, report.Branch.Name))
	}

	if report.Repository.Visibility == VisibilityPrivate {
		reportLines = append(reportLines, reportPrivateNoteConstant)
	}

	reportLines = append(reportLines, separatorLine)

	return strings.Join(reportLines, "\n")
}

func protectionLabel(protection BranchProtection) string {
	switch protection {
	case ProtectionProtected:
		return protectionProtectedLabelConstant
	case ProtectionUnprotected:
		return protectionUnprotectedLabelConstant
	default:
		return protectionUnknownLabelConstant
	}
}
