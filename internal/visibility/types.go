package visibility

import (
	"fmt"
	"strings"
)

const (
	repositoryReferenceSeparatorConstant = "/"
	repositoryReferenceTemplateConstant  = "%s" + repositoryReferenceSeparatorConstant + "%s"
)

// RepositoryRef identifies a GitHub repository by owner and name.
type RepositoryRef struct {
	Owner string
	Name  string
}

// String renders the reference in owner/name form.
func (reference RepositoryRef) String() string {
	return fmt.Sprintf(repositoryReferenceTemplateConstant, reference.Owner, reference.Name)
}

// ParseRepositoryRef converts an owner/name string into a RepositoryRef.
// Malformed input is rejected before any network access happens.
func ParseRepositoryRef(input string) (RepositoryRef, error) {
	trimmedInput := strings.TrimSpace(input)
	ownerSegment, nameSegment, separatorFound := strings.Cut(trimmedInput, repositoryReferenceSeparatorConstant)

	owner := strings.TrimSpace(ownerSegment)
	name := strings.TrimSpace(nameSegment)
	if !separatorFound || len(owner) == 0 || len(name) == 0 || strings.Contains(name, repositoryReferenceSeparatorConstant) {
		return RepositoryRef{}, InvalidRepositoryReferenceError{Input: input}
	}

	return RepositoryRef{Owner: owner, Name: name}, nil
}

// Visibility enumerates repository access settings.
type Visibility string

// Repository visibility values.
const (
	VisibilityPublic  Visibility = Visibility("public")
	VisibilityPrivate Visibility = Visibility("private")
)

// RepositoryStatus captures repository metadata resolved from the GitHub API.
type RepositoryStatus struct {
	FullName      string
	Visibility    Visibility
	DefaultBranch string
}

// BranchProtection describes the protection state reported for a branch.
type BranchProtection string

// Branch protection states. ProtectionUnknown covers responses that omit the
// protection flag.
const (
	ProtectionProtected   BranchProtection = BranchProtection("protected")
	ProtectionUnprotected BranchProtection = BranchProtection("unprotected")
	ProtectionUnknown     BranchProtection = BranchProtection("unknown")
)

// BranchStatus captures branch metadata resolved from the GitHub API.
type BranchStatus struct {
	Name       string
	Exists     bool
	Protection BranchProtection
}
