package visibility_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repostatus/internal/visibility"
)

const (
	testWellFormedReferenceCaseNameConstant = "well_formed_reference"
	testPaddedReferenceCaseNameConstant     = "padded_reference"
	testMissingSlashCaseNameConstant        = "missing_slash"
	testEmptyOwnerCaseNameConstant          = "empty_owner"
	testEmptyNameCaseNameConstant           = "empty_name"
	testNestedSlashCaseNameConstant         = "nested_slash"
	testEmptyInputCaseNameConstant          = "empty_input"
)

func TestParseRepositoryRef(testInstance *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expected      visibility.RepositoryRef
		expectFailure bool
	}{
		{
			name:     testWellFormedReferenceCaseNameConstant,
			input:    "esoftsystems/sysapps-chatbot",
			expected: visibility.RepositoryRef{Owner: "esoftsystems", Name: "sysapps-chatbot"},
		},
		{
			name:     testPaddedReferenceCaseNameConstant,
			input:    "  owner/repo  ",
			expected: visibility.RepositoryRef{Owner: "owner", Name: "repo"},
		},
		{
			name:          testMissingSlashCaseNameConstant,
			input:         "not-a-valid-ref",
			expectFailure: true,
		},
		{
			name:          testEmptyOwnerCaseNameConstant,
			input:         "/repo",
			expectFailure: true,
		},
		{
			name:          testEmptyNameCaseNameConstant,
			input:         "owner/",
			expectFailure: true,
		},
		{
			name:          testNestedSlashCaseNameConstant,
			input:         "owner/group/repo",
			expectFailure: true,
		},
		{
			name:          testEmptyInputCaseNameConstant,
			input:         "   ",
			expectFailure: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			reference, parseError := visibility.ParseRepositoryRef(testCase.input)

			if testCase.expectFailure {
				require.Error(testInstance, parseError)
				require.IsType(testInstance, visibility.InvalidRepositoryReferenceError{}, parseError)
				return
			}

			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expected, reference)
			require.Equal(testInstance, testCase.expected.Owner+"/"+testCase.expected.Name, reference.String())
		})
	}
}
