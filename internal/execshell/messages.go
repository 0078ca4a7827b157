package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s %s"
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	commandArgumentsJoinSeparatorConstant   = " "
	defaultRemoteLabelConstant              = "origin"
)

const (
	gitRemoteSubcommandNameConstant       = "remote"
	gitRemoteGetURLSubcommandNameConstant = "get-url"
	gitBranchSubcommandNameConstant       = "branch"
	gitBranchListFlagConstant             = "--list"
	gitLSRemoteSubcommandNameConstant     = "ls-remote"
	gitHeadsFlagConstant                  = "--heads"
)

const (
	gitRemoteLookupStartTemplateConstant            = "Checking %s remote URL"
	gitRemoteLookupSuccessTemplateConstant          = "Read %s remote URL"
	gitRemoteLookupFailureTemplateConstant          = "Failed to read %s remote URL (exit code %d%s)"
	gitRemoteLookupExecutionFailureTemplateConstant = "Unable to read %s remote URL: %s"
	gitBranchListStartTemplateConstant              = "Checking local branch %s"
	gitBranchListSuccessTemplateConstant            = "Checked local branch %s"
	gitBranchListFailureTemplateConstant            = "Failed to check local branch %s (exit code %d%s)"
	gitBranchListExecutionFailureTemplateConstant   = "Unable to check local branch %s: %s"
	gitLSRemoteStartTemplateConstant                = "Listing branches on remote %s"
	gitLSRemoteSuccessTemplateConstant              = "Listed branches on remote %s"
	gitLSRemoteFailureTemplateConstant              = "Failed to list branches on remote %s (exit code %d%s)"
	gitLSRemoteExecutionFailureTemplateConstant     = "Unable to list branches on remote %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments

	if command.Name == CommandGit && len(arguments) > 0 {
		switch arguments[0] {
		case gitRemoteSubcommandNameConstant:
			if len(arguments) > 1 && arguments[1] == gitRemoteGetURLSubcommandNameConstant {
				remoteName := formatter.argumentAt(arguments, 2, defaultRemoteLabelConstant)
				return formatter.renderStage(stage, result, failure,
					fmt.Sprintf(gitRemoteLookupStartTemplateConstant, remoteName),
					fmt.Sprintf(gitRemoteLookupSuccessTemplateConstant, remoteName),
					gitRemoteLookupFailureTemplateConstant, []any{remoteName},
					gitRemoteLookupExecutionFailureTemplateConstant, []any{remoteName},
				)
			}
		case gitBranchSubcommandNameConstant:
			if len(arguments) > 1 && arguments[1] == gitBranchListFlagConstant {
				branchName := formatter.argumentAt(arguments, 2, "")
				return formatter.renderStage(stage, result, failure,
					fmt.Sprintf(gitBranchListStartTemplateConstant, branchName),
					fmt.Sprintf(gitBranchListSuccessTemplateConstant, branchName),
					gitBranchListFailureTemplateConstant, []any{branchName},
					gitBranchListExecutionFailureTemplateConstant, []any{branchName},
				)
			}
		case gitLSRemoteSubcommandNameConstant:
			remoteName := defaultRemoteLabelConstant
			for argumentIndex := 1; argumentIndex < len(arguments); argumentIndex++ {
				if !strings.HasPrefix(arguments[argumentIndex], "-") {
					remoteName = arguments[argumentIndex]
					break
				}
			}
			return formatter.renderStage(stage, result, failure,
				fmt.Sprintf(gitLSRemoteStartTemplateConstant, remoteName),
				fmt.Sprintf(gitLSRemoteSuccessTemplateConstant, remoteName),
				gitLSRemoteFailureTemplateConstant, []any{remoteName},
				gitLSRemoteExecutionFailureTemplateConstant, []any{remoteName},
			)
		}
	}

	return formatter.renderGeneric(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) renderStage(stage messageStage, result ExecutionResult, failure error, startMessage string, successMessage string, failureTemplate string, failureArguments []any, executionFailureTemplate string, executionFailureArguments []any) string {
	switch stage {
	case messageStageStart:
		return startMessage
	case messageStageSuccess:
		return successMessage
	case messageStageFailure:
		templateArguments := append(append([]any{}, failureArguments...), result.ExitCode, formatter.standardErrorSuffix(result))
		return fmt.Sprintf(failureTemplate, templateArguments...)
	default:
		templateArguments := append(append([]any{}, executionFailureArguments...), formatter.failureDescription(failure))
		return fmt.Sprintf(executionFailureTemplate, templateArguments...)
	}
}

func (formatter CommandMessageFormatter) renderGeneric(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf(commandLabelTemplateConstant, commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.standardErrorSuffix(result))
	default:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.failureDescription(failure))
	}
}

func (formatter CommandMessageFormatter) standardErrorSuffix(result ExecutionResult) string {
	trimmedStandardError := strings.TrimSpace(result.StandardError)
	if len(trimmedStandardError) == 0 {
		return ""
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) failureDescription(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) argumentAt(arguments []string, argumentIndex int, fallbackValue string) string {
	if argumentIndex >= len(arguments) {
		return fallbackValue
	}
	return arguments[argumentIndex]
}
