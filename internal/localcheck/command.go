package localcheck

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repostatus/internal/execshell"
)

const (
	commandUseConstant                  = "branch-local [branch]"
	commandShortDescriptionConstant     = "Check branch existence using local git commands"
	commandLongDescriptionConstant      = "branch-local answers whether a branch exists locally and on the origin remote without touching the GitHub API. When the branch is missing from the remote the available remote branches are listed."
	commandExampleConstant              = "repostatus branch-local development"
	commandMaximumArgumentCountConstant = 1
	branchArgumentIndexConstant         = 0
	branchNotFoundTemplateConstant      = "branch %q not found on remote %q"
)

// BranchNotFoundError reports a branch that is absent from the remote. It
// drives the command's non-zero exit status after the report has printed.
type BranchNotFoundError struct {
	BranchName string
	RemoteName string
}

// Error describes the missing branch.
func (notFoundError BranchNotFoundError) Error() string {
	return fmt.Sprintf(branchNotFoundTemplateConstant, notFoundError.BranchName, notFoundError.RemoteName)
}

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the branch-local command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        func() CommandConfiguration
	HumanReadableLoggingProvider func() bool
	// GitExecutor overrides the executor used for git plumbing, primarily for tests.
	GitExecutor GitExecutor
	// WorkingDirectory overrides the directory the git commands run in.
	WorkingDirectory string
}

// Build constructs the branch-local command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.MaximumNArgs(commandMaximumArgumentCountConstant),
		RunE:    builder.run,
	}
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	branchName := configuration.Branch
	if len(arguments) > branchArgumentIndexConstant {
		if argumentBranch := strings.TrimSpace(arguments[branchArgumentIndexConstant]); len(argumentBranch) > 0 {
			branchName = argumentBranch
		}
	}

	gitExecutor, executorError := builder.resolveGitExecutor()
	if executorError != nil {
		return executorError
	}

	service, serviceError := NewService(ServiceDependencies{GitExecutor: gitExecutor})
	if serviceError != nil {
		return serviceError
	}

	workingDirectory := builder.WorkingDirectory
	if len(workingDirectory) == 0 {
		if detectedDirectory, workingDirectoryError := os.Getwd(); workingDirectoryError == nil {
			workingDirectory = detectedDirectory
		}
	}

	inspection, inspectionError := service.Inspect(command.Context(), Options{
		WorkingDirectory: workingDirectory,
		BranchName:       branchName,
		RemoteName:       configuration.Remote,
	})
	if inspectionError != nil {
		return inspectionError
	}

	fmt.Fprintln(command.OutOrStdout(), FormatInspection(inspection))

	if !inspection.ExistsOnRemote {
		remoteName := configuration.Remote
		if len(remoteName) == 0 {
			remoteName = defaultRemoteNameConstant
		}
		return BranchNotFoundError{BranchName: inspection.BranchName, RemoteName: remoteName}
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveGitExecutor() (GitExecutor, error) {
	if builder.GitExecutor != nil {
		return builder.GitExecutor, nil
	}

	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	return execshell.NewShellExecutorWithOptions(builder.resolveLogger(), execshell.NewOSCommandRunner(), humanReadableLogging)
}
