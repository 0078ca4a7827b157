package visibility

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repostatus/internal/execshell"
	"github.com/temirov/repostatus/internal/githubauth"
	"github.com/temirov/repostatus/internal/gitrepo"
)

const (
	commandUseConstant                  = "check [repository] [branch]"
	commandShortDescriptionConstant     = "Report repository visibility and branch existence via the GitHub API"
	commandLongDescriptionConstant      = "check resolves whether a GitHub repository is public or private and whether the requested branch exists. The repository defaults to the current directory's origin remote and the branch defaults to the configured name."
	commandExampleConstant              = "repostatus check esoftsystems/sysapps-chatbot development"
	commandMaximumArgumentCountConstant = 2
	repositoryArgumentIndexConstant     = 0
	branchArgumentIndexConstant         = 1
	missingRepositoryMessageConstant    = "could not determine repository from the origin remote; provide it as owner/name"
	checkingRepositoryTemplateConstant  = "Checking repository: %s"
	checkingBranchTemplateConstant      = "Checking branch: %s"
	authenticatedNoticeConstant         = "Using GitHub token for authentication"
	unauthenticatedNoticeConstant       = "No GitHub token provided (unauthenticated request)"
	unauthenticatedTipTemplateConstant  = "Tip: set the %s environment variable for private repositories"
	remediationHintTemplateConstant     = "Hint: %s"
)

// remediableError is satisfied by errors that carry a remediation hint.
type remediableError interface {
	RemediationHint() string
}

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the check command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        func() CommandConfiguration
	HumanReadableLoggingProvider func() bool
	// Client overrides the GitHub metadata client, primarily for tests.
	Client MetadataClient
	// GitExecutor overrides the executor used for repository detection.
	GitExecutor gitrepo.GitExecutor
	// WorkingDirectory overrides the directory inspected for an origin remote.
	WorkingDirectory string
}

// Build constructs the check command.
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
	logger := builder.resolveLogger()

	repositoryArgument, repositoryError := builder.resolveRepositoryArgument(command, arguments, logger)
	if repositoryError != nil {
		return repositoryError
	}

	repositoryReference, referenceError := ParseRepositoryRef(repositoryArgument)
	if referenceError != nil {
		return referenceError
	}

	branchName := builder.resolveBranchName(arguments, configuration)

	credential, authenticated := githubauth.ResolveToken(configuration.Token, githubauth.ProcessEnvironment())

	fmt.Fprintf(command.OutOrStdout(), checkingRepositoryTemplateConstant+"\n", repositoryReference)
	fmt.Fprintf(command.OutOrStdout(), checkingBranchTemplateConstant+"\n", branchName)
	if authenticated {
		fmt.Fprintln(command.OutOrStdout(), authenticatedNoticeConstant)
	} else {
		fmt.Fprintln(command.OutOrStdout(), unauthenticatedNoticeConstant)
		fmt.Fprintf(command.OutOrStdout(), unauthenticatedTipTemplateConstant+"\n", githubauth.EnvGitHubToken)
	}
	fmt.Fprintln(command.OutOrStdout())

	metadataClient, clientError := builder.resolveClient(credential, configuration)
	if clientError != nil {
		return clientError
	}

	service, serviceError := NewService(ServiceDependencies{Client: metadataClient, Logger: logger})
	if serviceError != nil {
		return serviceError
	}

	report, checkError := service.Check(command.Context(), Options{Repository: repositoryReference, BranchName: branchName})
	if checkError != nil {
		var remediable remediableError
		if errors.As(checkError, &remediable) {
			fmt.Fprintf(command.ErrOrStderr(), remediationHintTemplateConstant+"\n", remediable.RemediationHint())
		}
		return checkError
	}

	fmt.Fprintln(command.OutOrStdout(), FormatReport(report))
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

func (builder *CommandBuilder) resolveBranchName(arguments []string, configuration CommandConfiguration) string {
	if len(arguments) > branchArgumentIndexConstant {
		branchName := strings.TrimSpace(arguments[branchArgumentIndexConstant])
		if len(branchName) > 0 {
			return branchName
		}
	}
	if len(configuration.Branch) > 0 {
		return configuration.Branch
	}
	return defaultBranchNameConstant
}

func (builder *CommandBuilder) resolveRepositoryArgument(command *cobra.Command, arguments []string, logger *zap.Logger) (string, error) {
	if len(arguments) > repositoryArgumentIndexConstant {
		repositoryArgument := strings.TrimSpace(arguments[repositoryArgumentIndexConstant])
		if len(repositoryArgument) > 0 {
			return repositoryArgument, nil
		}
	}

	gitExecutor, executorError := builder.resolveGitExecutor(logger)
	if executorError != nil {
		return "", executorError
	}

	workingDirectory := builder.WorkingDirectory
	if len(workingDirectory) == 0 {
		if detectedDirectory, workingDirectoryError := os.Getwd(); workingDirectoryError == nil {
			workingDirectory = detectedDirectory
		}
	}

	resolver := gitrepo.NewRepositoryResolver(gitExecutor)
	remoteURL, remoteFound := resolver.CurrentRepository(command.Context(), workingDirectory)
	if !remoteFound {
		return "", errors.New(missingRepositoryMessageConstant)
	}

	return RepositoryRef{Owner: remoteURL.Owner, Name: remoteURL.Repository}.String(), nil
}

func (builder *CommandBuilder) resolveGitExecutor(logger *zap.Logger) (gitrepo.GitExecutor, error) {
	if builder.GitExecutor != nil {
		return builder.GitExecutor, nil
	}

	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	return execshell.NewShellExecutorWithOptions(logger, execshell.NewOSCommandRunner(), humanReadableLogging)
}

func (builder *CommandBuilder) resolveClient(credential string, configuration CommandConfiguration) (MetadataClient, error) {
	if builder.Client != nil {
		return builder.Client, nil
	}
	return NewGitHubClient(GitHubClientOptions{Token: credential, BaseURL: configuration.APIBaseURL})
}
