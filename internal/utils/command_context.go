package utils

import "context"

const (
	configurationFilePathContextKeyConstant = commandContextKey("configurationFilePath")
	credentialContextKeyConstant            = commandContextKey("githubCredential")
)

type commandContextKey string

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath extracts the configuration file path from the provided context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, configurationFilePathAvailable := executionContext.Value(configurationFilePathContextKeyConstant).(string)
	if !configurationFilePathAvailable {
		return "", false
	}
	return configurationFilePath, true
}

// WithCredential attaches a GitHub credential to the provided context.
func (accessor CommandContextAccessor) WithCredential(parentContext context.Context, credential string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, credentialContextKeyConstant, credential)
}

// Credential extracts a GitHub credential from the provided context.
func (accessor CommandContextAccessor) Credential(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	credential, credentialAvailable := executionContext.Value(credentialContextKeyConstant).(string)
	if !credentialAvailable || len(credential) == 0 {
		return "", false
	}
	return credential, true
}
