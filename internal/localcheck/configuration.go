package localcheck

import "strings"

const (
	defaultBranchNameConfigurationConstant = "development"
	branchConfigurationKeySuffix           = ".branch"
	remoteConfigurationKeySuffix           = ".remote"
)

// CommandConfiguration captures configuration values for the branch-local command.
type CommandConfiguration struct {
	Branch string `mapstructure:"branch"`
	Remote string `mapstructure:"remote"`
}

// DefaultCommandConfiguration provides baseline configuration values for branch-local.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Branch: defaultBranchNameConfigurationConstant,
		Remote: defaultRemoteNameConstant,
	}
}

// Sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Branch = strings.TrimSpace(configuration.Branch)
	sanitized.Remote = strings.TrimSpace(configuration.Remote)
	return sanitized
}

// DefaultConfigurationValues exposes configuration defaults keyed beneath the provided prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	return map[string]any{
		configurationKeyPrefix + branchConfigurationKeySuffix: defaultBranchNameConfigurationConstant,
		configurationKeyPrefix + remoteConfigurationKeySuffix: defaultRemoteNameConstant,
	}
}
