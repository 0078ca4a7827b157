package visibility

import "strings"

const (
	defaultBranchNameConstant     = "development"
	branchConfigurationKeySuffix  = ".branch"
	tokenConfigurationKeySuffix   = ".token"
	baseURLConfigurationKeySuffix = ".api_base_url"
)

// CommandConfiguration captures configuration values for the check command.
type CommandConfiguration struct {
	Branch     string `mapstructure:"branch"`
	Token      string `mapstructure:"token"`
	APIBaseURL string `mapstructure:"api_base_url"`
}

// DefaultCommandConfiguration provides baseline configuration values for the check command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{Branch: defaultBranchNameConstant}
}

// Sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Branch = strings.TrimSpace(configuration.Branch)
	sanitized.Token = strings.TrimSpace(configuration.Token)
	sanitized.APIBaseURL = strings.TrimSpace(configuration.APIBaseURL)
	return sanitized
}

// DefaultConfigurationValues exposes configuration defaults keyed beneath the provided prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	return map[string]any{
		configurationKeyPrefix + branchConfigurationKeySuffix:  defaultBranchNameConstant,
		configurationKeyPrefix + tokenConfigurationKeySuffix:   "",
		configurationKeyPrefix + baseURLConfigurationKeySuffix: "",
	}
}
