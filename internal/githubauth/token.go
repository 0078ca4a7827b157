// Package githubauth resolves the optional GitHub credential used to raise
// rate limits and reach private repositories.
package githubauth

import (
	"os"
	"strings"
)

// Environment variable names consulted for GitHub authentication tokens.
const (
	EnvGitHubToken    = "GITHUB_TOKEN"
	EnvGitHubCLIToken = "GH_TOKEN"
)

var tokenPreference = []string{
	EnvGitHubToken,
	EnvGitHubCLIToken,
}

// ResolveToken returns the credential to use for GitHub API access. An
// explicitly configured token wins; otherwise the provided environment map is
// consulted in preference order. The second return value reports whether any
// credential was found.
func ResolveToken(configuredToken string, environment map[string]string) (string, bool) {
	if trimmedToken := strings.TrimSpace(configuredToken); len(trimmedToken) > 0 {
		return trimmedToken, true
	}
	for _, environmentKey := range tokenPreference {
		if tokenValue, tokenFound := lookup(environment, environmentKey); tokenFound {
			return tokenValue, true
		}
	}
	return "", false
}

// ProcessEnvironment captures the token variables of the current process in
// the map form ResolveToken consumes.
func ProcessEnvironment() map[string]string {
	environment := make(map[string]string, len(tokenPreference))
	for _, environmentKey := range tokenPreference {
		if rawValue, valuePresent := os.LookupEnv(environmentKey); valuePresent {
			environment[environmentKey] = rawValue
		}
	}
	return environment
}

func lookup(environment map[string]string, environmentKey string) (string, bool) {
	if environment == nil {
		return "", false
	}
	rawValue, valuePresent := environment[environmentKey]
	if !valuePresent {
		return "", false
	}
	tokenValue := strings.TrimSpace(rawValue)
	if len(tokenValue) == 0 {
		return "", false
	}
	return tokenValue, true
}
