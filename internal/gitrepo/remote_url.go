package gitrepo

import (
	"fmt"
	"strings"
)

const (
	httpsProtocolPrefixConstant         = "https://"
	httpProtocolPrefixConstant          = "http://"
	sshProtocolPrefixConstant           = "ssh://"
	gitUserPrefixConstant               = "git@"
	sshPathDelimiterConstant            = ":"
	sshUserDelimiterConstant            = "@"
	pathSeparatorConstant               = "/"
	gitSuffixConstant                   = ".git"
	requiredValueMessageConstant        = "value required"
	invalidRemoteURLMessageConstant     = "invalid remote url"
	remoteURLParseErrorTemplateConstant = "%s: %s"
)

// RemoteURL represents a structured git remote URL.
type RemoteURL struct {
	Host       string
	Owner      string
	Repository string
}

// RemoteURLParseError indicates a remote string could not be parsed.
type RemoteURLParseError struct {
	Input   string
	Message string
}

// Error describes the parse failure.
func (parseError RemoteURLParseError) Error() string {
	return fmt.Sprintf(remoteURLParseErrorTemplateConstant, parseError.Input, parseError.Message)
}

// ParseRemoteURL converts a textual remote URL into a structured representation.
// HTTPS, HTTP, SSH, and scp-like git@ forms are supported.
func ParseRemoteURL(remote string) (RemoteURL, error) {
	trimmedRemote := strings.TrimSpace(remote)
	if len(trimmedRemote) == 0 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: requiredValueMessageConstant}
	}

	if remainder, found := strings.CutPrefix(trimmedRemote, httpsProtocolPrefixConstant); found {
		return parseHostAndPath(trimmedRemote, remainder, pathSeparatorConstant)
	}
	if remainder, found := strings.CutPrefix(trimmedRemote, httpProtocolPrefixConstant); found {
		return parseHostAndPath(trimmedRemote, remainder, pathSeparatorConstant)
	}
	if remainder, found := strings.CutPrefix(trimmedRemote, sshProtocolPrefixConstant); found {
		return parseSSHRemote(trimmedRemote, remainder)
	}
	if strings.HasPrefix(trimmedRemote, gitUserPrefixConstant) {
		return parseSSHRemote(trimmedRemote, trimmedRemote)
	}

	return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
}

func parseSSHRemote(original string, remote string) (RemoteURL, error) {
	userSplitIndex := strings.Index(remote, sshUserDelimiterConstant)
	if userSplitIndex == -1 {
		return RemoteURL{}, RemoteURLParseError{Input: original, Message: invalidRemoteURLMessageConstant}
	}

	hostAndPath := remote[userSplitIndex+1:]
	delimiter := sshPathDelimiterConstant
	if !strings.Contains(hostAndPath, sshPathDelimiterConstant) {
		delimiter = pathSeparatorConstant
	}
	return parseHostAndPath(original, hostAndPath, delimiter)
}

func parseHostAndPath(original string, hostAndPath string, delimiter string) (RemoteURL, error) {
	host, path, found := strings.Cut(hostAndPath, delimiter)
	if !found || len(host) == 0 {
		return RemoteURL{}, RemoteURLParseError{Input: original, Message: invalidRemoteURLMessageConstant}
	}

	path = strings.TrimSuffix(strings.Trim(path, pathSeparatorConstant), gitSuffixConstant)
	owner, repository, pathSplit := strings.Cut(path, pathSeparatorConstant)
	if !pathSplit || len(owner) == 0 || len(repository) == 0 || strings.Contains(repository, pathSeparatorConstant) {
		return RemoteURL{}, RemoteURLParseError{Input: original, Message: invalidRemoteURLMessageConstant}
	}

	return RemoteURL{Host: host, Owner: owner, Repository: repository}, nil
}
