// Package gitrepo parses git remote URLs and resolves the GitHub repository
// backing the current working directory.
package gitrepo
