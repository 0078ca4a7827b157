// Package visibility implements the GitHub-API-backed repository status
// checker. It resolves whether a repository is public or private, whether a
// branch exists and is protected, and renders a plain-text report. All
// lookups are sequential, blocking, and performed exactly once per run.
package visibility
