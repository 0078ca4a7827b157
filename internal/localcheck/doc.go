// Package localcheck answers branch existence questions through local git
// plumbing, without GitHub API access.
package localcheck
