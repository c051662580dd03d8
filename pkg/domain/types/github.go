package types

import "strings"

type (
	InstallationID string
	RepoFullName   string
	BranchName     string
)

const DefaultBranch BranchName = "main"

func (x InstallationID) String() string { return string(x) }

func (x RepoFullName) String() string { return string(x) }

// Owner returns the part before the slash, or empty string if the name is malformed.
func (x RepoFullName) Owner() string {
	owner, _, ok := strings.Cut(string(x), "/")
	if !ok {
		return ""
	}
	return owner
}

// Name returns the part after the slash, or empty string if the name is malformed.
func (x RepoFullName) Name() string {
	_, name, ok := strings.Cut(string(x), "/")
	if !ok {
		return ""
	}
	return name
}

func (x RepoFullName) Valid() bool {
	owner, name := x.Owner(), x.Name()
	return owner != "" && name != "" && !strings.Contains(name, "/")
}

func (x BranchName) OrDefault() BranchName {
	if x == "" {
		return DefaultBranch
	}
	return x
}
