package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DetectRepository returns owner/repo of the GitHub "origin" remote of the git
// working tree containing dir.
func DetectRepository(dir string) (types.RepoFullName, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin")
	}
	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found")
	}

	url := remote.Config().URLs[0]
	name := parseRemoteURL(url)
	if !name.Valid() {
		return "", goerr.Wrap(types.ErrInvalidOption, "failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}
	return name, nil
}

// parseRemoteURL handles git@github.com:owner/repo.git, ssh://git@github.com/owner/repo
// and https://github.com/owner/repo.git.
func parseRemoteURL(url string) types.RepoFullName {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		path = url[strings.Index(url, "github.com/")+len("github.com/"):]
	default:
		return ""
	}

	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ""
	}
	return types.RepoFullName(parts[0] + "/" + parts[1])
}
