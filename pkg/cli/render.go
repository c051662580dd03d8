package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

var (
	headingColor = color.New(color.Bold)
	okColor      = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	mutedColor   = color.New(color.FgHiBlack)
)

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode output")
	}
	return nil
}

func renderView(w io.Writer, v model.ViewState) {
	headingColor.Fprintf(w, "Account: %s\n", v.Email)
	if v.IsNewUser {
		fmt.Fprintln(w, "  Welcome! Finish the setup below to start syncing.")
	}

	renderCredentials(w, v)
	renderGitHub(w, v)
	renderNotice(w, v)
}

func renderCredentials(w io.Writer, v model.ViewState) {
	fmt.Fprint(w, "LeetCode: ")
	if !v.Credentials.Configured {
		warnColor.Fprintln(w, "not configured")
		mutedColor.Fprintln(w, "  run `leetvault credentials set` to add your session cookie and CSRF token")
		return
	}
	okColor.Fprintf(w, "configured as %s\n", v.Credentials.Username)
	mutedColor.Fprintf(w, "  session cookie %s\n", v.Credentials.SessionCookie)
}

func renderGitHub(w io.Writer, v model.ViewState) {
	fmt.Fprint(w, "GitHub:   ")
	switch v.GitHub {
	case model.GitHubActivated:
		a := v.Activation
		okColor.Fprintf(w, "syncing to %s (%s)\n", a.RepoFullName, a.DefaultBranch)
		mutedColor.Fprintf(w, "  activated at %s\n", a.ActivatedAt.Format("2006-01-02 15:04"))
		if a.LastSyncAt != nil {
			mutedColor.Fprintf(w, "  last sync at %s\n", a.LastSyncAt.Format("2006-01-02 15:04"))
		}

	case model.GitHubRepoChoice, model.GitHubDiscovering:
		fmt.Fprintf(w, "connected (installation %s), no repository activated\n", v.InstallationID)
		if v.EmptyDiscovery {
			warnColor.Fprintln(w, "  No repositories are available to this installation.")
			mutedColor.Fprintln(w, "  Grant the app access to a repository on GitHub, then run `leetvault repo list`.")
			return
		}
		mutedColor.Fprintf(w, "  %d repositories available, run `leetvault repo activate <owner/repo>`\n", len(v.Repositories))

	case model.GitHubLinkRequested:
		warnColor.Fprintln(w, "installation pending")
		if v.InstallURL != "" {
			mutedColor.Fprintf(w, "  %s\n", v.InstallURL)
		}

	case model.GitHubDeactivating:
		warnColor.Fprintln(w, "deactivating")

	default:
		warnColor.Fprintln(w, "not connected")
		mutedColor.Fprintln(w, "  run `leetvault github connect` to install the GitHub App")
	}
}

func renderRepositories(w io.Writer, repos []model.RepositoryView) {
	for _, r := range repos {
		visibility := "public"
		if r.Private {
			visibility = "private"
		}
		headingColor.Fprintf(w, "%s", r.FullName)
		mutedColor.Fprintf(w, "  [%s, %s]", visibility, r.DefaultBranch)
		if r.Language != "" {
			mutedColor.Fprintf(w, " %s", r.Language)
		}
		fmt.Fprintln(w)
		if r.Description != "" {
			fmt.Fprintf(w, "  %s\n", r.Description)
		}
	}
}

func renderNotice(w io.Writer, v model.ViewState) {
	if v.Notice != "" {
		fmt.Fprintln(w)
		warnColor.Fprintln(w, v.Notice)
	}
}
