package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/leetvault/leetvault/pkg/domain/interfaces"
	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/infra"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

const (
	msgLoadFailed         = "Failed to load your account. Please try again."
	msgSaveFailed         = "Failed to save credentials. Please try again."
	msgSaved              = "LeetCode credentials saved successfully!"
	msgInstallLinkFailed  = "Failed to get GitHub installation URL. Please try again."
	msgBrowserFailed      = "Could not open the browser. Open the installation URL manually."
	msgActivateFailed     = "Failed to activate repository. Please try again."
	msgDeactivateFailed   = "Failed to deactivate repository. Please try again."
	msgCredentialsInvalid = "Session cookie, CSRF token and username are all required."
)

// Orchestrator sequences provisioning, credential and repository operations
// for one signed-in account and keeps the resulting view state.
//
// The lock is never held across a backend call. Mutating actions are guarded
// so that a duplicate request made while one is in flight is rejected with
// types.ErrActionInFlight and issues no call.
type Orchestrator struct {
	clients *infra.Clients
	email   types.Email

	mu sync.Mutex

	phase      model.Phase
	snapshot   *model.AccountSnapshot
	credential model.CredentialState
	creds      model.Credentials
	github     model.GitHubState
	installURL string
	repos      []*model.Repository
	discovered bool
	listing    bool
	notice     string

	saving        guard
	activating    guard
	disconnecting guard

	// loadGen identifies the latest Start, credentialGen the latest credential
	// fetch or save and discoveryGen the latest discovery. Responses carrying an
	// older generation are discarded.
	loadGen       uint64
	credentialGen uint64
	discoveryGen  uint64

	consumedInstallation types.InstallationID
}

var _ interfaces.Onboarding = (*Orchestrator)(nil)

// NewOrchestrator returns an orchestrator for identity. Call Start to load the account.
func (x *UseCase) NewOrchestrator(identity *model.Identity) *Orchestrator {
	return &Orchestrator{
		clients:    x.clients,
		email:      identity.Email.Normalize(),
		phase:      model.PhaseIdle,
		credential: model.CredentialViewing,
		github:     model.GitHubDisconnected,
	}
}

func (x *Orchestrator) logger(ctx context.Context) *slog.Logger {
	return logging.From(ctx).With(slog.Any("email", x.email))
}

// Start provisions the account and loads credentials and repositories as the
// snapshot requires. Credential and repository loads are fail-open; only a
// provisioning failure is returned, leaving the phase at load_failed.
func (x *Orchestrator) Start(ctx context.Context) error {
	x.mu.Lock()
	x.loadGen++
	gen := x.loadGen
	x.credentialGen++
	credentialGen := x.credentialGen
	x.discoveryGen++
	x.phase = model.PhaseLoading
	x.listing = false
	x.notice = ""
	x.mu.Unlock()

	logger := x.logger(ctx)
	logger.Debug("provisioning account")

	snapshot, err := x.clients.AccountProvisioner().Ensure(ctx, x.email)
	if err != nil {
		x.mu.Lock()
		if gen == x.loadGen {
			x.phase = model.PhaseLoadFailed
			x.notice = types.UserMessage(err, msgLoadFailed)
		}
		x.mu.Unlock()
		return goerr.Wrap(err, "failed to load account")
	}

	x.mu.Lock()
	if gen != x.loadGen {
		x.mu.Unlock()
		logger.Debug("discarding superseded provisioning result")
		return nil
	}
	x.snapshot = snapshot
	x.creds = model.Credentials{}
	x.repos = nil
	x.discovered = false

	if snapshot.IsNewUser {
		x.phase = model.PhaseNewUserSetup
		x.credential = model.CredentialEditing
	} else {
		x.phase = model.PhaseReturningUser
		x.credential = model.CredentialViewing
	}

	var discoveryGen uint64
	switch {
	case snapshot.Activation != nil:
		x.github = model.GitHubActivated
	case snapshot.HasInstallation():
		x.github = model.GitHubDiscovering
		x.listing = true
		discoveryGen = x.discoveryGen
	case x.github == model.GitHubLinkRequested && x.installURL != "":
		// keep the pending link until the installation completes
	default:
		x.github = model.GitHubDisconnected
	}
	x.mu.Unlock()

	logger.Info("account loaded",
		slog.Bool("new_user", snapshot.IsNewUser),
		slog.Bool("github_connected", snapshot.GitHubConnected),
		slog.Bool("activated", snapshot.Activation != nil),
	)

	var eg errgroup.Group
	if !snapshot.IsNewUser {
		eg.Go(func() error {
			x.loadCredentials(ctx, credentialGen)
			return nil
		})
	}
	if discoveryGen != 0 {
		eg.Go(func() error {
			x.discover(ctx, snapshot.InstallationID, discoveryGen)
			return nil
		})
	}
	_ = eg.Wait()

	return nil
}

// loadCredentials fetches stored credentials. Anything but a configured record
// leaves an empty form in editing state. The result is dropped if a later fetch
// or a save happened meanwhile.
func (x *Orchestrator) loadCredentials(ctx context.Context, gen uint64) {
	creds, err := x.clients.CredentialStore().Fetch(ctx, x.email)
	if err != nil {
		x.logger(ctx).Warn("failed to fetch credentials, falling back to empty form", slog.Any("error", err))
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if gen != x.credentialGen {
		x.logger(ctx).Debug("discarding stale credentials",
			slog.Uint64("generation", gen),
			slog.Uint64("current", x.credentialGen),
		)
		return
	}

	if err != nil || creds == nil || !creds.Configured {
		x.creds = model.Credentials{}
		x.credential = model.CredentialEditing
		return
	}
	x.creds = *creds
	x.credential = model.CredentialViewing
}

// discover lists repositories of the installation. Failure degrades to an
// empty list. The result is dropped if gen is no longer current.
func (x *Orchestrator) discover(ctx context.Context, installationID types.InstallationID, gen uint64) {
	logger := x.logger(ctx)

	repos, err := x.clients.GitHubLink().ListRepositories(ctx, installationID)
	if err != nil {
		logger.Error("failed to list repositories",
			slog.Any("installation_id", installationID),
			slog.Any("error", err),
		)
		repos = nil
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if gen != x.discoveryGen {
		logger.Debug("discarding stale repository list",
			slog.Uint64("generation", gen),
			slog.Uint64("current", x.discoveryGen),
		)
		return
	}

	x.repos = repos
	x.discovered = true
	x.listing = false
	if x.github == model.GitHubDiscovering {
		x.github = model.GitHubRepoChoice
	}
}

// loaded reports whether the account snapshot is usable. Caller holds the lock.
func (x *Orchestrator) loaded() error {
	if x.snapshot == nil || (x.phase != model.PhaseNewUserSetup && x.phase != model.PhaseReturningUser) {
		return goerr.Wrap(types.ErrInvalidOption, "account is not loaded", goerr.V("phase", x.phase))
	}
	return nil
}

func (x *Orchestrator) release(g *guard) {
	x.mu.Lock()
	g.release()
	x.mu.Unlock()
}

func (x *Orchestrator) EditCredentials() {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.loaded() != nil {
		return
	}
	x.credential = model.CredentialEditing
	x.notice = ""
}

// CancelEdit leaves the form and reloads the stored credentials; an account
// without credentials goes straight back to editing.
func (x *Orchestrator) CancelEdit(ctx context.Context) error {
	x.mu.Lock()
	if err := x.loaded(); err != nil {
		x.mu.Unlock()
		return err
	}
	x.credential = model.CredentialViewing
	x.notice = ""
	x.credentialGen++
	gen := x.credentialGen
	x.mu.Unlock()

	x.loadCredentials(ctx, gen)
	return nil
}

func (x *Orchestrator) SaveCredentials(ctx context.Context, creds model.Credentials) error {
	x.mu.Lock()
	if err := x.loaded(); err != nil {
		x.mu.Unlock()
		return err
	}
	if err := creds.Validate(); err != nil {
		x.notice = msgCredentialsInvalid
		x.mu.Unlock()
		return err
	}
	if !x.saving.acquire("credentials") {
		x.mu.Unlock()
		return goerr.Wrap(types.ErrActionInFlight, "credentials are already being saved")
	}
	x.notice = ""
	x.mu.Unlock()
	defer x.release(&x.saving)

	saved, err := x.clients.CredentialStore().Save(ctx, x.email, creds)

	x.mu.Lock()
	defer x.mu.Unlock()
	if err != nil {
		x.notice = types.UserMessage(err, msgSaveFailed)
		return goerr.Wrap(err, "failed to save credentials")
	}

	x.credentialGen++
	x.creds = *saved
	x.creds.Configured = true
	x.credential = model.CredentialViewing
	x.notice = msgSaved
	x.logger(ctx).Info("credentials saved", slog.Any("credentials", x.creds))

	return nil
}

// ConnectGitHub requests the App installation URL and opens it when a browser
// is configured. The URL is returned either way.
func (x *Orchestrator) ConnectGitHub(ctx context.Context) (string, error) {
	x.mu.Lock()
	if err := x.loaded(); err != nil {
		x.mu.Unlock()
		return "", err
	}
	x.notice = ""
	x.mu.Unlock()

	link, err := x.clients.GitHubLink().RequestInstallLink(ctx, x.email)

	x.mu.Lock()
	if err != nil {
		x.notice = types.UserMessage(err, msgInstallLinkFailed)
		x.mu.Unlock()
		return "", goerr.Wrap(err, "failed to request install link")
	}
	x.installURL = link
	if x.github == model.GitHubDisconnected {
		x.github = model.GitHubLinkRequested
	}
	x.mu.Unlock()

	if browser := x.clients.Browser(); browser != nil {
		if err := browser.Open(link); err != nil {
			x.logger(ctx).Warn("failed to open browser", slog.Any("error", err))
			x.mu.Lock()
			x.notice = msgBrowserFailed
			x.mu.Unlock()
		}
	}

	return link, nil
}

// CompleteInstallation consumes the installation ID handed back by the
// installation flow and reloads the account. A repeated ID is ignored unless
// the reload it triggered failed.
func (x *Orchestrator) CompleteInstallation(ctx context.Context, installationID types.InstallationID) error {
	if installationID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
	}

	x.mu.Lock()
	if installationID == x.consumedInstallation {
		x.mu.Unlock()
		return nil
	}
	x.consumedInstallation = installationID
	x.mu.Unlock()

	x.logger(ctx).Info("GitHub installation completed", slog.Any("installation_id", installationID))
	if err := x.Start(ctx); err != nil {
		x.mu.Lock()
		if x.consumedInstallation == installationID {
			x.consumedInstallation = ""
		}
		x.mu.Unlock()
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if x.snapshot != nil && x.snapshot.InstallationID != installationID {
		x.logger(ctx).Warn("backend reports a different installation",
			slog.Any("returned", installationID),
			slog.Any("stored", x.snapshot.InstallationID),
		)
	}
	if x.github == model.GitHubLinkRequested {
		x.github = model.GitHubDisconnected
	}
	x.installURL = ""
	return nil
}

// RefreshRepositories re-runs discovery. It is refused while an activation exists.
func (x *Orchestrator) RefreshRepositories(ctx context.Context) error {
	x.mu.Lock()
	if err := x.loaded(); err != nil {
		x.mu.Unlock()
		return err
	}
	if !x.snapshot.HasInstallation() {
		x.mu.Unlock()
		return goerr.Wrap(types.ErrInvalidOption, "GitHub is not connected")
	}
	if x.snapshot.Activation != nil || x.disconnecting.held {
		x.mu.Unlock()
		return goerr.Wrap(types.ErrInvalidOption, "a repository is already activated")
	}
	x.discoveryGen++
	gen := x.discoveryGen
	installationID := x.snapshot.InstallationID
	x.github = model.GitHubDiscovering
	x.listing = true
	x.notice = ""
	x.mu.Unlock()

	x.discover(ctx, installationID, gen)
	return nil
}

// ActivateRepository makes repo the account's sync target in one round trip.
// Nothing changes locally until the backend answers; on success the candidate
// list is dropped, on failure it is kept so the user can pick again.
func (x *Orchestrator) ActivateRepository(ctx context.Context, repo types.RepoFullName, branch types.BranchName) error {
	x.mu.Lock()
	if err := x.loaded(); err != nil {
		x.mu.Unlock()
		return err
	}
	input := &model.ActivateInput{
		Email:          x.email,
		InstallationID: x.snapshot.InstallationID,
		RepoFullName:   repo,
		DefaultBranch:  x.branchFor(repo, branch),
	}
	if err := input.Validate(); err != nil {
		x.mu.Unlock()
		return err
	}
	if x.disconnecting.held {
		x.mu.Unlock()
		return goerr.Wrap(types.ErrActionInFlight, "repository is being deactivated")
	}
	if !x.activating.acquire(string(repo)) {
		busy := x.activating.key
		x.mu.Unlock()
		return goerr.Wrap(types.ErrActionInFlight, "repository activation is in flight",
			goerr.V("requested", repo),
			goerr.V("in_flight", busy),
		)
	}
	x.notice = ""
	x.mu.Unlock()
	defer x.release(&x.activating)

	activation, err := x.clients.GitHubLink().Activate(ctx, input)

	x.mu.Lock()
	defer x.mu.Unlock()
	if err != nil {
		x.notice = types.UserMessage(err, msgActivateFailed)
		return goerr.Wrap(err, "failed to activate repository")
	}

	next := x.snapshot.WithActivation(activation)
	x.snapshot = &next
	x.github = model.GitHubActivated
	x.repos = nil
	x.discovered = false
	x.listing = false
	x.discoveryGen++
	x.logger(ctx).Info("repository activated",
		slog.Any("repo", activation.RepoFullName),
		slog.Any("branch", activation.DefaultBranch),
	)

	return nil
}

// branchFor picks the branch to activate: the explicit one, else the default
// branch reported by discovery, else main. Caller holds the lock.
func (x *Orchestrator) branchFor(repo types.RepoFullName, branch types.BranchName) types.BranchName {
	if branch != "" {
		return branch
	}
	for _, r := range x.repos {
		if r.FullName == repo {
			return r.DefaultBranch.OrDefault()
		}
	}
	return types.DefaultBranch
}

// DeactivateRepository releases the activation and restarts discovery when an
// installation is known. On failure the activation stays as it was.
func (x *Orchestrator) DeactivateRepository(ctx context.Context) error {
	x.mu.Lock()
	if err := x.loaded(); err != nil {
		x.mu.Unlock()
		return err
	}
	if x.snapshot.Activation == nil {
		x.mu.Unlock()
		return goerr.Wrap(types.ErrInvalidOption, "no repository is activated")
	}
	if x.activating.held {
		x.mu.Unlock()
		return goerr.Wrap(types.ErrActionInFlight, "repository activation is in flight")
	}
	if !x.disconnecting.acquire(string(x.snapshot.Activation.RepoFullName)) {
		x.mu.Unlock()
		return goerr.Wrap(types.ErrActionInFlight, "repository is already being deactivated")
	}
	x.github = model.GitHubDeactivating
	x.discoveryGen++
	x.notice = ""
	x.mu.Unlock()

	err := x.clients.GitHubLink().Deactivate(ctx, x.email)

	x.mu.Lock()
	// re-discovery below runs without the guard
	x.disconnecting.release()
	if err != nil {
		x.github = model.GitHubActivated
		x.notice = types.UserMessage(err, msgDeactivateFailed)
		x.mu.Unlock()
		return goerr.Wrap(err, "failed to deactivate repository")
	}

	next := x.snapshot.WithActivation(nil)
	x.snapshot = &next
	x.repos = nil
	x.discovered = false

	var gen uint64
	installationID := next.InstallationID
	if next.HasInstallation() {
		x.discoveryGen++
		gen = x.discoveryGen
		x.github = model.GitHubDiscovering
		x.listing = true
	} else {
		x.github = model.GitHubDisconnected
	}
	x.mu.Unlock()

	x.logger(ctx).Info("repository deactivated")
	if gen != 0 {
		x.discover(ctx, installationID, gen)
	}
	return nil
}

// View returns a copy of the current state.
func (x *Orchestrator) View() model.ViewState {
	x.mu.Lock()
	defer x.mu.Unlock()

	v := model.ViewState{
		Email:          x.email,
		Phase:          x.phase,
		Credential:     x.credential,
		Credentials:    model.NewCredentialsView(x.creds),
		GitHub:         x.github,
		InstallURL:     x.installURL,
		Repositories:   make([]model.RepositoryView, 0, len(x.repos)),
		EmptyDiscovery: x.discovered && len(x.repos) == 0 && x.github == model.GitHubRepoChoice,
		Saving:         x.saving.held,
		ConnectingRepo: types.RepoFullName(x.activating.key),
		Disconnecting:  x.disconnecting.held,
		LoadingRepos:   x.listing,
		Notice:         x.notice,
	}
	if x.snapshot != nil {
		v.IsNewUser = x.snapshot.IsNewUser
		v.InstallationID = x.snapshot.InstallationID
		v.Activation = model.NewActivationView(x.snapshot.Activation)
	}
	for _, r := range x.repos {
		v.Repositories = append(v.Repositories, model.NewRepositoryView(*r))
	}
	return v
}
