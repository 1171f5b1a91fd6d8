package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/pterm/pterm"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/auth"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

// ErrNotLoggedIn is returned by guard checks when no session is held.
var ErrNotLoggedIn = errors.New("not logged in: run `crmctl auth login` first")

// Provider yields the credential store, an authenticated SDK client and
// the process-wide session, each built lazily and at most once. It is the
// single construction point for the session; commands receive it through
// the cobra context instead of reaching for a global.
type Provider struct {
	serverURL string
	logger    *zap.Logger

	storeOnce sync.Once
	store     sdk.CredentialStore
	storeErr  error

	sdkOnce   sync.Once
	sdkClient *sdk.Client
	sdkErr    error

	sessionOnce sync.Once
	session     *sdk.Session
	sessionErr  error
}

// NewProvider constructs a Provider bound to the given server URL.
func NewProvider(serverURL string, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{serverURL: serverURL, logger: logger}
}

// CredentialStore returns the file-backed credential store.
func (p *Provider) CredentialStore() (sdk.CredentialStore, error) {
	p.storeOnce.Do(func() {
		store, err := auth.NewFileStore()
		if err != nil {
			p.storeErr = fmt.Errorf("failed to create credential store: %w", err)
			return
		}
		p.store = store
	})
	return p.store, p.storeErr
}

// SDKClient returns the SDK client. When credentials are already
// persisted the underlying http.Client carries them as an oauth2 static
// token source, so resource calls are authenticated even before the
// session restores.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.sdkOnce.Do(func() {
		store, err := p.CredentialStore()
		if err != nil {
			p.sdkErr = err
			return
		}

		httpClient := http.DefaultClient
		if creds, err := store.LoadCredentials(); err == nil {
			token := &oauth2.Token{
				AccessToken: creds.Token,
				TokenType:   creds.TokenType,
			}
			source := oauth2.StaticTokenSource(token)
			httpClient = oauth2.NewClient(context.Background(), source)
		}

		p.sdkClient = sdk.NewClient(p.serverURL,
			sdk.WithHTTPClient(httpClient),
			sdk.WithLogger(p.logger),
		)
	})
	return p.sdkClient, p.sdkErr
}

// Session returns the process-wide session, restored from persisted
// credentials on first use. A restore rejected by the server is reported
// once as a warning and leaves the session anonymous; the route guard
// then redirects to login.
func (p *Provider) Session(ctx context.Context) (*sdk.Session, error) {
	p.sessionOnce.Do(func() {
		client, err := p.SDKClient()
		if err != nil {
			p.sessionErr = err
			return
		}
		store, err := p.CredentialStore()
		if err != nil {
			p.sessionErr = err
			return
		}

		session := sdk.NewSession(client, store, sdk.WithSessionLogger(p.logger))
		session.OnInvalidate(func() {
			pterm.Info.Println("Session cleared; run `crmctl auth login` to authenticate again.")
		})

		if err := session.Restore(ctx); err != nil {
			pterm.Warning.Println("Saved session is no longer valid; please log in again.")
		}
		p.session = session
	})
	return p.session, p.sessionErr
}

// RequireSession is the route guard applied by every protected command:
// it restores the session and redirects (errors) when no token is held.
func (p *Provider) RequireSession(ctx context.Context) (*sdk.Session, error) {
	session, err := p.Session(ctx)
	if err != nil {
		return nil, err
	}
	if sdk.Authorize(session.IsAuthenticated()) == sdk.RedirectLogin {
		return nil, ErrNotLoggedIn
	}
	return session, nil
}

// RequireFeature layers the role check on top of RequireSession, hiding
// restricted command groups the way the navbar hid their entries.
func (p *Provider) RequireFeature(ctx context.Context, feature sdk.Feature) (*sdk.Session, error) {
	session, err := p.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	role, ok := session.Role()
	if !ok {
		return nil, fmt.Errorf("identity not resolved yet; try again or log in")
	}
	if !sdk.CanAccess(role, feature) {
		return nil, fmt.Errorf("role %s has no access to %s", role, feature)
	}
	return session, nil
}
