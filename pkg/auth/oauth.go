package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"

	"github.com/harrisonrobin/lifestyle/pkg/logger"
)

const (
	// ClientSecretsFile is the OAuth client downloaded from the Google Cloud
	// console, stored in the config directory.
	ClientSecretsFile = "credentials.json"

	// TokenFile caches the user's access and refresh token in the config directory.
	TokenFile = "token.json"

	// LocalhostAuthPort is where the local redirect listener runs. The
	// client's redirect URI must use the same port.
	LocalhostAuthPort = "6789"

	xdgAppName = "lifestyle"
)

// Scopes requested for reading "Daily Tasks" sheets.
var Scopes = []string{sheets.SpreadsheetsReadonlyScope}

// GetConfig creates an oauth2.Config from the client secrets file and specified scopes.
func GetConfig(scopes []string) (*oauth2.Config, error) {
	xdgConfigBase, err := GetXdgHome()
	if err != nil {
		return nil, err
	}

	clientSecretsFile := filepath.Join(xdgConfigBase, ClientSecretsFile)
	b, err := os.ReadFile(clientSecretsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file %s: %w", clientSecretsFile, err)
	}
	return ConfigFromJSON(b, scopes)
}

// ConfigFromJSON parses client secrets and pins localhost redirects to LocalhostAuthPort.
func ConfigFromJSON(b []byte, scopes []string) (*oauth2.Config, error) {
	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	config.RedirectURL = redirectURL(config.RedirectURL)
	return config, nil
}

func redirectURL(configured string) string {
	if configured == "urn:ietf:wg:oauth:2.0:oob" || configured == "" {
		fixed := fmt.Sprintf("http://localhost:%s/oauth2callback", LocalhostAuthPort)
		logger.Info("overriding out-of-band redirect URL", "redirect", fixed)
		return fixed
	}

	parsed, err := url.Parse(configured)
	if err != nil {
		logger.Warn("could not parse redirect URL, using it as is", "redirect", configured, "err", err)
		return configured
	}
	if parsed.Hostname() != "localhost" && parsed.Hostname() != "127.0.0.1" {
		logger.Warn("redirect URL is not a localhost callback", "redirect", configured)
		return configured
	}
	if parsed.Port() != LocalhostAuthPort {
		if parsed.Port() != "" {
			logger.Warn("redirect port differs from listener port, forcing listener port",
				"configured", parsed.Port(), "port", LocalhostAuthPort)
		}
		parsed.Host = net.JoinHostPort(parsed.Hostname(), LocalhostAuthPort)
	}
	return parsed.String()
}

// GetClient retrieves an authenticated *http.Client.
// It loads a cached token, or runs the browser authorization flow when there is none.
// The returned client refreshes expired access tokens on its own.
func GetClient(ctx context.Context, scopes []string) (*http.Client, error) {
	config, err := GetConfig(scopes)
	if err != nil {
		return nil, err
	}

	xdgConfigBase, err := GetXdgHome()
	if err != nil {
		return nil, err
	}

	tokenFile := filepath.Join(xdgConfigBase, TokenFile)
	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		logger.Info("no cached token, starting web authorization flow", "token", tokenFile)
		tok, err = getTokenFromWeb(ctx, config)
		if err != nil {
			return nil, fmt.Errorf("failed to get token from web: %w", err)
		}
		if err := saveToken(tokenFile, tok); err != nil {
			logger.Warn("could not cache token", "token", tokenFile, "err", err)
		}
	}

	// Re-save when the token source refreshed the access token.
	src := config.TokenSource(ctx, tok)
	current, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	if current.AccessToken != tok.AccessToken || current.RefreshToken != tok.RefreshToken {
		logger.Debug("token was refreshed, saving", "token", tokenFile)
		if err := saveToken(tokenFile, current); err != nil {
			logger.Warn("could not cache refreshed token", "token", tokenFile, "err", err)
		}
	}

	return oauth2.NewClient(ctx, src), nil
}

// getTokenFromWeb runs the authorization code flow, capturing the redirect on
// a local listener.
func getTokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%s", LocalhostAuthPort))
	if err != nil {
		return nil, fmt.Errorf("failed to start listener on port %s: %w", LocalhostAuthPort, err)
	}
	defer listener.Close()

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "Authorization code not found", http.StatusBadRequest)
				select {
				case errCh <- errors.New("authorization code not found in redirect URL"):
				default:
				}
				return
			}
			fmt.Fprintf(w, "Authentication successful! You can close this window.")
			select {
			case codeCh <- code:
			default:
			}
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		logger.Debug("listening for OAuth2 redirect", "redirect", config.RedirectURL)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case errCh <- fmt.Errorf("HTTP server error: %w", err):
			default:
			}
		}
	}()
	defer server.Shutdown(context.Background())

	// AccessTypeOffline is what makes Google return a refresh token.
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Printf("Please open the following URL in your browser to authorize lifestyle:\n%s\n", authURL)
	logger.Info("waiting for authorization code")

	select {
	case authCode := <-codeCh:
		exchangeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		tok, err := config.Exchange(exchangeCtx, authCode)
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve token from Google: %w", err)
		}
		return tok, nil
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(5 * time.Minute):
		return nil, errors.New("authorization timed out, please try again")
	}
}

// tokenFromFile reads an oauth2.Token from a JSON file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token from file %s: %w", file, err)
	}
	return tok, nil
}

// saveToken writes token to path, readable by the owner only.
func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("could not create token directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth token to %s: %w", path, err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// ResetToken removes the cached token so the next GetClient call reauthorizes.
func ResetToken() error {
	xdgConfigBase, err := GetXdgHome()
	if err != nil {
		return err
	}
	tokenFile := filepath.Join(xdgConfigBase, TokenFile)
	if err := os.Remove(tokenFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete token file '%s': %w", tokenFile, err)
	}
	return nil
}

func GetXdgHome() (string, error) {
	xdgHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(xdgHome, ".config", xdgAppName), nil
}
