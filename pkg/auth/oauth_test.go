package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const credentials = `{
	"installed": {
		"client_id": "client.apps.googleusercontent.com",
		"client_secret": "secret",
		"redirect_uris": ["http://localhost"],
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token"
	}
}`

func TestConfigFromJSON(t *testing.T) {
	cfg, err := ConfigFromJSON([]byte(credentials), Scopes)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:6789", cfg.RedirectURL)
	assert.Equal(t, []string{"https://www.googleapis.com/auth/spreadsheets.readonly"}, cfg.Scopes)

	_, err = ConfigFromJSON([]byte(`{}`), Scopes)
	assert.Error(t, err)
}

func TestRedirectURL(t *testing.T) {
	assert.Equal(t, "http://localhost:6789/oauth2callback", redirectURL("urn:ietf:wg:oauth:2.0:oob"))
	assert.Equal(t, "http://127.0.0.1:6789/cb", redirectURL("http://127.0.0.1:8080/cb"))
	assert.Equal(t, "http://localhost:6789", redirectURL("http://localhost:6789"))
	assert.Equal(t, "https://example.com/cb", redirectURL("https://example.com/cb"))
}

func TestTokenCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifestyle", TokenFile)
	tok := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, saveToken(path, tok))

	got, err := tokenFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "access", got.AccessToken)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.True(t, tok.Expiry.Equal(got.Expiry))

	_, err = tokenFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
