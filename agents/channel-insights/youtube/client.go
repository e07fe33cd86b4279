package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/aref-vc/youtube-content-analyzer/shared/config"
	"github.com/aref-vc/youtube-content-analyzer/shared/logging"
)

type Client struct {
	service     *youtube.Service
	config      *config.YouTubeConfig
	oauthConfig *oauth2.Config
	token       *oauth2.Token
	logger      zerolog.Logger
}

// NewClient authenticates with the API key when one is configured, and with
// the OAuth device flow otherwise.
func NewClient(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	logger := logging.WithComponent("youtube")

	if cfg.APIKey != "" {
		service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube service: %w", err)
		}
		logger.Info().Msg("using API key authentication")
		return &Client{service: service, config: cfg, logger: logger}, nil
	}

	// Create OAuth2 config for the device authorization flow.
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       []string{youtube.YoutubeReadonlyScope},
		Endpoint:     google.Endpoint,
	}

	token, err := getToken(oauthConfig, cfg.TokenFile, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to get OAuth token: %w", err)
	}

	// Create token source that auto-refreshes and saves token
	tokenSource := &tokenSaver{
		config:    oauthConfig,
		token:     token,
		tokenFile: cfg.TokenFile,
		logger:    logger,
	}

	service, err := youtube.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, tokenSource)))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{
		service:     service,
		config:      cfg,
		oauthConfig: oauthConfig,
		token:       token,
		logger:      logger,
	}, nil
}

// NewClientWithService wraps an existing service, e.g. one pointed at a
// different endpoint.
func NewClientWithService(service *youtube.Service, cfg *config.YouTubeConfig) *Client {
	return &Client{
		service: service,
		config:  cfg,
		logger:  logging.WithComponent("youtube"),
	}
}

// tokenSaver wraps an oauth2.TokenSource to automatically save refreshed tokens.
type tokenSaver struct {
	config    *oauth2.Config
	token     *oauth2.Token
	tokenFile string
	logger    zerolog.Logger
	mu        sync.Mutex // Protects concurrent token refresh operations
}

// Token returns the current token, refreshing and persisting it when needed.
func (ts *tokenSaver) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	newToken, err := ts.config.TokenSource(context.Background(), ts.token).Token()
	if err != nil {
		return nil, err
	}

	if newToken.AccessToken != ts.token.AccessToken {
		ts.logger.Info().Msg("token refreshed, saving to file")
		ts.token = newToken
		if err := saveToken(ts.tokenFile, newToken); err != nil {
			ts.logger.Warn().Err(err).Msg("failed to save refreshed token")
		}
	}

	return newToken, nil
}

// getToken loads a token from disk, keeping expired tokens that carry a
// refresh token, and falls back to the device flow otherwise.
func getToken(config *oauth2.Config, tokenFile string, logger zerolog.Logger) (*oauth2.Token, error) {
	tok, err := tokenFromFile(tokenFile)
	if err == nil {
		if tok.RefreshToken != "" {
			logger.Info().Time("expires", tok.Expiry).Msg("loaded token from file")
			return tok, nil
		}
		if tok.Valid() {
			return tok, nil
		}
	}

	logger.Info().Msg("requesting new token via device authorization")
	tok, err = getTokenFromWeb(config, logger)
	if err != nil {
		return nil, err
	}

	if err := saveToken(tokenFile, tok); err != nil {
		logger.Warn().Err(err).Msg("failed to save token")
	}
	return tok, nil
}

func getTokenFromWeb(config *oauth2.Config, logger zerolog.Logger) (*oauth2.Token, error) {
	tok, err := getTokenWithDeviceFlow(config)
	if err == nil {
		return tok, nil
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		logger.Error().
			Str("status", retrieveErr.Response.Status).
			Str("body", strings.TrimSpace(string(retrieveErr.Body))).
			Msg("device authorization response failed")
	} else {
		logger.Error().Err(err).Msg("device authorization flow failed")
	}

	return nil, fmt.Errorf("device authorization failed: %w. Ensure your OAuth client is created as 'TVs and Limited Input devices' and that the YouTube Data API v3 is enabled", err)
}

func getTokenWithDeviceFlow(config *oauth2.Config) (*oauth2.Token, error) {
	ctx := context.Background()

	resp, err := config.DeviceAuth(ctx, oauth2.AccessTypeOffline)
	if err != nil {
		return nil, fmt.Errorf("unable to start device authorization: %w", err)
	}

	printDevicePrompt(os.Stderr, resp)

	tok, err := config.DeviceAccessToken(ctx, resp, oauth2.AccessTypeOffline)
	if err != nil {
		return nil, fmt.Errorf("device authorization did not complete: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Authorization successful.")
	return tok, nil
}

// printDevicePrompt tells the operator where to enter the device code.
func printDevicePrompt(w io.Writer, resp *oauth2.DeviceAuthResponse) {
	rule := strings.Repeat("=", 72)
	fmt.Fprintf(w, "\n%s\nYouTube authorization required\n%s\n", rule, rule)
	fmt.Fprintf(w, "Visit %s and enter the code %s\n", resp.VerificationURI, resp.UserCode)
	if complete := strings.TrimSpace(resp.VerificationURIComplete); complete != "" {
		fmt.Fprintf(w, "or open %s\n", complete)
	}
	fmt.Fprintf(w, "Waiting for authorization (Ctrl+C to cancel)...\n%s\n", rule)
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

func saveToken(path string, token *oauth2.Token) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("unable to create token directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to encode oauth token: %w", err)
	}
	return nil
}

// RefreshToken proactively refreshes the OAuth token before a scheduled run.
// It is a no-op under API key authentication.
func (c *Client) RefreshToken() error {
	if c.oauthConfig == nil || c.token == nil {
		return nil
	}

	newToken, err := c.oauthConfig.TokenSource(context.Background(), c.token).Token()
	if err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}

	if newToken.AccessToken != c.token.AccessToken {
		c.logger.Info().Msg("token refreshed, saving to file")
		c.token = newToken
		if err := saveToken(c.config.TokenFile, newToken); err != nil {
			return fmt.Errorf("failed to save refreshed token: %w", err)
		}
	} else {
		c.logger.Debug().Time("expires", c.token.Expiry).Msg("token still valid")
	}

	return nil
}
