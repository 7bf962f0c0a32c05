// Package oauth wraps the Google OAuth2 code flow. The provider is an
// external collaborator: this package only redirects, exchanges the code and
// fetches the userinfo profile.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is the identity assertion the auth service consumes.
type Profile struct {
	GoogleID    string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
}

type Google struct {
	cfg         *oauth2.Config
	userinfoURL string
}

func NewGoogle(clientID, clientSecret, redirectURL string) *Google {
	return &Google{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		userinfoURL: userinfoURL,
	}
}

func (g *Google) AuthCodeURL(state string) string {
	return g.cfg.AuthCodeURL(state)
}

// FetchProfile exchanges the callback code and reads the userinfo endpoint.
func (g *Google) FetchProfile(ctx context.Context, code string) (*Profile, error) {
	token, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth.FetchProfile: exchange: %w", err)
	}

	resp, err := g.cfg.Client(ctx, token).Get(g.userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("oauth.FetchProfile: userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oauth.FetchProfile: userinfo status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("oauth.FetchProfile: decode: %w", err)
	}

	if profile.GoogleID == "" || profile.Email == "" {
		return nil, fmt.Errorf("oauth.FetchProfile: incomplete profile")
	}

	return &profile, nil
}
