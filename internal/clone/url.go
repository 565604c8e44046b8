package clone

import (
	"fmt"
	"net/url"
	"strings"
)

// AuthenticatedURL returns the remote URL for location with username and
// token as userinfo. Locations without a scheme are fetched over https.
// With only a token, the token is the username, as GitHub expects.
func AuthenticatedURL(location, username, token string) (string, error) {
	raw := location
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "file" {
		return u.String(), nil
	}
	if u.Host == "" {
		return "", fmt.Errorf("repository location %q has no host", location)
	}

	switch {
	case username != "" && token != "":
		u.User = url.UserPassword(username, token)
	case token != "":
		u.User = url.User(token)
	case username != "":
		u.User = url.User(username)
	}

	return u.String(), nil
}
