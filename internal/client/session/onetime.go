package session

import (
	"net/url"
	"strings"
)

// One-time tokens arrive on the login route as a URL fragment
// (#token=…&source=oidc) so they are never sent to any server in a Referer
// header or access log. The magic-link flow historically used the "magiclink"
// marker; both spellings are accepted.

// OneTimeToken is a short-lived credential delivered via URL, used exactly
// once to establish a session.
type OneTimeToken struct {
	Value  string
	Source string
}

var oneTimeSources = map[string]struct{}{
	"oidc":      {},
	"magic":     {},
	"magiclink": {},
}

// ExtractOneTimeToken inspects rawURL for a one-time token carried in the
// fragment or, failing that, the query string. It returns the token, the
// URL with the credential stripped (the caller replaces the visible URL
// with it, never pushes), and whether a token was found.
//
// A token without a recognized source marker is not treated as a one-time
// token: only oidc/magic deliveries use this channel.
func ExtractOneTimeToken(rawURL string) (OneTimeToken, string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return OneTimeToken{}, rawURL, false
	}

	if tok, rest, ok := takeToken(u.Fragment); ok {
		u.Fragment = rest
		return tok, u.String(), true
	}
	if tok, rest, ok := takeToken(u.RawQuery); ok {
		u.RawQuery = rest
		return tok, u.String(), true
	}
	return OneTimeToken{}, rawURL, false
}

// takeToken parses a query-encoded string, and when it carries both a token
// and a recognized source marker, removes them and returns the remainder.
func takeToken(encoded string) (OneTimeToken, string, bool) {
	if encoded == "" {
		return OneTimeToken{}, encoded, false
	}
	values, err := url.ParseQuery(encoded)
	if err != nil {
		return OneTimeToken{}, encoded, false
	}

	token := values.Get("token")
	source := strings.ToLower(values.Get("source"))
	if token == "" {
		return OneTimeToken{}, encoded, false
	}
	if _, ok := oneTimeSources[source]; !ok {
		return OneTimeToken{}, encoded, false
	}

	values.Del("token")
	values.Del("source")
	return OneTimeToken{Value: token, Source: source}, values.Encode(), true
}
