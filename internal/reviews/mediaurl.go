package reviews

import (
	"bus2ride/pkg/serrors"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

// trackingParams are dropped from media links so the same photo shared from
// different campaigns is stored once.
var trackingParams = []string{"fbclid", "gclid", "igshid", "mc_cid", "mc_eid"} //nolint: gochecknoglobals

// NormalizeMediaURL returns the canonical form of a review photo or video link:
//   - only http and https with a host are accepted
//   - scheme and host are lower-cased and default ports dropped
//   - the path is cleaned and loses its trailing slash (except "/")
//   - utm_* and click-id parameters are removed, the rest sorted
//   - the fragment is removed
func NormalizeMediaURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "media url must be an http(s) url")
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || u.User != nil {
		return "", serrors.With(serrors.ErrBadRequest, "media url must be an http(s) url")
	}

	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
		}
	}
	u.Host = host

	cleaned := path.Clean("/" + u.Path)
	if cleaned != "/" {
		cleaned = strings.TrimRight(cleaned, "/")
	}
	u.Path = cleaned
	u.RawPath = ""

	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			if strings.HasPrefix(strings.ToLower(k), "utm_") || containsFold(trackingParams, k) {
				q.Del(k)

				continue
			}
			sort.Strings(q[k])
		}
		// Encode sorts keys
		u.RawQuery = q.Encode()
	}

	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), nil
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}

	return false
}
