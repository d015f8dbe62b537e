package validators

import "net/url"

// IsMeetingLinkValid aceita apenas URL absoluta http(s) com host
func IsMeetingLinkValid(raw string) bool {
	if raw == "" {
		return false
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}
