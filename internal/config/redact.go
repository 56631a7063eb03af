package config

import "net/url"

// RedactURL masks the password in a connection URL for display.
// URLs that cannot be parsed, or that carry no password, are returned
// unchanged.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	if u.User == nil {
		return raw
	}

	if _, hasPassword := u.User.Password(); !hasPassword {
		return raw
	}

	return u.Redacted()
}
