package parse

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// RegistrableDomain reduces a scraped website URL to its bare
// registrable domain: no scheme, no port, no path, and no subdomains
// ("https://www.about.gitlab.com/careers" -> "gitlab.com"). The eTLD+1
// policy is deliberate; the provider mixes marketing subdomains into
// websiteUrl and candidate emails live on the apex domain.
func RegistrableDomain(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	} else {
		// Bare hosts like "www.example.com/about" parse without a Host;
		// take everything before the first path separator.
		host, _, _ = strings.Cut(host, "/")
		host, _, _ = strings.Cut(host, ":")
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))

	if domain, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return domain
	}
	return strings.TrimPrefix(host, "www.")
}
