package resumeapi

import "github.com/artem13815/resumeboard/pkg/settings"

// Follow keeps the client pointed at the backend named in the settings.
// Empty apiBaseUrl/apiToken fall back to the given values. Returns the subscription id.
func (c *Client) Follow(sm *settings.Manager, fallbackURL, fallbackToken string) int {
	apply := func(s settings.Settings) {
		base, token := s.APIBaseURL, s.APIToken
		if base == "" {
			base = fallbackURL
		}
		if token == "" {
			token = fallbackToken
		}
		c.Configure(base, token)
	}
	apply(sm.Current())
	return sm.Subscribe(apply)
}
