package webhook

// SecurityConfig holds inbound webhook security settings
type SecurityConfig struct {
	SigningSecret   string   // Slack app signing secret
	AllowedIPs      []string // IP or CIDR allow-list (optional)
	RateLimitPerMin int      // Max requests per minute per source, 0 disables
}
