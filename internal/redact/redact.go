// Package redact masks secret-looking values before they reach logs or
// terminal output. Stored command environments routinely carry tokens
// and passwords; runr shows and logs them masked.
package redact

import "strings"

// secretKeyPatterns contains substrings indicating an environment
// variable likely holds sensitive data. Matched case-insensitively.
var secretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// tokenPrefixes contains known API token prefixes that mark a value as
// sensitive regardless of its variable name.
var tokenPrefixes = []string{
	"ghp_",  // GitHub personal access token
	"gho_",  // GitHub OAuth token
	"ghs_",  // GitHub server-to-server token
	"sk-",   // OpenAI/Anthropic keys
	"AKIA",  // AWS access key prefix
	"xoxb-", // Slack bot token
	"xoxp-", // Slack user token
}

// Env returns a copy of env with sensitive values masked. A value is
// masked when its key matches a secret pattern or the value itself
// starts with a known token prefix.
func Env(env map[string]string) map[string]string {
	if env == nil {
		return nil
	}
	masked := make(map[string]string, len(env))
	for k, v := range env {
		if SensitiveKey(k) || tokenValue(v) {
			masked[k] = Value(v)
		} else {
			masked[k] = v
		}
	}
	return masked
}

// Value masks a sensitive string. Short values are fully masked;
// longer ones keep their last 4 characters for recognizability.
func Value(v string) string {
	if len(v) <= 4 {
		return "********"
	}
	return "****" + v[len(v)-4:]
}

// SensitiveKey reports whether the variable name suggests a secret.
func SensitiveKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

func tokenValue(v string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(v, prefix) {
			return true
		}
	}
	return false
}
