package auth

import (
	"context"
	"net/http"
	"os"
	"strings"
)

// Environment variables consulted when no key is passed explicitly
const (
	EnvAPIToken      = "DATASCRIBE_API_TOKEN"
	EnvAdminAPIToken = "DATASCRIBE_ADMIN_API_TOKEN"
)

type contextKey struct {
	name string
}

var apiKey = &contextKey{"apiKey"}

// WithContextAPIKey overrides the client's API key for calls made with the returned context
func WithContextAPIKey(ctx context.Context, key string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, apiKey, key)
}

func ContextAPIKey(ctx context.Context) string {
	if ctx != nil {
		if val, ok := ctx.Value(apiKey).(string); ok {
			return val
		}
	}
	return ""
}

// ResolveAPIKey returns explicit when set, otherwise the first non-empty variable of envVars.
// With no envVars it falls back to DATASCRIBE_API_TOKEN.
func ResolveAPIKey(explicit string, envVars ...string) string {
	if key := strings.TrimSpace(explicit); key != "" {
		return key
	}
	if len(envVars) == 0 {
		envVars = []string{EnvAPIToken}
	}
	for _, name := range envVars {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			return key
		}
	}
	return ""
}

// Apply sets the authentication header on req. An empty scheme sends the bare key.
func Apply(req *http.Request, name, scheme, key string) {
	if key == "" {
		return
	}
	if name == "" {
		name = "Authorization"
	}
	if scheme != "" {
		key = scheme + " " + key
	}
	req.Header.Set(name, key)
}
