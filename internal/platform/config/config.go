package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	DatabaseURL   string
	RedisURL      string
	KafkaBrokers  []string
	AuditTopic    string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
	CORSOrigins   []string
	StatsCacheTTL time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
// DatabaseURL, RedisURL and KafkaBrokers are optional: missing values select
// the in-memory store, no cache and no audit broker respectively.
func FromEnv() Server {
	addr := os.Getenv("RECRUITDESK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "recruitdesk"
	}
	audience := os.Getenv("JWT_AUDIENCE")
	if audience == "" {
		audience = "recruitdesk-dashboard"
	}

	topic := os.Getenv("AUDIT_TOPIC")
	if topic == "" {
		topic = "recruitdesk.audit"
	}

	ttl := 30 * time.Second
	if raw := os.Getenv("STATS_CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	return Server{
		Addr:          addr,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		KafkaBrokers:  splitList(os.Getenv("KAFKA_BROKERS")),
		AuditTopic:    topic,
		JWTSigningKey: jwtSigningKey,
		JWTIssuer:     issuer,
		JWTAudience:   audience,
		CORSOrigins:   splitList(os.Getenv("CORS_ORIGINS")),
		StatsCacheTTL: ttl,
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
