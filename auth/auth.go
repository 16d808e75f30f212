// Package auth secures the hostd bridge: bcrypt-hashed API keys exchange
// for short-lived HMAC-signed JWT session tokens, which the server
// middleware validates on every request.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// APIKey is one configured client credential. Only the bcrypt hash is
// stored; the plaintext key lives with the client.
type APIKey struct {
	Name string `yaml:"name" mapstructure:"name"`
	Hash string `yaml:"hash" mapstructure:"hash"`
}

// Config configures bridge authentication.
type Config struct {
	// Enabled turns authentication on. Local-only deployments may run
	// without it.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Secret is the HMAC signing key for session tokens.
	Secret string `yaml:"secret" mapstructure:"secret"`
	// Issuer is the "iss" claim on issued tokens.
	Issuer string `yaml:"issuer" mapstructure:"issuer"`
	// TokenTTL is the session token lifetime.
	TokenTTL time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`
	// APIKeys are the accepted client credentials.
	APIKeys []APIKey `yaml:"api_keys" mapstructure:"api_keys"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Issuer == "" {
		c.Issuer = "hostd"
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = 15 * time.Minute
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Secret == "" {
		return errors.New("auth: secret is required when auth is enabled")
	}
	if len(c.APIKeys) == 0 {
		return errors.New("auth: at least one api key is required when auth is enabled")
	}
	return nil
}

// Claims are the session token claims.
type Claims struct {
	jwt.RegisteredClaims
	// Client is the API key name the session was issued to.
	Client string `json:"client"`
}

// Service issues and validates session tokens.
type Service struct {
	cfg Config
}

// NewService creates an auth service from validated config.
func NewService(cfg Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: cfg}, nil
}

// Exchange verifies a presented API key against the configured hashes
// and returns a signed session token for the matching client.
func (s *Service) Exchange(apiKey string) (string, error) {
	name, ok := s.verifyAPIKey(apiKey)
	if !ok {
		return "", errors.New("auth: unknown api key")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
		Client: name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a session token string and returns its claims.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithIssuer(s.cfg.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("auth: parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("auth: invalid token")
	}
	return claims, nil
}

// ValidatorFunc adapts Parse for the server auth middleware.
func (s *Service) ValidatorFunc() func(token string) (map[string]interface{}, error) {
	return func(token string) (map[string]interface{}, error) {
		claims, err := s.Parse(token)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"client": claims.Client}, nil
	}
}

// verifyAPIKey compares the presented key against every configured hash.
// bcrypt comparison is constant-time per hash.
func (s *Service) verifyAPIKey(presented string) (string, bool) {
	for _, key := range s.cfg.APIKeys {
		if bcrypt.CompareHashAndPassword([]byte(key.Hash), []byte(presented)) == nil {
			return key.Name, true
		}
	}
	return "", false
}

// HashAPIKey produces a bcrypt hash suitable for the api_keys config
// section. Used by operators when provisioning clients.
func HashAPIKey(plain string) (string, error) {
	if len(plain) < 8 {
		return "", errors.New("auth: api key must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash api key: %w", err)
	}
	return string(hash), nil
}
