// Package reqnum produces the human-readable identifiers printed on
// receipts and certificates, distinct from the store-assigned primary keys.
package reqnum

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	tokenLength   = 8
	maxAttempts   = 5
)

// ExistsFunc reports whether a candidate number is already taken.
type ExistsFunc func(ctx context.Context, number string) (bool, error)

// Generator creates request numbers of the form PREFIX-<unixMillis>-<token>.
// The millisecond component keeps numbers roughly sortable; the random token
// disambiguates calls within the same millisecond.
type Generator struct {
	exists ExistsFunc
	now    func() time.Time
}

// New constructs a Generator. The exists probe is optional; when provided,
// generation retries until an unused number is found.
func New(exists ExistsFunc) *Generator {
	return &Generator{exists: exists, now: time.Now}
}

// Generate returns a fresh request number for the given prefix.
func (g *Generator) Generate(ctx context.Context, prefix string) (string, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", fmt.Errorf("request number prefix is required")
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		token, err := randomToken(tokenLength)
		if err != nil {
			return "", fmt.Errorf("generate request number token: %w", err)
		}
		candidate := fmt.Sprintf("%s-%d-%s", prefix, g.now().UnixMilli(), token)

		if g.exists == nil {
			return candidate, nil
		}
		taken, err := g.exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check request number uniqueness: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("could not generate a unique request number for %s after %d attempts", prefix, maxAttempts)
}

// CertificateNumber returns a certificate serial like BAP-2026-0042.
func (g *Generator) CertificateNumber(prefix string) (string, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = "CER"
	}
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("generate certificate number: %w", err)
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, g.now().Year(), n.Int64()), nil
}

func randomToken(length int) (string, error) {
	var b strings.Builder
	b.Grow(length)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(tokenAlphabet[idx.Int64()])
	}
	return b.String(), nil
}
