package reqnum

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFormat(t *testing.T) {
	gen := New(nil)
	number, err := gen.Generate(context.Background(), "funeral")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^FUNERAL-\d+-[a-z0-9]+$`), number)
}

func TestGenerateSameMillisecondDiffers(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	gen := New(nil)
	gen.now = func() time.Time { return fixed }

	first, err := gen.Generate(context.Background(), "MASS")
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), "MASS")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateRequiresPrefix(t *testing.T) {
	gen := New(nil)
	_, err := gen.Generate(context.Background(), "  ")
	require.Error(t, err)
}

func TestGenerateRetriesOnCollision(t *testing.T) {
	calls := 0
	gen := New(func(ctx context.Context, number string) (bool, error) {
		calls++
		return calls == 1, nil
	})

	number, err := gen.Generate(context.Background(), "VOL")
	require.NoError(t, err)
	assert.NotEmpty(t, number)
	assert.Equal(t, 2, calls)
}

func TestCertificateNumber(t *testing.T) {
	gen := New(nil)
	gen.now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }

	number, err := gen.CertificateNumber("BAP")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BAP-2026-\d{4}$`), number)

	fallback, err := gen.CertificateNumber("")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^CER-2026-\d{4}$`), fallback)
}
