package archive

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStoreSaveAndRead(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("parish-report-20260115.csv", []byte("a,b\n1,2\n"))
	require.NoError(t, err)
	require.Equal(t, "parish-report-20260115.csv", name)

	data, err := store.Read(name)
	require.NoError(t, err)
	require.Equal(t, []byte("a,b\n1,2\n"), data)
}

func TestStoreReadMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Read("nope.csv")
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStoreCleanupOlderThan(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Save("old.csv", []byte("x"))
	require.NoError(t, err)
	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.csv"), stale, stale))

	_, err = store.Save("fresh.csv", []byte("y"))
	require.NoError(t, err)

	deleted, err := store.CleanupOlderThan(24 * time.Hour)
	require.NoError(t, err)
	require.Equal(t, []string{"old.csv"}, deleted)

	_, err = store.Read("fresh.csv")
	require.NoError(t, err)
}

func TestTokenSignerRoundTrip(t *testing.T) {
	signer := NewTokenSigner("secret", time.Hour)

	token, expiresAt, err := signer.Generate("parish-report-20260115.pdf")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, expiresAt.IsZero())

	name, err := signer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "parish-report-20260115.pdf", name)
}

func TestTokenSignerRejectsTampering(t *testing.T) {
	signer := NewTokenSigner("secret", time.Hour)

	token, _, err := signer.Generate("report.csv")
	require.NoError(t, err)

	_, err = signer.Parse(token + "x")
	require.Error(t, err)

	other := NewTokenSigner("different", time.Hour)
	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestTokenSignerExpired(t *testing.T) {
	signer := NewTokenSigner("secret", 10*time.Millisecond)

	token, _, err := signer.Generate("report.csv")
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)

	_, err = signer.Parse(token)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expired")
}
