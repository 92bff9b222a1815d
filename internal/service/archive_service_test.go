package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjmp-dev/parish-admin-api/pkg/archive"
)

func newArchiveService(t *testing.T) *ArchiveService {
	t.Helper()
	store, err := archive.NewStore(t.TempDir())
	require.NoError(t, err)
	signer := archive.NewTokenSigner("test-secret", time.Hour)
	svc := NewArchiveService(store, signer, nil)
	svc.Start(context.Background())
	t.Cleanup(svc.Stop)
	return svc
}

func TestArchiveServiceKeepAndFetch(t *testing.T) {
	svc := newArchiveService(t)

	token := svc.Keep(&ExportFile{
		FileName:    "parish-report-20260115.csv",
		ContentType: "text/csv",
		Content:     []byte("a,b\n1,2\n"),
	})
	require.NotEmpty(t, token)

	assert.Eventually(t, func() bool {
		_, err := svc.Fetch(token)
		return err == nil
	}, time.Second, 5*time.Millisecond)

	file, err := svc.Fetch(token)
	require.NoError(t, err)
	assert.Equal(t, "parish-report-20260115.csv", file.FileName)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, []byte("a,b\n1,2\n"), file.Content)
}

func TestArchiveServiceFetchBadToken(t *testing.T) {
	svc := newArchiveService(t)

	_, err := svc.Fetch("not.a.token")
	require.Error(t, err)
}

func TestArchiveServiceKeepNil(t *testing.T) {
	svc := newArchiveService(t)
	assert.Empty(t, svc.Keep(nil))
}
