package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sjmp-dev/parish-admin-api/pkg/archive"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
	"github.com/sjmp-dev/parish-admin-api/pkg/jobs"
)

// ArchiveService retains a copy of each rendered export on disk and
// hands out signed tokens so the same file can be downloaded again
// without re-rendering. Writes happen off the request path through a
// worker queue.
type ArchiveService struct {
	store  *archive.Store
	signer *archive.TokenSigner
	queue  *jobs.Queue
	logger *zap.Logger
}

// NewArchiveService constructs the service and its backing queue.
func NewArchiveService(store *archive.Store, signer *archive.TokenSigner, logger *zap.Logger) *ArchiveService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ArchiveService{
		store:  store,
		signer: signer,
		logger: logger,
	}
	s.queue = jobs.NewQueue("export-archive", s.save, jobs.Config{Logger: logger})
	return s
}

// Start launches the archive workers.
func (s *ArchiveService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the archive workers.
func (s *ArchiveService) Stop() {
	s.queue.Stop()
}

// Keep schedules file for archiving and returns a signed download
// token for it. Archiving is best-effort; an empty token means the
// file will not be retrievable later.
func (s *ArchiveService) Keep(file *ExportFile) string {
	if file == nil {
		return ""
	}

	content := make([]byte, len(file.Content))
	copy(content, file.Content)
	err := s.queue.Enqueue(jobs.Job{
		ID:      file.FileName,
		Type:    "archive",
		Payload: content,
	})
	if err != nil {
		s.logger.Warn("failed to schedule export archive",
			zap.String("file", file.FileName), zap.Error(err))
		return ""
	}

	token, _, err := s.signer.Generate(file.FileName)
	if err != nil {
		s.logger.Warn("failed to sign export token",
			zap.String("file", file.FileName), zap.Error(err))
		return ""
	}
	return token
}

// Fetch validates a download token and returns the archived file.
func (s *ArchiveService) Fetch(token string) (*ExportFile, error) {
	name, err := s.signer.Parse(token)
	if err != nil {
		return nil, appErrors.ErrValidation.Clone("invalid or expired download token")
	}

	content, err := s.store.Read(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, appErrors.ErrNotFound.Clone("archived export not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read archived export")
	}

	return &ExportFile{
		FileName:    name,
		ContentType: contentTypeFor(name),
		Content:     content,
	}, nil
}

// Cleanup removes archived files older than ttl.
func (s *ArchiveService) Cleanup(ttl time.Duration) {
	deleted, err := s.store.CleanupOlderThan(ttl)
	if err != nil {
		s.logger.Warn("export archive cleanup failed", zap.Error(err))
		return
	}
	if len(deleted) > 0 {
		s.logger.Info("export archive cleaned", zap.Int("deleted", len(deleted)))
	}
}

func (s *ArchiveService) save(_ context.Context, job jobs.Job) error {
	content, ok := job.Payload.([]byte)
	if !ok {
		return errors.New("archive job payload is not a byte slice")
	}
	_, err := s.store.Save(job.ID, content)
	return err
}

func contentTypeFor(name string) string {
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(name, ".csv"):
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
