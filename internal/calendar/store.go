package calendar

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	DefaultDir = "events"

	maxLinkAttempts = 16
)

var (
	reservationIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	fileNamePattern      = regexp.MustCompile(`^reservation_[A-Za-z0-9-]+_[0-9]+\.ics$`)
)

// FileStore writes invites into a flat directory as
// reservation_<id>_<stamp>.ics. Stamps are epoch milliseconds made strictly
// increasing per store, and a name is claimed with a hard link, so an
// existing file is never replaced and readers never observe a partial file.
type FileStore struct {
	dir    string
	logger logger.Logger
	now    func() time.Time

	mu   sync.Mutex
	last int64
}

func NewFileStore(dir string, log logger.Logger) *FileStore {
	if dir == "" {
		dir = DefaultDir
	}
	return &FileStore{dir: dir, logger: log, now: time.Now}
}

func (s *FileStore) Dir() string {
	return s.dir
}

// Save persists data and returns the file name relative to the store directory.
func (s *FileStore) Save(ctx context.Context, reservationID string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !reservationIDPattern.MatchString(reservationID) {
		return "", fmt.Errorf("%w: reservation id %q is not usable in a file name", domain.ErrValidation, reservationID)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Error("failed to create invite directory",
			logger.String("dir", s.dir),
			logger.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: create dir %s: %w", domain.ErrInviteStorage, s.dir, err)
	}

	tmpName, err := s.writeTemp(data)
	if err != nil {
		s.logger.Error("failed to write invite",
			logger.String("dir", s.dir),
			logger.String("reservation_id", reservationID),
			logger.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: %w", domain.ErrInviteStorage, err)
	}
	defer os.Remove(tmpName)

	for range maxLinkAttempts {
		name := FileName(reservationID, s.nextStamp())
		err = os.Link(tmpName, filepath.Join(s.dir, name))
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			break
		}
	}

	s.logger.Error("failed to publish invite",
		logger.String("dir", s.dir),
		logger.String("reservation_id", reservationID),
		logger.String("error", err.Error()),
	)
	return "", fmt.Errorf("%w: publish: %w", domain.ErrInviteStorage, err)
}

// Open reads a stored invite by the name Save returned.
func (s *FileStore) Open(name string) ([]byte, error) {
	if !fileNamePattern.MatchString(name) {
		return nil, fmt.Errorf("%w: bad invite file name %q", domain.ErrValidation, name)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrInviteNotFound
		}
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrInviteStorage, name, err)
	}

	return data, nil
}

func (s *FileStore) writeTemp(data []byte) (string, error) {
	f, err := os.CreateTemp(s.dir, ".invite-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err = f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err = f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return f.Name(), nil
}

func (s *FileStore) nextStamp() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := s.now().UnixMilli()
	if stamp <= s.last {
		stamp = s.last + 1
	}
	s.last = stamp

	return stamp
}

func FileName(reservationID string, stamp int64) string {
	return fmt.Sprintf("reservation_%s_%d.ics", reservationID, stamp)
}
