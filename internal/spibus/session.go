// internal/spibus/session.go
package spibus

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Session owns exactly one open bus handle plus the settings snapshot
// taken before the desired configuration was applied. The snapshot is
// per-session state, so sequential sessions on different devices cannot
// restore each other's configuration.
//
// A Session is single-consumer and not safe for concurrent use.
type Session struct {
	conn     Conn
	original Settings // device configuration at open, restored on Close
	applied  Settings
	logger   *zap.Logger
	closed   bool
}

// Open opens the device at path, snapshots its current configuration
// and applies desired. On any failure the handle is closed before
// returning; a failed Open never leaks a handle.
//
// A nil opener selects the platform devfs driver. A nil logger
// discards restore warnings.
func Open(path string, desired Settings, opener Opener, logger *zap.Logger) (*Session, error) {
	if opener == nil {
		opener = Devfs{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := opener.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "spibus: open %s", path)
	}

	original, err := ReadSettings(conn)
	if err != nil {
		conn.Close() //nolint:errcheck // the snapshot failure is the error that matters
		return nil, errors.Wrapf(err, "spibus: snapshot settings of %s", path)
	}

	if err := WriteSettings(conn, desired); err != nil {
		conn.Close() //nolint:errcheck
		return nil, errors.Wrapf(err, "spibus: configure %s", path)
	}

	return &Session{
		conn:     conn,
		original: original,
		applied:  desired,
		logger:   logger,
	}, nil
}

// Read reads up to len(p) bytes from the device into p. It blocks
// until the device responds; there is no timeout.
func (s *Session) Read(p []byte) (int, error) {
	return s.conn.Read(p)
}

// Settings returns the configuration applied at Open.
func (s *Session) Settings() Settings { return s.applied }

// Original returns the configuration snapshot taken at Open.
func (s *Session) Original() Settings { return s.original }

// Close restores the snapshot taken at Open and releases the handle.
// Restoration is best-effort: another program sharing the bus should
// not inherit this program's configuration, but a restore failure must
// never stop the OS-level resource from being released. It is logged
// and not returned. Close is idempotent.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := WriteSettings(s.conn, s.original); err != nil {
		s.logger.Warn("could not restore bus settings",
			zap.String("settings", s.original.String()),
			zap.Error(err),
		)
	}
	return s.conn.Close()
}
