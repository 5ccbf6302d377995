// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// BackupSuffix is appended to a file name to form its backup name
const BackupSuffix = ".bak"

// 📊 FileStatus represents what happened to a file during a run
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusUnchanged            // File read, nothing to change
	StatusModified             // File rewritten
	StatusFailed               // Error while processing
	StatusRestored             // File restored from its backup
	StatusRemoved              // Backup removed
	StatusSkipped              // Nothing to do for this file
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusModified:
		return "modified"
	case StatusFailed:
		return "failed"
	case StatusRestored:
		return "restored"
	case StatusRemoved:
		return "removed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// 💾 BackupPolicy decides when a backup copy is written
type BackupPolicy string

const (
	BackupKeep      BackupPolicy = "keep"      // Write only if no backup exists yet
	BackupOverwrite BackupPolicy = "overwrite" // Always write, replacing an older backup
	BackupNone      BackupPolicy = "none"      // Never write a backup
)

// ParseBackupPolicy validates a policy name. Empty means keep.
func ParseBackupPolicy(s string) (BackupPolicy, error) {
	switch BackupPolicy(s) {
	case "", BackupKeep:
		return BackupKeep, nil
	case BackupOverwrite, BackupNone:
		return BackupPolicy(s), nil
	default:
		return "", errors.Errorf("unknown backup policy %q (want keep, overwrite or none)", s)
	}
}

// 🔧 Manager handles all file system operations below a base directory
type Manager struct {
	baseDir string          // Base directory for all operations
	logger  *zerolog.Logger // Logger for file operations
}

// 🏭 New creates a new status manager
func New(baseDir string, logger *zerolog.Logger) *Manager {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Manager{
		baseDir: filepath.Clean(baseDir),
		logger:  logger,
	}
}

// 🔒 getAbsPath returns the absolute path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, path)
}

// BackupPath returns the backup location of a relative path.
func (m *Manager) BackupPath(path string) string {
	return m.getAbsPath(path) + BackupSuffix
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// ✍️ WriteFileAtomic replaces the file through a temp file and a rename,
// keeping the permissions of the file it replaces.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)
	tempPath := absPath + ".tmp-" + uuid.NewString()

	mode := os.FileMode(0644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	}

	// Write to temp file
	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	m.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("wrote file")
	return nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(m.getAbsPath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// BackupExists reports whether path has a backup next to it.
func (m *Manager) BackupExists(ctx context.Context, path string) (bool, error) {
	return m.FileExists(ctx, path+BackupSuffix)
}

// 💾 BackupContent writes content as the backup of path according to policy.
// It reports whether a backup was written.
func (m *Manager) BackupContent(ctx context.Context, path string, content []byte, policy BackupPolicy) (bool, error) {
	switch policy {
	case BackupNone:
		return false, nil
	case BackupKeep:
		exists, err := m.BackupExists(ctx, path)
		if err != nil {
			return false, err
		}
		if exists {
			m.logger.Debug().Str("path", path).Msg("backup already exists, keeping it")
			return false, nil
		}
	case BackupOverwrite:
	default:
		return false, errors.Errorf("unknown backup policy %q", policy)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(m.getAbsPath(path)); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(m.BackupPath(path), content, mode); err != nil {
		return false, errors.Errorf("creating backup: %w", err)
	}

	m.logger.Debug().Str("path", path).Str("policy", string(policy)).Msg("wrote backup")
	return true, nil
}

// ♻️ RestoreFile copies the backup over path and removes the backup
func (m *Manager) RestoreFile(ctx context.Context, path string) error {
	absPath := m.getAbsPath(path)
	backupPath := m.BackupPath(path)

	// Check if backup exists
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return errors.Errorf("backup file does not exist")
	} else if err != nil {
		return errors.Errorf("checking backup existence: %w", err)
	}

	// Restore from backup
	if err := copyFile(backupPath, absPath); err != nil {
		return errors.Errorf("restoring from backup: %w", err)
	}

	// Remove backup
	if err := os.Remove(backupPath); err != nil {
		return errors.Errorf("removing backup: %w", err)
	}

	return nil
}

// 🗑️ RemoveBackup deletes the backup of path
func (m *Manager) RemoveBackup(ctx context.Context, path string) error {
	if err := os.Remove(m.BackupPath(path)); err != nil {
		return errors.Errorf("deleting backup: %w", err)
	}
	return nil
}

// 🔐 Lock takes an advisory lock on path without blocking. The returned
// function releases it.
func (m *Manager) Lock(ctx context.Context, path string) (func(), error) {
	lock := flock.New(m.getAbsPath(path))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.Errorf("locking file: %w", err)
	}
	if !locked {
		return nil, errors.Errorf("file is locked by another process")
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			m.logger.Debug().Str("path", path).Err(err).Msg("unlocking file")
		}
	}, nil
}

// Helper functions

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return errors.Errorf("copying file: %w", err)
	}

	return destination.Close()
}
