package client

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"tikkeul/internal/pkg/logger"
)

// Session holds the bearer token for the current user. The client reads it
// on every request; nothing else touches token storage.
type Session interface {
	Token() string
	SetToken(token string)
	Clear()
}

// MemorySession keeps the token in memory.
type MemorySession struct {
	mu    sync.RWMutex
	token string
}

func NewMemorySession() *MemorySession { return &MemorySession{} }

func (s *MemorySession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemorySession) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemorySession) Clear() { s.SetToken("") }

// FileSession persists the token in a file so it survives process restarts.
// Write failures are logged; the in-memory copy stays authoritative.
type FileSession struct {
	mem  MemorySession
	path string
}

func NewFileSession(path string) *FileSession {
	s := &FileSession{path: path}
	if b, err := os.ReadFile(path); err == nil {
		s.mem.token = strings.TrimSpace(string(b))
	}
	return s
}

func (s *FileSession) Token() string { return s.mem.Token() }

func (s *FileSession) SetToken(token string) {
	s.mem.SetToken(token)
	if err := s.write([]byte(token)); err != nil {
		logger.Warnf(context.Background(), "token not saved to %s: %v", s.path, err)
	}
}

func (s *FileSession) Clear() {
	s.mem.Clear()
	err := os.Remove(s.path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return
	}
	if err := s.write(nil); err != nil {
		logger.Warnf(context.Background(), "token not cleared from %s: %v", s.path, err)
	}
}

func (s *FileSession) write(b []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}
