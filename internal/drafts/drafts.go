// Package drafts keeps analysed résumés and rendered files for a short while
// between requests.
package drafts

import (
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/jobfit/internal/analysis"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const DefaultTTL = time.Hour

type Draft struct {
	CVText         string
	JobDescription string
	FileName       string
	Analysis       analysis.Result
	AnalysisID     uuid.NullUUID
}

// File is a rendered document waiting to be downloaded.
type File struct {
	Path string
	Name string
}

type Store struct {
	drafts *cache.Cache
	files  *cache.Cache
}

// New returns a store whose entries expire after ttl. Expired or removed
// files are deleted from disk.
func New(ttl time.Duration, logger *zap.Logger) *Store {
	files := cache.New(ttl, ttl/6)
	files.OnEvicted(func(id string, v interface{}) {
		f, ok := v.(File)
		if !ok {
			return
		}
		if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn("failed to remove expired file", zap.String("id", id), zap.Error(err))
		}
	})
	return &Store{
		drafts: cache.New(ttl, ttl/6),
		files:  files,
	}
}

func (s *Store) Save(d Draft) string {
	id := uuid.NewString()
	s.drafts.SetDefault(id, d)
	return id
}

func (s *Store) Get(id string) (Draft, bool) {
	v, ok := s.drafts.Get(id)
	if !ok {
		return Draft{}, false
	}
	d, ok := v.(Draft)
	return d, ok
}

func (s *Store) AddFile(f File) string {
	id := uuid.NewString()
	s.files.SetDefault(id, f)
	return id
}

func (s *Store) File(id string) (File, bool) {
	v, ok := s.files.Get(id)
	if !ok {
		return File{}, false
	}
	f, ok := v.(File)
	return f, ok
}

// RemoveFile forgets the file and deletes it from disk.
func (s *Store) RemoveFile(id string) {
	s.files.Delete(id)
}
