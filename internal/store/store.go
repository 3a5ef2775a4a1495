// Package store reads and writes the iTerm2 Dynamic Profiles document that
// holds every profile managed by dirprofile.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hbjs97/dirprofile/internal/profile"
)

// Store는 Dynamic Profiles 문서의 최상위 구조체다.
// Guid당 최대 하나의 프로필만 가진다.
type Store struct {
	Profiles []profile.Profile `json:"Profiles"`
}

// New는 빈 Store를 생성한다.
func New() *Store {
	return &Store{Profiles: []profile.Profile{}}
}

// Load는 store 파일을 파싱한다. 파일이 없으면 빈 Store와 exists=false를 반환한다.
func Load(path string) (st *Store, exists bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store.Load: %w", err)
	}
	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, true, fmt.Errorf("store.Load: %s: %w", path, err)
	}
	if s.Profiles == nil {
		s.Profiles = []profile.Profile{}
	}
	return &s, true, nil
}

// Save는 Store를 들여쓰기된 JSON 파일로 저장한다 (0600 권한).
func (s *Store) Save(path string) error {
	return writeJSON(path, s)
}

// Upsert는 같은 Guid의 기존 항목을 제거하고 p를 끝에 추가한다.
func (s *Store) Upsert(p profile.Profile) {
	s.Remove(p.GUID())
	s.Profiles = append(s.Profiles, p)
}

// Remove는 Guid가 일치하는 모든 항목을 제거하고, 하나라도 제거했는지 반환한다.
func (s *Store) Remove(guid string) bool {
	kept := s.Profiles[:0]
	removed := false
	for _, p := range s.Profiles {
		if p.GUID() == guid {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.Profiles = kept
	return removed
}

// Find는 Guid로 프로필을 조회한다.
func (s *Store) Find(guid string) (profile.Profile, bool) {
	for _, p := range s.Profiles {
		if p.GUID() == guid {
			return p, true
		}
	}
	return nil, false
}

// FindByName은 Name이 정확히 일치하는 첫 프로필을 반환한다.
func (s *Store) FindByName(name string) (profile.Profile, bool) {
	for _, p := range s.Profiles {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// writeJSON은 v를 2칸 들여쓰기 JSON으로 path에 기록한다. 상위 디렉토리는 0700으로 만든다.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	return nil
}
