// Package manager implements the per-directory profile operations: create or
// update, delete, clear-all and active-profile resolution. It never runs
// external commands or touches the profile documents on its own; callers pass
// pre-fetched command results and loaded documents in.
package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hbjs97/dirprofile/internal/cmdexec"
	"github.com/hbjs97/dirprofile/internal/preset"
	"github.com/hbjs97/dirprofile/internal/profile"
	"github.com/hbjs97/dirprofile/internal/store"
)

// Error는 프로필 생성 경로의 모든 실패를 나타내는 단일 에러 타입이다.
type Error struct {
	// Msg는 사용자에게 그대로 출력되는 메시지다.
	Msg string
	// Detail은 실패한 외부 명령의 stderr다. 디버그 로그에만 쓴다.
	Detail string
}

func (e *Error) Error() string { return e.Msg }

func fail(msg string, res cmdexec.Result) *Error {
	return &Error{Msg: msg, Detail: strings.TrimSpace(res.Stderr)}
}

// CreateInputs는 Create에 필요한 모든 외부 입력이다.
type CreateInputs struct {
	// Path는 프로필을 만들 디렉토리의 절대 경로다.
	Path string
	// ExplicitPreset이 비어있지 않으면 저장된 배정보다 우선한다.
	ExplicitPreset string

	DefaultGUID   cmdexec.Result
	Bookmarks     cmdexec.Result
	CatalogExists bool
	Catalog       cmdexec.Result
	// Branch는 nil이면 조회하지 않은 것으로 본다.
	Branch *cmdexec.Result

	Store       *store.Store
	Assignments preset.Assignments

	// Pick은 무작위 프리셋 선택에 쓰인다. nil이면 math/rand/v2.IntN.
	Pick func(n int) int
}

// CreateResult는 Create가 만든 프로필과 갱신된 문서들이다.
type CreateResult struct {
	Profile     profile.Profile
	Preset      string
	Store       *store.Store
	Assignments preset.Assignments
}

// Create는 기본 프로필, 색상 프리셋, 식별 필드를 병합한 프로필을 만들어 Store에 upsert하고
// 경로의 프리셋 배정을 기록한다. in.Store와 in.Assignments는 제자리에서 갱신된다.
func Create(in CreateInputs) (*CreateResult, error) {
	if !in.DefaultGUID.Success {
		return nil, fail("unable to read default profile id", in.DefaultGUID)
	}
	defaultGUID := in.DefaultGUID.Trimmed()

	if !in.Bookmarks.Success {
		return nil, fail("unable to read bookmark list", in.Bookmarks)
	}
	var bookmarks []profile.Profile
	if err := json.Unmarshal([]byte(in.Bookmarks.Stdout), &bookmarks); err != nil {
		return nil, &Error{Msg: "unable to read bookmark list", Detail: err.Error()}
	}
	defaultProfile, ok := findByGUID(bookmarks, defaultGUID)
	if !ok {
		return nil, &Error{Msg: "default profile not found", Detail: defaultGUID}
	}

	st := in.Store
	if st == nil {
		st = store.New()
	}
	as := in.Assignments
	if as == nil {
		as = preset.Assignments{}
	}

	name := preset.Select(in.ExplicitPreset, as[in.Path], as.InUseExcept(in.Path), in.Pick)

	if !in.CatalogExists {
		return nil, &Error{Msg: "preset catalog not found"}
	}
	if !in.Catalog.Success {
		return nil, fail("unable to read preset catalog", in.Catalog)
	}
	catalog, err := preset.ParseCatalog(in.Catalog.Stdout)
	if err != nil {
		return nil, &Error{Msg: "unable to read preset catalog", Detail: err.Error()}
	}
	colors, ok := catalog[name]
	if !ok {
		return nil, &Error{Msg: fmt.Sprintf("preset '%s' not found", name)}
	}

	ident := profile.NewIdentity(in.Path, profile.DisplayName(in.Path, in.Branch))
	merged := profile.Merge(ident, defaultProfile, colors)

	st.Upsert(merged)
	as[in.Path] = name

	return &CreateResult{Profile: merged, Preset: name, Store: st, Assignments: as}, nil
}

func findByGUID(list []profile.Profile, guid string) (profile.Profile, bool) {
	for _, p := range list {
		if p.GUID() == guid {
			return p, true
		}
	}
	return nil, false
}

// DeleteResult는 Delete가 각 문서에서 실제로 무언가를 제거했는지 나타낸다.
type DeleteResult struct {
	ProfileRemoved    bool
	AssignmentRemoved bool
}

// Found는 둘 중 하나라도 제거되었는지 반환한다.
func (r DeleteResult) Found() bool {
	return r.ProfileRemoved || r.AssignmentRemoved
}

// Delete는 path에서 유도한 Guid의 프로필과 path의 프리셋 배정을 제거한다.
// nil 문서는 빈 문서로 취급한다.
func Delete(st *store.Store, as preset.Assignments, path string) DeleteResult {
	var r DeleteResult
	if st != nil {
		r.ProfileRemoved = st.Remove(profile.DeriveGUID(path))
	}
	if as != nil {
		r.AssignmentRemoved = as.Delete(path)
	}
	return r
}

// ResolvePathFromActiveName은 Name이 name과 정확히 일치하는 프로필을 찾아
// NamePrefix를 뗀 경로를 반환한다.
func ResolvePathFromActiveName(name string, st *store.Store) (string, bool) {
	if st == nil {
		return "", false
	}
	p, ok := st.FindByName(name)
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(p.Name(), profile.NamePrefix), true
}

// ClearAll은 주어진 파일들을 삭제한다. 없는 파일은 무시하고, 그 외 삭제 실패만 반환한다.
func ClearAll(paths ...string) []error {
	var errs []error
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("manager.ClearAll: %w", err))
		}
	}
	return errs
}

// Entry는 목록 출력용 관리 프로필 요약이다.
type Entry struct {
	Path   string
	GUID   string
	Preset string
}

// List는 Store 순서대로 이 도구가 만든 프로필 요약을 반환한다.
func List(st *store.Store, as preset.Assignments) []Entry {
	if st == nil {
		return nil
	}
	entries := make([]Entry, 0, len(st.Profiles))
	for _, p := range st.Profiles {
		path, ok := p.Path()
		if !ok {
			continue
		}
		entries = append(entries, Entry{Path: path, GUID: p.GUID(), Preset: as[path]})
	}
	return entries
}
