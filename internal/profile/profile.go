package profile

import (
	"strings"

	"github.com/hbjs97/dirprofile/internal/cmdexec"
)

// NamePrefix는 이 도구가 만든 프로필 Name의 고정 접두사다.
const NamePrefix = "Directory: "

// 프로필 문서에서 이 도구가 직접 쓰는 키.
const (
	KeyName       = "Name"
	KeyGUID       = "Guid"
	KeyBadgeText  = "Badge Text"
	KeyBoundHosts = "Bound Hosts"
	KeyRewritable = "Rewritable"
	KeySeparate   = "Use Separate Colors for Light and Dark Mode"
)

// Profile은 iTerm2 프로필 하나를 나타내는 JSON 호환 키-값 문서다.
type Profile map[string]any

// GUID는 Guid 값을 문자열로 반환한다. 없거나 문자열이 아니면 빈 문자열이다.
func (p Profile) GUID() string {
	s, _ := p[KeyGUID].(string)
	return s
}

// Name은 Name 값을 문자열로 반환한다.
func (p Profile) Name() string {
	s, _ := p[KeyName].(string)
	return s
}

// Path는 Name에서 NamePrefix를 떼어낸 디렉토리 경로를 반환한다.
// 이 도구가 만든 프로필이 아니면 false를 반환한다.
func (p Profile) Path() (string, bool) {
	name := p.Name()
	if !strings.HasPrefix(name, NamePrefix) {
		return "", false
	}
	return strings.TrimPrefix(name, NamePrefix), true
}

// Clone은 최상위 키를 복사한 새 Profile을 반환한다. 중첩 값은 공유한다.
func (p Profile) Clone() Profile {
	out := make(Profile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// NewIdentity는 path에 대한 식별 필드만 담은 프로필을 생성한다.
// 병합 시 이 필드들이 항상 마지막에 덮어쓴다.
func NewIdentity(path, badge string) Profile {
	return Profile{
		KeyName:       NamePrefix + path,
		KeyGUID:       DeriveGUID(path),
		KeyBadgeText:  badge,
		KeyBoundHosts: []any{path + "/*"},
		KeyRewritable: true,
		KeySeparate:   false,
	}
}

// DisplayName은 badge에 표시할 이름을 결정한다.
// branch 조회가 성공했고 출력이 비어있지 않으면 브랜치명, 아니면 path를 그대로 쓴다.
func DisplayName(path string, branch *cmdexec.Result) string {
	if branch == nil || !branch.Success {
		return path
	}
	if name := branch.Trimmed(); name != "" {
		return name
	}
	return path
}
