// Package preset holds the built-in color preset catalog, the policy that
// chooses a preset for a directory, and the document recording those choices.
package preset

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/hbjs97/dirprofile/internal/profile"
)

// Catalog는 무작위 선택에 쓰이는 고정 순서의 프리셋 이름 목록이다.
var Catalog = []string{
	"Solarized Dark",
	"Tango Dark",
	"Pastel (Dark Background)",
	"Smoooooth",
	"Dark Background",
	"Solarized Light",
}

// Select는 경로에 적용할 프리셋 이름을 고른다.
//   - explicit이 비어있지 않으면 무조건 explicit
//   - saved가 비어있지 않으면 saved
//   - 그 외에는 inUse에 없는 Catalog 항목 중 무작위. 후보가 없으면 Catalog 전체에서 무작위.
//
// pick은 [0, n) 범위 정수를 반환한다. nil이면 math/rand/v2.IntN을 쓴다.
func Select(explicit, saved string, inUse map[string]struct{}, pick func(n int) int) string {
	if explicit != "" {
		return explicit
	}
	if saved != "" {
		return saved
	}
	if pick == nil {
		pick = rand.IntN
	}

	candidates := make([]string, 0, len(Catalog))
	for _, name := range Catalog {
		if _, used := inUse[name]; !used {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		candidates = Catalog
	}
	return candidates[pick(len(candidates))]
}

// ParseCatalog는 plutil로 JSON 변환된 ColorPresets 카탈로그를 파싱한다.
// 최상위는 프리셋 이름 → 색상 키 문서 객체다.
func ParseCatalog(raw string) (map[string]profile.Profile, error) {
	var catalog map[string]profile.Profile
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &catalog); err != nil {
		return nil, fmt.Errorf("preset.ParseCatalog: %w", err)
	}
	if catalog == nil {
		return nil, fmt.Errorf("preset.ParseCatalog: 빈 카탈로그")
	}
	return catalog, nil
}
