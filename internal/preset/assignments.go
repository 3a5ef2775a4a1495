package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Assignments는 절대 경로 → 프리셋 이름 매핑 문서다. 경로당 최대 하나의 프리셋을 가진다.
type Assignments map[string]string

// LoadAssignments는 assignment 파일을 파싱한다. 파일이 없으면 빈 매핑과 exists=false를 반환한다.
func LoadAssignments(path string) (as Assignments, exists bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Assignments{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("preset.LoadAssignments: %w", err)
	}
	var a Assignments
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, true, fmt.Errorf("preset.LoadAssignments: %s: %w", path, err)
	}
	if a == nil {
		a = Assignments{}
	}
	return a, true, nil
}

// Save는 매핑을 들여쓰기된 JSON 파일로 저장한다 (0600 권한).
func (a Assignments) Save(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("preset.Assignments.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("preset.Assignments.Save: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("preset.Assignments.Save: %w", err)
	}
	return nil
}

// Delete는 path 키를 제거하고, 실제로 제거했는지 반환한다.
func (a Assignments) Delete(path string) bool {
	if _, ok := a[path]; !ok {
		return false
	}
	delete(a, path)
	return true
}

// InUseExcept는 path를 제외한 다른 경로들에 배정된 프리셋 이름 집합을 반환한다.
func (a Assignments) InUseExcept(path string) map[string]struct{} {
	used := make(map[string]struct{}, len(a))
	for p, name := range a {
		if p == path {
			continue
		}
		used[name] = struct{}{}
	}
	return used
}
