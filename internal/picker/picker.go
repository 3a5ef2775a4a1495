// Package picker asks the user to choose a color preset interactively.
package picker

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunPresetSelect는 presets 중 하나를 고르게 한다. current가 목록에 있으면 기본 선택이다.
	RunPresetSelect(presets []string, current string) (string, error)
}

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunPresetSelect는 프리셋 선택 UI를 표시한다.
func (h *HuhFormRunner) RunPresetSelect(presets []string, current string) (string, error) {
	if len(presets) == 0 {
		return "", fmt.Errorf("picker.RunPresetSelect: 선택할 프리셋이 없습니다")
	}

	selected := current
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("색상 프리셋을 선택하세요").
			Options(Options(presets, current)...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("picker.RunPresetSelect: %w", err)
	}
	return selected, nil
}

// Options는 presets를 huh 옵션으로 변환한다. current는 "(현재)" 표시와 함께 선택 상태가 된다.
func Options(presets []string, current string) []huh.Option[string] {
	opts := make([]huh.Option[string], len(presets))
	for i, name := range presets {
		label := name
		if name == current {
			label = name + " (현재)"
		}
		opts[i] = huh.NewOption(label, name).Selected(name == current)
	}
	return opts
}
