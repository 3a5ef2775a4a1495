package profile

// Overlay는 layers를 순서대로 덮어쓴 새 Profile을 반환한다. 뒤의 layer가 이긴다.
// 얕은 병합이다: 중첩 객체는 통째로 교체된다. 입력은 변경하지 않는다.
func Overlay(layers ...Profile) Profile {
	size := 0
	for _, l := range layers {
		size += len(l)
	}
	out := make(Profile, size)
	for _, l := range layers {
		for k, v := range l {
			out[k] = v
		}
	}
	return out
}

// Merge는 defaultProfile < colorPreset < newProfile 우선순위로 세 문서를 병합한다.
func Merge(newProfile, defaultProfile, colorPreset Profile) Profile {
	return Overlay(defaultProfile, colorPreset, newProfile)
}
