// Package profile defines the iTerm2 profile document and the pure functions
// that derive, name and merge per-directory profiles.
package profile

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// DeriveGUID는 path 문자열의 SHA-256 앞 32자리 hex를 8-4-4-4-12로 나눈 대문자 식별자를 반환한다.
// 경로 정규화는 하지 않는다. 같은 입력이면 프로세스와 시점에 관계없이 같은 값이다.
func DeriveGUID(path string) string {
	sum := sha256.Sum256([]byte(path))
	h := hex.EncodeToString(sum[:])[:32]
	return strings.ToUpper(h[0:8] + "-" + h[8:12] + "-" + h[12:16] + "-" + h[16:20] + "-" + h[20:32])
}
