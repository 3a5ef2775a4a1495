package cli

// ExitCode는 dirprofile의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 모든 실패에 쓰는 종료 코드다.
	ExitGeneral ExitCode = 1
)

// MapExitCode는 에러에 맞는 종료 코드를 반환한다. 실패 종류를 구분하지 않는다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	return ExitGeneral
}
