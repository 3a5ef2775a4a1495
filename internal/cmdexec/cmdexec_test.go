package cmdexec

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealCommander_Success(t *testing.T) {
	t.Parallel()

	c := &RealCommander{}
	res := c.Run(context.Background(), "sh", "-c", "echo hello; echo oops >&2")

	assert.True(t, res.Success)
	assert.Equal(t, "hello", res.Trimmed())
	assert.Contains(t, res.Stderr, "oops")
}

func TestRealCommander_Failure(t *testing.T) {
	t.Parallel()

	c := &RealCommander{}
	res := c.Run(context.Background(), "sh", "-c", "exit 3")

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Stderr) // exit 에러 메시지로 채워진다
}

func TestRealCommander_MissingBinary(t *testing.T) {
	t.Parallel()

	c := &RealCommander{}
	res := c.Run(context.Background(), "dirprofile-no-such-binary")

	assert.False(t, res.Success)
	assert.Empty(t, res.Stdout)
}

func TestRealCommander_Timeout(t *testing.T) {
	t.Parallel()

	c := &RealCommander{Timeout: 50 * time.Millisecond}
	res := c.Run(context.Background(), "sleep", "5")

	assert.False(t, res.Success)
	assert.Contains(t, res.Stderr, "timed out")
}

func TestRealCommander_RunWithEnv(t *testing.T) {
	t.Parallel()

	c := &RealCommander{}
	res := c.RunWithEnv(context.Background(), map[string]string{"DIRPROFILE_TEST": "value"}, "sh", "-c", "echo $DIRPROFILE_TEST")

	assert.True(t, res.Success)
	assert.Equal(t, "value", res.Trimmed())
}

func TestMapToEnvSlice(t *testing.T) {
	t.Parallel()

	assert.Nil(t, mapToEnvSlice(nil))
	assert.Equal(t, []string{"A=1", "B=2"}, mapToEnvSlice(map[string]string{"B": "2", "A": "1"}))
}
