package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCases(t *testing.T) {
	path := writeFixture(t, `ID,Function,Input
1,pyplot.bar,"x=[1,2,3], height=[4,5,6]"
2,pyplot.pie,"sizes=[1,2]"
`)
	cases, err := LoadCases(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, Case{Function: "pyplot.bar", Input: "x=[1,2,3], height=[4,5,6]"}, cases[0])
	assert.Equal(t, Case{Function: "pyplot.pie", Input: "sizes=[1,2]"}, cases[1])
}

func TestLoadCasesMissingColumns(t *testing.T) {
	path := writeFixture(t, "Name,Args\nfoo,bar\n")
	_, err := LoadCases(path)
	assert.Error(t, err)
}

func TestLoadCasesMissingFile(t *testing.T) {
	_, err := LoadCases(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestRunnerRun(t *testing.T) {
	r := NewRunner(zap.NewNop())

	err := r.Run(Case{Function: "pyplot.plot", Input: "x=[1,2,3], y=[4,5,6]"})
	assert.NoError(t, err)

	err = r.Run(Case{Function: "pyplot.unknown_chart", Input: "x=[1]"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnimplemented))
}

func TestRunnerRender(t *testing.T) {
	r := NewRunner(nil)
	out := filepath.Join(t.TempDir(), "bar.png")

	err := r.Render(Case{Function: "pyplot.bar", Input: "height=[1,2,3]"}, 240, 180, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
