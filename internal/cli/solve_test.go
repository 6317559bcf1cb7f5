package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/bnb"
	"github.com/katalvlaran/knapsack/instance"
)

const classicYAML = `
instances:
  - name: classic
    capacity: 50
    items:
      - {name: gold, weight: 10, value: 60}
      - {name: silver, weight: 20, value: 100}
      - {name: bronze, weight: 30, value: 120}
  - capacity: 10
    items:
      - {weight: 5, value: 10}
      - {weight: 4, value: 40}
      - {weight: 6, value: 30}
      - {weight: 3, value: 50}
  - name: mixed
    capacity: 269
    items:
      - {weight: 95, value: 55}
      - {weight: 4, value: 10}
      - {weight: 60, value: 47}
      - {weight: 32, value: 5}
      - {weight: 23, value: 4}
      - {weight: 72, value: 50}
      - {weight: 80, value: 8}
      - {weight: 62, value: 61}
      - {weight: 65, value: 85}
      - {weight: 46, value: 87}
`

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseItem(t *testing.T) {
	tests := []struct {
		in   string
		want instance.Entry
	}{
		{"10:60", instance.Entry{Weight: 10, Value: 60}},
		{" 4 : 40 ", instance.Entry{Weight: 4, Value: 40}},
		{"gold=10:60", instance.Entry{Name: "gold", Weight: 10, Value: 60}},
		{"0:5", instance.Entry{Weight: 0, Value: 5}}, // rejected later by the solver
	}
	for _, tt := range tests {
		got, err := parseItem(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "10", "10-60", "a:1", "1:b", "x=1"} {
		_, err := parseItem(bad)
		assert.ErrorIs(t, err, errBadItemFlag, bad)
	}
}

func TestSolve_Inline(t *testing.T) {
	out, err := execute(t, "solve", "-c", "50", "-i", "gold=10:60", "-i", "20:100", "-i", "30:120")
	require.NoError(t, err)

	assert.Contains(t, out, "inline")
	assert.Contains(t, out, "Maximum value 220")
	assert.Contains(t, out, "50 / 50")
	assert.Contains(t, out, "item 1, item 2")
	assert.Contains(t, out, "gold")
	assert.Contains(t, out, "6.00") // gold's ratio
}

func TestSolve_InlineQuiet(t *testing.T) {
	out, err := execute(t, "solve", "-q", "-c", "10", "-i", "5:10", "-i", "4:40", "-i", "6:30", "-i", "3:50")
	require.NoError(t, err)
	assert.Equal(t, "inline\t90\n", out)
}

func TestSolve_InlineNoItems(t *testing.T) {
	out, err := execute(t, "solve", "-q", "-c", "7")
	require.NoError(t, err)
	assert.Equal(t, "inline\t0\n", out)
}

func TestSolve_FileKeepsOrder(t *testing.T) {
	path := writeFile(t, "set.yaml", classicYAML)

	for _, s := range []string{"best-first", "breadth-first", "depth-first"} {
		for _, jobs := range []string{"1", "3"} {
			out, err := execute(t, "solve", "-q", "-f", path, "-s", s, "-j", jobs)
			require.NoError(t, err, s)
			assert.Equal(t, "classic\t220\ninstance-1\t90\nmixed\t295\n", out, "strategy=%s jobs=%s", s, jobs)
		}
	}
}

func TestSolve_FileReport(t *testing.T) {
	path := writeFile(t, "set.yaml", classicYAML)

	out, err := execute(t, "solve", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "classic")
	assert.Contains(t, out, "silver, bronze")
	assert.Contains(t, out, "Maximum value 295")
	assert.Contains(t, out, "269 / 269")
	assert.Contains(t, out, "best-first")
	assert.Less(t, strings.Index(out, "classic"), strings.Index(out, "mixed"))
}

func TestSolve_Errors(t *testing.T) {
	path := writeFile(t, "set.yaml", classicYAML)

	_, err := execute(t, "solve")
	assert.ErrorIs(t, err, errNoSource)

	_, err = execute(t, "solve", "-i", "1:1")
	assert.ErrorIs(t, err, errNoSource)

	_, err = execute(t, "solve", "-f", path, "-c", "5")
	assert.ErrorIs(t, err, errSourceConflict)

	_, err = execute(t, "solve", "-c", "5", "-s", "random")
	assert.ErrorIs(t, err, bnb.ErrOptionViolation)

	_, err = execute(t, "solve", "-c", "5", "-j", "0")
	assert.Error(t, err)

	_, err = execute(t, "solve", "-c", "5", "-i", "0:3")
	assert.ErrorIs(t, err, bnb.ErrInvalidItem)

	_, err = execute(t, "solve", "--capacity=-1")
	assert.ErrorIs(t, err, bnb.ErrInvalidCapacity)

	_, err = execute(t, "solve", "-c", "5", "-i", "oops")
	assert.ErrorIs(t, err, errBadItemFlag)

	_, err = execute(t, "solve", "-f", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolve_BadInstanceInFile(t *testing.T) {
	path := writeFile(t, "bad.json", `{"instances":[
		{"name":"ok","capacity":5,"items":[{"weight":1,"value":1}]},
		{"name":"broken","capacity":5,"items":[{"weight":-2,"value":1}]}
	]}`)

	_, err := execute(t, "solve", "-f", path, "-j", "2")
	require.ErrorIs(t, err, bnb.ErrInvalidItem)
	assert.Contains(t, err.Error(), `"broken"`)
}

func TestSolveAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := instance.Instance{Name: "x", Capacity: 1, Items: []instance.Entry{{Weight: 1, Value: 1}}}
	_, err := solveAll(ctx, []instance.Instance{in}, bnb.BestFirst, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
