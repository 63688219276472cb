package packages

import (
	"context"
	"sync"
	"testing"

	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/arthur-debert/pioneer/pkg/execution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aptList = `Listing... Done
curl/jammy-updates,now 7.81.0-1ubuntu1.15 amd64 [installed]
git/jammy-updates 1:2.34.1-1ubuntu1.10 amd64
libc6/jammy-updates,now 2.35-0ubuntu3.6 amd64 [installed,automatic]
`

// fakeRunner records commands and answers "list" with a canned listing.
type fakeRunner struct {
	mu       sync.Mutex
	calls    []execution.Command
	list     string
	failArgs map[string]error
}

func (f *fakeRunner) Run(_ context.Context, cmd execution.Command) (*execution.Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cmd)
	if err := f.failArgs[cmd.Args[0]]; err != nil {
		return nil, err
	}
	if cmd.Args[0] == "list" {
		return &execution.Output{Stdout: f.list}, nil
	}
	return &execution.Output{}, nil
}

func (f *fakeRunner) args() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]string
	for _, c := range f.calls {
		out = append(out, c.Args)
	}
	return out
}

func TestParseList(t *testing.T) {
	index := ParseList(aptList)

	assert.Len(t, index, 3)
	assert.Contains(t, index, "curl")
	assert.Contains(t, index, "git")
	assert.Contains(t, index, "libc6")
	assert.NotContains(t, index, "Listing... Done")
}

func TestCheck_BuildsIndexOnce(t *testing.T) {
	runner := &fakeRunner{list: aptList}
	m := NewManager(runner, "")
	ctx := context.Background()

	require.NoError(t, m.Check(ctx, "curl"))
	require.NoError(t, m.Check(ctx, "git"))

	err := m.Check(ctx, "no-such-package")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "no-such-package", errors.GetErrorDetails(err)["package"])

	assert.Equal(t, [][]string{{"update"}, {"list"}}, runner.args())
	assert.Equal(t, "apt", runner.calls[0].Path)
}

func TestIndex_ConcurrentCallersShareOneBuild(t *testing.T) {
	runner := &fakeRunner{list: aptList}
	m := NewManager(runner, "apt")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Index(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, [][]string{{"update"}, {"list"}}, runner.args())
}

func TestIndex_UpdateFailure(t *testing.T) {
	runner := &fakeRunner{
		list:     aptList,
		failArgs: map[string]error{"update": errors.New(errors.ErrExternalTool, "update failed")},
	}
	m := NewManager(runner, "apt")

	err := m.Check(context.Background(), "curl")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalTool))
	assert.Equal(t, [][]string{{"update"}}, runner.args(), "list is not attempted after a failed update")
}

func TestInstall(t *testing.T) {
	runner := &fakeRunner{}
	m := NewManager(runner, "apt-get")

	require.NoError(t, m.Install(context.Background(), "curl"))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, execution.Command{
		Path: "apt-get",
		Args: []string{"install", "-y", "curl"},
		Env:  []string{"DEBIAN_FRONTEND=noninteractive"},
	}, runner.calls[0])
}

func TestInstall_Failure(t *testing.T) {
	runner := &fakeRunner{failArgs: map[string]error{"install": errors.New(errors.ErrExternalTool, "exit 100")}}
	m := NewManager(runner, "apt")

	err := m.Install(context.Background(), "curl")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalTool))
	assert.Equal(t, "curl", errors.GetErrorDetails(err)["package"])
}
