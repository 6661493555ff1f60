package aliases_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rualdi/rualdi/internal/aliases"
	"github.com/rualdi/rualdi/internal/display"
	"github.com/rualdi/rualdi/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHome = "/home/u"

func open(t *testing.T, dir string) *aliases.Store {
	t.Helper()
	s, err := aliases.Open(dir, aliases.Options{Home: testHome})
	require.NoError(t, err)
	return s
}

func TestOpen_CreatesDirectoryAndFile(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "a", "b")

	s := open(t, dir)

	assert.Equal(t, filepath.Join(dir, aliases.FileName), s.Path())
	assert.False(t, s.Dirty())
	content := testutil.ReadAliasesFile(t, dir)
	assert.True(t, strings.HasPrefix(content, testutil.BaseHeader))
	assert.NotNil(t, s.Aliases())
	assert.Empty(t, s.Aliases())
	assert.NotNil(t, s.Environment())
	assert.Empty(t, s.Environment())
}

func TestOpen_FilledFile(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, testutil.BaseHeader+`[aliases]
test = "/test/haha"
Home = "~"

[environment]
test = "TEST"
`)

	s := open(t, dir)

	assert.Equal(t, map[string]string{"test": "/test/haha", "Home": "~"}, s.Aliases())
	assert.Equal(t, map[string]string{"test": "TEST"}, s.Environment())
}

func TestOpen_MissingSectionsAreUnset(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, "# nothing here\n")

	s := open(t, dir)

	assert.Nil(t, s.Aliases())
	assert.Nil(t, s.Environment())
	_, ok := s.Get("x")
	assert.False(t, ok)
}

func TestOpen_PresentButEmptySections(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, testutil.BaseHeader+"[aliases]\n[environment]\n")

	s := open(t, dir)

	assert.NotNil(t, s.Aliases())
	assert.Empty(t, s.Aliases())
	assert.NotNil(t, s.Environment())
	assert.Empty(t, s.Environment())
}

func TestOpen_UnknownSectionsIgnored(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, `[aliases]
a = "/a"

[metadata]
version = 3
owner = "me"
`)

	s := open(t, dir)
	got, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "/a", got)
}

func TestOpen_MalformedFile(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, "invalid toml [[[")

	_, err := aliases.Open(dir, aliases.Options{Home: testHome})
	require.Error(t, err)
	assert.ErrorIs(t, err, aliases.ErrDeserialize)
	assert.Equal(t, aliases.KindDeserialize, aliases.KindOf(err))
	assert.Contains(t, err.Error(), filepath.Join(dir, aliases.FileName))
}

func TestOpen_DirectoryIsAFile(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	_, err := aliases.Open(file, aliases.Options{Home: testHome})
	require.Error(t, err)
	assert.ErrorIs(t, err, aliases.ErrIO)
	assert.Contains(t, err.Error(), file)
}

func TestSave_NotDirtyIsNoop(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, "[aliases]\nkeep = 'me'\n")

	s := open(t, dir)
	require.NoError(t, s.Save())

	// 원본 형식(작은따옴표)이 그대로 남아 있어야 한다
	assert.Equal(t, "[aliases]\nkeep = 'me'\n", testutil.ReadAliasesFile(t, dir))
}

func TestSave_SecondCallDoesNotWrite(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, "")

	s := open(t, dir)
	require.NoError(t, s.Add("docs", "/tmp"))
	require.NoError(t, s.Save())
	assert.False(t, s.Dirty())

	path := filepath.Join(dir, aliases.FileName)
	require.NoError(t, os.Remove(path))

	require.NoError(t, s.Save())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "second save must not write")
}

func TestSave_WritesHeaderAndSortedKeys(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, "# stale header that must not survive\n[aliases]\n")

	s := open(t, dir)
	require.NoError(t, s.Add("zeta", "/z"))
	require.NoError(t, s.Add("alpha", "/a"))
	require.NoError(t, s.Add("mid", "/m"))
	require.NoError(t, s.Close())

	content := testutil.ReadAliasesFile(t, dir)
	assert.True(t, strings.HasPrefix(content, testutil.BaseHeader))
	assert.NotContains(t, content, "stale header")

	a := strings.Index(content, "alpha")
	m := strings.Index(content, "mid")
	z := strings.Index(content, "zeta")
	assert.True(t, a < m && m < z, "keys must be sorted:\n%s", content)

	info, err := os.Stat(filepath.Join(dir, aliases.FileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, "")

	wantAliases := map[string]string{
		"docs":       "/tmp",
		"home":       "~",
		"work":       "~/work",
		"with space": "/path with space",
		"ünïcode":    "/ü/ñ",
		"quote":      `/a"b\c`,
	}
	wantEnv := map[string]string{
		"docs": "DOCS",
		"work": "WORK_DIR",
	}

	s := open(t, dir)
	for a, p := range wantAliases {
		require.NoError(t, s.Add(a, p))
	}
	for a, v := range wantEnv {
		require.NoError(t, s.AddEnv(a, v))
	}
	require.NoError(t, s.Close())

	reopened := open(t, dir)
	assert.Equal(t, wantAliases, reopened.Aliases())
	assert.Equal(t, wantEnv, reopened.Environment())
	assert.False(t, reopened.Dirty())
}

func TestSave_PreservesColors(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, `[aliases]
a = "/a"

[colors]
alias = "green"
path = "no-such-color"
`)

	s := open(t, dir)
	require.NoError(t, s.Add("b", "/b"))
	require.NoError(t, s.Close())

	reopened := open(t, dir)
	theme := reopened.Theme()
	assert.Equal(t, display.ColorGreen, theme.Alias)
	assert.Equal(t, display.DefaultTheme().Path, theme.Path)
	assert.Contains(t, testutil.ReadAliasesFile(t, dir), "[colors]")
}

func TestOpen_NonStringColorsFallBackToDefault(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, `[aliases]
a = "/a"

[colors]
alias = { fg = "red" }
header = 3
path = "cyan"
`)

	s := open(t, dir)
	theme := s.Theme()
	assert.Equal(t, display.DefaultTheme().Alias, theme.Alias)
	assert.Equal(t, display.DefaultTheme().Header, theme.Header)
	assert.Equal(t, display.ColorCyan, theme.Path)

	require.NoError(t, s.Add("b", "/b"))
	require.NoError(t, s.Close())
	assert.Equal(t, display.ColorCyan, open(t, dir).Theme().Path)
}

func TestSave_FollowsSymlinkedFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "dotfiles.toml")
	require.NoError(t, os.WriteFile(target, []byte("[aliases]\n"), 0600))
	link := filepath.Join(dir, aliases.FileName)
	require.NoError(t, os.Symlink(target, link))

	s := open(t, dir)
	require.NoError(t, s.Add("a", "/tmp"))
	require.NoError(t, s.Close())

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "aliases file must stay a symlink")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), `a = "/tmp"`)
}

func TestSave_ReadOnlyDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := testutil.TempAliasesDir(t, "")

	s := open(t, dir)
	require.NoError(t, s.Add("docs", "/tmp"))

	require.NoError(t, os.Chmod(dir, 0500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0700) })

	err := s.Save()
	require.Error(t, err)
	assert.ErrorIs(t, err, aliases.ErrIO)
	assert.Contains(t, err.Error(), filepath.Join(dir, aliases.FileName))
	assert.True(t, s.Dirty(), "failed save keeps the store dirty")
}

func TestSequentialInvocationsShareFile(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, "")

	first := open(t, dir)
	require.NoError(t, first.Add("a", "/a"))
	require.NoError(t, first.Close())

	second := open(t, dir)
	defer second.Close()
	got, ok := second.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "/a", got)
}

func TestClose_KeepsMutationsBeforeFailure(t *testing.T) {
	t.Parallel()
	dir := testutil.TempAliasesDir(t, "[aliases]\na = \"/a\"\n")

	err := func() error {
		s := open(t, dir)
		defer s.Close()
		if err := s.Remove("a"); err != nil {
			return err
		}
		return s.Remove("missing")
	}()
	require.Error(t, err)

	reopened := open(t, dir)
	_, ok := reopened.Get("a")
	assert.False(t, ok)
}
