package tag

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagComment is the explanatory text tag writers are asked to add
// after the signature line.
const tagComment = "\n# This file is a cache directory tag created by (application name).\n" +
	"# For information about cache directory tags, see:\n" +
	"#\thttps://bford.info/cachedir/\n"

// writeTag creates dir/CACHEDIR.TAG with content.
func writeTag(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Filename), []byte(content), 0o644))
}

func TestSignature(t *testing.T) {
	assert.Len(t, Signature, 43)
	assert.Equal(t, "CACHEDIR.TAG", Filename)
}

func TestInspect(t *testing.T) {
	tests := []struct {
		name    string
		content *string // nil means no tag file
		state   State
	}{
		{"no tag file", nil, Absent},
		{"signature only", ptr(Signature), Present},
		{"signature with comment", ptr(Signature + tagComment), Present},
		{"signature with trailing newline", ptr(Signature + "\n"), Present},
		{"signature followed by garbage", ptr(Signature + "\x00\xff"), Present},
		{"wrong content", ptr("Signature: wrong"), WrongHeader},
		{"empty file", ptr(""), WrongHeader},
		{"truncated signature", ptr(Signature[:len(Signature)-2]), WrongHeader},
		{"last byte differs", ptr(Signature[:len(Signature)-1] + "6"), WrongHeader},
		{"first byte differs", ptr("s" + Signature[1:]), WrongHeader},
		{"leading whitespace", ptr(" " + Signature), WrongHeader},
		{"lowercase hash", ptr("signature: 8a477f597d28d172789f06886806bc55"), WrongHeader},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			if tc.content != nil {
				writeTag(t, dir, *tc.content)
			}

			r, err := Inspect(dir)
			require.NoError(t, err)
			assert.Equal(t, tc.state, r.State)
			assert.Equal(t, dir, r.Dir)
			assert.Equal(t, tc.state == Present, r.Tagged())

			tagged, err := IsTagged(dir)
			require.NoError(t, err)
			assert.Equal(t, tc.state == Present, tagged)
		})
	}
}

func TestInspect_Header(t *testing.T) {
	t.Run("reads at most the signature length", func(t *testing.T) {
		dir := t.TempDir()
		writeTag(t, dir, Signature+tagComment)

		r, err := Inspect(dir)
		require.NoError(t, err)
		assert.Equal(t, []byte(Signature), r.Header)
	})

	t.Run("short file keeps what was read", func(t *testing.T) {
		dir := t.TempDir()
		writeTag(t, dir, "Signature: wrong")

		r, err := Inspect(dir)
		require.NoError(t, err)
		assert.Equal(t, []byte("Signature: wrong"), r.Header)
	})

	t.Run("absent has no header", func(t *testing.T) {
		r, err := Inspect(t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, r.Header)
	})
}

func TestInspect_Errors(t *testing.T) {
	t.Run("nonexistent directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "does-not-exist")

		_, err := Inspect(dir)
		require.Error(t, err)

		var te *Error
		require.ErrorAs(t, err, &te)
		assert.Equal(t, KindNotFound, te.Kind)
		assert.Equal(t, dir, te.Path)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.NotErrorIs(t, err, ErrPermission)
		if runtime.GOOS != "windows" {
			assert.Contains(t, err.Error(), "no such file or directory")
		}
	})

	t.Run("path is a regular file", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("ENOTDIR semantics differ on windows")
		}
		file := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		_, err := Inspect(file)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIO)

		var te *Error
		require.ErrorAs(t, err, &te)
		assert.Equal(t, KindIO, te.Kind)
	})

	t.Run("tag file is a directory", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("reading a directory handle differs on windows")
		}
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, Filename), 0o755))

		_, err := Inspect(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIO)
	})

	t.Run("unreadable tag file", func(t *testing.T) {
		skipUnlessPermissionsEnforced(t)
		dir := t.TempDir()
		writeTag(t, dir, Signature)
		p := filepath.Join(dir, Filename)
		require.NoError(t, os.Chmod(p, 0))
		t.Cleanup(func() { _ = os.Chmod(p, 0o644) })

		_, err := Inspect(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPermission)
		assert.ErrorIs(t, err, fs.ErrPermission)

		var te *Error
		require.ErrorAs(t, err, &te)
		assert.Equal(t, KindPermission, te.Kind)
		assert.Equal(t, p, te.Path)
	})

	t.Run("unreadable directory", func(t *testing.T) {
		skipUnlessPermissionsEnforced(t)
		dir := filepath.Join(t.TempDir(), "locked")
		require.NoError(t, os.Mkdir(dir, 0o755))
		writeTag(t, dir, Signature)
		require.NoError(t, os.Chmod(dir, 0))
		t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

		_, err := IsTagged(dir)
		assert.ErrorIs(t, err, ErrPermission)
	})
}

func TestInspect_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeTag(t, dir, Signature+tagComment)

	for range 5 {
		tagged, err := IsTagged(dir)
		require.NoError(t, err)
		assert.True(t, tagged)
	}

	missing := filepath.Join(dir, "missing")
	for range 5 {
		_, err := IsTagged(missing)
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestInspect_Concurrent(t *testing.T) {
	tagged := t.TempDir()
	writeTag(t, tagged, Signature+tagComment)
	untagged := t.TempDir()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ok, err := IsTagged(tagged)
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
		go func() {
			defer wg.Done()
			ok, err := IsTagged(untagged)
			assert.NoError(t, err)
			assert.False(t, ok)
		}()
	}
	wg.Wait()
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches([]byte(Signature)))
	assert.True(t, Matches([]byte(Signature+"\n# comment")))
	assert.False(t, Matches(nil))
	assert.False(t, Matches([]byte(Signature[:10])))
	assert.False(t, Matches([]byte("Signature: 00000000000000000000000000000000")))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "absent", Absent.String())
	assert.Equal(t, "wrong-header", WrongHeader.String())
	assert.Equal(t, "present", Present.String())
	assert.Equal(t, "unknown", State(42).String())
}

func skipUnlessPermissionsEnforced(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("chmod does not restrict reads on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}
}

func ptr(s string) *string { return &s }
