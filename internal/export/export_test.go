package export

import (
	"os"
	"path/filepath"
	"testing"

	"pyjs/internal/translate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTranslator struct {
	source string
	ns     translate.Namespace
	out    string
}

func (r *recordingTranslator) Translate(source string, ns translate.Namespace) (string, error) {
	r.source = source
	r.ns = ns
	return r.out, nil
}

func TestFileWritesSibling(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.py")
	require.NoError(t, os.WriteFile(src, []byte("x = 1\n"), 0o644))

	tr := &recordingTranslator{out: "var x = 1;\n"}
	ns := translate.Namespace{"mod": "foo"}
	require.NoError(t, File(tr, src, ns))

	assert.Equal(t, "x = 1\n", tr.source)
	assert.Equal(t, ns, tr.ns)

	data, err := os.ReadFile(filepath.Join(dir, "foo.js"))
	require.NoError(t, err)
	assert.Equal(t, "/* Do not edit, autogenerated by pyjs */\n\nvar x = 1;\n", string(data))
}

func TestFileOverwritesExistingTarget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.py")
	dst := filepath.Join(dir, "foo.js")
	require.NoError(t, os.WriteFile(src, []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("stale\n"), 0o644))

	require.NoError(t, File(&recordingTranslator{out: "fresh\n"}, src, nil))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, Banner+"\n\nfresh\n", string(data))
}

func TestFileRejectsNonPyPath(t *testing.T) {
	err := File(&recordingTranslator{}, filepath.Join(t.TempDir(), "foo.txt"), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFileRejectsMissingFile(t *testing.T) {
	err := File(&recordingTranslator{}, filepath.Join(t.TempDir(), "gone.py"), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFilePropagatesTranslatorError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.py")
	require.NoError(t, os.WriteFile(src, []byte("x =\n"), 0o644))

	boom := &translate.Error{Output: "unexpected end of input"}
	tr := translate.Func(func(string, translate.Namespace) (string, error) {
		return "", boom
	})

	err := File(tr, src, nil)
	var terr *translate.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "unexpected end of input", terr.Output)

	// Nothing was written.
	_, statErr := os.Stat(filepath.Join(dir, "foo.js"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestTargetPath(t *testing.T) {
	assert.Equal(t, "/a/b/foo.js", TargetPath("/a/b/foo.py"))
}
