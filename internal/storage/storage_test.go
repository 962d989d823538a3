package storage

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOpenDelete(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name, err := s.SaveStatement("statement.JSON", strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".json"))
	assert.Len(t, name, 36+len(".json"))

	rc, err := s.Open(name)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	require.NoError(t, s.Delete(name))
	_, err = os.Stat(s.GetPath(name))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveRejectsNonJSON(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.SaveStatement("statement.csv", strings.NewReader("a,b"))
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestGetPathStaysInBaseDir(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	assert.Equal(t, dir+string(os.PathSeparator)+"passwd", s.GetPath("../../etc/passwd"))
}
