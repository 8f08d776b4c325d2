package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCmdAcceptsWellFormedDocument(t *testing.T) {
	path := writeTempJSON(t, `{"a":1,"b":[true,null]}`)
	err := validateCmd.RunE(validateCmd, []string{path})
	assert.NoError(t, err)
}

func TestValidateCmdRejectsMalformedDocument(t *testing.T) {
	path := writeTempJSON(t, `{"a":1,}`)
	err := validateCmd.RunE(validateCmd, []string{path})
	assert.Error(t, err)
}

func TestValidateCmdRequiresArguments(t *testing.T) {
	err := validateCmd.RunE(validateCmd, nil)
	assert.Error(t, err)
}
