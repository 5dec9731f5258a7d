package main

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colprofile/internal/testkit"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"COLPROFILE_DIR", "COLPROFILE_OUTPUT", "COLPROFILE_CHUNK_SIZE", "COLPROFILE_WORKERS", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestRootCmd_WritesReport(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "ERROR")

	kit := testkit.New(t)
	kit.WriteFile("data.csv", "id,name\n1,Alice\n2,Bob\n3,\n")
	output := kit.Path("out.csv")

	cmd := newRootCmd()
	cmd.SetArgs([]string{kit.Dir(), "-o", output, "--chunk-size", "2", "--workers", "2", "--quiet"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "File,Column,Min Value,Max Value,Max Length,Null Values,Notes\n"+
		"data.csv,id,1,3,,0,\n"+
		"data.csv,name,,,5,1,\n", string(content))
}

func TestRootCmd_RejectsInvalidFlags(t *testing.T) {
	clearEnv(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{t.TempDir(), "--chunk-size", "0"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestRootCmd_MissingDirectory(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "ERROR")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"/definitely/not/here", "-o", t.TempDir() + "/out.csv", "-q"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
