package cfront_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcaarls/puc16/cfront"
)

func TestExternalCodegenErrorsWithoutBackendConfigured(t *testing.T) {
	g := cfront.ExternalCodegen{EnvVar: "PUC16_TEST_CC_BACKEND_UNSET"}
	_, err := g.Generate("int main(){}")
	assert.ErrorContains(t, err, "PUC16_TEST_CC_BACKEND_UNSET")
}

func TestExternalCodegenInvokesConfiguredBackend(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script backend not supported on windows")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "backend.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho 'main:'\necho '  mov r0, 1'\n"), 0o755))

	g := cfront.ExternalCodegen{EnvVar: "PUC16_TEST_CC_BACKEND"}
	t.Setenv("PUC16_TEST_CC_BACKEND", script)

	out, err := g.Generate("int main(){}")
	require.NoError(t, err)
	assert.Contains(t, out, "main:")
	assert.Contains(t, out, "mov r0, 1")
}
