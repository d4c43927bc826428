package cfront

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// ExternalCodegen shells out to the binary named by the PUC16_CC_BACKEND
// environment variable, feeding it C source on stdin and taking generated
// assembly from stdout — the real C compiler is an external tool per
// spec.md, so this is the only place that talks to one.
type ExternalCodegen struct {
	// EnvVar overrides which environment variable names the backend
	// binary; defaults to PUC16_CC_BACKEND when empty.
	EnvVar string
}

// Generate invokes the configured backend binary with cSource on stdin.
func (e ExternalCodegen) Generate(cSource string) (string, error) {
	envVar := e.EnvVar
	if envVar == "" {
		envVar = "PUC16_CC_BACKEND"
	}

	backend := os.Getenv(envVar)
	if backend == "" {
		return "", fmt.Errorf("%s is not set: no C code generator configured", envVar)
	}

	cmd := exec.Command(backend) // #nosec G204 -- operator-configured backend path
	cmd.Stdin = bytes.NewReader([]byte(cSource))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s: %w (stderr: %s)", backend, err, stderr.String())
	}

	return stdout.String(), nil
}
