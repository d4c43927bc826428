package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wcaarls/puc16/vm"
)

func TestDiffReportsChangedRegisterAndFlags(t *testing.T) {
	before := vm.NewState(vm.NewBufferIO(""))
	after := before.Clone()
	after.CPU.R[3] = 42
	after.CPU.Flags.Z = true

	d := before.Diff(after)
	assert.Contains(t, d, "r3 <- 42")
	assert.Contains(t, d, "zf <- true")
}

func TestDiffEmptyWhenUnchanged(t *testing.T) {
	before := vm.NewState(vm.NewBufferIO(""))
	after := before.Clone()
	assert.Empty(t, before.Diff(after))
}
