package testkit

import "testing"

func TestMustPanicCatchesPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
}

func TestMustContainPasses(t *testing.T) {
	MustContain(t, "alpha beta gamma", "beta")
}
