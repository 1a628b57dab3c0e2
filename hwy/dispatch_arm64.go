//go:build arm64

package hwy

import (
	"golang.org/x/sys/cpu"
)

// The decomposition-count kernel in package block always operates on fixed
// 16-byte lanes; dispatch here is purely informational, reported at startup.
func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available; it's part of the
	// ARMv8-A base architecture. cpu.ARM64.HasASIMD is always true for
	// ARMv8+, checked for consistency with the amd64 dispatch file.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16
		currentName = "neon"
	} else {
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
	}
}
