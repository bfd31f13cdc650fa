// Package constants centralizes configuration defaults shared across the CLI.
//
// Keeping the batch limit, request timing, and export filename in one place
// prevents magic numbers from scattering across cmd/ and internal/, and lets
// both packages reference the same values without import cycles.
package constants
