//go:build !kronbatch_nochecks

package assert

// checksEnabled gates every precondition in the core. Debug and test builds
// keep it on; build with -tags kronbatch_nochecks to elide the checks.
const checksEnabled = true

// Enabled reports whether precondition checks run in this build.
const Enabled = checksEnabled
