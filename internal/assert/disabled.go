//go:build kronbatch_nochecks

package assert

// checksEnabled gates every precondition in the core; this build elides them.
const checksEnabled = false

// Enabled reports whether precondition checks run in this build.
const Enabled = checksEnabled
