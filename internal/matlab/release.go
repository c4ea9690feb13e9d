// Package matlab locates a compatible MATLAB installation on the host and
// derives the discovery record the companion engine bindings read at load
// time. Discovery is a single linear pass: a fast default-location check
// (or a registry query on Windows), then a scan of the platform's
// search-path variable for a directory whose layout and version descriptor
// match the release this probe was built for.
package matlab

// Release is the MATLAB release this build of the probe accepts.
// MUST_BE_UPDATED_EACH_RELEASE (search repo for this string).
const Release = "R2022a"

// Version is the numeric MATLAB version corresponding to Release.
// MUST_BE_UPDATED_EACH_RELEASE (search repo for this string).
const Version = "9.12"

// relToVer maps every supported MATLAB release to the engine package
// version that targets it. Used to name the remediation version when a
// valid but older installation is found.
// MUST_BE_UPDATED_EACH_RELEASE (search repo for this string).
var relToVer = map[string]string{
	"R2019a": "9.6",
	"R2019b": "9.7",
	"R2020a": "9.8",
	"R2020b": "9.9",
	"R2021a": "9.10",
	"R2021b": "9.11",
	"R2022a": "9.12",
}

// defaultInstalls holds the stock installer locations checked before the
// search-path scan on non-registry platforms.
var defaultInstalls = map[string]string{
	"darwin": "/Applications/MATLAB_" + Release + ".app",
	"linux":  "/usr/local/MATLAB/" + Release,
}
