package version

import "github.com/carlmjohnson/versioninfo"

// String reports the build's version from embedded VCS info.
func String() string {
	return versioninfo.Short()
}
