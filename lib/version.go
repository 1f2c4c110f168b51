package lib

// Banner the banner
const Banner = `
___.   .__                    .__  __
\_ |__ |__| ______ ____  __ __|__|/  |_
 | __ \|  |/  ___// ___\|  |  \  \   __\
 | \_\ \  |\___ \\  \___|  |  /|  ||  |
 |___  /__/____  >\___  >____/ |__||__|
     \/        \/     \/
`

var (
	// Version the version
	Version = "(untracked)"
	// CommitSHA the commit sha
	CommitSHA = "(unknown)"
)
