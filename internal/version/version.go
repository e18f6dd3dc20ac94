package version

// Version is the current anagrid release. Bumped as part of the release
// process; the update checker compares this against the server's latest.
const Version = "0.3.1"
