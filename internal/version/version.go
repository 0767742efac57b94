package version

// Set at build time with -ldflags "-X github.com/redjax/gl/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Where gl is published; 'gl self info' prints these
	RepoUser = "redjax"
	RepoName = "gl"
	RepoUrl  = "https://github.com/redjax/gl"
	Package  = "gl"
)

// PackageInfo is the build and repository metadata of the gl binary
type PackageInfo struct {
	PackageName        string
	RepoUrl            string
	RepoUser           string
	RepoName           string
	PackageVersion     string
	PackageCommit      string
	PackageReleaseDate string
}

// GetPackageInfo returns a struct with information about the current package
func GetPackageInfo() PackageInfo {
	return PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		RepoUser:           RepoUser,
		RepoName:           RepoName,
		PackageVersion:     Version,
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
	}
}

// String is the one-line version banner printed by 'gl version'
func (p PackageInfo) String() string {
	return "package: " + p.PackageName + " version:" + p.PackageVersion +
		" commit:" + p.PackageCommit + " date:" + p.PackageReleaseDate
}
