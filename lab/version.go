package lab

// Version information for the golab teaching corpus.
const (
	// Version is the current version of the lab.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides runtime information about the lab.
type Info struct {
	// Version is the lab version string.
	Version string

	// Topics lists the covered topic areas.
	Topics []string

	// Demos is the number of registered demonstrations.
	Demos int
}

// GetInfo returns information about the lab.
//
// Example:
//
//	info := lab.GetInfo()
//	fmt.Printf("golab %s (%d demos)\n", info.Version, info.Demos)
func GetInfo() Info {
	return Info{
		Version: Version,
		Topics:  Topics(),
		Demos:   len(registry),
	}
}
