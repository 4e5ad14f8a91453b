package cli

const (
	SnapshotFlag      = "snapshot"
	SnapshotShortFlag = "s"
	SnapshotUsage     = "Snapshot file to use instead of the embedded data (.yaml, .yml or .json)"

	OutputFlag      = "output"
	OutputShortFlag = "o"
	OutputUsage     = "Output format: text, json or yaml"

	RootsFlag         = "roots"
	RootsShortFlag    = "r"
	RootsDefaultValue = false
	RootsUsage        = "Print only root locales"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)
