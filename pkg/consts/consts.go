package consts

import "os"

const (
	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the project configuration file looked up in the working directory
	DefaultConfigFile = "qfmt.yaml"

	// DefaultExtension is the extension of query files formatted when walking a directory
	DefaultExtension = ".qry"
)
