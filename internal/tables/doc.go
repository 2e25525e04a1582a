// Package tables holds the two static lookup tables that decide where an
// add-on file is installed: the Filetype Table (extension to game
// subdirectory) and the Exception Table (exact file name to a fixed
// subdirectory, used for the game-dependent script extension).
//
// The tables are configuration data written in HCL. The defaults are
// embedded in the binary (tables.hcl); a user file with the same schema can
// replace them at startup. Once loaded a *Tables is immutable.
package tables
