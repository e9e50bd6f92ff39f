// Package config loads the YAML configuration file of the nestflat command.
//
// Example:
//
//	version: "1"
//	max_depth: 64
//	macro_name: nested
//	output:
//	  width: 100
//	  indent: 4
//	  dir: generated
//	color: auto
//
// Every key is optional. Unknown keys are rejected.
package config
