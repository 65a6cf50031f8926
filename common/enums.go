// Package common keeps enumerations shared by configuration and command
// line handling.
package common

//go:generate go tool go-enum --marshal --names

// Rendering of parsed URL parts.
// ENUM(tree, yaml, json, template)
type OutputFormat int

// Structured renderings keep nesting of parts, others produce text.
func (o OutputFormat) Structured() bool {
	return o == OutputFormatYaml || o == OutputFormatJson
}
