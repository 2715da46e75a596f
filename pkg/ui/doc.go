// Package ui renders overlay results for people and for programs.
//
// Plans and pack orders are printed as plain text, as styled terminal
// output, or handed to the sink exporters for json, yaml, toml and xml.
// Styles are semantic names backed by lipgloss and defined in the embedded
// styles.yaml, with adaptive colors for light and dark terminals.
package ui
