// Package report renders the library summary into its fixed plain-text layout
// and writes it to a file.
package report
