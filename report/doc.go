// Package report renders a run result as plain text.
package report
