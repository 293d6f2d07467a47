// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/render"
	"fjacquet/expense-tracker/internal/validation"

	"github.com/spf13/cobra"
)

// PrintMarkdown renders markdown with r and writes it to the command's output.
func PrintMarkdown(cmd *cobra.Command, r *render.Renderer, markdown string) error {
	return r.Fprint(cmd.OutOrStdout(), markdown)
}

// Println writes one plain line to the command's output.
func Println(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

// ParseDay parses a --date style flag value. An empty value means today.
func ParseDay(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return dateutils.Today(), nil
	}
	iso, err := validation.Date(value)
	if err != nil {
		return time.Time{}, err
	}
	return dateutils.ParseDateString(iso)
}

// ParseOptionalDay is ParseDay with an empty value meaning no date.
func ParseOptionalDay(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return ParseDay(value)
}
