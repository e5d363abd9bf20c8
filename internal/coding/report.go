package coding

import (
	"fmt"
	"io"
	"strings"
)

const (
	bannerWidth = 80
	sampleLimit = 3
)

// SampleCodes returns the first codes of a category, capped at the sample limit.
func SampleCodes(c Category) []string {
	if len(c.Codes) <= sampleLimit {
		return c.Codes
	}
	return c.Codes[:sampleLimit]
}

// WriteReport renders the full axial coding report: one block per category
// followed by the category summary. Output stream errors are not handled,
// matching a plain console report.
func WriteReport(w io.Writer) {
	banner := strings.Repeat("=", bannerWidth)
	rule := strings.Repeat("-", bannerWidth)

	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "PROPOSED AXIAL CODE CATEGORIES")
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)

	for _, c := range Categories() {
		fmt.Fprintf(w, "\n%s\n", strings.ToUpper(c.Name))
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "Total codes: %d\n", len(c.Codes))
		fmt.Fprintln(w, "Sample codes:")
		for _, code := range SampleCodes(c) {
			fmt.Fprintf(w, "  - %s\n", code)
		}
	}

	fmt.Fprintln(w, "\n"+banner)
	fmt.Fprintln(w, "CATEGORY SUMMARY")
	fmt.Fprintln(w, banner)
	for _, c := range Categories() {
		fmt.Fprintf(w, "%s: %d codes\n", c.Name, len(c.Codes))
	}
}
