package coding

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantOrder = []string{
	"Energy Classification Errors",
	"Accessibility Classification Errors",
	"Subgenre Classification Issues",
	"Reasoning & Context Issues",
	"Technical Errors",
	"Needs Review / Ambiguous",
}

func TestCategoriesFixedOrder(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 6)

	for i, c := range cats {
		assert.Equal(t, wantOrder[i], c.Name)
		assert.NotEmpty(t, c.Codes, "category %q must carry codes", c.Name)
	}
}

func TestSampleCodes(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		wantLen  int
	}{
		{"Empty", Category{Name: "x"}, 0},
		{"One", Category{Name: "x", Codes: []string{"a"}}, 1},
		{"Exactly three", Category{Name: "x", Codes: []string{"a", "b", "c"}}, 3},
		{"More than three", Category{Name: "x", Codes: []string{"a", "b", "c", "d"}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleCodes(tt.category)
			if len(got) != tt.wantLen {
				t.Errorf("SampleCodes() returned %d codes, want %d", len(got), tt.wantLen)
			}
		})
	}

	for _, c := range Categories() {
		samples := SampleCodes(c)
		want := len(c.Codes)
		if want > 3 {
			want = 3
		}
		assert.Len(t, samples, want, "category %q", c.Name)
		assert.Equal(t, c.Codes[:want], samples, "samples must be the leading codes")
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf)
	out := buf.String()

	banner := strings.Repeat("=", 80)
	lines := strings.Split(out, "\n")

	require.Greater(t, len(lines), 10)
	assert.Equal(t, banner, lines[0])
	assert.Equal(t, "PROPOSED AXIAL CODE CATEGORIES", lines[1])
	assert.Equal(t, banner, lines[2])

	// every category block appears, upper-cased, in declaration order
	lastIdx := -1
	for _, name := range wantOrder {
		idx := strings.Index(out, "\n"+strings.ToUpper(name)+"\n")
		require.GreaterOrEqual(t, idx, 0, "missing block for %q", name)
		assert.Greater(t, idx, lastIdx, "block for %q out of order", name)
		lastIdx = idx
	}

	// counts and sample lines per category
	sampleTotal := 0
	for _, c := range Categories() {
		assert.Contains(t, out, fmt.Sprintf("Total codes: %d\n", len(c.Codes)))
		assert.Contains(t, out, fmt.Sprintf("%s: %d codes\n", c.Name, len(c.Codes)))
		sampleTotal += len(SampleCodes(c))
	}
	assert.Equal(t, sampleTotal, strings.Count(out, "\n  - "),
		"each category prints min(3, total) sample lines")

	assert.Contains(t, out, "CATEGORY SUMMARY")

	// summary block lists all six categories after the second banner
	summaryIdx := strings.Index(out, "CATEGORY SUMMARY")
	for _, c := range Categories() {
		line := fmt.Sprintf("%s: %d codes", c.Name, len(c.Codes))
		assert.Greater(t, strings.LastIndex(out, line), summaryIdx)
	}
}

func TestWriteReportIdempotent(t *testing.T) {
	var first, second bytes.Buffer
	WriteReport(&first)
	WriteReport(&second)
	assert.Equal(t, first.String(), second.String())
}
