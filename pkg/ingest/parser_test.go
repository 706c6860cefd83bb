package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPage_HeadingsUpdateSection(t *testing.T) {
	text := "1. Introduction\nThis system processes documents.\n\n1.1 Scope\nOnly PDFs are supported."
	segs, section := classifyPage(text, 1, "")

	require.Len(t, segs, 4)
	assert.Equal(t, SegmentHeading, segs[0].Kind)
	assert.Equal(t, 1, segs[0].HeadingLevel)
	assert.Equal(t, SegmentText, segs[1].Kind)
	assert.Equal(t, "1. Introduction", segs[1].Section)
	assert.Equal(t, SegmentHeading, segs[2].Kind)
	assert.Equal(t, 2, segs[2].HeadingLevel)
	assert.Equal(t, "1.1 Scope", segs[3].Section)
	assert.Equal(t, "1.1 Scope", section, "section carries forward to the next page")
}

func TestClassifyPage_TableLinesGroup(t *testing.T) {
	text := "Some prose before.\nname    role    team\nalice   dev     core\nbob     ops     infra\nSome prose after."
	segs, _ := classifyPage(text, 2, "3. Staffing")

	var kinds []SegmentKind
	for _, s := range segs {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []SegmentKind{SegmentText, SegmentTable, SegmentText}, kinds)
	assert.Contains(t, segs[1].Text, "alice")
	assert.Contains(t, segs[1].Text, "bob")
	assert.Equal(t, "3. Staffing", segs[1].Section)
}

func TestClassifyPage_Captions(t *testing.T) {
	text := "Figure 2: Request lifecycle\nThe figure shows the full path."
	segs, _ := classifyPage(text, 1, "")

	require.Len(t, segs, 2)
	assert.Equal(t, SegmentCaption, segs[0].Kind)
	assert.Equal(t, SegmentText, segs[1].Kind)
}

func TestIsHeading(t *testing.T) {
	assert.True(t, isHeading("2.3 Error Handling"))
	assert.True(t, isHeading("APPENDIX"))
	assert.False(t, isHeading("This is a normal sentence that happens to be here."))
	assert.False(t, isHeading("42")) // numbers alone are not headings
}
