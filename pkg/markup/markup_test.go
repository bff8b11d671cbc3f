package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutline(t *testing.T) {
	content := "Intro prose that is not part of the outline.\n" +
		"## Overview\n" +
		"Some body text.\n" +
		"### Timeline\n" +
		"- **Launch**: 2026-09-01\n" +
		"- **Contact**: press@example.com\n" +
		"- plain bullet, not labeled\n" +
		"##not-a-heading\n" +
		"## \n"

	nodes := Outline(content)
	assert.Equal(t, []Node{
		{Kind: NodeHeading, Text: "Overview"},
		{Kind: NodeSubheading, Text: "Timeline"},
		{Kind: NodeLabel, Text: "Launch", Value: "2026-09-01"},
		{Kind: NodeLabel, Text: "Contact", Value: "press@example.com"},
	}, nodes)
}

func TestOutline_EmptyContent(t *testing.T) {
	assert.Empty(t, Outline(""))
	assert.Empty(t, Outline("just prose\nand more prose"))
}

func TestOutline_WindowsLineEndings(t *testing.T) {
	nodes := Outline("## Overview\r\n### Detail\r\n")
	assert.Equal(t, []Node{
		{Kind: NodeHeading, Text: "Overview"},
		{Kind: NodeSubheading, Text: "Detail"},
	}, nodes)
}

func TestParseLabeledBullet(t *testing.T) {
	n, ok := parseLabeledBullet("- **Label**: value here")
	assert.True(t, ok)
	assert.Equal(t, Node{Kind: NodeLabel, Text: "Label", Value: "value here"}, n)

	n, ok = parseLabeledBullet("- **Label**:")
	assert.True(t, ok)
	assert.Equal(t, "", n.Value)

	_, ok = parseLabeledBullet("- **no terminator")
	assert.False(t, ok)

	_, ok = parseLabeledBullet("- ****: empty label")
	assert.False(t, ok)
}
