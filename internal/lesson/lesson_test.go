package lesson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarkBJohnsAdmin/distribution/internal/lesson"
)

func TestMarkdown_Embedded(t *testing.T) {
	md := lesson.Markdown()
	assert.Contains(t, md, "# What is a distribution?")
	assert.Contains(t, md, "histogram")
}
