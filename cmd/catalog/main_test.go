package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"tuniskill/internal/client"
)

func TestPrintCourses(t *testing.T) {
	var buf bytes.Buffer
	printCourses(&buf, []client.Course{
		{ID: 1, Title: "Complete Web Development Bootcamp", Instructor: "John Doe", Level: "Beginner", Price: 99.99, Rating: 4.8, Students: 1250, IsFeatured: true},
		{ID: 3, Title: "Data Science with Python", Instructor: "Ahmed Ben Ali", Level: "Intermediate", Price: 129.99, Rating: 4.7, Students: 567},
	})

	out := buf.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Complete Web Development Bootcamp")
	assert.Contains(t, out, "99.99")
	assert.Contains(t, out, "*")
}

func TestPrintCourses_Empty(t *testing.T) {
	var buf bytes.Buffer
	printCourses(&buf, nil)
	assert.Equal(t, "No courses available.\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefghij", 5))
}
