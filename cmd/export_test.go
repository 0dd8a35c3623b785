package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOutput(t *testing.T) {
	tests := []struct {
		msg    string
		input  string
		format string
		res    string
	}{
		{"sqlite", "goa_human.gaf", "sqlite", "goa_human.sqlite"},
		{"jsonl", "goa_human.gaf", "jsonl", "goa_human.jsonl"},
		{"no gaf extension", "annotations.txt", "sqlite", "annotations.txt.sqlite"},
		{"path with dirs", "data/goa.gaf", "jsonl", "data/goa.jsonl"},
	}

	for _, v := range tests {
		res := defaultOutput(v.input, v.format)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "check")
	assert.Contains(t, names, "header")
	assert.Contains(t, names, "export")
}
