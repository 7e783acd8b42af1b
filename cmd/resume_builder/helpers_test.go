package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// runCLI executes the root command in-process and returns what it printed
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeDocument saves doc as a snapshot file in a temp dir
func writeDocument(t *testing.T, doc types.Document) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func janeDoe() types.Document {
	doc := types.DefaultDocument()
	doc.Header.FullName = "Jane Doe"
	doc.Header.Email = "jane@example.com"
	doc.Summary.Content = "Research scientist."
	doc.Experience = []types.ExperienceItem{{ID: "e1", Title: "Scientist", Company: "Acme", Current: true, EndDate: "ignored", Bullets: []string{"Did X"}}}
	return doc
}

// scriptedDriver answers prompts from fixed lists
type scriptedDriver struct {
	selects []int
	inputs  []string
	err     error

	defaults []int
}

func (d *scriptedDriver) Input(context.Context, session.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	v := d.inputs[0]
	d.inputs = d.inputs[1:]
	return v, nil
}

func (d *scriptedDriver) Confirm(context.Context, session.ConfirmConfig) (bool, error) {
	return false, errors.New("no confirm scripted")
}

func (d *scriptedDriver) Select(_ context.Context, cfg session.SelectConfig) (int, error) {
	d.defaults = append(d.defaults, cfg.DefaultIndex)
	if len(d.selects) == 0 {
		if d.err != nil {
			return -1, d.err
		}
		return -1, errors.New("no select scripted")
	}
	v := d.selects[0]
	d.selects = d.selects[1:]
	return v, nil
}

func (d *scriptedDriver) TextArea(context.Context, session.TextAreaConfig) (string, error) {
	return "", errors.New("no textarea scripted")
}

// useDriver installs d for the duration of the test
func useDriver(t *testing.T, d session.PromptDriver) {
	t.Helper()
	previous := newPromptDriver
	newPromptDriver = func() session.PromptDriver { return d }
	t.Cleanup(func() { newPromptDriver = previous })
}
