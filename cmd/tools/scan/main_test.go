package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruiter-assistant/internal/cv"
	"recruiter-assistant/internal/scan"
	"recruiter-assistant/internal/storage"
)

func TestReport(t *testing.T) {
	res := &scan.Result{
		Extracted: []cv.ExtractedCandidate{
			{Contact: cv.Contact{Name: "Asha Rao"}, SourceID: "asha.pdf"},
			{SourceID: "scan.pdf", Error: cv.ErrNoText},
		},
		Changes: storage.Changeset{
			Insert: []storage.Candidate{{SourceID: "asha.pdf", Name: "Asha Rao", Email: "asha@rao.dev"}},
			Delete: []storage.Candidate{{SourceID: "old.pdf", Name: "Old"}},
		},
	}

	var buf bytes.Buffer
	report(&buf, res, false)
	out := buf.String()

	assert.Contains(t, out, "!  scan.pdf: could not extract text")
	assert.Contains(t, out, "+  asha.pdf")
	assert.Contains(t, out, "-  old.pdf")
	assert.Contains(t, out, "2 documents: would insert 1, update 0, delete 1")
}

func TestRootCmdRequiresDir(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}
