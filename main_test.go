package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hacienda-elizabeth/smoke-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	results := framework.Results{
		Tests: []framework.TestResult{
			{TestID: framework.TestID{Path: []string{"app loading", "loads"}}},
		},
	}
	require.NoError(t, writeReportFile(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SMOKE TEST REPORT")
	assert.Contains(t, string(data), "app loading/loads - PASS")
}

func TestWriteReportFileFailsForMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.txt")
	assert.Error(t, writeReportFile(path, framework.Results{}))
}
