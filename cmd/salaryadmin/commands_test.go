package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func runCLI(t *testing.T, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer

	cmd := newRootCommand(zap.New(core), &out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), logs, err
}

func TestAddComponentRejectsEmptyValueWithoutRequest(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer ts.Close()

	_, logs, err := runCLI(t, "--url", ts.URL, "add-component", "e-1", "--name", "HRA")

	assert.ErrorIs(t, err, errCallsFailed)
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, 1, logs.FilterMessage("not sent: invalid input").Len())
}

func TestShowPrintsResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/salary/e-1/structure", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true,"data":{"employee_id":"e-1","structure":null,"components":[]}}`)
	}))
	defer ts.Close()

	out, _, err := runCLI(t, "--url", ts.URL, "show", "e-1")

	assert.NoError(t, err)
	assert.Contains(t, out, `"employee_id": "e-1"`)
	assert.Contains(t, out, `"structure": null`)
}

func TestApplyContinuesAfterFailure(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPut {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"ok":false,"error":{"code":"INVALID_INPUT","message":"monthly wage must be greater than zero"}}`)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"ok":true,"data":{"id":"c-1"}}`)
	}))
	defer ts.Close()

	file := filepath.Join(t.TempDir(), "salary.yaml")
	assert.NoError(t, os.WriteFile(file, []byte(`
employee_id: e-1
structure:
  monthly_wage: "0"
components:
  - name: HRA
    value: "5000"
`), 0o600))

	_, logs, err := runCLI(t, "--url", ts.URL, "apply", "-f", file)

	assert.ErrorIs(t, err, errCallsFailed)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 1, logs.FilterMessage("request rejected").Len())
	assert.Equal(t, 1, logs.FilterMessage("done").Len())
}
