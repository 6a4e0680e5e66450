package doctor_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/light-merlin-dark/smart-find/internal/doctor"
	"github.com/light-merlin-dark/smart-find/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCheckWrapper(t *testing.T) {
	l := testutil.TempHome(t)
	assert.Equal(t, doctor.StatusWarn, doctor.CheckWrapper(l).Status)
	assert.Contains(t, doctor.CheckWrapper(l).Fix, "smart-find-setup")

	testutil.WriteFindScript(t, l, "#!/bin/sh\nexec /usr/bin/find\n")
	r := doctor.CheckWrapper(l)
	assert.Equal(t, doctor.StatusWarn, r.Status)
	assert.Contains(t, r.Message, "not created by smart-find")

	testutil.WriteFindScript(t, l, testutil.WrapperContent)
	assert.Equal(t, doctor.StatusOK, doctor.CheckWrapper(l).Status)
}

func TestCheckBackup(t *testing.T) {
	l := testutil.TempHome(t)
	assert.Equal(t, doctor.StatusOK, doctor.CheckBackup(l).Status)

	// 래퍼만 있고 백업이 없으면 경고
	testutil.WriteFindScript(t, l, testutil.WrapperContent)
	assert.Equal(t, doctor.StatusWarn, doctor.CheckBackup(l).Status)

	testutil.WriteBackup(t, l, testutil.OriginalFindContent)
	assert.Equal(t, doctor.StatusOK, doctor.CheckBackup(l).Status)
}

func TestCheckWhichFind(t *testing.T) {
	l := testutil.TempHome(t)

	tests := []struct {
		name   string
		output string
		err    error
		want   doctor.Status
	}{
		{"resolves to wrapper", l.FindScript + "\n", nil, doctor.StatusOK},
		{"resolves to system find", "/usr/bin/find\n", nil, doctor.StatusWarn},
		{"not found", "", fmt.Errorf("exit status 127"), doctor.StatusFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := testutil.NewFakeCommander()
			fc.Register("sh -c command -v find", tt.output, tt.err)

			r := doctor.CheckWhichFind(context.Background(), fc, l)
			assert.Equal(t, tt.want, r.Status)
			assert.True(t, fc.Called("sh -c"))
		})
	}
}

func TestCheckRCFiles(t *testing.T) {
	tests := []struct {
		name     string
		shell    string
		wantZsh  doctor.Status
		wantBash doctor.Status
		wantNote bool
	}{
		{"active bash missing entry", "/bin/bash", doctor.StatusOK, doctor.StatusWarn, false},
		{"active zsh ignores bashrc", "/bin/zsh", doctor.StatusOK, doctor.StatusOK, true},
		{"unknown shell warns", "", doctor.StatusOK, doctor.StatusWarn, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.shell)
			l := testutil.TempHome(t)
			testutil.WriteFile(t, filepath.Join(l.Home, ".zshrc"), "export PATH=\"$HOME/.local/bin:$PATH\"\n")
			testutil.WriteFile(t, filepath.Join(l.Home, ".bashrc"), "alias ll='ls -l'\n")

			results := doctor.CheckRCFiles(l)
			require.Len(t, results, 2)
			assert.Equal(t, "rc_zsh", results[0].Name)
			assert.Equal(t, tt.wantZsh, results[0].Status)
			assert.Equal(t, "rc_bash", results[1].Name)
			assert.Equal(t, tt.wantBash, results[1].Status)
			if tt.wantNote {
				assert.Contains(t, results[1].Message, "not the active shell")
				assert.Empty(t, results[1].Fix)
			}
		})
	}
}

func TestCheckRCFiles_ActiveShellMissingEntry(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	l := testutil.TempHome(t)
	testutil.WriteFile(t, filepath.Join(l.Home, ".zshrc"), "alias ll='ls -l'\n")

	results := doctor.CheckRCFiles(l)
	require.Len(t, results, 2)
	assert.Equal(t, doctor.StatusWarn, results[0].Status)
	assert.Contains(t, results[0].Fix, "smart-find-setup")
	assert.Equal(t, doctor.StatusOK, results[1].Status, ".bashrc absent")
}

func TestRunAll_DoesNotMutate(t *testing.T) {
	l := testutil.TempHome(t)
	testutil.WriteFindScript(t, l, testutil.WrapperContent)
	testutil.WriteBackup(t, l, testutil.OriginalFindContent)
	fc := testutil.NewFakeCommander()
	fc.Register("sh -c", l.FindScript+"\n", nil)

	results := doctor.RunAll(context.Background(), fc, l)
	assert.Len(t, results, 5)
	for _, r := range results[:3] {
		assert.Equal(t, doctor.StatusOK, r.Status, "check %s should be OK", r.Name)
	}

	assert.Equal(t, testutil.WrapperContent, testutil.ReadFile(t, l.FindScript))
	assert.Equal(t, testutil.OriginalFindContent, testutil.ReadFile(t, l.BackupScript))
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "toml", "yaml", "json"} {
		f, err := doctor.ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, doctor.Format(s), f)
	}
	_, err := doctor.ParseFormat("xml")
	assert.Error(t, err)
}

func testReport() *doctor.Report {
	return &doctor.Report{
		FindScript: "/home/user/.local/bin/find",
		Checks: []doctor.DiagResult{
			{Name: "wrapper", Status: doctor.StatusOK, Message: "installed"},
			{Name: "rc_bash", Status: doctor.StatusWarn, Message: "no PATH entry", Fix: "run smart-find-setup"},
		},
	}
}

func TestReportEncode_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testReport().Encode(&buf, doctor.FormatText))
	assert.Equal(t,
		"  [OK] wrapper: installed\n  [!!] rc_bash: no PATH entry\n      Fix: run smart-find-setup\n",
		buf.String())
}

func TestReportEncode_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testReport().Encode(&buf, doctor.FormatTOML))

	var got doctor.Report
	_, err := toml.Decode(buf.String(), &got)
	require.NoError(t, err)
	assert.Equal(t, *testReport(), got)
	assert.Contains(t, buf.String(), "[[checks]]")
}

func TestReportEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testReport().Encode(&buf, doctor.FormatYAML))

	var got doctor.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *testReport(), got)
}

func TestReportEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testReport().Encode(&buf, doctor.FormatJSON))

	var got doctor.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *testReport(), got)
	assert.NotContains(t, buf.String(), `"fix": ""`)
}
