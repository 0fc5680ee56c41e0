package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/algo-spectro/spectro/pipeline"
)

func TestReadSample(t *testing.T) {
	in := "# exported spectrum\nwavelength,flux,err\n500, 1, 0.1\n501,2,0.2\n"
	s, err := readSample(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 || s.Y[1] != 2 || s.Sigma[0] != 0.1 {
		t.Fatalf("sample = %+v", s)
	}
}

func TestReadSampleWithoutSigma(t *testing.T) {
	s, err := readSample(strings.NewReader("1,2\n3,4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Sigma != nil {
		t.Fatal("sigma should be absent for two columns")
	}
}

func TestReadSampleErrors(t *testing.T) {
	for _, in := range []string{
		"1,2,3,4\n",
		"1,2\n3,4,5\n",
		"1,abc\n",
	} {
		if _, err := readSample(strings.NewReader(in)); err == nil {
			t.Errorf("readSample(%q) succeeded, want error", in)
		}
	}
}

func TestWriteSample(t *testing.T) {
	var buf bytes.Buffer
	err := writeSample(&buf, pipeline.Sample{X: []float64{1.5, 2}, Y: []float64{3, 4}, Sigma: []float64{0.1, 0.2}})
	if err != nil {
		t.Fatal(err)
	}
	if want := "1.5,3,0.1\n2,4,0.2\n"; buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestRunShift(t *testing.T) {
	var stdout, stderr bytes.Buffer
	meta := filepath.Join(t.TempDir(), "meta.json")

	code := run([]string{"-rv", "300", "-meta", meta}, strings.NewReader("500,1\n501,2\n"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "500.500") {
		t.Fatalf("stdout = %q", stdout.String())
	}

	data, err := os.ReadFile(meta)
	if err != nil {
		t.Fatal(err)
	}
	var m pipeline.Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if !m.Applied || len(m.Steps) != 1 || m.Steps[0].Kind != pipeline.KindRVShift {
		t.Fatalf("metadata = %+v", m)
	}
}

func TestRunResolutionFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.csv")
	var in strings.Builder
	for i := 0; i < 21; i++ {
		y := 0
		if i == 10 {
			y = 10
		}
		in.WriteString(strings.Join([]string{strconv.Itoa(i), strconv.Itoa(y), "1"}, ",") + "\n")
	}
	if err := os.WriteFile(path, []byte(in.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-fwhm", "2", path}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), `"kind": "resolution_match"`) {
		t.Fatalf("stderr missing provenance: %s", stderr.String())
	}
	if got := strings.Count(stdout.String(), "\n"); got != 21 {
		t.Fatalf("rows = %d, want 21", got)
	}
}

func TestRunInvalidFrame(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-frame", "oblique"}, strings.NewReader(""), &stdout, &stderr); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "invalid calibration") {
		t.Fatalf("stderr = %s", stderr.String())
	}
}

func TestRunKernels(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-kernels", "-max", "3"}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), stdout.String())
	}
	if !strings.HasPrefix(lines[4], "3 ") || !strings.Contains(lines[4], "19") {
		t.Fatalf("last row = %q", lines[4])
	}
}

func TestPrintKernelsInvalid(t *testing.T) {
	if err := printKernels(&bytes.Buffer{}, 0); err == nil {
		t.Fatal("expected error for max sigma 0")
	}
}
