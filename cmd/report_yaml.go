package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// yamlReport is the optional machine-readable record of a run. Unlike the
// stdout text it keeps stderr and exit status for every probe.
type yamlReport struct {
	RunID     string            `yaml:"run_id"`
	Generated string            `yaml:"generated"`
	Target    string            `yaml:"target"`
	User      string            `yaml:"user"`
	Results   []yamlProbeResult `yaml:"results"`
}

// yamlProbeResult records one probe execution.
type yamlProbeResult struct {
	Name     string           `yaml:"name"`
	Title    string           `yaml:"title,omitempty"`
	Command  string           `yaml:"command"`
	Status   string           `yaml:"status"`
	ExitCode int              `yaml:"exit_code"`
	Stdout   string           `yaml:"stdout,omitempty"`
	Stderr   string           `yaml:"stderr,omitempty"`
	Error    string           `yaml:"error,omitempty"`
	FollowUp *yamlProbeResult `yaml:"follow_up,omitempty"`
}

func newYAMLReport(c runnerConfig) *yamlReport {
	return &yamlReport{
		RunID:     uuid.NewString(),
		Generated: time.Now().Format(time.RFC3339),
		Target:    normalizeTarget(c.Target),
		User:      c.User,
		Results:   []yamlProbeResult{},
	}
}

func (r *yamlReport) addOutcomes(outcomes []probeOutcome) {
	for _, o := range outcomes {
		r.Results = append(r.Results, toYAMLResult(o))
	}
}

func toYAMLResult(o probeOutcome) yamlProbeResult {
	res := yamlProbeResult{
		Name:     o.Probe.Name,
		Title:    o.Probe.Title,
		Command:  o.Probe.Command,
		Status:   o.Status,
		ExitCode: o.Result.ExitCode,
		Stdout:   o.Result.Stdout,
		Stderr:   o.Result.Stderr,
	}
	if o.Err != nil {
		res.Error = o.Err.Error()
	}
	if o.FollowUp != nil {
		f := toYAMLResult(*o.FollowUp)
		res.FollowUp = &f
	}
	return res
}

// writeYAMLReport serializes the report to YAML with indentation and writes to
// the provided writer in a buffered manner.
func writeYAMLReport(w io.Writer, r *yamlReport) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		_ = enc.Close()
		return err
	}
	_ = enc.Close()
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(buf.Bytes()); err != nil {
		return err
	}
	return bw.Flush()
}

// writeReportFile creates path (and its directory) and writes r into it.
func writeReportFile(path string, r *yamlReport) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := writeYAMLReport(f, r); err != nil {
		return fmt.Errorf("failed to write YAML report: %w", err)
	}
	return nil
}
