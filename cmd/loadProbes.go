package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// loadProbes reads a probes file and validates it. Unnamed probes are named
// probe-<n> after their position.
func loadProbes(path string) ([]probe, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pf := &probesFile{}
	if err := yamlUnmarshal(b, pf); err != nil {
		return nil, err
	}
	for i := range pf.Probes {
		if strings.TrimSpace(pf.Probes[i].Name) == "" {
			pf.Probes[i].Name = fmt.Sprintf("probe-%d", i+1)
		}
	}
	if err := validateProbes(pf.Probes); err != nil {
		return nil, err
	}
	return pf.Probes, nil
}

// validateProbes enforces non-empty commands, unique names and parseable
// timeouts across the list and any follow-ups.
func validateProbes(probes []probe) error {
	if len(probes) == 0 {
		return errors.New("probes file contains no probes")
	}
	seen := make(map[string]struct{}, len(probes))
	for i, p := range probes {
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("probes[%d].name %q is duplicated", i, p.Name)
		}
		seen[p.Name] = struct{}{}
		if err := validateProbe(fmt.Sprintf("probes[%d]", i), p); err != nil {
			return err
		}
	}
	return nil
}

func validateProbe(field string, p probe) error {
	if strings.TrimSpace(p.Command) == "" {
		return fmt.Errorf("%s.command is required", field)
	}
	if p.MaxLines < 0 {
		return fmt.Errorf("%s.max_lines must be >= 0", field)
	}
	if p.Timeout != "" {
		if _, err := time.ParseDuration(p.Timeout); err != nil {
			return fmt.Errorf("%s.timeout: %w", field, err)
		}
	}
	if p.FollowUp != nil {
		return validateProbe(field+".follow_up", *p.FollowUp)
	}
	return nil
}

// probesFor returns the probe list for c: the probes file when configured,
// otherwise the built-in runner diagnostics.
func probesFor(c runnerConfig) ([]probe, error) {
	if c.ProbesFile != "" {
		ps, err := loadProbes(c.ProbesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read probes: %w", err)
		}
		return ps, nil
	}
	return defaultProbes(c), nil
}
