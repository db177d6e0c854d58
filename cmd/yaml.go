package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlUnmarshalImpl is separated for clarity/testability
func yamlUnmarshalImpl(b []byte, out any) error {
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	return nil
}

// UnmarshalYAML supports both "command" and "cmd" keys for flexibility
func (p *probe) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		Name     string `yaml:"name"`
		Title    string `yaml:"title"`
		Command  string `yaml:"command"`
		Cmd      string `yaml:"cmd"`
		Found    string `yaml:"found"`
		Inline   bool   `yaml:"inline"`
		Fallback string `yaml:"fallback"`
		Hint     string `yaml:"hint"`
		MaxLines int    `yaml:"max_lines"`
		Timeout  string `yaml:"timeout"`
		FollowUp *probe `yaml:"follow_up"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*p = probe{
		Name:     aux.Name,
		Title:    aux.Title,
		Command:  aux.Command,
		Found:    aux.Found,
		Inline:   aux.Inline,
		Fallback: aux.Fallback,
		Hint:     aux.Hint,
		MaxLines: aux.MaxLines,
		Timeout:  aux.Timeout,
		FollowUp: aux.FollowUp,
	}
	if p.Command == "" {
		p.Command = aux.Cmd
	}
	return nil
}
