package cmd

// probe is one declarative read-only diagnostic: a command plus how its
// output is presented. Branching depends only on whether the trimmed stdout
// is empty.
type probe struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title,omitempty"`
	Command string `yaml:"command"`
	// Label printed before non-empty output; empty prints the output alone
	Found string `yaml:"found,omitempty"`
	// Print Found and the output on one line
	Inline bool `yaml:"inline,omitempty"`
	// Printed on empty output; empty means the probe stays silent
	Fallback string `yaml:"fallback,omitempty"`
	// Printed after non-empty output
	Hint     string `yaml:"hint,omitempty"`
	MaxLines int    `yaml:"max_lines,omitempty"`
	// Optional per-probe timeout like "30s"; overrides --cmd-timeout if set
	Timeout string `yaml:"timeout,omitempty"`
	// Runs only when this probe found something
	FollowUp *probe `yaml:"follow_up,omitempty"`
}

// probesFile models the YAML schema accepted by --probes.
type probesFile struct {
	Probes []probe `yaml:"probes"`
}
