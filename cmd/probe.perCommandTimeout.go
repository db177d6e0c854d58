package cmd

import "time"

func (p *probe) perCommandTimeout(defaultTimeout time.Duration) time.Duration {
	if p.Timeout == "" {
		return defaultTimeout
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return defaultTimeout
	}
	return d
}
