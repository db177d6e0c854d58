package cmd

import "bytes"

// Output runs cmd on the underlying ssh.Session and returns stdout and stderr
// as separate buffers. A non-zero remote exit status surfaces as an
// *ssh.ExitError alongside whatever the command printed.
func (w sshSessionWrapper) Output(cmd string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	w.s.Stdout = &stdout
	w.s.Stderr = &stderr
	err := w.s.Run(cmd)
	return stdout.Bytes(), stderr.Bytes(), err
}
