// Command ssh_test_server serves a canned CI runner host over SSH for manual
// runner-check runs.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"runner-check/tools/sshserv"
)

func main() {
	addr := pflag.String("listen", "127.0.0.1:20222", "Address to listen on")
	user := pflag.String("user", "ci", "Accepted SSH user")
	password := pflag.String("password", "ci", "Accepted SSH password")
	pflag.Parse()

	s, err := sshserv.Start(*addr, sshserv.RunnerHost(), sshserv.Options{User: *user, Password: *password})
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to start test ssh server:", err)
		os.Exit(1)
	}
	defer s.Stop()
	_, _ = fmt.Fprintln(os.Stderr, "test ssh server listening on", s.Addr())
	_, _ = fmt.Fprintf(os.Stderr, "try: runner-check -t %s -u %s --password %s --host-key-policy insecure\n", s.Addr(), *user, *password)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
