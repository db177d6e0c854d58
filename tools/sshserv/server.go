package sshserv

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"net"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
)

// Reply is what the server sends back for one exec request.
type Reply struct {
	Stdout     string
	Stderr     string
	ExitStatus uint32
}

// Handler answers one exec request.
type Handler func(cmd string) Reply

// Options configures authentication and identity of a test server.
type Options struct {
	// User and Password are enforced when Password is non-empty; otherwise any
	// client is accepted without authentication.
	User     string
	Password string
	// Signer is the host key; a fresh ed25519 key is generated when nil.
	Signer ssh.Signer
}

// Server is a scripted SSH server: every exec request is answered by its
// Handler with stdout, stderr and an exit status, then the channel closes.
type Server struct {
	handler Handler
	cfg     *ssh.ServerConfig
	hostKey ssh.PublicKey
	ln      net.Listener

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}

	mu       sync.Mutex
	commands []string
	conns    int
}

// Start launches a test SSH server listening on listenAddr (e.g.,
// 127.0.0.1:20222, or 127.0.0.1:0 for an ephemeral port).
func Start(listenAddr string, h Handler, opts Options) (*Server, error) {
	signer := opts.Signer
	if signer == nil {
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, err
		}
		if signer, err = ssh.NewSignerFromKey(priv); err != nil {
			return nil, err
		}
	}

	cfg := &ssh.ServerConfig{NoClientAuth: opts.Password == ""}
	if opts.Password != "" {
		cfg.PasswordCallback = func(c ssh.ConnMetadata, pass []byte) (*ssh.Permissions, error) {
			if c.User() == opts.User && string(pass) == opts.Password {
				return nil, nil
			}
			return nil, fmt.Errorf("password rejected for %q", c.User())
		}
	}
	cfg.AddHostKey(signer)

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		handler: h,
		cfg:     cfg,
		hostKey: signer.PublicKey(),
		ln:      ln,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.serve()
	return s, nil
}

func (s *Server) serve() {
	defer close(s.done)
	for {
		_ = s.ln.(*net.TCPListener).SetDeadline(time.Now().Add(500 * time.Millisecond))
		conn, err := s.ln.Accept()
		select {
		case <-s.stopCh:
			if conn != nil {
				_ = conn.Close()
			}
			return
		default:
		}
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return
		}
		go s.handleConn(conn)
	}
}

// Addr is the address the server listens on.
func (s *Server) Addr() string { return s.ln.Addr().String() }

// HostKey is the public half of the server's host key.
func (s *Server) HostKey() ssh.PublicKey { return s.hostKey }

// Commands returns every exec command received so far, in arrival order.
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...)
}

// Connections counts completed SSH handshakes.
func (s *Server) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conns
}

// Stop closes the listener and waits for the accept loop to exit.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		_ = s.ln.Close()
		<-s.done
	})
}

func (s *Server) handleConn(raw net.Conn) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, s.cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	defer sc.Close()
	s.mu.Lock()
	s.conns++
	s.mu.Unlock()

	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, reqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go s.handleSession(c, reqs)
	}
}

func (s *Server) handleSession(ch ssh.Channel, in <-chan *ssh.Request) {
	defer ch.Close()
	for req := range in {
		if req.Type != "exec" {
			_ = req.Reply(false, nil)
			continue
		}
		var payload struct{ Command string }
		if err := ssh.Unmarshal(req.Payload, &payload); err != nil {
			_ = req.Reply(false, nil)
			continue
		}
		_ = req.Reply(true, nil)

		s.mu.Lock()
		s.commands = append(s.commands, payload.Command)
		s.mu.Unlock()

		r := s.handler(payload.Command)
		_, _ = ch.Write([]byte(r.Stdout))
		_, _ = ch.Stderr().Write([]byte(r.Stderr))
		_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(struct{ Status uint32 }{r.ExitStatus}))
		go ssh.DiscardRequests(in)
		return
	}
}
