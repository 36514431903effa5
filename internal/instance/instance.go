package instance

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrAlreadyRunning means another live instance holds the control socket.
var ErrAlreadyRunning = errors.New("another instance is already running")

// Command is a control verb accepted over the socket.
type Command string

const (
	CmdShow    Command = "show"
	CmdHide    Command = "hide"
	CmdToggle  Command = "toggle"
	CmdRefresh Command = "refresh"
	CmdQuit    Command = "quit"
)

// ParseCommand validates a control verb.
func ParseCommand(s string) (Command, error) {
	switch c := Command(strings.ToLower(strings.TrimSpace(s))); c {
	case CmdShow, CmdHide, CmdToggle, CmdRefresh, CmdQuit:
		return c, nil
	default:
		return "", fmt.Errorf("unknown command %q", s)
	}
}

// SocketPath returns the per-user control socket location.
func SocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "gamelauncher.sock")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("gamelauncher-%d.sock", os.Getuid()))
}

// Lock is the held control socket. Incoming commands are surfaced on
// Commands until Close.
type Lock struct {
	ln       net.Listener
	path     string
	commands chan Command
	wg       sync.WaitGroup
}

// Acquire binds the control socket. When a live instance already holds
// it, ErrAlreadyRunning is returned; a stale socket file left behind by a
// crashed process is removed and the bind retried.
func Acquire(path string) (*Lock, error) {
	ln, err := net.Listen("unix", path)
	if err != nil {
		if conn, dialErr := net.DialTimeout("unix", path, time.Second); dialErr == nil {
			conn.Close()
			return nil, ErrAlreadyRunning
		}
		// Nobody answers: stale socket.
		if rmErr := os.Remove(path); rmErr != nil {
			return nil, fmt.Errorf("bind control socket: %w", err)
		}
		ln, err = net.Listen("unix", path)
		if err != nil {
			return nil, fmt.Errorf("bind control socket: %w", err)
		}
	}
	l := &Lock{ln: ln, path: path, commands: make(chan Command, 4)}
	l.wg.Add(1)
	go l.accept()
	return l, nil
}

// Commands returns the stream of control verbs from other processes.
func (l *Lock) Commands() <-chan Command {
	return l.commands
}

// Close releases the socket and stops the accept loop.
func (l *Lock) Close() error {
	err := l.ln.Close()
	l.wg.Wait()
	close(l.commands)
	os.Remove(l.path)
	return err
}

func (l *Lock) accept() {
	defer l.wg.Done()
	for {
		conn, err := l.ln.Accept()
		if err != nil {
			return
		}
		l.wg.Add(1)
		go func(c net.Conn) {
			defer l.wg.Done()
			defer c.Close()
			c.SetReadDeadline(time.Now().Add(2 * time.Second))
			scanner := bufio.NewScanner(c)
			for scanner.Scan() {
				cmd, err := ParseCommand(scanner.Text())
				if err != nil {
					continue
				}
				select {
				case l.commands <- cmd:
				default:
					// A stalled consumer should not wedge senders.
				}
			}
		}(conn)
	}
}

// Send delivers a command to the instance holding the socket.
func Send(path string, cmd Command) error {
	conn, err := net.DialTimeout("unix", path, time.Second)
	if err != nil {
		return fmt.Errorf("reach running instance: %w", err)
	}
	defer conn.Close()
	if _, err := fmt.Fprintf(conn, "%s\n", cmd); err != nil {
		return fmt.Errorf("send %s: %w", cmd, err)
	}
	return nil
}
