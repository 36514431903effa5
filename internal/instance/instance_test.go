package instance

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func socketIn(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.sock")
}

func TestAcquireAndSecondInstance(t *testing.T) {
	path := socketIn(t)
	l, err := Acquire(path)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer l.Close()

	if _, err := Acquire(path); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second acquire = %v, want ErrAlreadyRunning", err)
	}
}

func TestStaleSocketIsReclaimed(t *testing.T) {
	path := socketIn(t)
	// A leftover file with no listener behind it.
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("create stale file: %v", err)
	}
	l, err := Acquire(path)
	if err != nil {
		t.Fatalf("acquire over stale socket: %v", err)
	}
	l.Close()
}

func TestSendDeliversCommand(t *testing.T) {
	path := socketIn(t)
	l, err := Acquire(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer l.Close()

	if err := Send(path, CmdToggle); err != nil {
		t.Fatalf("send: %v", err)
	}
	select {
	case cmd := <-l.Commands():
		if cmd != CmdToggle {
			t.Fatalf("received %q, want toggle", cmd)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("command never arrived")
	}
}

func TestUnknownCommandIgnored(t *testing.T) {
	path := socketIn(t)
	l, err := Acquire(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer l.Close()

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	conn.Write([]byte("explode\nshow\n"))
	conn.Close()

	select {
	case cmd := <-l.Commands():
		if cmd != CmdShow {
			t.Fatalf("received %q, want show", cmd)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("valid command after junk never arrived")
	}
}

func TestParseCommand(t *testing.T) {
	if cmd, err := ParseCommand("  SHOW \n"); err != nil || cmd != CmdShow {
		t.Fatalf("parse show = %q, %v", cmd, err)
	}
	if _, err := ParseCommand("launch-the-missiles"); err == nil {
		t.Fatalf("junk command must error")
	}
}

func TestCloseRemovesSocketFile(t *testing.T) {
	path := socketIn(t)
	l, err := Acquire(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	l.Close()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("socket file still present after close")
	}
	if err := Send(path, CmdShow); err == nil {
		t.Fatalf("send to closed instance must fail")
	}
}
