package server

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"pvdiscs.dev/host"
	"pvdiscs.dev/lang"
)

const consoleName = "CONSOLE"

var startTime = time.Now()

// GrantWriter stores permission grants made from the console.
type GrantWriter interface {
	Grant(ctx context.Context, player uuid.UUID, node string) error
	Revoke(ctx context.Context, player uuid.UUID, node string) (bool, error)
}

// Console is the server operator. It holds every permission but is never a
// voice player.
type Console struct {
	langs *lang.Store

	mu  sync.Mutex
	out io.Writer
}

func (c *Console) Name() string {
	return consoleName
}

func (c *Console) IsOperator() bool {
	return true
}

func (c *Console) HasPermission(string) bool {
	return true
}

// SendMessage writes text in the fallback language.
func (c *Console) SendMessage(text host.Text) {
	msg := text.Content
	if c.langs != nil {
		msg = c.langs.Render(text, "")
	}
	c.mu.Lock()
	fmt.Fprintln(c.out, msg)
	c.mu.Unlock()
}

func (c *Console) printf(format string, args ...any) {
	c.SendMessage(host.Literal(fmt.Sprintf(format, args...)))
}

// RunConsole reads operator commands from r until it is exhausted or ctx is
// done. Lines that are not console built-ins run as commands from the console.
func (s *Server) RunConsole(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			s.ConsoleCommand(ctx, line)
		}
	}
}

// ConsoleCommand runs one console line.
func (s *Server) ConsoleCommand(ctx context.Context, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	c := s.console

	switch fields[0] {
	case "list":
		players := s.Players()
		names := make([]string, len(players))
		for i, p := range players {
			names[i] = p.Name()
		}
		c.printf("%d online: %s", len(names), strings.Join(names, ", "))
	case "status":
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		c.printf("uptime %s, %d online, %d commands, alloc %.1f MB, sys %.1f MB, %d gc cycles",
			time.Since(startTime).Round(time.Second),
			len(s.Players()),
			len(s.Commands()),
			float64(m.Alloc)/1024/1024,
			float64(m.Sys)/1024/1024,
			m.NumGC)
	case "op", "deop":
		if len(fields) != 2 {
			c.printf("usage: %s <player>", fields[0])
			return
		}
		op := fields[0] == "op"
		if !s.SetOperator(fields[1], op) {
			c.printf("%s is not online", fields[1])
			return
		}
		if op {
			c.printf("%s is now an operator", fields[1])
		} else {
			c.printf("%s is no longer an operator", fields[1])
		}
	case "grant", "revoke":
		if len(fields) != 3 {
			c.printf("usage: %s <player> <node>", fields[0])
			return
		}
		if err := s.changeGrant(ctx, fields[0] == "grant", fields[1], fields[2]); err != nil {
			log.WithError(err).WithField("component", "console").Error(fields[0] + " failed")
			c.printf("%s failed: %v", fields[0], err)
			return
		}
		c.printf("%s %s %s", fields[0], fields[1], fields[2])
	default:
		s.Execute(c, line)
	}
}

func (s *Server) changeGrant(ctx context.Context, grant bool, name, node string) error {
	if s.grants == nil {
		return fmt.Errorf("no grant store configured")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	id := OfflineUUID(name)
	if grant {
		if err := s.grants.Grant(ctx, id, node); err != nil {
			return err
		}
	} else {
		removed, err := s.grants.Revoke(ctx, id, node)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("%s does not have %s", name, node)
		}
	}
	if s.perms != nil {
		s.perms.Invalidate(id)
	}
	return nil
}
