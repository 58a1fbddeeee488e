// Package remove provides the runner logic for deleting entries, with a
// short interactive undo window.
package remove

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/mistycrown/zenbullet/pkg/journal"
	"github.com/mistycrown/zenbullet/pkg/toast"
)

// Remove deletes an entry. Deleting a project cascades to its subtasks;
// deleting one occurrence of a recurring series advances the series unless
// Series is set, which ends it instead.
type Remove struct {
	ID      string
	Series  bool
	Journal *journal.Journal
	Toasts  *toast.Notifier

	// In is the undo prompt input; defaults to stdin. The prompt only shows
	// on a terminal.
	In io.Reader
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not remove, no journal")
	}

	if n.Journal.Entries.Get(n.ID) == nil {
		return fmt.Errorf("no entry with id %s", n.ID)
	}

	mode := journal.RemoveSingle
	if n.Series {
		mode = journal.RemoveSeries
	}
	if err := n.Journal.DeleteEntry(n.ID, mode); err != nil {
		return err
	}

	n.offerUndo(ctx)
	return nil
}

// offerUndo keeps the process alive for the toast window so the one-shot
// undo can be taken. Skipped when stdin is not a terminal.
func (n *Remove) offerUndo(ctx context.Context) {
	if n.Toasts == nil {
		return
	}
	in := n.In
	if in == nil {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return
		}
		in = os.Stdin
	}

	current := n.Toasts.Current()
	if current == nil || current.Action == nil {
		return
	}
	fmt.Printf("press u + enter within %s to %s\n", toast.DefaultWindow, strings.ToLower(current.Action.Label))

	lines := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		if scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
		close(lines)
	}()

	select {
	case line := <-lines:
		if strings.EqualFold(line, "u") {
			if n.Toasts.Invoke() {
				fmt.Println("restored")
			}
		}
	case <-time.After(toast.DefaultWindow):
	case <-ctx.Done():
	}
}
