package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-log-lens/internal/core/model"
	"github.com/penwyp/go-log-lens/internal/data/session"
	"github.com/penwyp/go-log-lens/internal/presentation/display"
	"github.com/penwyp/go-log-lens/internal/presentation/interaction"
	"github.com/penwyp/go-log-lens/internal/util"
	"github.com/penwyp/go-log-lens/internal/viewer"
	"github.com/penwyp/go-log-lens/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "View a source's logs interactively",
	Long: `Displays the session table of one source in an interactive full-screen
view. The table is rebuilt from disk whenever a log file in the source's
folder changes.

Keys:
  q / Esc / Ctrl+C  quit
  s                 cycle sort field (time, delta, request)
  o                 toggle sort order
  e                 toggle errors-only filter
  r                 refresh now`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	src, err := bootstrap()
	if err != nil {
		return err
	}

	// The folder must exist before it can be watched
	if err := ensureDir(src.FolderPath); err != nil {
		return fmt.Errorf("failed to create source folder: %w", err)
	}

	v := viewer.New(&viewer.Config{
		Source:   *src,
		Timezone: timezone,
	})

	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("watch requires an interactive terminal: %w", err)
	}
	defer keyboard.Close()

	watcher, err := watch.NewFolderWatcher(src.FolderPath)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", src.FolderPath, err)
	}
	defer watcher.Close()

	disp := display.NewTerminalDisplay()
	disp.EnterAlternateScreen()
	defer disp.LeaveAlternateScreen()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sorter := interaction.NewRowSorter()
	errorsOnly := false
	tp := util.GetTimeProvider()

	refresh := func() {
		frame := display.Frame{
			Source:      src.Name,
			SortLabel:   sorter.FieldName(),
			ErrorsOnly:  errorsOnly,
			LastRefresh: tp.Now(),
		}

		table, err := v.LoadTable()
		if err != nil {
			frame.Notice = fmt.Sprintf("load failed: %v", err)
			disp.Render(frame)
			return
		}

		view := table
		if errorsOnly {
			sev := model.SeverityError
			view = table.Filter(session.Filter{Severity: &sev})
		}

		rows := make([]model.SessionRow, len(view.Rows()))
		copy(rows, view.Rows())
		sorter.Sort(rows)

		frame.Rows = rows
		frame.TotalSeconds = view.TotalSeconds()
		disp.Render(frame)
	}

	refresh()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-watcher.Events():
			refresh()

		case event := <-keyboard.Events():
			if event.Type == interaction.KeyEscape {
				return nil
			}
			switch event.Key {
			case 'q', 'Q', 3: // q or Ctrl+C
				return nil
			case 's', 'S':
				sorter.CycleField()
				refresh()
			case 'o', 'O':
				sorter.ToggleOrder()
				refresh()
			case 'e', 'E':
				errorsOnly = !errorsOnly
				refresh()
			case 'r', 'R':
				refresh()
			}
		}
	}
}
