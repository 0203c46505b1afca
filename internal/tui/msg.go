package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Reloader signals that the configuration file changed.
type Reloader interface {
	Changes() <-chan struct{}
	Errors() <-chan error
}

// reloadMsg asks the model to re-read its configuration file.
type reloadMsg struct{}

// watchErrMsg carries an error from the file watcher.
type watchErrMsg struct{ err error }

// watchDoneMsg signals that the watcher stopped.
type watchDoneMsg struct{}

// waitForReload blocks until the next change or watcher error.
func waitForReload(r Reloader) tea.Cmd {
	return func() tea.Msg {
		select {
		case _, ok := <-r.Changes():
			if !ok {
				return watchDoneMsg{}
			}
			return reloadMsg{}
		case err, ok := <-r.Errors():
			if !ok {
				return watchDoneMsg{}
			}
			return watchErrMsg{err: err}
		}
	}
}
