package desktop

import (
	"errors"

	"github.com/sqweek/dialog"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell"
)

// NativePicker opens the platform folder browser
type NativePicker struct{}

// PickFolder blocks until the user picks a folder or closes the dialog
func (NativePicker) PickFolder(title string) (string, error) {
	path, err := dialog.Directory().Title(title).Browse()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", errdefs.ErrPickerCancelled
		}
		return "", errdefs.Wrap(errdefs.ErrTypeGeneric, "folder dialog failed", err)
	}
	return path, nil
}

// DialogNotifier mirrors notices into native message boxes. Boxes are
// modal, so each one is shown from its own goroutine.
type DialogNotifier struct {
	// ErrorsOnly skips informational notices
	ErrorsOnly bool
	show       func(shell.Notice)
}

func (d DialogNotifier) Notify(n shell.Notice) {
	if d.ErrorsOnly && n.Level != shell.NoticeError {
		return
	}
	show := d.show
	if show == nil {
		show = showDialog
	}
	go show(n)
}

func showDialog(n shell.Notice) {
	log.Debugf("Dialog: %s: %s", n.Title, n.Message)
	b := dialog.Message("%s", n.Message).Title(n.Title)
	if n.Level == shell.NoticeError {
		b.Error()
		return
	}
	b.Info()
}
