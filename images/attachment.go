package images

import (
	"log/slog"
	"terminaldiary/meta"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ncruces/zenity"
)

// The image currently attached to an entry being written.
type Attachment struct {
	store *Store

	ImagePath string
}

func NewAttachment(store *Store) *Attachment {
	return &Attachment{store: store}
}

// Stores the image at sourcePath and attaches the result.
// On failure, the previously attached path is kept. The error is still
// returned so it can be shown to the user.
func (a *Attachment) Attach(sourcePath string) error {
	path, err := a.store.SaveFile(sourcePath)
	if err != nil {
		slog.Error("Failed to attach image", "source", sourcePath, "error", err)
		return err
	}

	slog.Debug("Attached image", "source", sourcePath, "path", path)
	a.ImagePath = path

	return nil
}

func (a *Attachment) Clear() {
	a.ImagePath = ""
}

// Opens the native file dialog. Cancelling the dialog yields no message.
func SelectFileCmd() tea.Cmd {
	return func() tea.Msg {
		path, err := zenity.SelectFile(
			zenity.Title("Select image to attach"),
			zenity.FileFilter{
				Name:     "Images",
				Patterns: FilePatterns,
			},
		)

		if err == zenity.ErrCanceled {
			return nil
		}

		if err != nil {
			return err
		}

		return meta.ImageSelectedMsg{Path: path}
	}
}
