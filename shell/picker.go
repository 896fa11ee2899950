package shell

// FolderPicker asks the user for a directory. PickFolder blocks until the
// user answers and is always called off the tick loop. A cancelled pick
// returns an error of type errdefs.ErrTypePickerCancelled.
type FolderPicker interface {
	PickFolder(title string) (string, error)
}

// FolderPickerFunc adapts a function to FolderPicker
type FolderPickerFunc func(title string) (string, error)

// PickFolder calls f(title)
func (f FolderPickerFunc) PickFolder(title string) (string, error) {
	return f(title)
}

type pickResult struct {
	path string
	err  error
}
