package screens

import (
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/visitnote/internal/form"
	"github.com/mrsinham/visitnote/internal/visitfile"
)

// NewSaveScreen asks where to write the visit form. The chosen path is
// stored in *path once the form completes.
func NewSaveScreen(path *string) *FormScreen {
	f := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("save_path").
				Title("保存先").
				Placeholder("visit.yaml").
				Validate(func(p string) error {
					_, err := visitfile.FormatFromPath(p)
					return err
				}).
				Value(path),
		),
	)
	return newFormScreen("保存", f, func() form.Batch { return nil })
}
