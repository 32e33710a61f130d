package apps

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	untitledDocument = "Untitled.txt"
	defaultExtension = ".txt"
)

var textFilter = storage.NewExtensionFileFilter([]string{defaultExtension})

type notepad struct {
	env    *Env
	editor *widget.Entry
}

func buildNotepad(env *Env) fyne.CanvasObject {
	n := &notepad{env: env, editor: widget.NewMultiLineEntry()}
	n.editor.Wrapping = fyne.TextWrapWord

	env.Window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Open", n.showOpen),
			fyne.NewMenuItem("Save", n.showSave),
		),
	))
	return n.editor
}

func (n *notepad) showOpen() {
	d := dialog.NewFileOpen(n.open, n.env.Window)
	d.SetFilter(textFilter)
	d.Show()
}

func (n *notepad) showSave() {
	d := dialog.NewFileSave(n.save, n.env.Window)
	d.SetFilter(textFilter)
	d.SetFileName(untitledDocument)
	d.Show()
}

// open replaces the editor contents with the chosen file. A nil reader
// means the user cancelled.
func (n *notepad) open(reader fyne.URIReadCloser, err error) {
	if err != nil {
		n.fail(err)
		return
	}
	if reader == nil {
		return
	}
	defer reader.Close()

	text, err := readDocument(reader)
	if err != nil {
		n.fail(fmt.Errorf("open %s: %w", reader.URI().Name(), err))
		return
	}
	n.editor.SetText(text)
	n.env.Logger.Info("Notepad", "document opened", map[string]interface{}{"uri": reader.URI().String()})
}

// save writes the editor contents. A name typed without an extension gets
// ".txt" appended; the extensionless file the dialog created is removed.
func (n *notepad) save(writer fyne.URIWriteCloser, err error) {
	if err != nil {
		n.fail(err)
		return
	}
	if writer == nil {
		return
	}

	chosen := writer.URI()
	target, err := documentTarget(chosen)
	if err != nil {
		writer.Close()
		n.fail(fmt.Errorf("save %s: %w", chosen.Name(), err))
		return
	}

	out := writer
	if target.String() != chosen.String() {
		writer.Close()
		if err := storage.Delete(chosen); err != nil {
			n.env.Logger.Warning("Notepad", "could not remove placeholder file", map[string]interface{}{
				"uri":   chosen.String(),
				"error": err.Error(),
			})
		}
		out, err = storage.Writer(target)
		if err != nil {
			n.fail(fmt.Errorf("save %s: %w", target.Name(), err))
			return
		}
	}
	defer out.Close()

	if err := writeDocument(out, n.editor.Text); err != nil {
		n.fail(fmt.Errorf("save %s: %w", target.Name(), err))
		return
	}
	n.env.Logger.Info("Notepad", "document saved", map[string]interface{}{"uri": target.String()})
}

func (n *notepad) fail(err error) {
	n.env.Logger.Error("Notepad", err, nil)
	dialog.ShowError(err, n.env.Window)
}

// documentTarget returns uri, or a sibling with ".txt" appended when uri has
// no extension.
func documentTarget(uri fyne.URI) (fyne.URI, error) {
	if uri.Extension() != "" {
		return uri, nil
	}
	parent, err := storage.Parent(uri)
	if err != nil {
		return nil, err
	}
	return storage.Child(parent, uri.Name()+defaultExtension)
}

func readDocument(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeDocument stores text verbatim.
func writeDocument(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}
