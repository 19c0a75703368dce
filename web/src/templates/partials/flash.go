package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FlashData carries the one-shot messages read from the flash session.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// Flash renders the flash messages as dismissable banners.
func Flash(data FlashData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if data.Empty() {
			return nil
		}
		if _, err := io.WriteString(w, `<div id="flash" class="fixed top-20 inset-x-0 flex flex-col items-center gap-2 z-50">`); err != nil {
			return err
		}
		for _, msg := range data.Success {
			if err := writeBanner(w, "bg-green-100 text-green-800 border-green-400", "status", msg); err != nil {
				return err
			}
		}
		for _, msg := range data.Error {
			if err := writeBanner(w, "bg-red-100 text-red-800 border-red-400", "alert", msg); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func writeBanner(w io.Writer, classes, role, msg string) error {
	_, err := io.WriteString(w, `<div class="px-4 py-2 rounded border `+classes+`" role="`+role+`">`+
		templ.EscapeString(msg)+`</div>`)
	return err
}
