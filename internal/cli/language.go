package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/drishya/internal/i18n"
)

// Language lists the supported UI languages and switches to the selected one.
func (a *App) Language(ctx context.Context) error {
	langs := i18n.Supported()
	options := make([]string, len(langs))
	for i, l := range langs {
		options[i] = fmt.Sprintf("%s (%s)", l.NativeName, l.Code)
	}

	idx, err := GetChoice(a.reader, "Select language:", options, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	if idx < 0 {
		return nil
	}

	if err := a.i18n.SetLanguage(ctx, langs[idx].Code); err != nil {
		fmt.Fprintf(a.out, "Could not switch language: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Language set to %s\n", langs[idx].NativeName)
	return nil
}
