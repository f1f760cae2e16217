package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"gitlab.com/tinyland/lab/bh3/display/canvas"
	"gitlab.com/tinyland/lab/bh3/words"
)

// stackTracer is implemented by errors carrying a github.com/pkg/errors stack.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// reportFailure prints err and returns the exit code for it. Text decoding
// failures are almost always a locale problem: the trace goes to stderr and
// a hint about $LANG goes to stdout, with the exit code telling the cases
// apart.
func reportFailure(stdout, stderr io.Writer, err error, lang string) int {
	var small *canvas.TooSmallError
	if errors.As(err, &small) {
		fmt.Fprintln(stderr, small.Error())
		return exitFailure
	}

	var decodeErr *words.DecodeError
	if !errors.As(err, &decodeErr) {
		fmt.Fprintf(stderr, "bh3: %v\n", err)
		return exitFailure
	}

	var traced stackTracer
	if errors.As(err, &traced) {
		fmt.Fprintf(stderr, "%+v\n", traced)
	} else {
		fmt.Fprintf(stderr, "%v\n", err)
	}

	switch {
	case lang == "":
		fmt.Fprintln(stdout, "wow error: broken $LANG, so fail")
		return exitLocaleUnset
	case !strings.HasSuffix(lang, "UTF-8"):
		fmt.Fprintf(stdout, "wow error: locale '%s' is not UTF-8.  "+
			"doge needs UTF-8 to print Shibe.  Please set your system to "+
			"use a UTF-8 locale.\n", lang)
		return exitLocale
	default:
		fmt.Fprintln(stdout, "wow error: Unknown unicode error.  Please report it "+
			"and include output from /usr/bin/locale")
		return exitFailure
	}
}
