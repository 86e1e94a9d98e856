package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

func printSuccess(w io.Writer, format string, args ...interface{}) {
	successColor.Fprint(w, "✓ ")
	fmt.Fprintf(w, format+"\n", args...)
}

func printWarning(w io.Writer, format string, args ...interface{}) {
	warnColor.Fprintf(w, "warning: "+format+"\n", args...)
}

func printInfo(w io.Writer, format string, args ...interface{}) {
	infoColor.Fprintf(w, format+"\n", args...)
}
