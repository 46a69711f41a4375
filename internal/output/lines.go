package output

import (
	"fmt"
	"io"
	"strings"
)

// Per-file status lines shared by sync, validate, and watch output.

func NewFileLine(w io.Writer, path string) {
	fmt.Fprintln(w, okStyle.Render("new")+"  "+path)
}

func UpdLine(w io.Writer, path string) {
	fmt.Fprintln(w, faintStyle.Render("upd")+"  "+path)
}

func ErrLine(w io.Writer, path, detail string) {
	fmt.Fprintln(w, errStyle.Render("err")+"  "+path+"  "+detail)
}

func OkFileLine(w io.Writer, path, detail string) {
	fmt.Fprintln(w, okStyle.Render("ok")+"   "+path+"  "+detail)
}

func FailFileLine(w io.Writer, path, detail string) {
	fmt.Fprintln(w, errStyle.Render("fail")+" "+path+"  "+detail)
}

func SyncSummaryLine(w io.Writer, files, scenarios int) {
	fmt.Fprintf(w, "synced %d files, %d scenarios\n", files, scenarios)
}

// ListRow prints one scenario line for the list command, with name and
// file columns padded to the widest row.
func ListRow(w io.Writer, id int64, name, file, priority string, steps, errs, nameWidth, fileWidth int) {
	line := fmt.Sprintf("%4d  %-*s  %-*s  %-8s  %d steps", id, nameWidth, name, fileWidth, file, priority, steps)
	if errs > 0 {
		line += "  " + errStyle.Render(fmt.Sprintf("%d errors", errs))
	}
	fmt.Fprintln(w, line)
}

// Show command lines.

func ShowHeader(w io.Writer, id int64, name, file string) {
	fmt.Fprintln(w, boldStyle.Render(name)+faintStyle.Render(fmt.Sprintf("  #%d, %s", id, file)))
}

func MetaLine(w io.Writer, label, value string) {
	fmt.Fprintln(w, faintStyle.Render(fmt.Sprintf("%-8s", label))+"  "+value)
}

func StepLine(w io.Writer, idx int, description, summary string) {
	if description != "" {
		fmt.Fprintf(w, "  %2d.  %s\n", idx, description)
		fmt.Fprintln(w, "       "+faintStyle.Render(summary))
		return
	}
	fmt.Fprintf(w, "  %2d.  %s\n", idx, summary)
}

func SourceBlock(w io.Writer, script string) {
	fmt.Fprintln(w, faintStyle.Render("source"))
	for _, line := range strings.Split(strings.TrimRight(script, "\n"), "\n") {
		fmt.Fprintln(w, "  "+line)
	}
}
