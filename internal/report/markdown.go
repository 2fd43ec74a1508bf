package report

import (
	"fmt"
	"strings"
)

const (
	NothingToPrint  = "Nothing to print."
	NoSongsNeeded   = "No songs need printing."
	DirectorMissing = "Director's binder missing"
)

// Markdown renders the report for the command line, grouped by binder or,
// with bySong, as a table of copies needed per song.
func Markdown(r *Report, directorFound, bySong bool) string {
	var b strings.Builder

	if bySong {
		b.WriteString("# To Print • By Song\n\n")
	} else {
		b.WriteString("# To Print • By Binder\n\n")
	}

	if !directorFound {
		b.WriteString("_" + DirectorMissing + "._\n")
		return b.String()
	}

	if bySong {
		needs := r.Needs()
		if len(needs) == 0 {
			b.WriteString(NoSongsNeeded + "\n")
			return b.String()
		}
		b.WriteString("| Song | Composer | Copies |\n")
		b.WriteString("| --- | --- | ---: |\n")
		for _, n := range needs {
			fmt.Fprintf(&b, "| %s | %s | %d |\n",
				escapeCell(n.Song.Title), escapeCell(n.Song.Composer), n.Needed)
		}
		return b.String()
	}

	if len(r.Binders) == 0 {
		b.WriteString(NothingToPrint + "\n")
		return b.String()
	}
	for i, br := range r.Binders {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", br.Heading())
		for _, m := range br.Songs {
			box := " "
			if m.Checked {
				box = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", box, m.Song.DisplayTitle())
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
