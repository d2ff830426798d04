package termui

import (
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ainfosec/PUFlib"
)

// ModuleRow is one line of `pufctl list`/`pufctl provisioned` output.
type ModuleRow struct {
	Name      string
	Author    string
	Desc      string
	HWSupport bool
	Status    puflib.ModuleStatusFlags
}

// PrintModuleTable renders rows as an aligned table on stdout. Colors are
// suppressed when stdout isn't a terminal, e.g. piped into a file or `less`.
func PrintModuleTable(rows []ModuleRow) {
	prevNoColor := color.NoColor
	if !IsTerminal(os.Stdout) {
		color.NoColor = true
	}
	defer func() { color.NoColor = prevNoColor }()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "Author", "Description", "HW", "Status"})

	for _, r := range rows {
		t.AppendRow(table.Row{r.Name, r.Author, r.Desc, hwLabel(r.HWSupport), statusLabel(r.Status)})
	}

	t.Render()
}

func hwLabel(supported bool) string {
	if supported {
		return Colors.Green("yes")
	}
	return Colors.Dim("no")
}

func statusLabel(flags puflib.ModuleStatusFlags) string {
	if flags&puflib.ErrorFlag != 0 {
		return Colors.Red("error")
	}

	switch {
	case flags&puflib.Disabled != 0:
		return Colors.Yellow("disabled")
	case flags&puflib.Provisioned != 0:
		return Colors.Green("provisioned")
	case flags&puflib.InProgress != 0:
		return Colors.Cyan("in-progress")
	default:
		return Colors.Dim("unprovisioned")
	}
}
