package main

// agent-envcheck prints, for each wrapper, the exact command line and
// environment table the launcher would hand to exec, and which inherited
// variables would be dropped on the way. Diagnostic only: it never
// launches anything.

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/mobile-agent/launcher/pkg/launcher"
)

type variant struct {
	name   string
	target launcher.Target
	opts   []launcher.Option
}

func main() {
	variants := []variant{
		{
			name:   "agent-noshell",
			target: launcher.NoshellTarget,
		},
		{
			name:   "agent-noshrc",
			target: launcher.NoshrcTarget,
			opts: []launcher.Option{
				launcher.WithEnvPassthrough(launcher.DebugEnvVar, launcher.DebugEnvOn),
			},
		},
	}

	if err := runEnvcheck(os.Stdout, variants); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runEnvcheck(w io.Writer, variants []variant) error {
	for _, v := range variants {
		if err := printVariant(w, v); err != nil {
			return err
		}
	}

	return nil
}

func printVariant(w io.Writer, v variant) error {
	argv, err := v.target.Argv(nil)
	if err != nil {
		return err
	}

	envv := launcher.New(v.target, v.opts...).Environ()

	fmt.Fprintf(w, "%s\n", v.name)
	fmt.Fprintf(w, "  exec: %s <request>...\n", strings.Join(argv, " "))
	fmt.Fprintf(w, "  environment (%d entries):\n", len(envv))

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, entry := range envv {
		key, value, _ := strings.Cut(entry, "=")
		fmt.Fprintf(tw, "    %s\t%s\n", key, value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	dropped := droppedKeys(envv)
	fmt.Fprintf(w, "  dropped from inherited environment (%d): %s\n\n",
		len(dropped), strings.Join(dropped, " "))

	return nil
}

// droppedKeys returns the inherited environment keys absent from the
// constructed table, sorted for stable output.
func droppedKeys(envv []string) []string {
	kept := make(map[string]bool, len(envv))
	for _, entry := range envv {
		key, _, _ := strings.Cut(entry, "=")
		kept[key] = true
	}

	var dropped []string
	for _, entry := range os.Environ() {
		key, _, _ := strings.Cut(entry, "=")
		if !kept[key] {
			dropped = append(dropped, key)
		}
	}
	sort.Strings(dropped)

	return dropped
}
