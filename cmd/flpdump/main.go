// Command flpdump parses a single .flp file and prints a structural dump:
// detected version, unicode flag, and each event's id/kind/length. It is
// the "CLI dumping tool" spec §1 keeps out of the core, built here as the
// external layer the core is designed to serve.
package main

import (
	"fmt"
	"os"

	"github.com/sonicvault/flp"
	"github.com/sonicvault/flp/internal/eventcatalog"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.flp>\n", os.Args[0])
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "flpdump: %v\n", err)
		os.Exit(1)
	}

	pf, err := flp.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flpdump: parse %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	fmt.Printf("format:       %d\n", pf.Format())
	fmt.Printf("channels:     %d\n", pf.ChannelCount())
	fmt.Printf("ppq:          %d\n", pf.PPQ())
	fmt.Printf("version:      %s\n", pf.DetectedVersion)
	fmt.Printf("unicode:      %v\n", pf.UseUnicode)
	fmt.Printf("events:       %d\n", len(pf.Events))
	fmt.Printf("trailing:     %d bytes\n\n", len(pf.TrailingBytes))

	for i, e := range pf.Events {
		name := eventcatalog.NameOf(e.ID)
		if name == "" {
			name = "-"
		}
		fmt.Printf("%5d  id=%-3d  kind=%-6s  name=%-16s  payload=%d bytes\n",
			i, e.ID, e.Kind, name, len(e.Payload))
	}
}
