// Command bnrfaultgen emits the fault package's generated lookup tables
// from the JSON input files under fault/data. It is an offline build tool,
// not part of the driver runtime -- see spec.md §4.3.
//
// Usage:
//
//	go run ./cmd/bnrfaultgen -bnr fault/data/globalBnrErrorsAndFixes.json \
//	    -usb fault/data/usbFaults.json -out fault
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

type bnrEntry struct {
	Identifier        string   `json:"identifier"`
	Code              uint32   `json:"code"`
	Title             string   `json:"title"`
	CorrectiveActions []string `json:"correctiveActions"`
}

type usbEntry struct {
	Identifier string `json:"identifier"`
	Code       uint32 `json:"code"`
}

const bnrTemplate = `// Code generated by cmd/bnrfaultgen from {{.Source}}. DO NOT EDIT.

package fault

// BnrFault is the 32-bit device fault code reported in an XFS fault
// response. The numeric value is the code itself; constants below name
// the defined subset. A code received at runtime that is not one of
// these constants remains a valid BnrFault value -- Name and Known
// report it as unrecognized rather than panicking.
type BnrFault uint32

// Defined BnrFault codes, sourced from {{.Source}}.
const (
{{- range .Entries}}
	{{.Identifier}} BnrFault = {{.Code}}
{{- end}}
)

type bnrFaultInfo struct {
	name              string
	title             string
	correctiveActions []string
}

var bnrFaultTable = map[BnrFault]bnrFaultInfo{
{{- range .Entries}}
	{{.Identifier}}: {name: {{printf "%q" .Identifier}}, title: {{printf "%q" .Title}}, correctiveActions: []string{ {{.ActionsLiteral}} }},
{{- end}}
}
`

const usbTemplate = `// Code generated by cmd/bnrfaultgen from {{.Source}}. DO NOT EDIT.

package fault

// UsbFault is the USB transport fault space, offset by 10000 from the
// underlying OS transport error it maps from. Disjoint from BnrFault.
type UsbFault uint32

// Defined UsbFault codes, sourced from {{.Source}}.
const (
{{- range .Entries}}
	Usb{{.Identifier}} UsbFault = {{.Code}}
{{- end}}
)

var usbFaultNames = map[UsbFault]string{
{{- range .Entries}}
	Usb{{.Identifier}}: {{printf "%q" .Identifier}},
{{- end}}
}
`

func main() {
	bnrPath := flag.String("bnr", "fault/data/globalBnrErrorsAndFixes.json", "path to the BNR fault JSON source")
	usbPath := flag.String("usb", "fault/data/usbFaults.json", "path to the USB fault JSON source")
	outDir := flag.String("out", "fault", "output directory for generated Go sources")
	flag.Parse()

	if err := genBnr(*bnrPath, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, "bnrfaultgen:", err)
		os.Exit(1)
	}
	if err := genUsb(*usbPath, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, "bnrfaultgen:", err)
		os.Exit(1)
	}
}

func genBnr(path, outDir string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var entries []bnrEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	seenName := map[string]bool{}
	seenCode := map[uint32]string{}
	for _, e := range entries {
		if seenName[e.Identifier] {
			return fmt.Errorf("duplicate identifier %q in %s", e.Identifier, path)
		}
		seenName[e.Identifier] = true
		if other, ok := seenCode[e.Code]; ok {
			return fmt.Errorf("code %d used by both %q and %q in %s", e.Code, other, e.Identifier, path)
		}
		seenCode[e.Code] = e.Identifier
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })

	tmpl := template.Must(template.New("bnr").Parse(bnrTemplate))
	type entryView struct {
		bnrEntry
		ActionsLiteral string
	}
	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		parts := make([]string, 0, len(e.CorrectiveActions))
		for _, a := range e.CorrectiveActions {
			parts = append(parts, fmt.Sprintf("%q", a))
		}
		views = append(views, entryView{e, strings.Join(parts, ", ")})
	}

	f, err := os.Create(filepath.Join(outDir, "zz_generated_bnrfault.go"))
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, struct {
		Source  string
		Entries []entryView
	}{path, views})
}

func genUsb(path, outDir string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var entries []usbEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	seenCode := map[uint32]string{}
	for _, e := range entries {
		if other, ok := seenCode[e.Code]; ok {
			return fmt.Errorf("code %d used by both %q and %q in %s", e.Code, other, e.Identifier, path)
		}
		seenCode[e.Code] = e.Identifier
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })

	tmpl := template.Must(template.New("usb").Parse(usbTemplate))
	f, err := os.Create(filepath.Join(outDir, "zz_generated_usbfault.go"))
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, struct {
		Source  string
		Entries []usbEntry
	}{path, entries})
}
