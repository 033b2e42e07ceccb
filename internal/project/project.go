// Package project provides thin typed accessors over a parsed .flp file:
// project metadata, sample names, and edits. Per spec §1 these are
// explicitly out of scope for the core — "thin wrappers over event
// lookup/mutation" — so every accessor here is built purely on
// flp.FindFirst/FindAll/Patch and adds no parsing logic of its own.
package project

import (
	"fmt"

	"github.com/sonicvault/flp"
	"github.com/sonicvault/flp/internal/eventcatalog"
)

// Project wraps a flp.ParsedFile with typed accessors.
type Project struct {
	File flp.ParsedFile
}

// Open parses data and wraps the result.
func Open(data []byte) (Project, error) {
	pf, err := flp.Parse(data)
	if err != nil {
		return Project{}, err
	}
	return Project{File: pf}, nil
}

// Title returns the project title, or "" if no title event is present.
func (p Project) Title() string {
	e, ok := flp.FindFirst(p.File, eventcatalog.Title.ID)
	if !ok {
		return ""
	}
	return decodeText(e.Payload, p.File.UseUnicode)
}

// SetTitle returns a new Project with the title event's payload replaced.
// If no title event exists yet, one is appended.
func (p Project) SetTitle(title string) Project {
	payload := encodeText(title, p.File.UseUnicode)
	_, found := flp.FindFirst(p.File, eventcatalog.Title.ID)

	patched := flp.Patch(p.File, func(e flp.Event, i int) flp.Event {
		if e.ID == eventcatalog.Title.ID {
			e.Payload = payload
		}
		return e
	})
	if !found {
		patched.Events = append(patched.Events, flp.CreateEvent(eventcatalog.Title.ID, payload))
	}
	return Project{File: patched}
}

// Tempo returns the raw tempo DWORD value (FL Studio stores tempo scaled by
// 1000; the core delivers the raw integer, unscaled, per its contract of
// never interpreting payload semantics beyond kind).
func (p Project) Tempo() (uint32, error) {
	e, ok := flp.FindFirst(p.File, eventcatalog.Tempo.ID)
	if !ok {
		return 0, fmt.Errorf("project: no tempo event present")
	}
	if len(e.Payload) != 4 {
		return 0, fmt.Errorf("project: tempo event: %w", flp.ErrKindMismatch)
	}
	return uint32(e.Payload[0]) | uint32(e.Payload[1])<<8 | uint32(e.Payload[2])<<16 | uint32(e.Payload[3])<<24, nil
}

// PPQ returns the outer header's pulses-per-quarter-note field.
func (p Project) PPQ() uint16 {
	return p.File.PPQ()
}

// DetectedVersion returns the version string the core scanned for, or the
// "0.0.0" sentinel if none was found.
func (p Project) DetectedVersion() string {
	return p.File.DetectedVersion
}

// SampleNames returns every catalogued sample-name event's decoded text, in
// stream order.
func (p Project) SampleNames() []string {
	var names []string
	for _, e := range flp.FindAll(p.File, eventcatalog.SampleName.ID) {
		names = append(names, decodeText(e.Payload, p.File.UseUnicode))
	}
	return names
}

// Serialize reconstructs the whole-file byte buffer.
func (p Project) Serialize() []byte {
	return flp.Serialize(p.File)
}
