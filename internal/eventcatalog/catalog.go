// Package eventcatalog is the static catalogue of what each event ID means
// semantically — the external collaborator the core deliberately stays
// agnostic of (spec §1: "the catalogue of known event IDs and their
// semantic types... the core consumes only the shape"). The core's own
// event table (package flp) only needs enough of this to resolve Kind and
// the version-detection ID; this package names the rest for
// internal/project and the CLIs.
package eventcatalog

// Field describes one named, semantically-typed slot in a project file.
type Field struct {
	ID   byte
	Name string
	// Repeatable is true when more than one event with this ID may appear
	// in a single project (e.g. one per channel/sample), as opposed to a
	// singleton field like the project title.
	Repeatable bool
}

// Known fields. Where an ID also appears in the core's ids.go (the
// explicit-kind IDs, the version ID and the plugin-data ID) the values
// match; this catalogue adds names on top, plus the title and sample-name
// IDs the core does not use.
var (
	Tempo        = Field{ID: 156, Name: "tempo"}
	CurrentPos   = Field{ID: 162, Name: "current_position"}
	LoopType     = Field{ID: 170, Name: "loop_type"}
	PlayListItem = Field{ID: 175, Name: "playlist_item", Repeatable: true}

	ChannelName = Field{ID: 221, Name: "channel_name", Repeatable: true}
	HostName    = Field{ID: 231, Name: "host_plugin_name", Repeatable: true}
	MixerName   = Field{ID: 239, Name: "mixer_track_name", Repeatable: true}

	Version    = Field{ID: 199, Name: "version"}
	Title      = Field{ID: 200, Name: "title"}
	PluginData = Field{ID: 216, Name: "plugin_data", Repeatable: true}
	SampleName = Field{ID: 217, Name: "sample_name", Repeatable: true}
)

// ByID indexes every known field by its event ID, for reverse lookup by
// tools that dump a project's raw event list (cmd/flpdump).
var ByID = map[byte]Field{
	Tempo.ID:        Tempo,
	CurrentPos.ID:   CurrentPos,
	LoopType.ID:     LoopType,
	PlayListItem.ID: PlayListItem,
	ChannelName.ID:  ChannelName,
	HostName.ID:     HostName,
	MixerName.ID:    MixerName,
	Version.ID:      Version,
	Title.ID:        Title,
	PluginData.ID:   PluginData,
	SampleName.ID:   SampleName,
}

// NameOf returns the catalogued name for id, or "" if id is not catalogued.
func NameOf(id byte) string {
	return ByID[id].Name
}
