package flp

// Event IDs the core itself must recognize: the "known DWORD-range IDs"
// that make the §4.3.1 disambiguation moot, the three DATA-range name
// fields, and the version event the decoder scans for unicode gating. The
// full catalogue of what every other ID means belongs to
// internal/eventcatalog, an external collaborator (§1); the core only needs
// enough of the table to resolve kind and, for this one ID, version text.
const (
	eventIDTempo        byte = 156 // DWORD range: project tempo * 1000
	eventIDCurrentPos   byte = 162 // DWORD range: playback cursor position
	eventIDLoopType     byte = 170 // DWORD range: loop/pattern mode flags
	eventIDPlayListItem byte = 175 // DWORD range: playlist item descriptor

	eventIDChanName  byte = 221 // DATA range, text in recent versions: channel name
	eventIDHostName  byte = 231 // DATA range, text in recent versions: host plugin name
	eventIDMixerName byte = 239 // DATA range, text in recent versions: mixer track name

	// eventIDVersion is the "FL version" event the decoder watches for
	// during §4.3's scan. It falls in the default TEXT range and needs no
	// explicit mapping.
	eventIDVersion byte = 199

	// eventIDPluginData carries the embedded sub-format described in §6,
	// parsed by internal/plugindata. The core delivers only its raw
	// payload; it never inspects the sub-format itself.
	eventIDPluginData byte = 216
)
