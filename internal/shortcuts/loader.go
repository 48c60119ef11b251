package shortcuts

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// LoadFile applies chord overrides from a JSON file to already-registered
// bindings. The format is:
//
//	{"bindings": [{"id": "interface.toggle_console", "chord": "F10"}]}
//
// Overrides for unknown binding ids and unparsable chords are skipped,
// not fatal: user files may reference bindings this build does not have.
// Returns the number of overrides applied.
func (r *Registry) LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading shortcut file: %w", err)
	}

	applied := 0
	gjson.GetBytes(data, "bindings").ForEach(func(_, entry gjson.Result) bool {
		id := entry.Get("id").String()
		chord := entry.Get("chord").String()
		if id == "" || chord == "" {
			return true
		}
		if err := r.Rebind(id, chord); err != nil {
			r.log.Warn().Err(err).Str("binding", id).Msg("shortcut override skipped")
			return true
		}
		applied++
		return true
	})
	return applied, nil
}

// SaveFile writes every registered binding's chord to a JSON file in the
// LoadFile format, sorted by id.
func (r *Registry) SaveFile(path string) error {
	doc := []byte(`{"bindings":[]}`)
	var err error
	for i, b := range r.Bindings() {
		doc, err = sjson.SetBytes(doc, fmt.Sprintf("bindings.%d.id", i), b.ID)
		if err != nil {
			return fmt.Errorf("encoding shortcut %s: %w", b.ID, err)
		}
		doc, err = sjson.SetBytes(doc, fmt.Sprintf("bindings.%d.chord", i), b.Chord.String())
		if err != nil {
			return fmt.Errorf("encoding shortcut %s: %w", b.ID, err)
		}
	}

	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("writing shortcut file: %w", err)
	}
	return nil
}
