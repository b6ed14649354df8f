package card

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Dataset is an ordered collection of cards keyed by name. Order matters:
// filtered output has to come back in the same order the source file listed
// the cards, and Go maps don't remember insertion order, so the name
// sequence is tracked alongside the lookup map.
type Dataset struct {
	names []string
	faces map[string][]Face
}

// New returns an empty dataset.
func New() *Dataset {
	return &Dataset{faces: make(map[string][]Face)}
}

// Add appends a card to the dataset. Adding a name twice replaces its faces
// but keeps its original position.
func (d *Dataset) Add(name string, faces []Face) {
	if _, ok := d.faces[name]; !ok {
		d.names = append(d.names, name)
	}
	d.faces[name] = faces
}

// Names returns the card names in dataset order. The returned slice is
// shared; callers must not modify it.
func (d *Dataset) Names() []string {
	return d.names
}

// Faces returns the faces for a card, or nil if the card is not present.
func (d *Dataset) Faces(name string) []Face {
	return d.faces[name]
}

// Len returns the number of cards in the dataset.
func (d *Dataset) Len() int {
	return len(d.names)
}

// LoadDataset reads a card dataset from a JSON file on disk.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("card dataset not found: %s", path)
		}
		return nil, fmt.Errorf("error opening card dataset: %v", err)
	}
	defer f.Close()

	ds, err := ReadDataset(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %v", path, err)
	}
	return ds, nil
}

// ReadDataset decodes a card dataset from a reader. The document is a JSON
// object whose "data" key maps card name to an array of faces. Decoding
// walks the tokens by hand instead of unmarshalling into a map so that the
// file's own key order survives.
func ReadDataset(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("error parsing card data: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("card data must be a JSON object")
	}

	ds := New()
	found := false
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("error parsing card data: %v", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("error parsing card data: unexpected token %v", keyTok)
		}

		if key != "data" {
			// Skip the value of keys like "meta".
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("error parsing %q section: %v", key, err)
			}
			continue
		}

		found = true
		if err := decodeCards(dec, ds); err != nil {
			return nil, err
		}
	}

	if !found {
		return nil, fmt.Errorf(`card data has no top-level "data" object`)
	}
	return ds, nil
}

// decodeCards consumes the object under the "data" key, one card at a time,
// in document order.
func decodeCards(dec *json.Decoder, ds *Dataset) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("error parsing card data: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf(`"data" must be a JSON object`)
	}

	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("error parsing card data: %v", err)
		}
		name, ok := nameTok.(string)
		if !ok {
			return fmt.Errorf("error parsing card data: unexpected token %v", nameTok)
		}

		var faces []Face
		if err := dec.Decode(&faces); err != nil {
			return fmt.Errorf("error parsing faces of %q: %v", name, err)
		}
		ds.Add(name, faces)
	}

	// Consume the closing brace of the "data" object.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("error parsing card data: %v", err)
	}
	return nil
}

// CheckResults collects the problems found in a dataset.
type CheckResults struct {
	Errors   []string
	Warnings []string
}

// Validate reports structural problems in the dataset: cards with no faces
// and faces missing the required colors or types keys. The filter tolerates
// such faces, but they usually mean the source file is damaged.
func (d *Dataset) Validate() CheckResults {
	var results CheckResults

	for _, name := range d.names {
		faces := d.faces[name]
		if len(faces) == 0 {
			results.Errors = append(results.Errors, fmt.Sprintf("%s: card has no faces", name))
			continue
		}

		for i, face := range faces {
			if face.Colors == nil {
				results.Errors = append(results.Errors,
					fmt.Sprintf("%s: face %d is missing the colors key", name, i))
			}
			if face.Types == nil {
				results.Errors = append(results.Errors,
					fmt.Sprintf("%s: face %d is missing the types key", name, i))
			}
			if (face.Power == nil) != (face.Toughness == nil) {
				results.Warnings = append(results.Warnings,
					fmt.Sprintf("%s: face %d has only one of power and toughness", name, i))
			}
		}
	}

	return results
}
