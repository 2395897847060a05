package table

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// file is the YAML layout of a table artifact:
//
//	actions:
//	  0:
//	    vtype: s4
//	    $: r3
//	gotos:
//	  0:
//	    CODE: 1
type file struct {
	Actions map[int]map[string]Action `yaml:"actions"`
	Gotos   map[int]map[string]int    `yaml:"gotos"`
}

func (a Action) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

func (a *Action) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAction(s)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*a = parsed
	return nil
}

// Load reads tables from their YAML form. Unknown fields are rejected.
func Load(r io.Reader) (*Tables, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decoding tables: empty document")
		}
		return nil, errors.Wrap(err, "decoding tables")
	}
	if len(f.Actions) == 0 {
		return nil, errors.New("decoding tables: no actions")
	}
	return New(f.Actions, f.Gotos), nil
}

// LoadFile reads tables from the YAML file at path.
func LoadFile(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening tables")
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return t, nil
}

// Dump writes the tables in the YAML form read by Load.
func (t *Tables) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file{Actions: t.actions, Gotos: t.gotos}); err != nil {
		return errors.Wrap(err, "encoding tables")
	}
	return enc.Close()
}
