// Package yaml loads extraction options from YAML config files.
package yaml

import (
	"io"
	"os"

	"github.com/awalczak/presskit"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML config file and returns the options it
// describes, layered on top of the defaults. Fields absent from the
// file keep their default values.
func LoadConfig(path string) (presskit.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return presskit.Options{}, presskit.Errorf(presskit.EINVALID, "open config %q: %v", path, err)
	}
	defer f.Close()

	return ReadConfig(f)
}

// ReadConfig decodes options from r, layered on top of the defaults.
func ReadConfig(r io.Reader) (presskit.Options, error) {
	opts := presskit.DefaultOptions()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&opts); err != nil {
		if err == io.EOF {
			return opts, nil
		}
		return presskit.Options{}, presskit.Errorf(presskit.EINVALID, "decode config: %v", err)
	}

	if opts.MinContentLength < 0 {
		return presskit.Options{}, presskit.Errorf(presskit.EINVALID, "minContentLength must not be negative")
	}

	return opts, nil
}
