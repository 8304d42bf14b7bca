// load.go reads QKidney arguments from YAML.

package qkidney

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadArgs decodes arguments from r. Unknown keys are rejected so a
// misspelt argument does not silently validate as zero. An empty document
// yields zero Args.
func LoadArgs(r io.Reader) (Args, error) {
	var a Args
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil && !errors.Is(err, io.EOF) {
		return Args{}, fmt.Errorf("decode args: %w", err)
	}
	return a, nil
}

// LoadArgsFile reads arguments from the YAML file at path.
func LoadArgsFile(path string) (Args, error) {
	f, err := os.Open(path)
	if err != nil {
		return Args{}, fmt.Errorf("open args: %w", err)
	}
	defer f.Close()
	return LoadArgs(f)
}
