package layout

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/navgrid/pkg/errors"
)

// ReadJSON decodes a JSON layout document from r and prepares it.
// Unknown fields are rejected. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var d Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	if err := d.Prepare(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadYAML decodes a YAML layout document from r and prepares it.
// Unknown fields are rejected. ReadYAML does not close r.
func ReadYAML(r io.Reader) (*Document, error) {
	var d Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "empty yaml document")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
	}
	if err := d.Prepare(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Import reads the layout document at path. Files ending in .yaml or .yml
// are decoded as YAML, .json as JSON.
func Import(path string) (*Document, error) {
	var read func(io.Reader) (*Document, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		read = ReadJSON
	case ".yaml", ".yml":
		read = ReadYAML
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported layout file %q (want .json, .yaml or .yml)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	d, err := read(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "import %s", path)
	}
	return d, nil
}
