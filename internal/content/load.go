package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.schema.json
var catalogSchemaJSON []byte

const catalogSchemaURL = "schema://quizzy/catalog.schema.json"

// Format selects the encoding of a catalog document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the document format from a file extension.
// Anything that is not .json is treated as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// catalogFile is the on-disk shape of a catalog document.
type catalogFile struct {
	Topics []topicFile `yaml:"topics" json:"topics"`
}

type topicFile struct {
	ID        string         `yaml:"id" json:"id"`
	Name      string         `yaml:"name" json:"name"`
	Questions []questionFile `yaml:"questions" json:"questions"`
}

type questionFile struct {
	Text    string   `yaml:"text" json:"text"`
	Options []string `yaml:"options" json:"options"`
	Correct int      `yaml:"correct" json:"correct"`
}

// Load reads, validates and builds a catalog from the file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog document, checks it against the catalog schema and
// the topic invariants, and builds the catalog.
func Parse(data []byte, format Format) (*Catalog, error) {
	doc, err := decodeGeneric(data, format)
	if err != nil {
		return nil, err
	}
	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	file, err := decodeTyped(data, format)
	if err != nil {
		return nil, err
	}

	topics := make([]Topic, 0, len(file.Topics))
	for _, tf := range file.Topics {
		t := Topic{ID: tf.ID, Name: tf.Name}
		for _, qf := range tf.Questions {
			t.Questions = append(t.Questions, Question{
				Text:         qf.Text,
				Options:      qf.Options,
				CorrectIndex: qf.Correct,
			})
		}
		topics = append(topics, t)
	}
	return NewCatalog(topics...)
}

// decodeGeneric produces the JSON-shaped value the schema validator expects.
// YAML input is round-tripped through JSON so numbers and maps match.
func decodeGeneric(data []byte, format Format) (any, error) {
	raw := data
	if format == FormatYAML {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		raw = b
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return parsed, nil
}

func decodeTyped(data []byte, format Format) (catalogFile, error) {
	var file catalogFile
	if format == FormatJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return catalogFile{}, fmt.Errorf("parse json: %w", err)
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			return catalogFile{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return file, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return catalogFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return catalogFile{}, fmt.Errorf("parse yaml: multiple documents are not supported")
	}
	return file, nil
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(catalogSchemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(catalogSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(catalogSchemaURL)
})
