package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// importSchema validates catalog import files before any record is trusted.
// The import file is external JSON, so its shape is checked at the boundary
// instead of assumed.
const importSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "difficulty", "topics"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "difficulty": {"type": "string", "enum": ["Easy", "Medium", "Hard"]},
      "topics": {
        "type": "array",
        "items": {"type": "string", "minLength": 1},
        "minItems": 1
      }
    },
    "additionalProperties": false
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func importFileSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(importSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse import schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://catalog-import.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://catalog-import.json")
	})
	return compiledSchema, compileErr
}

// questionRecord is the wire shape of one entry in a catalog import file.
type questionRecord struct {
	ID         string   `json:"id"`
	Difficulty string   `json:"difficulty"`
	Topics     []string `json:"topics"`
}

// ReadImportFile parses and validates a catalog import file, returning the
// questions it contains. The file must be a JSON array of
// {id, difficulty, topics} objects.
func ReadImportFile(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseImport(raw)
}

// ParseImport validates raw catalog JSON against the import schema and
// converts it to Question records.
func ParseImport(raw []byte) ([]Question, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}

	schema, err := importFileSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var records []questionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode catalog records: %w", err)
	}

	seen := make(map[string]bool, len(records))
	questions := make([]Question, 0, len(records))
	for _, r := range records {
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate question id %q in catalog file", r.ID)
		}
		seen[r.ID] = true

		d, err := ParseDifficulty(r.Difficulty)
		if err != nil {
			return nil, err
		}
		q := Question{ID: r.ID, Difficulty: d, Topics: r.Topics}
		if err := q.Validate(); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}
