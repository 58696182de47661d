package settings

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// persistedSchema only checks shapes; threshold ordering is enforced at edit time.
const persistedSchema = `{
  "type": "object",
  "properties": {
    "itemsPerPage": {"type": "integer", "minimum": 1},
    "defaultSort": {"type": "string"},
    "scoreThresholds": {
      "type": "object",
      "properties": {
        "excellent": {"type": "integer"},
        "good": {"type": "integer"}
      }
    },
    "demoUpload": {"type": "boolean"},
    "apiBaseUrl": {"type": "string"},
    "apiToken": {"type": "string"}
  }
}`

var schema = mustSchema(persistedSchema)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("settings schema: %v", err))
	}
	return s
}

// validatePersisted rejects blobs that are not JSON or have fields of the wrong type.
func validatePersisted(data []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("parse persisted settings: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("persisted settings invalid: %s", strings.Join(msgs, "; "))
}
