package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrSchemaViolation is returned when the loaded settings do not match the
// configuration schema.
var ErrSchemaViolation = errors.New("configuration schema violation")

// settingsSchema is the JSON schema every loaded configuration must satisfy.
// Unknown top-level keys are rejected so typos fail fast instead of being
// silently ignored.
const settingsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "log": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "level": {"type": "string", "enum": ["debug", "info", "warn", "error"]},
        "format": {"type": "string", "enum": ["text", "json"]}
      }
    },
    "output": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "format": {"type": "string", "enum": ["text", "table", "json", "yaml"]},
        "no_color": {"type": "boolean"}
      }
    },
    "rules": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "enabled": {"type": "array", "items": {"type": "string", "minLength": 1}},
        "page_singleton": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "suffix": {"type": "string", "minLength": 1},
            "field_name": {"type": "string", "minLength": 1}
          }
        },
        "hook_pair": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "pairs": {
              "type": "array",
              "minItems": 1,
              "items": {
                "type": "object",
                "additionalProperties": false,
                "required": ["setup", "teardown"],
                "properties": {
                  "setup": {"type": "string", "minLength": 1},
                  "teardown": {"type": "string", "minLength": 1}
                }
              }
            }
          }
        },
        "clear_before_type": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "type_method": {"type": "string", "minLength": 1},
            "clear_method": {"type": "string", "minLength": 1}
          }
        }
      }
    }
  }
}`

// ValidateSettings checks raw settings against the configuration schema
// before they are unmarshaled into typed config.
func ValidateSettings(settings map[string]any) error {
	document, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings for validation: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(settingsSchema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}

	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, schemaErr := range result.Errors() {
		messages = append(messages, schemaErr.String())
	}

	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(messages, "; "))
}
