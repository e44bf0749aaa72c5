package classify

// JSON Schemas the frozen artifacts are validated against at load time.
// A file that parses but violates its schema is treated the same as a
// missing file: ModelLoadError, startup aborted.

const vocabularySchema = `{
  "type": "object",
  "required": ["terms", "idf"],
  "properties": {
    "terms": {
      "type": "object",
      "additionalProperties": {"type": "integer", "minimum": 0}
    },
    "idf": {
      "type": "array",
      "items": {"type": "number", "exclusiveMinimum": 0}
    }
  }
}`

const modelSchema = `{
  "type": "object",
  "required": ["classes", "dims", "weights", "intercepts"],
  "properties": {
    "classes": {"type": "integer", "minimum": 2},
    "dims": {"type": "integer", "minimum": 1},
    "weights": {
      "type": "array",
      "items": {"type": "array", "items": {"type": "number"}}
    },
    "intercepts": {
      "type": "array",
      "items": {"type": "number"}
    }
  }
}`

const labelsSchema = `{
  "type": "object",
  "required": ["labels"],
  "properties": {
    "labels": {
      "type": "array",
      "minItems": 2,
      "items": {"type": "string", "minLength": 1}
    }
  }
}`
