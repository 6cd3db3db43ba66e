package lexicon

// docSchema is the JSON Schema every lexicon document must satisfy before
// it is walked: an "order" array of strings (query-vector shape, the
// "..." sentinel meaning "pick a key/element at random here") and a
// "content" object nested to match.
const docSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["order", "content"],
  "properties": {
    "order": {
      "type": "array",
      "items": {"type": "string"},
      "minItems": 1
    },
    "content": {
      "type": "object"
    }
  }
}`
