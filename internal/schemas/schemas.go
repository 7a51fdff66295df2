// Package schemas embeds the JSON schemas used to check input files.
package schemas

import _ "embed"

// AnswersSchema describes a headless answers file.
//
//go:embed answers.schema.json
var AnswersSchema []byte
