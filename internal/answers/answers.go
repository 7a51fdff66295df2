// Package answers loads registration answers from a YAML file so the
// wizard can run without a terminal.
package answers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/preview"
)

// SchemaError lists the structural problems found in an answers file.
type SchemaError struct {
	Path   string
	Errors []string
}

func (e *SchemaError) Error() string {
	name := e.Path
	if name == "" {
		name = "answers"
	}
	return fmt.Sprintf("%s does not match the answers schema: %s", name, strings.Join(e.Errors, "; "))
}

// Answers is a parsed answers file.
type Answers struct {
	// Values holds the text fields, keyed by field name.
	Values map[string]string
	// Terms is the terms checkbox; nil when the file does not mention it.
	Terms *bool
	// Files holds file field paths, resolved against the answers file.
	Files map[string]string
}

// Load reads and checks the answers file at path.
func Load(path string) (*Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	a, err := Parse(data, filepath.Dir(path))
	if err != nil {
		var se *SchemaError
		if errors.As(err, &se) {
			se.Path = path
			return nil, se
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return a, nil
}

// Parse decodes answers YAML. Relative file paths are resolved against
// baseDir.
func Parse(data []byte, baseDir string) (*Answers, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	doc, err := mapping(&root)
	if err != nil {
		return nil, err
	}

	errs, err := checkSchema(doc)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		sort.Strings(errs)
		return nil, &SchemaError{Errors: errs}
	}

	a := &Answers{
		Values: make(map[string]string),
		Files:  make(map[string]string),
	}
	for k, v := range doc {
		switch {
		case k == form.Terms:
			b, _ := v.(bool)
			a.Terms = &b
		case form.IsFileField(k):
			p, _ := v.(string)
			if p != "" && !filepath.IsAbs(p) {
				p = filepath.Join(baseDir, p)
			}
			a.Files[k] = p
		default:
			a.Values[k], _ = v.(string)
		}
	}
	return a, nil
}

// Apply copies the answers into acc, inspecting every referenced file.
// Fields the file does not mention are left as they are.
func (a *Answers) Apply(ctx context.Context, acc form.Accessor) error {
	sels, err := preview.InspectAll(ctx, a.Files)
	if err != nil {
		return fmt.Errorf("loading answer files: %w", err)
	}

	for k, v := range a.Values {
		acc.SetValue(k, v)
	}
	if a.Terms != nil {
		if *a.Terms {
			acc.SetValue(form.Terms, form.Checked)
		} else {
			acc.SetValue(form.Terms, "")
		}
	}
	for field, path := range a.Files {
		if path == "" {
			acc.SetFile(field, nil)
			continue
		}
		acc.SetFile(field, sels[field])
	}
	return nil
}

// mapping flattens the top-level YAML mapping into schema-ready values.
// An empty document is an empty mapping.
func mapping(root *yaml.Node) (map[string]any, error) {
	doc := map[string]any{}
	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return doc, nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null") {
		return doc, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("decoding yaml: line %d: answers must be a mapping of field names", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		v, err := scalar(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("decoding yaml: %s: %w", node.Content[i].Value, err)
		}
		doc[node.Content[i].Value] = v
	}
	return doc, nil
}

// scalar turns a YAML value into what the form expects. Unquoted numbers
// keep the text as written, so 0755 stays 0755 and +1555 keeps its plus.
// Dates become YYYY-MM-DD and null becomes empty. Booleans and
// collections are left for the schema to judge.
func scalar(n *yaml.Node) (any, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return scalar(n.Alias)
	}
	if n.Kind == yaml.ScalarNode {
		switch n.ShortTag() {
		case "!!null":
			return "", nil
		case "!!str", "!!int", "!!float":
			return n.Value, nil
		case "!!timestamp":
			var t time.Time
			if err := n.Decode(&t); err != nil {
				return n.Value, nil
			}
			return t.Format("2006-01-02"), nil
		}
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	if v == nil {
		return "", nil
	}
	return v, nil
}
