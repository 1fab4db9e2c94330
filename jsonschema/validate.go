package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
	tekuri "github.com/santhosh-tekuri/jsonschema/v5"

	streamconv "github.com/reoring/streamconv"
)

const resourceName = "request.schema.json"

// FormatChecker validates a string against a named format.
type FormatChecker func(s string) error

// Validator is a compiled Schema.
type Validator struct {
	root     *Schema
	compiled *tekuri.Schema
}

// Compile compiles s for validation. formats registers custom format
// checkers (they replace built-in checkers with the same name); format
// assertion is always on.
func Compile(s *Schema, formats map[string]FormatChecker) (*Validator, error) {
	doc, err := j.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: marshal: %w", err)
	}
	c := tekuri.NewCompiler()
	c.Draft = tekuri.Draft2020
	c.AssertFormat = true
	if c.Formats == nil {
		c.Formats = make(map[string]func(interface{}) bool, len(formats))
	}
	for name, check := range formats {
		c.Formats[name] = func(v interface{}) bool {
			str, ok := v.(string)
			if !ok {
				// formats only constrain strings
				return true
			}
			return check(str) == nil
		}
	}
	if err := c.AddResource(resourceName, bytes.NewReader(doc)); err != nil {
		return nil, fmt.Errorf("jsonschema: add resource: %w", err)
	}
	compiled, err := c.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: compile: %w", err)
	}
	return &Validator{root: s, compiled: compiled}, nil
}

// Validate checks a JSON-compatible tree (numbers as json.Number or float64)
// and returns Issues, one per failing keyword, sorted by path.
func (v *Validator) Validate(doc any) error {
	err := v.compiled.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *tekuri.ValidationError
	if !errors.As(err, &ve) {
		it := streamconv.NewIssue("/", streamconv.CodeInvalidType, nil)
		it.Cause = err
		return streamconv.AppendIssues(nil, it)
	}
	var iss streamconv.Issues
	v.collect(doc, ve, &iss)
	sort.SliceStable(iss, func(a, b int) bool {
		if iss[a].Path != iss[b].Path {
			return iss[a].Path < iss[b].Path
		}
		return iss[a].Code < iss[b].Code
	})
	return iss
}

func (v *Validator) collect(doc any, ve *tekuri.ValidationError, out *streamconv.Issues) {
	if len(ve.Causes) > 0 {
		for _, c := range ve.Causes {
			v.collect(doc, c, out)
		}
		return
	}
	*out = streamconv.AppendIssues(*out, v.toIssues(doc, ve)...)
}

var quoted = regexp.MustCompile(`'([^']*)'`)

func (v *Validator) toIssues(doc any, ve *tekuri.ValidationError) []streamconv.Issue {
	kwPath := strings.Split(strings.TrimPrefix(ve.KeywordLocation, "/"), "/")
	keyword := kwPath[len(kwPath)-1]
	node := v.root.lookup(kwPath[:len(kwPath)-1])
	loc := ve.InstanceLocation

	var out []streamconv.Issue
	add := func(path, code string, params map[string]string) {
		for k, val := range params {
			if val == "" {
				delete(params, k)
			}
		}
		it := streamconv.NewIssue(path, code, params)
		it.Cause = errors.New(ve.Message)
		out = append(out, it)
	}
	switch keyword {
	case "required", "additionalProperties":
		code := streamconv.CodeRequired
		if keyword == "additionalProperties" {
			code = streamconv.CodeUnknownKey
		}
		names := quoted.FindAllStringSubmatch(ve.Message, -1)
		for _, m := range names {
			add(loc+"/"+m[1], code, map[string]string{"key": m[1]})
		}
		if len(names) == 0 {
			add(loc, code, nil)
		}
	case "type":
		add(loc, streamconv.CodeInvalidType, map[string]string{"expected": nodeField(node, func(s *Schema) string { return s.Type })})
	case "format":
		add(loc, streamconv.CodeInvalidFormat, map[string]string{"format": nodeField(node, func(s *Schema) string { return s.Format })})
	case "enum", "const":
		add(loc, streamconv.CodeInvalidEnum, map[string]string{
			"got":     instanceText(doc, loc),
			"allowed": nodeField(node, enumList),
		})
	case "minimum", "exclusiveMinimum", "minLength", "minItems":
		add(loc, streamconv.CodeTooSmall, map[string]string{"limit": nodeField(node, func(s *Schema) string { return uintText(s.Minimum) })})
	case "maximum", "exclusiveMaximum", "maxItems":
		add(loc, streamconv.CodeTooBig, map[string]string{"limit": nodeField(node, func(s *Schema) string { return uintText(s.Maximum) })})
	case "pattern":
		add(loc, streamconv.CodePattern, nil)
	default:
		add(loc, streamconv.CodeInvalidType, nil)
	}
	return out
}

// lookup follows a keyword location (properties/<name>, items) from s.
func (s *Schema) lookup(segs []string) *Schema {
	cur := s
	for i := 0; i < len(segs) && cur != nil; i++ {
		switch segs[i] {
		case "", "$ref":
		case "properties":
			if i+1 < len(segs) {
				i++
				cur = cur.Properties[unescapePointer(segs[i])]
			}
		case "items":
			cur = cur.Items
		default:
			return nil
		}
	}
	return cur
}

func nodeField(s *Schema, f func(*Schema) string) string {
	if s == nil {
		return ""
	}
	return f(s)
}

func enumList(s *Schema) string {
	parts := make([]string, len(s.Enum))
	for i, e := range s.Enum {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, ", ")
}

func uintText(p *uint64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatUint(*p, 10)
}

// instanceText renders the scalar at the JSON Pointer loc inside doc.
func instanceText(doc any, loc string) string {
	cur := doc
	if loc != "" {
		for _, seg := range strings.Split(strings.TrimPrefix(loc, "/"), "/") {
			switch c := cur.(type) {
			case map[string]any:
				cur = c[unescapePointer(seg)]
			case []any:
				i, err := strconv.Atoi(seg)
				if err != nil || i < 0 || i >= len(c) {
					return ""
				}
				cur = c[i]
			default:
				return ""
			}
		}
	}
	switch cur.(type) {
	case map[string]any, []any, nil:
		return ""
	}
	return fmt.Sprint(cur)
}

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

func unescapePointer(s string) string { return pointerUnescaper.Replace(s) }
