package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog document major version this build understands.
const SupportedMajor = "v1"

const schemaURL = "schema://hayakil/topics.schema.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// schema returns the compiled catalog schema, compiling it on first use.
func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(schemaJSON, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateDocument checks raw catalog JSON against the embedded schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := schema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// validateTopics performs the checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateTopics(version string, topics []Topic) error {
	var errs []string

	if !semver.IsValid(version) {
		errs = append(errs, fmt.Sprintf("invalid catalog version %q", version))
	} else if semver.Major(version) != SupportedMajor {
		errs = append(errs, fmt.Sprintf("unsupported catalog version %s (want %s.x.x)", version, SupportedMajor))
	}

	seen := make(map[TopicID]bool, len(topics))
	for _, t := range topics {
		if !t.ID.Valid() {
			errs = append(errs, fmt.Sprintf("unknown topic id %q", t.ID))
			continue
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic id %q", t.ID))
		}
		seen[t.ID] = true

		for i, q := range t.Questions {
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("topic %q question %d: need at least 2 options, got %d", t.ID, i, len(q.Options)))
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("topic %q question %d: correct index %d out of range", t.ID, i, q.Correct))
			}
		}
	}

	// The topic set is closed; every id must be selectable.
	for _, id := range AllTopicIDs() {
		if !seen[id] {
			errs = append(errs, fmt.Sprintf("missing topic %q", id))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
