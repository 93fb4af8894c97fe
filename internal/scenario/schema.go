package scenario

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaSource string

var (
	schemaOnce sync.Once
	schemaDef  cue.Value
	schemaCtx  *cue.Context
	schemaErr  error
)

// compileSchema builds the #Scenario definition once; the schema is
// embedded, so a compile failure is a programming error surfaced to
// every caller.
func compileSchema() (cue.Value, *cue.Context, error) {
	schemaOnce.Do(func() {
		schemaCtx = cuecontext.New()
		root := schemaCtx.CompileString(schemaSource, cue.Filename("schema.cue"))
		if err := root.Err(); err != nil {
			schemaErr = fmt.Errorf("compiling scenario schema: %w", err)
			return
		}
		schemaDef = root.LookupPath(cue.ParsePath("#Scenario"))
		if !schemaDef.Exists() {
			schemaErr = fmt.Errorf("scenario schema missing #Scenario definition")
		}
	})
	return schemaDef, schemaCtx, schemaErr
}

// validateSchema unifies the YAML document with the #Scenario
// definition and reports any structural violation.
func validateSchema(filename string, data []byte) error {
	def, ctx, err := compileSchema()
	if err != nil {
		return err
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("building document: %w", err)
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema violation: %w", err)
	}
	return nil
}
