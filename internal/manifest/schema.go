package manifest

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE []byte

// schemaValidator checks decoded manifests against the embedded #Template
// definition.
type schemaValidator struct {
	mu  sync.Mutex
	ctx *cue.Context
	def cue.Value
}

var loadSchema = sync.OnceValues(func() (*schemaValidator, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling manifest schema: %w", schema.Err())
	}
	def := schema.LookupPath(cue.ParsePath("#Template"))
	if !def.Exists() {
		return nil, fmt.Errorf("manifest schema has no #Template definition")
	}
	return &schemaValidator{ctx: ctx, def: def}, nil
})

// validate returns one message per schema violation, each prefixed with the
// offending field path.
func (s *schemaValidator) validate(raw map[string]any) []string {
	// cue.Context is not safe for concurrent use.
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.ctx.Encode(raw)
	if data.Err() != nil {
		return []string{data.Err().Error()}
	}
	err := s.def.Unify(data).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var msgs []string
	seen := make(map[string]bool)
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if path := strings.Join(e.Path(), "."); path != "" {
			msg = path + ": " + msg
		}
		if !seen[msg] {
			seen[msg] = true
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
