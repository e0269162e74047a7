// Package schemas validates write payloads against the CUE definitions in
// portfolio.cue before anything is stored.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/pkg/errors"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
)

//go:embed portfolio.cue
var source string

const (
	Project          string = "#Project"
	Research         string = "#Research"
	Contribution     string = "#Contribution"
	Now              string = "#Now"
	Link             string = "#Link"
	Blog             string = "#Blog"
	About            string = "#About"
	Availability     string = "#Availability"
	AvailabilitySync string = "#AvailabilitySync"
	Like             string = "#Like"
	LikeRef          string = "#LikeRef"
)

// Validator checks payloads against the compiled definitions. Safe for
// concurrent use.
type Validator struct {
	mu     sync.Mutex
	ctx    *cue.Context
	schema cue.Value
}

func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(source, cue.Filename("portfolio.cue"))
	if err := schema.Err(); err != nil {
		return nil, errors.Wrap(err, "compile schemas")
	}
	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// Validate reports a domain.ValidationError when payload, encoded as JSON,
// does not satisfy the named definition.
func (v *Validator) Validate(collection, definition string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encode payload")
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.schema.LookupPath(cue.ParsePath(definition)).Exists() {
		return fmt.Errorf("schemas: unknown definition %s", definition)
	}

	value := v.ctx.CompileString(definition+" & "+string(data), cue.Scope(v.schema))
	if err := value.Err(); err != nil {
		return domain.ValidationError{Collection: collection, Reason: cueerrors.Details(err, nil)}
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return domain.ValidationError{Collection: collection, Reason: cueerrors.Details(err, nil)}
	}
	return nil
}
