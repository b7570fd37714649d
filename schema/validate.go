package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is wrapped by every schema validation failure.
var ErrValidation = errors.New("schema validation failed")

// validate is the shared validator instance for schema types. Custom rules
// are registered once in init().
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(scoreThresholdStructLevel, ScoreThreshold{})
	validate.RegisterStructValidation(batchGenesetStructLevel, BatchUploadGeneset{})
}

func scoreThresholdStructLevel(sl validator.StructLevel) {
	s := sl.Current().Interface().(ScoreThreshold)
	if !s.Kind.Valid() {
		sl.ReportError(s.Kind, "Kind", "score_type", "score_type", "")
		return
	}
	if s.ThresholdLow == nil {
		return
	}
	if !s.Kind.TwoSided() {
		sl.ReportError(s.ThresholdLow, "ThresholdLow", "threshold_low", "two_sided_only", "")
	}
	if *s.ThresholdLow > s.Threshold {
		sl.ReportError(s.ThresholdLow, "ThresholdLow", "threshold_low", "ltefield", "Threshold")
	}
}

func batchGenesetStructLevel(sl validator.StructLevel) {
	g := sl.Current().Interface().(BatchUploadGeneset)
	if !g.Species.Valid() {
		sl.ReportError(g.Species, "Species", "species", "species", "")
	}
	if !g.GeneIDType.Valid() {
		sl.ReportError(g.GeneIDType, "GeneIDType", "gene_id_type", "gene_id_type", "")
	}
}

// check runs the validator and folds field errors into one ErrValidation.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Namespace() + " failed " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}
