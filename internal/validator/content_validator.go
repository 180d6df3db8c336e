package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	validatorengine "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/xeipuuv/gojsonschema"

	appErrors "github.com/unclebandit/campaign-copy-backend/internal/errors"
	"github.com/unclebandit/campaign-copy-backend/internal/model"
)

// campaignContentSchema mirrors the provider output contract, tightened with
// the length constraints the provider schema cannot express.
const campaignContentSchema = `{
	"type": "object",
	"required": ["headline", "subheadline", "benefits", "socialProof", "ctaText", "ctaLink"],
	"properties": {
		"headline":    {"type": "string", "minLength": 1},
		"subheadline": {"type": "string", "minLength": 1},
		"benefits": {
			"type": "array",
			"minItems": 3,
			"maxItems": 3,
			"items": {"type": "string", "minLength": 1}
		},
		"socialProof": {"type": "string", "minLength": 1},
		"ctaText":     {"type": "string", "minLength": 1},
		"ctaLink":     {"type": "string", "minLength": 1}
	}
}`

// ContentValidator decides whether a provider payload is a complete
// CampaignContent. Safe for concurrent use.
type ContentValidator struct {
	schema *gojsonschema.Schema
	engine *validatorengine.Validate
}

func NewContentValidator() (*ContentValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(campaignContentSchema))
	if err != nil {
		return nil, fmt.Errorf("load campaign content schema: %w", err)
	}

	engine := validatorengine.New()
	if err := engine.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, fmt.Errorf("register notblank: %w", err)
	}

	return &ContentValidator{schema: schema, engine: engine}, nil
}

// MustNewContentValidator panics if the embedded schema fails to load.
func MustNewContentValidator() *ContentValidator {
	v, err := NewContentValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Parse validates payload and decodes it. Errors are MalformedPayload when the
// payload is not a JSON object, SchemaViolation otherwise.
func (v *ContentValidator) Parse(payload string) (*model.CampaignContent, error) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &object); err != nil {
		return nil, appErrors.NewMalformedPayload(err, payload)
	}

	result, err := v.schema.Validate(gojsonschema.NewStringLoader(payload))
	if err != nil {
		return nil, appErrors.NewMalformedPayload(err, payload)
	}
	if !result.Valid() {
		return nil, appErrors.NewSchemaViolation(describe(result.Errors()), payload)
	}

	var content model.CampaignContent
	if err := json.Unmarshal([]byte(payload), &content); err != nil {
		return nil, appErrors.NewSchemaViolation(err, payload)
	}
	if err := v.ValidateStruct(&content); err != nil {
		return nil, appErrors.NewSchemaViolation(err, payload)
	}

	return &content, nil
}

// ValidateStruct checks the CampaignContent invariant on an already decoded value.
func (v *ContentValidator) ValidateStruct(content *model.CampaignContent) error {
	if err := v.engine.Struct(content); err != nil {
		var verrs validatorengine.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
			}
			return errors.New(strings.Join(fields, "; "))
		}
		return err
	}
	return nil
}

func describe(errs []gojsonschema.ResultError) error {
	msgs := make([]string, 0, len(errs))
	for _, desc := range errs {
		field := desc.Field()
		if desc.Type() == "required" {
			field = strings.TrimPrefix(fmt.Sprintf("%s.%v", field, desc.Details()["property"]), "(root).")
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
