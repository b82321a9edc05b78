package recommend

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MikeSquared-Agency/EcoPack/internal/scoring"
)

// Request is the recommendation input as submitted by a client. Every field
// must be present; values are not otherwise validated here. Unknown
// categories, fragilities and priorities fall back to permissive defaults in
// the scoring pipeline.
type Request struct {
	ProductCategory        *string `json:"product_category" validate:"required"`
	Fragility              *string `json:"fragility" validate:"required"`
	ShippingType           *string `json:"Shipping_Type" validate:"required"`
	SustainabilityPriority *string `json:"Sustainability_Priority" validate:"required"`
}

func (r Request) criteria() scoring.Criteria {
	return scoring.Criteria{
		Category:     deref(r.ProductCategory),
		Fragility:    deref(r.Fragility),
		ShippingType: deref(r.ShippingType),
		Priority:     deref(r.SustainabilityPriority),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// missingFields lists the request keys named in a validator error.
func missingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
