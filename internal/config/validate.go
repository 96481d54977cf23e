package config

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrNoClips is returned when the configuration has no [[clips]] entries.
var ErrNoClips = errors.New("no clips configured")

// Validate checks option ranges and every clip descriptor. Clip errors name
// the clip by position ("2nd clip (b.mp3): end must be greater than start").
func (c *Config) Validate() error {
	if len(c.Clips) == 0 {
		return errors.WithHint(ErrNoClips, "add at least one [[clips]] entry with file, start and end")
	}
	if err := validate.Struct(c); err != nil {
		return errors.Newf("invalid configuration: %s", describeErrors(err))
	}

	for i, cc := range c.Clips {
		if err := validate.Struct(cc); err != nil {
			return errors.Newf("%s clip (%s): %s", humanize.Ordinal(i+1), cc.File, describeErrors(err))
		}
	}
	return nil
}

// describeErrors turns validator errors into short readable text.
func describeErrors(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeField(fe validator.FieldError) string {
	name := fe.Field()
	if name == "Start" || name == "End" || name == "File" {
		name = strings.ToLower(name)
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", name, strings.ToLower(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", name, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", name, fe.Tag())
	}
}
