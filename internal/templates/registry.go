package templates

import (
	"fmt"

	werrors "github.com/water-framework/waterws/internal/errors"
)

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = "standard"

// templates is the internal registry of available templates.
var templates = map[string]Template{
	"simple": {
		Name:        "simple",
		Description: "Identity only - modules that publish no contracts yet",
		UseCase:     "Opting a module into descriptor emission with no declarations",
		Default:     false,
	},
	"standard": {
		Name:        "standard",
		Description: "One output contract plus a standard input - typical service module",
		UseCase:     "Service modules that provide an API and consume persistence",
		Default:     true,
	},
	"advanced": {
		Name:        "advanced",
		Description: "Full surface - properties, contract extension, inheritance",
		UseCase:     "Integration modules layering on shared workspace contracts",
		Default:     false,
	},
}

// Get returns a template by name.
// Returns an error if the template is not found.
func Get(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, werrors.Wrap(werrors.ErrValidation,
			fmt.Sprintf("unknown template %q; valid templates: simple, standard, advanced", name))
	}
	return t, nil
}

// List returns all available templates.
func List() []Template {
	return []Template{
		templates["simple"],
		templates["standard"],
		templates["advanced"],
	}
}

// GetDefault returns the default template.
func GetDefault() Template {
	return templates[DefaultTemplateName]
}

// Names returns all template names.
func Names() []string {
	return []string{"simple", "standard", "advanced"}
}
