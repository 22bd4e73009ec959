package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/confirm/internal/application/port"
	"github.com/bnema/confirm/internal/domain/entity"
)

// GetConfigSchemaUseCase lists the documented configuration keys.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	if provider == nil {
		panic("usecase.NewGetConfigSchemaUseCase: provider cannot be nil")
	}
	return &GetConfigSchemaUseCase{provider: provider}
}

// GetConfigSchemaInput filters the listing.
type GetConfigSchemaInput struct {
	// Section keeps only keys of this section (case-insensitive). Empty keeps all.
	Section string
}

// GetConfigSchemaOutput contains the matching keys and every known section.
type GetConfigSchemaOutput struct {
	Keys     []entity.ConfigKeyInfo
	Sections []string
}

// Execute returns the keys matching in. An unknown section is an error that
// names the valid ones.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, in GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	var sections []string
	seen := make(map[string]bool)
	for _, k := range all {
		if !seen[k.Section] {
			seen[k.Section] = true
			sections = append(sections, k.Section)
		}
	}

	if in.Section == "" {
		return &GetConfigSchemaOutput{Keys: all, Sections: sections}, nil
	}

	keys := make([]entity.ConfigKeyInfo, 0, len(all))
	for _, k := range all {
		if strings.EqualFold(k.Section, in.Section) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("unknown config section %q (known: %s)", in.Section, strings.Join(sections, ", "))
	}
	return &GetConfigSchemaOutput{Keys: keys, Sections: sections}, nil
}
