package port

import "github.com/bnema/confirm/internal/domain/entity"

// ConfigSchemaProvider describes the keys of the configuration file.
type ConfigSchemaProvider interface {
	// GetSchema returns every key in file order.
	GetSchema() []entity.ConfigKeyInfo
}
