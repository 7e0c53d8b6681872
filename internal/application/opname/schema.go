package opname

import (
	"github.com/invopop/jsonschema"

	"github.com/jhoicas/stock-opname/internal/application/dto"
	domopname "github.com/jhoicas/stock-opname/internal/domain/opname"
)

// UploadSchema devuelve el JSON Schema del archivo de carga para el esquema de columnas indicado.
// Se permiten columnas adicionales: el dashboard las conserva en la tabla de datos.
func UploadSchema(name string) (*jsonschema.Schema, error) {
	schema, err := domopname.ResolveSchema(name, nil)
	if err != nil {
		return nil, err
	}
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}

	var s *jsonschema.Schema
	if schema.Name == domopname.SchemaLegacy {
		s = reflector.Reflect([]dto.LegacyOpnameRecordDTO{})
	} else {
		s = reflector.Reflect([]dto.OpnameRecordDTO{})
	}
	s.Title = "stock opname upload (" + schema.Name + ")"
	return s, nil
}
