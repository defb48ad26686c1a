package v1

import "github.com/MGTheTrain/hbnb-storage/internal/domain/entities"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}

// EntityResponse wraps one entity with its type and its string form
type EntityResponse struct {
	Type   string          `json:"type"`
	Ref    string          `json:"ref"`
	Data   entities.Record `json:"data"`
	String string          `json:"string"`
}

// CreateEntityRequest is the body of a create request: column name to value.
// Generated fields are ignored.
type CreateEntityRequest map[string]any

// ToRecord drops the fields maintained by the storage engine.
func (r CreateEntityRequest) ToRecord() entities.Record {
	rec := entities.Record{}
	for k, v := range r {
		switch k {
		case "created_at", "updated_at", "__class__":
			continue
		}
		rec[k] = v
	}
	return rec
}

func newEntityResponse(e entities.Entity) EntityResponse {
	return EntityResponse{
		Type:   e.TypeName(),
		Ref:    entities.Ref(e),
		Data:   e.ToRecord(),
		String: e.String(),
	}
}
