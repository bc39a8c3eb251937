package assign_professionals

import (
	"fmt"
	"strings"
)

// validateRequest проверяет запрос и возвращает идентификаторы без пустых и повторов, в исходном порядке
func validateRequest(req *Request) ([]string, error) {
	if req.Workspace == nil {
		return nil, fmt.Errorf("%w: workspace is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ServiceID) == "" {
		return nil, fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(req.ProfessionalIDs))
	ids := make([]string, 0, len(req.ProfessionalIDs))
	for _, id := range req.ProfessionalIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("%w: empty professional id", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
