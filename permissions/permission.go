package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Table maps a resource category to the roles allowed to touch it. A role or
// category absent from the table is denied.
type Table struct {
	Resources map[string][]string `json:"resources"`
}

// Authorize reports whether role may access the resource category. Unknown
// categories and unknown roles both deny.
func (t *Table) Authorize(role, resource string) bool {
	if t == nil {
		return false
	}

	roles, ok := t.Resources[resource]
	if !ok {
		return false
	}

	return slices.Contains(roles, role)
}

func Get() *Table {
	var table Table

	err := json.Unmarshal(permissionsData, &table)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("resources", len(table.Resources)).Msg("Successfully loaded embedded permissions")

	return &table
}
