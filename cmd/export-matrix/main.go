// Command export-matrix writes the authorization matrix as a JSON document.
// The export is consumed by audit tooling and the accreditation paperwork
// that has to show who may do what.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/acadion/acadion-access/internal/authz"
	"github.com/acadion/acadion-access/internal/logger"
	"github.com/acadion/acadion-access/internal/model"
)

type export struct {
	Roles       []model.Role                                    `json:"roles"`
	Permissions []model.Permission                              `json:"permissions"`
	Matrix      map[model.Role]map[model.Permission]model.Scope `json:"matrix"`
	Navigation  []authz.NavEntry                                `json:"navigation"`
	Widgets     []authz.Widget                                  `json:"widgets"`
}

func main() {
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	log := logger.Setup("info", "pretty")

	doc := export{
		Roles:       model.AllRoles,
		Permissions: model.AllPermissions,
		Matrix:      authz.Matrix(),
		Navigation:  authz.NavigationCatalog(),
		Widgets:     authz.WidgetCatalog(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal matrix")
	}
	data = append(data, '\n')

	if *out == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatal().Err(err).Msg("Failed to write matrix")
		}
		return
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("Failed to write matrix file")
	}
	log.Info().Str("file", *out).Int("bytes", len(data)).Msg("Matrix exported")
}
