package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Planta-api/internal/application/directory"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
)

type seedLine struct{ code, name string }

// Jerarquía base: planta MUN, división FMD y sus prensas.
var (
	seedLocation = dto.CreateLocationRequest{Code: "MUN", Name: "Mundhawa"}
	seedDivision = dto.CreateDivisionRequest{Code: "FMD", Name: "Forging"}
	seedLines    = []seedLine{{"L1", "Press Line 1"}, {"L2", "Press Line 2"}, {"L3", "Ring Rolling"}}
)

func newSeedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrar y cargar la jerarquía base (idempotente por código)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.deps.Migrate(); err != nil {
				return err
			}
			res, err := seed(cmd.Context(), e.deps.Directory)
			if err != nil {
				return err
			}
			return writeJSON(res)
		},
	}
}

type seedResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

func seed(ctx context.Context, dir *directory.UseCase) (seedResult, error) {
	var res seedResult
	snap := dir.Refresh(ctx)

	locationID := ""
	for _, l := range snap.Locations {
		if l.Code == seedLocation.Code {
			locationID = l.ID
		}
	}
	if locationID == "" {
		loc, err := dir.CreateLocation(ctx, seedLocation)
		if err != nil {
			return res, err
		}
		locationID = loc.ID
		res.Created++
	} else {
		res.Skipped++
	}

	divisionID := ""
	for _, d := range snap.Divisions {
		if d.Code == seedDivision.Code && d.LocationID == locationID {
			divisionID = d.ID
		}
	}
	if divisionID == "" {
		in := seedDivision
		in.LocationID = locationID
		div, err := dir.CreateDivision(ctx, in)
		if err != nil {
			return res, err
		}
		divisionID = div.ID
		res.Created++
	} else {
		res.Skipped++
	}

	for _, l := range seedLines {
		_, err := dir.CreateLine(ctx, dto.CreateLineRequest{DivisionID: divisionID, Code: l.code, Name: l.name})
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			res.Skipped++
		case err != nil:
			return res, err
		default:
			res.Created++
		}
	}
	return res, nil
}
