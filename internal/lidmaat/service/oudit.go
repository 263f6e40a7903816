package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gemeentenet/internal/lidmaat/models"
	"gemeentenet/internal/oudit"
	"gemeentenet/internal/statistiek"
)

// recordUpdateOudit writes the audit entries for an applied profile update.
// Plain profile fields collapse into one profiel_wysig entry; role, status,
// and assignment changes each get their own typed entry. All writes are
// best-effort.
func (s *Service) recordUpdateOudit(ctx context.Context, ou, nuwe *models.Lidmaat, sterf bool) {
	if diffs := profielDiffs(ou, nuwe); len(diffs) > 0 {
		s.oudit.Record(ctx, oudit.Entry{
			LidmaatID:  nuwe.ID,
			GemeenteID: nuwe.GemeenteID,
			AksieTipe:  oudit.AksieProfielWysig,
			Beskrywing: strings.Join(diffs, ", "),
		})
	}

	if ou.Rol != nuwe.Rol {
		s.oudit.Record(ctx, oudit.Entry{
			LidmaatID:  nuwe.ID,
			GemeenteID: nuwe.GemeenteID,
			AksieTipe:  oudit.AksieRolWysig,
			Beskrywing: fmt.Sprintf("Rol verander van %s na %s", ou.Rol.Label(), nuwe.Rol.Label()),
			OuWaarde:   ou.Rol.Label(),
			NuweWaarde: nuwe.Rol.Label(),
		})
	}

	if !uuidPtrEqual(ou.WykID, nuwe.WykID) {
		s.oudit.Record(ctx, oudit.Entry{
			LidmaatID:  nuwe.ID,
			GemeenteID: nuwe.GemeenteID,
			AksieTipe:  oudit.AksieWykToewysing,
			Beskrywing: "Wyktoewysing verander",
			OuWaarde:   s.wykNaam(ctx, ou.WykID),
			NuweWaarde: s.wykNaam(ctx, nuwe.WykID),
		})
	}

	if !uuidPtrEqual(ou.BesoekpuntID, nuwe.BesoekpuntID) {
		s.oudit.Record(ctx, oudit.Entry{
			LidmaatID:  nuwe.ID,
			GemeenteID: nuwe.GemeenteID,
			AksieTipe:  oudit.AksieBesoekpuntToewysing,
			Beskrywing: "Besoekpunttoewysing verander",
			OuWaarde:   s.besoekpuntNaam(ctx, ou.BesoekpuntID),
			NuweWaarde: s.besoekpuntNaam(ctx, nuwe.BesoekpuntID),
		})
	}

	switch {
	case sterf:
		s.oudit.Record(ctx, oudit.Entry{
			LidmaatID:  nuwe.ID,
			GemeenteID: nuwe.GemeenteID,
			AksieTipe:  oudit.AksieStatusWysig,
			Beskrywing: "Lidmaat gemerk as Oorlede",
			OuWaarde:   "Lewend",
			NuweWaarde: "Oorlede",
		})
		if err := s.statistiek.Append(ctx, statistiek.Inskrywing{
			ID:         uuid.New(),
			GemeenteID: nuwe.GemeenteID,
			Datum:      oudit.Now(ctx),
			Tipe:       statistiek.TipeVermindering,
			Rede:       statistiek.RedeOorlede,
			LidmaatID:  nuwe.ID,
			Beskrywing: nuwe.VolleNaam(),
		}); err != nil {
			s.logger.ErrorContext(ctx, "statistiek write misluk", "lidmaat_id", nuwe.ID, "error", err)
		}
	case ou.Aktief != nuwe.Aktief:
		s.oudit.Record(ctx, oudit.Entry{
			LidmaatID:  nuwe.ID,
			GemeenteID: nuwe.GemeenteID,
			AksieTipe:  oudit.AksieStatusWysig,
			Beskrywing: "Status verander",
			OuWaarde:   statusLabel(ou.Aktief),
			NuweWaarde: statusLabel(nuwe.Aktief),
		})
	}
}

// profielDiffs renders the plain field changes as "Veld: ou → nuwe" fragments.
func profielDiffs(ou, nuwe *models.Lidmaat) []string {
	velde := []struct {
		label    string
		ou, nuwe string
	}{
		{"Naam", ou.Naam, nuwe.Naam},
		{"Van", ou.Van, nuwe.Van},
		{"E-pos", ou.Epos, nuwe.Epos},
		{"Selfoon", ou.Selfoon, nuwe.Selfoon},
		{"Adres", ou.Adres, nuwe.Adres},
		{"Geboortedatum", ou.Geboortedatum, nuwe.Geboortedatum},
		{"Notas", ou.Notas, nuwe.Notas},
	}
	var diffs []string
	for _, v := range velde {
		if v.ou != v.nuwe {
			diffs = append(diffs, fmt.Sprintf("%s: %s → %s", v.label, orLeeg(v.ou), orLeeg(v.nuwe)))
		}
	}
	return diffs
}

func orLeeg(s string) string {
	if s == "" {
		return "(leeg)"
	}
	return s
}

func statusLabel(aktief bool) string {
	if aktief {
		return "Aktief"
	}
	return "Onaktief"
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
