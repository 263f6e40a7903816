package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"gemeentenet/internal/lidmaat/models"
)

// DuplikaatGroep is a cluster of members that look like the same person,
// either by full name or by email address.
type DuplikaatGroep struct {
	Sleutel string            `json:"sleutel"`
	Tipe    string            `json:"tipe"`
	Lede    []*models.Lidmaat `json:"lede"`
}

// FindDuplikate clusters a congregation's members on lowercased naam+van and
// on lowercased epos. A member can appear in clusters of both kinds. Only
// clusters with two or more members are returned. Within a cluster the
// oldest record comes first.
func (s *Service) FindDuplikate(ctx context.Context, gemeenteID uuid.UUID) ([]DuplikaatGroep, error) {
	all, err := s.store.ListByGemeente(ctx, gemeenteID)
	if err != nil {
		return nil, fmt.Errorf("list lidmate: %w", err)
	}

	groepe := make(map[string][]*models.Lidmaat)
	for _, l := range all {
		if naam, van := strings.TrimSpace(l.Naam), strings.TrimSpace(l.Van); naam != "" && van != "" {
			key := "naam-" + strings.ToLower(naam) + "|" + strings.ToLower(van)
			groepe[key] = append(groepe[key], l)
		}
		if epos := strings.TrimSpace(l.Epos); epos != "" {
			key := "epos-" + strings.ToLower(epos)
			groepe[key] = append(groepe[key], l)
		}
	}

	var out []DuplikaatGroep
	for key, lede := range groepe {
		if len(lede) < 2 {
			continue
		}
		sort.Slice(lede, func(i, j int) bool {
			return lede[i].CreatedAt.Before(lede[j].CreatedAt)
		})
		tipe := "naam"
		if strings.HasPrefix(key, "epos-") {
			tipe = "epos"
		}
		out = append(out, DuplikaatGroep{Sleutel: key, Tipe: tipe, Lede: lede})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sleutel < out[j].Sleutel })
	return out, nil
}

// ResolveDuplikate deletes the redundant members of each duplicate cluster.
// The keep map picks the survivor per cluster key; clusters without an entry
// keep their oldest record. A member kept by any cluster is never deleted,
// even if another cluster does not pick it.
func (s *Service) ResolveDuplikate(ctx context.Context, gemeenteID uuid.UUID, keep map[string]uuid.UUID) (models.BatchResult, error) {
	groepe, err := s.FindDuplikate(ctx, gemeenteID)
	if err != nil {
		return models.BatchResult{}, err
	}

	behou := make(map[uuid.UUID]bool)
	for _, g := range groepe {
		keepID := g.Lede[0].ID
		if id, ok := keep[g.Sleutel]; ok {
			for _, l := range g.Lede {
				if l.ID == id {
					keepID = id
					break
				}
			}
		}
		behou[keepID] = true
	}

	kandidate := make(map[uuid.UUID]bool)
	for _, g := range groepe {
		for _, l := range g.Lede {
			if !behou[l.ID] {
				kandidate[l.ID] = true
			}
		}
	}

	var res models.BatchResult
	for id := range kandidate {
		if err := s.Delete(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "duplikaat verwydering misluk", "lidmaat_id", id, "error", err)
			res.Failed++
			continue
		}
		res.Succeeded++
	}
	s.logger.InfoContext(ctx, "duplikate opgelos",
		"gemeente_id", gemeenteID, "verwyder", res.Succeeded, "misluk", res.Failed)
	return res, nil
}
