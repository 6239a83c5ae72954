package apiwire

import (
	"fmt"
	"time"

	"github.com/bnema/petition-tracker/internal/domain"
)

func FromPetition(petition domain.Petition) Petition {
	return Petition{
		ID:                         int64(petition.ID),
		Action:                     petition.Action,
		Background:                 petition.Background,
		AdditionalDetails:          petition.AdditionalDetails,
		URL:                        petition.URL,
		State:                      string(petition.State),
		Archived:                   petition.Archived,
		Signatures:                 petition.Signatures,
		CreatedAt:                  FormatTime(petition.CreatedAt),
		UpdatedAt:                  FormatTime(petition.UpdatedAt),
		ClosedAt:                   FormatTime(petition.ClosedAt),
		RejectedAt:                 FormatTime(petition.RejectedAt),
		ResponseThresholdReachedAt: FormatTime(petition.ResponseThresholdReachedAt),
		DebateThresholdReachedAt:   FormatTime(petition.DebateThresholdReachedAt),
		PolledAt:                   FormatTime(petition.PolledAt),
	}
}

func (p Petition) ToDomain() (domain.Petition, error) {
	state, err := domain.ParsePetitionState(p.State)
	if err != nil {
		return domain.Petition{}, err
	}

	petition := domain.Petition{
		ID:                domain.PetitionID(p.ID),
		Action:            p.Action,
		Background:        p.Background,
		AdditionalDetails: p.AdditionalDetails,
		URL:               p.URL,
		State:             state,
		Archived:          p.Archived,
		Signatures:        p.Signatures,
	}

	times := []struct {
		raw  string
		dest *time.Time
	}{
		{p.CreatedAt, &petition.CreatedAt},
		{p.UpdatedAt, &petition.UpdatedAt},
		{p.ClosedAt, &petition.ClosedAt},
		{p.RejectedAt, &petition.RejectedAt},
		{p.ResponseThresholdReachedAt, &petition.ResponseThresholdReachedAt},
		{p.DebateThresholdReachedAt, &petition.DebateThresholdReachedAt},
		{p.PolledAt, &petition.PolledAt},
	}
	for _, field := range times {
		parsed, err := ParseTime(field.raw)
		if err != nil {
			return domain.Petition{}, fmt.Errorf("decode petition %d: %w", p.ID, err)
		}
		*field.dest = parsed
	}

	return petition, nil
}

func TotalRow(record domain.Record) SignatureRow {
	return SignatureRow{Timestamp: FormatTimestamp(record.Timestamp), Total: record.Total}
}

func LocaleRow(geo domain.Geography, record domain.LocaleRecord) SignatureRow {
	row := SignatureRow{Timestamp: FormatTimestamp(record.Timestamp), Total: record.Total}
	count := &LocaleCount{Code: record.Locale.Code, Name: record.Locale.Name, Count: record.Count}
	switch geo {
	case domain.GeographyCountry:
		row.ByCountry = count
	case domain.GeographyRegion:
		row.ByRegion = count
	case domain.GeographyConstituency:
		row.ByConstituency = count
	}

	return row
}

func FromRecord(record domain.Record) *NestedRow {
	return &NestedRow{
		Timestamp:      FormatTimestamp(record.Timestamp),
		Total:          record.Total,
		ByCountry:      localeCounts(record.Locales[domain.GeographyCountry]),
		ByRegion:       localeCounts(record.Locales[domain.GeographyRegion]),
		ByConstituency: localeCounts(record.Locales[domain.GeographyConstituency]),
	}
}

func localeCounts(entries []domain.LocaleCount) []LocaleCount {
	counts := make([]LocaleCount, 0, len(entries))
	for _, entry := range entries {
		counts = append(counts, LocaleCount{Code: entry.Locale.Code, Name: entry.Locale.Name, Count: entry.Count})
	}

	return counts
}

// Locale returns the per-locale object for geo, if the row carries one.
func (r SignatureRow) Locale(geo domain.Geography) *LocaleCount {
	switch geo {
	case domain.GeographyCountry:
		return r.ByCountry
	case domain.GeographyRegion:
		return r.ByRegion
	case domain.GeographyConstituency:
		return r.ByConstituency
	default:
		return nil
	}
}

// TotalSamples converts rows to total signature samples.
func TotalSamples(rows []SignatureRow) ([]domain.SignatureSample, error) {
	samples := make([]domain.SignatureSample, 0, len(rows))
	for _, row := range rows {
		timestamp, err := ParseTimestamp(row.Timestamp)
		if err != nil {
			return nil, err
		}
		samples = append(samples, domain.SignatureSample{Timestamp: timestamp, Count: row.Total})
	}

	return samples, nil
}

// LocaleSamples converts locale rows to samples of the locale count and
// reports the locale name the rows carry.
func LocaleSamples(geo domain.Geography, rows []SignatureRow) ([]domain.SignatureSample, string, error) {
	samples := make([]domain.SignatureSample, 0, len(rows))
	name := ""
	for _, row := range rows {
		timestamp, err := ParseTimestamp(row.Timestamp)
		if err != nil {
			return nil, "", err
		}
		count := row.Locale(geo)
		if count == nil {
			return nil, "", fmt.Errorf("row %s has no signatures_by_%s", row.Timestamp, geo)
		}
		if count.Name != "" {
			name = count.Name
		}
		samples = append(samples, domain.SignatureSample{Timestamp: timestamp, Count: count.Count})
	}

	return samples, name, nil
}
