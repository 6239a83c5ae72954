package parliament

import (
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/bnema/petition-tracker/internal/domain"
)

const archivedType = "archived-petition"

var (
	strictPolicy     *bluemonday.Policy
	strictPolicyOnce sync.Once
)

// plainText strips any markup from upstream petition text.
func plainText(raw string) string {
	if raw == "" {
		return ""
	}
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})

	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(raw)))
}

type petitionDocument struct {
	Data petitionData `json:"data"`
}

type listDocument struct {
	Links listLinks      `json:"links"`
	Data  []petitionData `json:"data"`
}

type listLinks struct {
	Self string `json:"self"`
	Next string `json:"next"`
	Last string `json:"last"`
}

type petitionData struct {
	Type       string     `json:"type"`
	ID         int64      `json:"id"`
	Links      dataLinks  `json:"links"`
	Attributes attributes `json:"attributes"`
}

type dataLinks struct {
	Self string `json:"self"`
}

type attributes struct {
	Action                     string        `json:"action"`
	Background                 string        `json:"background"`
	AdditionalDetails          string        `json:"additional_details"`
	State                      string        `json:"state"`
	SignatureCount             int64         `json:"signature_count"`
	CreatedAt                  *time.Time    `json:"created_at"`
	UpdatedAt                  *time.Time    `json:"updated_at"`
	ClosedAt                   *time.Time    `json:"closed_at"`
	RejectedAt                 *time.Time    `json:"rejected_at"`
	ResponseThresholdReachedAt *time.Time    `json:"response_threshold_reached_at"`
	DebateThresholdReachedAt   *time.Time    `json:"debate_threshold_reached_at"`
	SignaturesByCountry        []localeEntry `json:"signatures_by_country"`
	SignaturesByRegion         []localeEntry `json:"signatures_by_region"`
	SignaturesByConstituency   []localeEntry `json:"signatures_by_constituency"`
}

// localeEntry covers the three breakdowns: countries use code, regions and
// constituencies use ons_code.
type localeEntry struct {
	Name           string `json:"name"`
	Code           string `json:"code"`
	ONSCode        string `json:"ons_code"`
	SignatureCount int64  `json:"signature_count"`
}

func (e localeEntry) locale() domain.Locale {
	code := e.Code
	if code == "" {
		code = e.ONSCode
	}

	return domain.Locale{Code: domain.NormalizeLocaleCode(code), Name: strings.TrimSpace(e.Name)}
}

func (d petitionData) snapshot(polledAt time.Time) (domain.PetitionSnapshot, error) {
	state, err := domain.ParsePetitionState(d.Attributes.State)
	if err != nil {
		return domain.PetitionSnapshot{}, fmt.Errorf("decode petition %d: %w", d.ID, err)
	}
	if d.ID <= 0 {
		return domain.PetitionSnapshot{}, fmt.Errorf("decode petition: missing id")
	}

	attrs := d.Attributes
	petition := domain.Petition{
		ID:                         domain.PetitionID(d.ID),
		Action:                     plainText(attrs.Action),
		Background:                 plainText(attrs.Background),
		AdditionalDetails:          plainText(attrs.AdditionalDetails),
		URL:                        strings.TrimSuffix(d.Links.Self, ".json"),
		State:                      state,
		Archived:                   d.Type == archivedType,
		Signatures:                 attrs.SignatureCount,
		CreatedAt:                  utc(attrs.CreatedAt),
		UpdatedAt:                  utc(attrs.UpdatedAt),
		ClosedAt:                   utc(attrs.ClosedAt),
		RejectedAt:                 utc(attrs.RejectedAt),
		ResponseThresholdReachedAt: utc(attrs.ResponseThresholdReachedAt),
		DebateThresholdReachedAt:   utc(attrs.DebateThresholdReachedAt),
		PolledAt:                   polledAt,
	}

	record := domain.Record{
		PetitionID: petition.ID,
		Timestamp:  polledAt,
		Total:      attrs.SignatureCount,
		Locales: map[domain.Geography][]domain.LocaleCount{
			domain.GeographyCountry:      localeCounts(attrs.SignaturesByCountry),
			domain.GeographyRegion:       localeCounts(attrs.SignaturesByRegion),
			domain.GeographyConstituency: localeCounts(attrs.SignaturesByConstituency),
		},
	}

	return domain.PetitionSnapshot{Petition: petition, Record: record}, nil
}

func localeCounts(entries []localeEntry) []domain.LocaleCount {
	if len(entries) == 0 {
		return nil
	}

	counts := make([]domain.LocaleCount, 0, len(entries))
	for _, entry := range entries {
		locale := entry.locale()
		if locale.Code == "" {
			continue
		}
		counts = append(counts, domain.LocaleCount{Locale: locale, Count: entry.SignatureCount})
	}

	return counts
}

func utc(value *time.Time) time.Time {
	if value == nil {
		return time.Time{}
	}

	return value.UTC()
}
