package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bnema/petition-tracker/internal/adapters/apiwire"
	"github.com/bnema/petition-tracker/internal/domain"
)

func (s *Server) listPetitions(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := s.store.ListPetitions(r.Context(), query)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	state := string(query.State)
	if state == "" {
		state = "all"
	}
	response := apiwire.PetitionsResponse{
		State:     state,
		Petitions: make([]apiwire.Petition, 0, len(page.Petitions)),
		Meta: apiwire.Meta{
			Query: map[string]any{"state": state, "index": page.Index, "items": page.PerPage},
			Items: apiwire.Items{Total: page.Total, OnPage: len(page.Petitions), PerPage: page.PerPage},
			Pages: page.Pages(),
			Index: page.Index,
			Links: pageLinks(r.URL, page),
		},
	}
	for _, petition := range page.Petitions {
		response.Petitions = append(response.Petitions, apiwire.FromPetition(petition))
	}

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) getPetition(w http.ResponseWriter, r *http.Request) {
	petition, ok := s.loadPetition(w, r)
	if !ok {
		return
	}

	response := apiwire.PetitionResponse{Petition: apiwire.FromPetition(petition)}
	if withSignatures, _ := strconv.ParseBool(r.URL.Query().Get("signatures")); withSignatures {
		record, err := s.store.LatestRecord(r.Context(), petition.ID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			s.internalError(w, r, err)
			return
		default:
			response.Signatures = apiwire.FromRecord(record)
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) signatures(w http.ResponseWriter, r *http.Request) {
	petition, ok := s.loadPetition(w, r)
	if !ok {
		return
	}
	window, ok := parseWindow(w, r)
	if !ok {
		return
	}

	from, to := window.Bounds(s.clock.Now())
	records, err := s.store.Records(r.Context(), petition.ID, from, to)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if len(records) == 0 {
		writeError(w, http.StatusNotFound, noResults(petition.ID))
		return
	}

	rows := make([]apiwire.SignatureRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, apiwire.TotalRow(record))
	}

	writeJSON(w, http.StatusOK, apiwire.SignaturesResponse{
		Petition:   apiwire.FromPetition(petition),
		Signatures: rows,
		Meta:       signaturesMeta(r, len(rows)),
	})
}

// signaturesByGeography returns the latest breakdown of every locale of a
// geography.
func (s *Server) signaturesByGeography(w http.ResponseWriter, r *http.Request) {
	petition, ok := s.loadPetition(w, r)
	if !ok {
		return
	}
	geo, err := domain.ParseGeography(chi.URLParam(r, "geography"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := s.store.LatestRecord(r.Context(), petition.ID)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, noResults(petition.ID))
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	narrowed := record
	narrowed.Locales = map[domain.Geography][]domain.LocaleCount{geo: record.Locales[geo]}

	writeJSON(w, http.StatusOK, apiwire.PetitionResponse{
		Petition:   apiwire.FromPetition(petition),
		Signatures: apiwire.FromRecord(narrowed),
	})
}

func (s *Server) signaturesByLocale(w http.ResponseWriter, r *http.Request) {
	petition, ok := s.loadPetition(w, r)
	if !ok {
		return
	}
	geo, err := domain.ParseGeography(chi.URLParam(r, "geography"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	locale, err := parseLocale(geo, chi.URLParam(r, "locale"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	window, ok := parseWindow(w, r)
	if !ok {
		return
	}

	from, to := window.Bounds(s.clock.Now())
	records, err := s.store.LocaleRecords(r.Context(), petition.ID, geo, locale.Code, from, to)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if len(records) == 0 {
		writeError(w, http.StatusNotFound, noResults(petition.ID))
		return
	}

	rows := make([]apiwire.SignatureRow, 0, len(records))
	for _, record := range records {
		if record.Locale.Name == "" {
			record.Locale.Name = locale.Name
		}
		rows = append(rows, apiwire.LocaleRow(geo, record))
	}

	writeJSON(w, http.StatusOK, apiwire.SignaturesResponse{
		Petition:   apiwire.FromPetition(petition),
		Signatures: rows,
		Meta:       signaturesMeta(r, len(rows)),
	})
}

func (s *Server) loadPetition(w http.ResponseWriter, r *http.Request) (domain.Petition, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid petition id %q", raw))
		return domain.Petition{}, false
	}

	petition, err := s.store.GetPetition(r.Context(), domain.PetitionID(id))
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("petition %d not found", id))
		return domain.Petition{}, false
	}
	if err != nil {
		s.internalError(w, r, err)
		return domain.Petition{}, false
	}

	return petition, true
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("api request failed", zap.String("path", r.URL.Path), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func parseWindow(w http.ResponseWriter, r *http.Request) (domain.TimeWindow, bool) {
	window, err := apiwire.ParseWindowQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return domain.TimeWindow{}, false
	}

	return window, true
}

func parseListQuery(values url.Values) (domain.PetitionListQuery, error) {
	state, err := domain.ParsePetitionState(values.Get("state"))
	if err != nil {
		return domain.PetitionListQuery{}, err
	}

	query := domain.PetitionListQuery{State: state}
	if raw := values.Get("index"); raw != "" {
		if query.Index, err = strconv.Atoi(raw); err != nil || query.Index < 0 {
			return domain.PetitionListQuery{}, fmt.Errorf("invalid index %q", raw)
		}
	}
	if raw := values.Get("items"); raw != "" {
		if query.Items, err = strconv.Atoi(raw); err != nil || query.Items <= 0 {
			return domain.PetitionListQuery{}, fmt.Errorf("invalid items %q", raw)
		}
	}

	return query.Normalize(), nil
}

// parseLocale accepts a code or name. Countries and regions must be in the
// catalogue; constituency codes are taken as given.
func parseLocale(geo domain.Geography, raw string) (domain.Locale, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.Locale{}, errors.New("locale is required")
	}
	if locale, ok := domain.LookupLocale(geo, raw); ok {
		return locale, nil
	}
	if geo == domain.GeographyConstituency {
		return domain.ResolveLocale(geo, raw), nil
	}

	return domain.Locale{}, fmt.Errorf("invalid %s locale %q", geo, raw)
}

func signaturesMeta(r *http.Request, count int) apiwire.Meta {
	query := map[string]any{}
	for _, key := range []string{"since", "between"} {
		if value := r.URL.Query().Get(key); value != "" {
			query[key] = value
		}
	}

	return apiwire.Meta{Query: query, Items: apiwire.Items{Total: count}}
}

func pageLinks(requestURL *url.URL, page domain.PetitionPage) map[string]string {
	links := map[string]string{}
	link := func(index int) string {
		values := requestURL.Query()
		values.Set("index", strconv.Itoa(index))
		values.Set("items", strconv.Itoa(page.PerPage))
		return requestURL.Path + "?" + values.Encode()
	}

	links["self"] = link(page.Index)
	if page.HasNext() {
		links["next"] = link(page.Index + 1)
	}
	if page.HasPrevious() {
		links["prev"] = link(page.Index - 1)
	}

	return links
}

func noResults(id domain.PetitionID) string {
	return fmt.Sprintf("No matching results found for petition id: %d", id)
}
