package domain

import "time"

// Record is one timestamped signature snapshot of a petition, with the per
// locale breakdown reported at the same instant.
type Record struct {
	PetitionID PetitionID
	Timestamp  time.Time
	Total      int64
	Locales    map[Geography][]LocaleCount
}

type LocaleCount struct {
	Locale Locale
	Count  int64
}

// LocaleRecord is a record narrowed to one locale.
type LocaleRecord struct {
	Timestamp time.Time
	Total     int64
	Locale    Locale
	Count     int64
}

// PetitionSnapshot is what a single poll of the upstream service yields.
type PetitionSnapshot struct {
	Petition Petition
	Record   Record
}

func (r Record) Sample() SignatureSample {
	return SignatureSample{Timestamp: r.Timestamp, Count: r.Total}
}

func (r Record) LocaleCount(geo Geography, code string) (LocaleCount, bool) {
	code = NormalizeLocaleCode(code)
	for _, entry := range r.Locales[geo] {
		if entry.Locale.Code == code {
			return entry, true
		}
	}

	return LocaleCount{}, false
}

func (r LocaleRecord) Sample() SignatureSample {
	return SignatureSample{Timestamp: r.Timestamp, Count: r.Count}
}
