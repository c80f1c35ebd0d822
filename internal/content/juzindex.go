package content

// SurahEntry is a surah listed under a juz. Continued marks a surah carried
// over from the previous juz; its StartPage is then the juz start page.
type SurahEntry struct {
	Number    int
	Name      string
	StartPage int
	Continued bool
}

// DisplayName prefixes continued surahs with "تابع".
func (s SurahEntry) DisplayName() string {
	if s.Continued {
		return "تابع " + s.Name
	}
	return s.Name
}

// JuzEntry is one row of the juz index. Pages are logical.
type JuzEntry struct {
	Number    int
	Name      string
	StartPage int
	EndPage   int
	Surahs    []SurahEntry
}

// JuzIndex lists every juz with its page range and the surahs it contains.
func JuzIndex() []JuzEntry {
	entries := make([]JuzEntry, 0, len(Juzs))
	for i, j := range Juzs {
		end := QuranLogicalPages
		if i+1 < len(Juzs) {
			end = Juzs[i+1].StartPage - 1
		}
		e := JuzEntry{Number: j.Number, Name: j.Name, StartPage: j.StartPage, EndPage: end}

		if b, ok := BoundaryLookup(j.StartPage); ok && b.Surah.StartPage < j.StartPage {
			e.Surahs = append(e.Surahs, SurahEntry{
				Number:    b.Surah.Number,
				Name:      b.Surah.Name,
				StartPage: j.StartPage,
				Continued: true,
			})
		}
		for _, s := range Surahs {
			if s.StartPage >= j.StartPage && s.StartPage <= end {
				e.Surahs = append(e.Surahs, SurahEntry{Number: s.Number, Name: s.Name, StartPage: s.StartPage})
			}
		}
		entries = append(entries, e)
	}
	return entries
}
