package dataprocessing

import (
	"regexp"
	"strconv"

	"crimedata/pkg/contracts/domain"
)

var (
	// legacyNamePattern matches MMYYYY3K<anything>_ru.xlsx, always a general report
	legacyNamePattern = regexp.MustCompile(`(?i)^(\d{6})3K.*?_ru\.xlsx`)
	// modernNamePattern matches YYYYMM_3k_<agency>___ru.xlsx
	modernNamePattern = regexp.MustCompile(`(?i)^(\d{6})_3k_(\d{5})___ru\.xlsx`)
)

// ClassifyFilename derives the report identity from a bare filename. The
// legacy pattern is tried first. The second result is false when neither
// pattern matches. Months are not range checked.
func ClassifyFilename(name string) (domain.FileIdentity, bool) {
	if m := legacyNamePattern.FindStringSubmatch(name); m != nil {
		digits := m[1]
		return domain.FileIdentity{
			Month: atoi(digits[0:2]),
			Year:  atoi(digits[2:6]),
			Kind:  domain.ReportKindGeneral,
		}, true
	}

	if m := modernNamePattern.FindStringSubmatch(name); m != nil {
		digits, agency := m[1], m[2]
		id := domain.FileIdentity{
			Year:  atoi(digits[0:4]),
			Month: atoi(digits[4:6]),
			Kind:  domain.ReportKindGeneral,
		}
		if agency != domain.GeneralAgencyCode {
			id.Kind = domain.ReportKindAgency
			id.AgencyCode = agency
		}
		return id, true
	}

	return domain.FileIdentity{}, false
}

// atoi parses a run of ASCII digits already validated by the patterns.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
