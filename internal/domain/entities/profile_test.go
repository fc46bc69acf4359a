package entities

import (
	"regexp"
	"strings"
	"testing"

	"uploadcheck/internal/domain"
)

const mb = 1_000_000

var (
	odsProfile = Profile{
		Context:       "ods",
		Extension:     "ods",
		MaxNameLength: 240,
		MaxSizeBytes:  10 * mb,
		MessagePrefix: "ers.file.upload.ods",
	}
	csvProfile = Profile{
		Context:       "csv",
		Extension:     "csv",
		MaxNameLength: 240,
		MaxSizeBytes:  100 * mb,
		MessagePrefix: "ers.file.upload.csv",
	}
)

func TestProfileCheck(t *testing.T) {
	cases := []struct {
		name    string
		profile Profile
		file    string
		size    int64
		want    domain.Outcome
	}{
		{name: "valid ods with space", profile: odsProfile, file: "payslip report.ods", size: 5 * mb, want: domain.OutcomeValid},
		{name: "valid csv", profile: csvProfile, file: "EMI_2024-25 (final).csv", size: 99 * mb, want: domain.OutcomeValid},
		{name: "exactly at size limit", profile: odsProfile, file: "a.ods", size: 10 * mb, want: domain.OutcomeValid},
		{name: "csv name too long", profile: csvProfile, file: strings.Repeat("x", 241) + ".csv", size: 1, want: domain.OutcomeTooLong},
		{name: "length limit inclusive", profile: odsProfile, file: strings.Repeat("x", 236) + ".ods", size: 1, want: domain.OutcomeValid},
		{name: "one over length limit", profile: odsProfile, file: strings.Repeat("x", 237) + ".ods", size: 1, want: domain.OutcomeTooLong},
		{name: "wrong extension", profile: odsProfile, file: "report.txt", size: 1, want: domain.OutcomeWrongExtension},
		{name: "upper case extension", profile: odsProfile, file: "report.ODS", size: 1, want: domain.OutcomeWrongExtension},
		{name: "no extension", profile: odsProfile, file: "report", size: 1, want: domain.OutcomeWrongExtension},
		{name: "too large", profile: odsProfile, file: "report.ods", size: 10*mb + 1, want: domain.OutcomeTooLarge},
		{name: "invalid characters", profile: odsProfile, file: "report;1.ods", size: 1, want: domain.OutcomeInvalidCharacters},
		{name: "non ascii", profile: odsProfile, file: "adroddiad-ŵ.ods", size: 1, want: domain.OutcomeInvalidCharacters},
		{name: "empty name", profile: odsProfile, file: "", size: 0, want: domain.OutcomeInvalidCharacters},
		{name: "characters beat length", profile: csvProfile, file: strings.Repeat("x", 300) + "#.csv", size: 1, want: domain.OutcomeInvalidCharacters},
		{name: "length beats extension", profile: odsProfile, file: strings.Repeat("x", 300) + ".txt", size: 1, want: domain.OutcomeTooLong},
		{name: "extension beats size", profile: odsProfile, file: "report.csv", size: 50 * mb, want: domain.OutcomeWrongExtension},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.profile.Check(tc.file, tc.size); got != tc.want {
				t.Fatalf("Check(%q, %d) = %s, want %s", tc.file, tc.size, got, tc.want)
			}
		})
	}
}

func TestProfileCheckUnlimitedLength(t *testing.T) {
	p := odsProfile
	p.MaxNameLength = 0
	if got := p.Check(strings.Repeat("x", 1000)+".ods", 1); got != domain.OutcomeValid {
		t.Fatalf("Check = %s, want valid", got)
	}
}

func TestProfileCheckCustomPattern(t *testing.T) {
	p := odsProfile
	p.NamePattern = regexp.MustCompile(`^[a-z]+\.ods$`)
	if got := p.Check("payslip report.ods", 1); got != domain.OutcomeInvalidCharacters {
		t.Fatalf("Check = %s, want invalid-characters", got)
	}
	if got := p.Check("payslip.ods", 1); got != domain.OutcomeValid {
		t.Fatalf("Check = %s, want valid", got)
	}
}

func TestProfileMessageKey(t *testing.T) {
	cases := map[domain.Outcome]string{
		domain.OutcomeValid:             "",
		domain.OutcomeInvalidCharacters: "ers.file.upload.ods.invalid.characters",
		domain.OutcomeTooLong:           "ers.file.upload.ods.too.long",
		domain.OutcomeWrongExtension:    "ers.file.upload.ods.wrong.type",
		domain.OutcomeTooLarge:          "ers.file.upload.ods.large",
	}
	for outcome, want := range cases {
		if got := odsProfile.MessageKey(outcome); got != want {
			t.Fatalf("MessageKey(%s) = %q, want %q", outcome, got, want)
		}
	}
}
