package i18n

import "testing"

func TestResolveLanguage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{name: "welsh first", header: "PLAY_LANG=cy; other=1", want: "cy"},
		{name: "absent", header: "other=1", want: "en"},
		{name: "empty header", header: "", want: "en"},
		{name: "later entry", header: "a=b;   PLAY_LANG=cy", want: "cy"},
		{name: "encoded name and value", header: "PLAY%5FLANG=c%79", want: "cy"},
		{name: "first match wins", header: "PLAY_LANG=cy; PLAY_LANG=en", want: "cy"},
		{name: "prefix is not a match", header: "PLAY_LANGUAGE=cy", want: "en"},
		{name: "value keeps later equals", header: "PLAY_LANG=a=b", want: "a=b"},
		{name: "bad escape skipped", header: "PLAY_LANG=%zz; PLAY_LANG=cy", want: "cy"},
		{name: "no equals skipped", header: "PLAY_LANG; x=y", want: "en"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveLanguage(tc.header); got != tc.want {
				t.Fatalf("ResolveLanguage(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestLanguageFromCookiesCustomName(t *testing.T) {
	t.Parallel()

	got := LanguageFromCookies("PLAY_LANG=cy; site_lang=en", "site_lang", "cy")
	if got != "en" {
		t.Fatalf("LanguageFromCookies = %q, want %q", got, "en")
	}
	got = LanguageFromCookies("PLAY_LANG=en", "site_lang", "cy")
	if got != "cy" {
		t.Fatalf("LanguageFromCookies fallback = %q, want %q", got, "cy")
	}
}
