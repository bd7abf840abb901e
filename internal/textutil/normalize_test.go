package textutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"trims and lowercases", "  Ginza SIX  ", "ginza six"},
		{"full-width latin folds", "ＧＩＮＺＡ", "ginza"},
		{"half-width katakana folds", "ｻﾝﾘｵ", "サンリオ"},
		{"cjk preserved", "銀座三越", "銀座三越"},
		{"trailing ideographic space", "サンリオピューロランド　", "サンリオピューロランド"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	a := NormalizeKey("サンリオピューロランド", "東京都多摩市")
	b := NormalizeKey("サンリオピューロランド ", "東京都多摩市")
	if a != b {
		t.Errorf("keys differ for trailing-space variants: %q vs %q", a, b)
	}
	if a != "サンリオピューロランド|東京都多摩市" {
		t.Errorf("unexpected key %q", a)
	}

	if NormalizeKey("店", "") != "店|" {
		t.Errorf("empty address should still produce a keyed suffix")
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     bool
	}{
		{"cjk substring", "【銀座】爆買いショッピング企画", "銀座", true},
		{"case insensitive", "GINZA SIX Tour", "ginza six", true},
		{"width insensitive", "ＧＩＮＺＡ ＳＩＸ", "ginza", true},
		{"no match", "渋谷スクランブル", "銀座", false},
		{"empty needle", "銀座", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsFold(tt.haystack, tt.needle); got != tt.want {
				t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

func TestExtractAddress(t *testing.T) {
	text := "店舗情報: 東京都多摩市落合1-31 サンリオピューロランド"
	got := ExtractAddress(text)
	if got == "" {
		t.Fatal("expected an address match")
	}
	if got[:len("東京都")] != "東京都" {
		t.Errorf("address should start at prefecture, got %q", got)
	}

	if ExtractAddress("住所は不明です") != "" {
		t.Error("expected no address match")
	}
}

func TestHasPhoneNumber(t *testing.T) {
	if !HasPhoneNumber("予約は03-1234-5678まで") {
		t.Error("expected phone match")
	}
	if HasPhoneNumber("営業時間は10:00-18:00") {
		t.Error("clock range should not match as phone")
	}
}

func TestHasURL(t *testing.T) {
	if !HasURL("詳細は https://tabelog.com/tokyo/A1301/ をご覧ください") {
		t.Error("expected URL match")
	}
	if HasURL("URLなし") {
		t.Error("expected no URL match")
	}
}
