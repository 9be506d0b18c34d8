package morse

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEncodeKnownVectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "morse")
	defer teardown()

	tests := []struct {
		text string
		want string
	}{
		{"", ""},
		{"A", ".-"},
		{"AB", ".- -..."},
		{"PARIS", ".--. .- .-. .. ..."},
		{"Hello, World!", ".... . .-.. .-.. --- --..-- / .-- --- .-. .-.. -.. -.-.--"},
		{"one line\nand  another\tline",
			"--- -. . / .-.. .. -. .\n.- -. -.. / / .- -. --- - .... . .-.\t.-.. .. -. ."},
		{"A\tB", ".-\t-..."},
		{"A\r\nB", ".-\r\n-..."},
		{"100%", ".---- ----- ----- ----- -..-. -----"},
		{"a & b", ".- / . ... / -..."},
	}
	for _, tt := range tests {
		if got := Encode(tt.text); got != tt.want {
			t.Fatalf("Encode(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestEncodeUnicode(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"télégraphie", "- ..-.. .-.. ..-.. --. .-. .- .--. .... .. ."},
		{"でんしん", ".-.-- .. .-.-. --.-. .-.-."},
		{"تلغراف", "- .-.. --. .-. .- ..-."},
		{"телеграфия", "- . .-.. . --. .-. .- ..-. .. .-.-"},
		{"τηλεγραφία", "- .... .-.. . --. .-. .- ..-. .. .-"},
		{"パン", "-... ..--. .-.-."},
		{"Ünïcödé", "..-- -. .. -.-. ---. -.. ..-.."},
		{"“‰”", ".-..-. ----- -..-. ----- ----- .-..-."},
	}
	for _, tt := range tests {
		if got := Encode(tt.text); got != tt.want {
			t.Fatalf("Encode(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestEncodeDropsUnmappable(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"x\x01y", "-..- -.--"},
		{"€A", ".-"},
		{"A€", ".-"},
		{"A€ B", ".- / -..."},
		{"^~", ""},
		{"A\xffB", ".- -..."},   // invalid UTF-8
		{"A\xe3\x82", ".-"},     // incomplete sequence at the end
		{"😀A😀\t", ".-\t"},       // outside the BMP
		{"ﾊ", ""},               // half-width katakana
		{"\x00\x00A\x00", ".-"}, // NUL
	}
	for _, tt := range tests {
		got := Encode(tt.text)
		if got != tt.want {
			t.Fatalf("Encode(%q) = %q, want %q", tt.text, got, tt.want)
		}
		if strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") || strings.Contains(got, "  ") {
			t.Fatalf("Encode(%q) = %q has a stray separator", tt.text, got)
		}
	}
}

func TestEncodeASCII(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"PARIS", ".--. .- .-. .. ..."},
		{"Morse Code", "-- --- .-. ... . / -.-. --- -.. ."},
		{"A B", ".- / -..."},
		{"é", ""}, // two bytes >= 0x80
		{"{x}", "-.--. -..- -.--.-"},
	}
	for _, tt := range tests {
		if got := EncodeASCII([]byte(tt.text)); got != tt.want {
			t.Fatalf("EncodeASCII(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDecodeKnownVectors(t *testing.T) {
	tests := []struct {
		morse  string
		script Script
		want   string
	}{
		{".--. .- .-. .. ...", Standard, "PARIS"},
		{".... . .-.. .-.. --- --..-- / .-- --- .-. .-.. -.. -.-.--", Standard, "HELLO, WORLD!"},
		{".- .-.-.- ..--.. -.-.--", Standard, "A.?!"},
		{"- . .-.. . --. .-. .- ..-. .. .-.-", Russian, "ТЕЛЕГРАФИЯ"},
		{"- .... .-.. . --. .-. .- ..-. .. .-", Greek, "ΤΗΛΕΓΡΑΦΙΑ"},
		{"- .-.. --. .-. .- ..-.", Arabic, "تلغراف"},
		{".-.-- .. .-.-. --.-. .-.-.", Japanese, "テ゛ンシン"},
		{"--. . -.-- -.. --.- .-..", Korean, "ㅅㅏㅔㅡㅐㄱ"},
		{"-.. .- .-.. . -", Hebrew, "דאלות"},
		{"", Standard, ""},
		{"/", Standard, " "},
		{".-\t-...\n", Standard, "A\tB\n"},
		{".- /\t-...", Standard, "A \tB"},
		{".-\r\n-...", Standard, "A\r\nB"},
	}
	for _, tt := range tests {
		if got := Decode([]byte(tt.morse), tt.script); got != tt.want {
			t.Fatalf("Decode(%q, %s) = %q, want %q", tt.morse, tt.script, got, tt.want)
		}
	}
}

func TestDecodeDropsUnknown(t *testing.T) {
	tests := []struct {
		morse string
		want  string
	}{
		{".- ........ -...", "AB"},             // too long for a key
		{".- ..--.- -... .-.-..", "A_B"},       // .-.-.. is not Latin
		{".-\xc3\xa9- -...", "WB"},             // bytes >= 0x80 are skipped inside a run
		{"\xe2\x80\x94 .-", "A"},               // a run of nothing but stray bytes
		{".-\x01-...", "AB"},                   // control bytes terminate a run
		{"...  ...", "SS"},                     // empty run between two spaces
		{".- --...-- / -...", "A B"},           // 8 elements
		{". .-.-.-.-.-.-.-.-.-.-.-.-.-.", "E"}, // long run at the end
	}
	for _, tt := range tests {
		if got := Decode([]byte(tt.morse), Standard); got != tt.want {
			t.Fatalf("Decode(%q) = %q, want %q", tt.morse, got, tt.want)
		}
	}
}

func TestDecodeLongInputUsesBothPackers(t *testing.T) {
	// long enough for the bulk region, with symbols of every length at the end
	morse := strings.Repeat(".--. .- .-. .. ... / ", 100) + "...-..-"
	want := strings.Repeat("PARIS ", 100) + "$"
	if got := Decode([]byte(morse), Standard); got != want {
		t.Fatalf("decoding long input failed, tail is %q", got[max(0, len(got)-20):])
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"trailing SPACE ", "TRAILING SPACE "},
		{" leading space", " LEADING SPACE"},
		{"What's up, doc?\n\tNothing.\r\n", "WHAT'S UP, DOC?\n\tNOTHING.\r\n"},
		{"Ünïcödé", "ÜNICÖDÉ"},
		{"(1+2=3) @ 5:00; \"ok\" $_", "(1+2=3) @ 5:00; \"OK\" $_"},
		{"a  b\t\tc", "A  B\t\tC"},
	}
	for _, tt := range tests {
		if got := Decode([]byte(Encode(tt.text)), Standard); got != tt.want {
			t.Fatalf("round trip of %q gives %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestRoundTripScripts(t *testing.T) {
	tests := []struct {
		text   string
		script Script
	}{
		{"ТЕЛЕГРАФИЯ", Russian},
		{"ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨ", Greek},
		{"イロハニホヘト （ー）、。", Japanese},
		{"ㄱㄴㄷㄹㅁㅂㅅㅇㅈㅊㅋㅌㅍㅎ ㅏㅐㅑㅓㅔㅕㅗㅛㅜㅠㅡㅣ", Korean},
		{"אבגדהוזחטיכלמנסעפצקרשת", Hebrew},
		{"ابتثجحخدذرزسشصضطظعغفقڪلمنهوےء", Arabic},
	}
	for _, tt := range tests {
		if got := Decode([]byte(Encode(tt.text)), tt.script); got != tt.text {
			t.Fatalf("round trip of %q (%s) gives %q", tt.text, tt.script, got)
		}
	}
}
