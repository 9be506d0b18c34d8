package morse

// Decoding charts, one per script.

// Latin letters, figures and punctuation, ITU-R M.1677-1 plus the usual
// national extensions. Ordered like a Morse code tree.
var standardChart = []Entry{
	{".", "E"},
	{"-", "T"},

	{"..", "I"},
	{".-", "A"},
	{"-.", "N"},
	{"--", "M"},

	{"...", "S"},
	{"..-", "U"},
	{".-.", "R"},
	{".--", "W"},
	{"-..", "D"},
	{"-.-", "K"},
	{"--.", "G"},
	{"---", "O"},

	{"....", "H"},
	{"...-", "V"},
	{"..-.", "F"},
	{"..--", "Ü"},
	{".-..", "L"},
	{".-.-", "Ä"},
	{".--.", "P"},
	{".---", "J"},
	{"-...", "B"},
	{"-..-", "X"},
	{"-.-.", "C"},
	{"-.--", "Y"},
	{"--..", "Z"},
	{"--.-", "Q"},
	{"---.", "Ö"},

	{".....", "5"},
	{"....-", "4"},
	{"...--", "3"},
	{"..-..", "É"},
	{"..---", "2"},
	{".-.-.", "+"},
	{".--.-", "Á"},
	{".----", "1"},
	{"-....", "6"},
	{"-...-", "="},
	{"-..-.", "/"},
	{"-.-..", "Ç"},
	{"-.--.", "("},
	{"--...", "7"},
	{"--..-", "Ż"},
	{"--.--", "Ñ"},
	{"---..", "8"},
	{"----.", "9"},
	{"-----", "0"},

	{"..--..", "?"},
	{"..--.-", "_"},
	{".-..-.", "\""},
	{".-.-.-", "."},
	{".--.-.", "@"},
	{".----.", "'"},
	{"-....-", "-"},
	{"-.-.-.", ";"},
	{"-.-.--", "!"},
	{"-.--.-", ")"},
	{"--..-.", "Ź"},
	{"--..--", ","},
	{"---...", ":"},

	{"...-..-", "$"},
	{".-----.", "`"},
}

// Greek uses Χ on "----" and drops J, U and V.
var greekChart = []Entry{
	{".-", "Α"},
	{"-...", "Β"},
	{"--.", "Γ"},
	{"-..", "Δ"},
	{".", "Ε"},
	{"--..", "Ζ"},
	{"....", "Η"},
	{"-.-.", "Θ"},
	{"..", "Ι"},
	{"-.-", "Κ"},
	{".-..", "Λ"},
	{"--", "Μ"},
	{"-.", "Ν"},
	{"-..-", "Ξ"},
	{"---", "Ο"},
	{".--.", "Π"},
	{".-.", "Ρ"},
	{"...", "Σ"},
	{"-", "Τ"},
	{"-.--", "Υ"},
	{"..-.", "Φ"},
	{"----", "Χ"},
	{"--.-", "Ψ"},
}

// Russian Morse code (1857).
var russianChart = []Entry{
	{".-", "А"},
	{"-...", "Б"},
	{".--", "В"},
	{"--.", "Г"},
	{"-..", "Д"},
	{".", "Е"},
	{"...-", "Ж"},
	{"--..", "З"},
	{"..", "И"},
	{".---", "Й"},
	{"-.-", "К"},
	{".-..", "Л"},
	{"--", "М"},
	{"-.", "Н"},
	{"---", "О"},
	{".--.", "П"},
	{".-.", "Р"},
	{"...", "С"},
	{"-", "Т"},
	{"..-", "У"},
	{"..-.", "Ф"},
	{"....", "Х"},
	{"-.-.", "Ц"},
	{"---.", "Ч"},
	{"----", "Ш"},
	{"--.-", "Щ"},
	{"-..-", "Ъ"},
	{"-.--", "Ы"},
	{"..-..", "Ѣ"},
	{"..--", "Ю"},
	{".-.-", "Я"},
}

// Wabun code. Voiced kana decode to the plain kana followed by ゛ or ゜,
// see KanaComposer.
var japaneseChart = []Entry{
	{".-", "イ"},
	{".-.-", "ロ"},
	{"-...", "ハ"},
	{"-.-.", "ニ"},
	{"-..", "ホ"},
	{".", "ヘ"},
	{"..-..", "ト"},
	{"..-.", "チ"},
	{"--.", "リ"},
	{"....", "ヌ"},
	{"-.--.", "ル"},
	{".---", "ヲ"},
	{"-.-", "ワ"},
	{".-..", "カ"},
	{"--", "ヨ"},
	{"-.", "タ"},
	{"---", "レ"},
	{"---.", "ソ"},
	{".--.", "ツ"},
	{"--.-", "ネ"},
	{".-.", "ナ"},
	{"...", "ラ"},
	{"-", "ム"},
	{"..-", "ウ"},
	{".-..-", "ヰ"},
	{"..--", "ノ"},
	{".-...", "オ"},
	{"...-", "ク"},
	{".--", "ヤ"},
	{"-..-", "マ"},
	{"-.--", "ケ"},
	{"--..", "フ"},
	{"----", "コ"},
	{"-.---", "エ"},
	{".-.--", "テ"},
	{"--.--", "ア"},
	{"-.-.-", "サ"},
	{"-.-..", "キ"},
	{"-..--", "ユ"},
	{"-...-", "メ"},
	{"..-.-", "ミ"},
	{"--.-.", "シ"},
	{".--..", "ヱ"},
	{"--..-", "ヒ"},
	{"-..-.", "モ"},
	{".---.", "セ"},
	{"---.-", "ス"},
	{".-.-.", "ン"},
	{"..", "゛"},
	{"..--.", "゜"},
	{".--.-", "ー"},
	{"-.--.-", "（"},
	{".-..-.", "）"},
	{".-.-.-", "、"},
	{".-.-..", "。"},
}

// SKATS. Compound vowels ㅒ and ㅖ are two symbols and cannot be decoded
// as one.
var koreanChart = []Entry{
	{".-..", "ㄱ"},
	{"..-.", "ㄴ"},
	{"-...", "ㄷ"},
	{"...-", "ㄹ"},
	{"--", "ㅁ"},
	{".--", "ㅂ"},
	{"--.", "ㅅ"},
	{"-.-", "ㅇ"},
	{".--.", "ㅈ"},
	{"-.-.", "ㅊ"},
	{"-..-", "ㅋ"},
	{"--..", "ㅌ"},
	{"---", "ㅍ"},
	{".---", "ㅎ"},
	{".", "ㅏ"},
	{"--.-", "ㅐ"},
	{"..", "ㅑ"},
	{"-", "ㅓ"},
	{"-.--", "ㅔ"},
	{"...", "ㅕ"},
	{".-", "ㅗ"},
	{"-.", "ㅛ"},
	{"....", "ㅜ"},
	{".-.", "ㅠ"},
	{"-..", "ㅡ"},
	{"..-", "ㅣ"},
}

// Hebrew. Final forms decode to the regular letter.
var hebrewChart = []Entry{
	{".-", "א"},
	{"-...", "ב"},
	{"--.", "ג"},
	{"-..", "ד"},
	{"---", "ה"},
	{".", "ו"},
	{"--..", "ז"},
	{"....", "ח"},
	{"..-", "ט"},
	{"..", "י"},
	{"-.-", "כ"},
	{".-..", "ל"},
	{"--", "מ"},
	{"-.", "נ"},
	{"-.-.", "ס"},
	{".---", "ע"},
	{".--.", "פ"},
	{".--", "צ"},
	{"--.-", "ק"},
	{".-.", "ר"},
	{"...", "ש"},
	{"-", "ת"},
}

// Arabic, isolated forms only.
var arabicChart = []Entry{
	{".-", "ا"},
	{"-...", "ب"},
	{"-", "ت"},
	{"-.-.", "ث"},
	{".---", "ج"},
	{"....", "ح"},
	{"---", "خ"},
	{"-..", "د"},
	{"--..", "ذ"},
	{".-.", "ر"},
	{"---.", "ز"},
	{"...", "س"},
	{"----", "ش"},
	{"-..-", "ص"},
	{"...-", "ض"},
	{"..-", "ط"},
	{"-.--", "ظ"},
	{".-.-", "ع"},
	{"--.", "غ"},
	{"..-.", "ف"},
	{"--.-", "ق"},
	{"-.-", "ڪ"},
	{".-..", "ل"},
	{"--", "م"},
	{"-.", "ن"},
	{"..-..", "ه"},
	{".--", "و"},
	{"..", "ے"},
	{".", "ء"},
}
