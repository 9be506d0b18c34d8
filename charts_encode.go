package morse

// internationalChart is the encoding chart for all supported scripts.
// Latin letters, figures and punctuation follow ITU-R M.1677-1; the few
// ASCII characters it lacks are mapped to their closest equivalent.
var internationalChart = []Entry{
	// ASCII
	{"-.-.--", "!"},
	{".-..-.", "\""},
	{"...-..-", "$"},
	{"----- -..-. -----", "%"},
	{". ...", "&"},
	{".----.", "'"},
	{"-.--.", "("},
	{"-.--.-", ")"},
	{"-..-", "*"},
	{".-.-.", "+"},
	{"--..--", ","},
	{"-....-", "-"},
	{".-.-.-", "."},
	{"-..-.", "/"},
	{"-----", "0"},
	{".----", "1"},
	{"..---", "2"},
	{"...--", "3"},
	{"....-", "4"},
	{".....", "5"},
	{"-....", "6"},
	{"--...", "7"},
	{"---..", "8"},
	{"----.", "9"},
	{"---...", ":"},
	{"-.-.-.", ";"},
	{"-.--.", "<"},
	{"-...-", "="},
	{"-.--.-", ">"},
	{"..--..", "?"},
	{".--.-.", "@"},
	{".-", "Aa"},
	{"-...", "Bb"},
	{"-.-.", "Cc"},
	{"-..", "Dd"},
	{".", "Ee"},
	{"..-.", "Ff"},
	{"--.", "Gg"},
	{"....", "Hh"},
	{"..", "Ii"},
	{".---", "Jj"},
	{"-.-", "Kk"},
	{".-..", "Ll"},
	{"--", "Mm"},
	{"-.", "Nn"},
	{"---", "Oo"},
	{".--.", "Pp"},
	{"--.-", "Qq"},
	{".-.", "Rr"},
	{"...", "Ss"},
	{"-", "Tt"},
	{"..-", "Uu"},
	{"...-", "Vv"},
	{".--", "Ww"},
	{"-..-", "Xx"},
	{"-.--", "Yy"},
	{"--..", "Zz"},
	{"-.--.", "["},
	{"-..-.", "\\"},
	{"-.--.-", "]"},
	{"..--.-", "_"},
	{".-----.", "`"},
	{"-.--.", "{"},
	{"-..-.", "|"},
	{"-.--.-", "}"},

	// Latin letters with diacritics that have a symbol of their own.
	{".--.-", "Áá"},
	{".--.-", "Àà"},
	{".-.-", "Ää"},
	{".--.-", "Åå"},
	{".-.-", "Ąą"},
	{".-.-", "Ææ"},
	{"-.-..", "Ćć"},
	{"-.-..", "Ĉĉ"},
	{"-.-..", "Çç"},
	{"..-..", "Đđ"},
	{"..-.", "Ðð"},
	{"..-..", "Éé"},
	{".-..-", "Èè"},
	{"..-..", "Ęę"},
	{"--.-.", "Ĝĝ"},
	{"----", "Ĥĥ"},
	{".---.", "Ĵĵ"},
	{".-..-", "Łł"},
	{"--.--", "Ńń"},
	{"--.--", "Ññ"},
	{"---.", "Óó"},
	{"---.", "Öö"},
	{"---.", "Øø"},
	{"...-...", "Śś"},
	{"...-.", "Ŝŝ"},
	{"----", "Šš"},
	{".--..", "Þþ"},
	{"..--", "Üü"},
	{"..--", "Ŭŭ"},
	{"--..-.", "Źź"},
	{"--..-", "Żż"},
	{"...--..", "ß"},
	{"---.", "Œœ"},
	{".---.", "Ìì"},

	// Typographic characters written like their ASCII counterparts.
	{".-..-.", "“”«»"},
	{"-..-", "×"},
	{"----- -..-. ----- -----", "‰"},
	{".----.", "′"},
	{".----. .----.", "″"},

	// Latin letters written like their base letter.
	{".-", "Ââ"},
	{".-", "Ãã"},
	{".-", "Āā"},
	{".-", "Ăă"},
	{"-.-.", "Ċċ"},
	{"-.-.", "Čč"},
	{"-..", "Ďď"},
	{".", "Êê"},
	{".", "Ëë"},
	{".", "Ēē"},
	{".", "Ĕĕ"},
	{".", "Ėė"},
	{".", "Ěě"},
	{"--.", "Ğğ"},
	{"--.", "Ġġ"},
	{"--.", "Ģģ"},
	{"....", "Ħħ"},
	{"..", "ı"},
	{"..", "Íí"},
	{"..", "Îî"},
	{"..", "Ïï"},
	{"..", "Ĩĩ"},
	{"..", "Īī"},
	{"..", "Ĭĭ"},
	{"..", "Įį"},
	{".. .---", "Ĳĳ"},
	{"-.-", "Ķķ"},
	{"-.-", "ĸ"},
	{".-..", "Ĺĺ"},
	{".-..", "Ļļ"},
	{".-..", "Ľľ"},
	{".-..", "Ŀŀ"},
	{"-.", "Ņņ"},
	{"-.", "Ňň"},
	{"-.", "ŉ"},
	{"-.", "Ŋŋ"},
	{"---", "Òò"},
	{"---", "Ôô"},
	{"---", "Õõ"},
	{"---", "Ōō"},
	{"---", "Ŏŏ"},
	{"---", "Őő"},
	{".-.", "Ŕŕ"},
	{".-.", "Ŗŗ"},
	{".-.", "Řř"},
	{"...", "Şş"},
	{"-", "Ţţ"},
	{"-", "Ťť"},
	{"-", "Ŧŧ"},
	{"..-", "Ùù"},
	{"..-", "Úú"},
	{"..-", "Ûû"},
	{"..-", "Ũũ"},
	{"..-", "Ūū"},
	{"..-", "Ůů"},
	{"..-", "Űű"},
	{"..-", "Ųų"},
	{".--", "Ŵŵ"},
	{"-.--", "Ýý"},
	{"-.--", "Ŷŷ"},
	{"-.--", "Ÿÿ"},
	{"--..", "Žž"},

	// Greek.
	{".-", "Αα"},
	{"-...", "Ββ"},
	{"--.", "Γγ"},
	{"-..", "Δδ"},
	{".", "Εε"},
	{"--..", "Ζζ"},
	{"....", "Ηη"},
	{"-.-.", "Θθ"},
	{"..", "ΙιΊί"},
	{"-.-", "Κκ"},
	{".-..", "Λλ"},
	{"--", "Μμ"},
	{"-.", "Νν"},
	{"-..-", "Ξξ"},
	{"---", "Οο"},
	{".--.", "Ππ"},
	{".-.", "Ρρ"},
	{"...", "Σσς"},
	{"-", "Ττ"},
	{"-.--", "Υυ"},
	{"..-.", "Φφ"},
	{"----", "Χχ"},
	{"--.-", "Ψψ"},

	// Russian.
	{".-", "Аа"},
	{"-...", "Бб"},
	{".--", "Вв"},
	{"--.", "Гг"},
	{"-..", "Дд"},
	{".", "Ее"},
	{"...-", "Жж"},
	{"--..", "Зз"},
	{"..", "Ии"},
	{".---", "Йй"},
	{"-.-", "Кк"},
	{".-..", "Лл"},
	{"--", "Мм"},
	{"-.", "Нн"},
	{"---", "Оо"},
	{".--.", "Пп"},
	{".-.", "Рр"},
	{"...", "Сс"},
	{"-", "Тт"},
	{"..-", "Уу"},
	{"..-.", "Фф"},
	{"....", "Хх"},
	{"-.-.", "Цц"},
	{"---.", "Чч"},
	{"----", "Шш"},
	{"--.-", "Щщ"},
	{"-..-", "Ъъ"},
	{"-.--", "Ыы"},
	{"-..-", "Ьь"},
	{"..-..", "Ѣѣ"},
	{"..-..", "Ээ"},
	{"..--", "Юю"},
	{".-.-", "Яя"},

	// Other Cyrillic letters, written like a Russian one or spelled out phonetically.
	{".", "Ѐѐ"},
	{".", "Ёё"},
	{".", "Єє"},
	{"..", "Іі"},
	{"..", "Її"},
	{".---", "Јј"},
	{"-.-.", "Ћћ"},
	{"..", "Ѝѝ"},
	{"..-", "Ўў"},
	{"-.. .---", "Ђђ"},
	{"--. .---", "Ѓѓ"},
	{"-.. --..", "Ѕѕ"},
	{".-.. .---", "Љљ"},
	{"-. .---", "Њњ"},
	{"-.- .---", "Ќќ"},
	{"-.. --..", "Џџ"},

	// Wabun, katakana and hiragana. Voiced and semi-voiced kana are written as
	// the plain kana followed by the (handa)kuten symbol.
	{".-", "イい"},
	{".-.-", "ロろ"},
	{"-...", "ハは"},
	{"-.-.", "ニに"},
	{"-..", "ホほ"},
	{".", "ヘへ"},
	{"..-..", "トと"},
	{"..-.", "チち"},
	{"--.", "リり"},
	{"....", "ヌぬ"},
	{"-.--.", "ルる"},
	{".---", "ヲを"},
	{"-.-", "ワわ"},
	{".-..", "カか"},
	{"--", "ヨよ"},
	{"--", "ョょ"},
	{"-.", "タた"},
	{"---", "レれ"},
	{"---.", "ソそ"},
	{".--.", "ツつ"},
	{".--.", "ッっ"},
	{"--.-", "ネね"},
	{".-.", "ナな"},
	{"...", "ラら"},
	{"-", "ムむ"},
	{"..-", "ウう"},
	{".-..-", "ヰゐ"},
	{"..--", "ノの"},
	{".-...", "オお"},
	{"...-", "クく"},
	{".--", "ヤや"},
	{".--", "ャゃ"},
	{"-..-", "マま"},
	{"-.--", "ケけ"},
	{"--..", "フふ"},
	{"----", "コこ"},
	{"-.---", "エえ"},
	{".-.--", "テて"},
	{"--.--", "アあ"},
	{"-.-.-", "サさ"},
	{"-.-..", "キき"},
	{"-..--", "ユゆ"},
	{"-..--", "ュゅ"},
	{"-...-", "メめ"},
	{"..-.-", "ミみ"},
	{"--.-.", "シし"},
	{".--..", "ヱゑ"},
	{"--..-", "ヒひ"},
	{"-..-.", "モも"},
	{".---.", "セせ"},
	{"---.-", "スす"},
	{".-.-.", "ンん"},
	{"..", "゛"},
	{".-.. ..", "ガが"},
	{"-.-.. ..", "ギぎ"},
	{"...- ..", "グぐ"},
	{"-.-- ..", "ゲげ"},
	{"---- ..", "ゴご"},
	{"-.-.- ..", "ザざ"},
	{"--.-. ..", "ジじ"},
	{"---.- ..", "ズず"},
	{".---. ..", "ゼぜ"},
	{"---. ..", "ゾぞ"},
	{"-. ..", "ダだ"},
	{"..-. ..", "ヂぢ"},
	{".--. ..", "ヅづ"},
	{".-.-- ..", "デで"},
	{"..-.. ..", "ドど"},
	{"-... ..", "バば"},
	{"--..- ..", "ビび"},
	{"--.. ..", "ブぶ"},
	{". ..", "ベべ"},
	{"-.. ..", "ボぼ"},
	{"..--.", "゜"},
	{"-... ..--.", "パぱ"},
	{"--..- ..--.", "ピぴ"},
	{"--.. ..--.", "プぷ"},
	{". ..--.", "ペぺ"},
	{"-.. ..--.", "ポぽ"},

	// Wabun punctuation.
	{".--.-", "－"},
	{".--.-", "ー"},
	{"-.--.-", "（"},
	{".-..-.", "）"},
	{".-.-.-", "、"},
	{".-.-..", "。"},

	// SKATS.
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
	{".. ..-", "ㅒ"},
	{"-", "ㅓ"},
	{"-.--", "ㅔ"},
	{"...", "ㅕ"},
	{"... ..-", "ㅖ"},
	{".-", "ㅗ"},
	{"-.", "ㅛ"},
	{"....", "ㅜ"},
	{".-.", "ㅠ"},
	{"-..", "ㅡ"},
	{"..-", "ㅣ"},

	// Hebrew, including final forms.
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
	{"-.-", "ך"},
	{"-.-", "כ"},
	{".-..", "ל"},
	{"--", "ם"},
	{"--", "מ"},
	{"-.", "ן"},
	{"-.", "נ"},
	{"-.-.", "ס"},
	{".---", "ע"},
	{".--.", "ף"},
	{".--.", "פ"},
	{".--", "ץ"},
	{".--", "צ"},
	{"--.-", "ק"},
	{".-.", "ר"},
	{"...", "ש"},
	{"-", "ת"},

	// Arabic, isolated forms only.
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
	{"-.-", "ك"},
	{".-..", "ل"},
	{"--", "م"},
	{"-.", "ن"},
	{"..-..", "ه"},
	{".--", "و"},
	{"..", "ے"},
	{"..", "ي"},
	{".", "ء"},
}
