package normalize

var articles = map[string]struct{}{
	"des": {}, "dem": {}, "das": {}, "der": {}, "den": {}, "die": {},
	"ein": {}, "eine": {}, "einer": {}, "eines": {}, "einem": {}, "einen": {},
}

var numberWords = map[string]string{
	"null":     "0",
	"eins":     "1",
	"zwei":     "2",
	"drei":     "3",
	"vier":     "4",
	"fünf":     "5",
	"sechs":    "6",
	"sieben":   "7",
	"acht":     "8",
	"neun":     "9",
	"zehn":     "10",
	"elf":      "11",
	"zwölf":    "12",
	"dreizehn": "13",
	"vierzehn": "14",
	"fünfzehn": "15",
	"sechzehn": "16",
	"siebzehn": "17",
	"achtzehn": "18",
	"neunzehn": "19",
	"zwanzig":  "20",
}
