package books

// englishBooks lists the Protestant canon followed by the deuterocanonical
// books carried by the Vulgate versification.
var englishBooks = []Book{
	// Old Testament
	{Code: "GEN", OSIS: "Gen", Name: "Genesis", Abbrev: "Gen", Inputs: []string{"Gn"}},
	{Code: "EXO", OSIS: "Exod", Name: "Exodus", Abbrev: "Exo", Inputs: []string{"Ex", "Exd"}},
	{Code: "LEV", OSIS: "Lev", Name: "Leviticus", Abbrev: "Lev", Inputs: []string{"Lv"}},
	{Code: "NUM", OSIS: "Num", Name: "Numbers", Abbrev: "Num", Inputs: []string{"Nm", "Nb"}},
	{Code: "DEU", OSIS: "Deut", Name: "Deuteronomy", Abbrev: "Deu", Inputs: []string{"Dt"}},
	{Code: "JOS", OSIS: "Josh", Name: "Joshua", Abbrev: "Jos", Inputs: []string{"Jsh"}},
	{Code: "JDG", OSIS: "Judg", Name: "Judges", Abbrev: "Jdg", Inputs: []string{"Jdgs"}},
	{Code: "RUT", OSIS: "Ruth", Name: "Ruth", Abbrev: "Rut", Inputs: []string{"Rth"}},
	{Code: "SA1", OSIS: "1Sam", Name: "1 Samuel", Abbrev: "1Sa", Inputs: []string{"1Sm", "ISam"}},
	{Code: "SA2", OSIS: "2Sam", Name: "2 Samuel", Abbrev: "2Sa", Inputs: []string{"2Sm", "IISam"}},
	{Code: "KI1", OSIS: "1Kgs", Name: "1 Kings", Abbrev: "1Ki", Inputs: []string{"1Kg", "IKgs"}},
	{Code: "KI2", OSIS: "2Kgs", Name: "2 Kings", Abbrev: "2Ki", Inputs: []string{"2Kg", "IIKgs"}},
	{Code: "CH1", OSIS: "1Chr", Name: "1 Chronicles", Abbrev: "1Ch", Inputs: []string{"IChr"}},
	{Code: "CH2", OSIS: "2Chr", Name: "2 Chronicles", Abbrev: "2Ch", Inputs: []string{"IIChr"}},
	{Code: "EZR", OSIS: "Ezra", Name: "Ezra", Abbrev: "Ezr"},
	{Code: "NEH", OSIS: "Neh", Name: "Nehemiah", Abbrev: "Neh"},
	{Code: "EST", OSIS: "Esth", Name: "Esther", Abbrev: "Est"},
	{Code: "JOB", OSIS: "Job", Name: "Job", Abbrev: "Job", Inputs: []string{"Jb"}},
	{Code: "PSA", OSIS: "Ps", Name: "Psalms", Abbrev: "Psa", Inputs: []string{"Psalm", "Pss", "Psm"}},
	{Code: "PRO", OSIS: "Prov", Name: "Proverbs", Abbrev: "Pro", Inputs: []string{"Prv", "Pr"}},
	{Code: "ECC", OSIS: "Eccl", Name: "Ecclesiastes", Abbrev: "Ecc", Inputs: []string{"Qoh", "Qoheleth"}},
	{Code: "SNG", OSIS: "Song", Name: "Song of Songs", Abbrev: "Sng", Inputs: []string{"SongofSolomon", "SOS", "Cant"}},
	{Code: "ISA", OSIS: "Isa", Name: "Isaiah", Abbrev: "Isa", Inputs: []string{"Is"}},
	{Code: "JER", OSIS: "Jer", Name: "Jeremiah", Abbrev: "Jer", Inputs: []string{"Jr"}},
	{Code: "LAM", OSIS: "Lam", Name: "Lamentations", Abbrev: "Lam"},
	{Code: "EZE", OSIS: "Ezek", Name: "Ezekiel", Abbrev: "Eze", Inputs: []string{"Ezk"}},
	{Code: "DAN", OSIS: "Dan", Name: "Daniel", Abbrev: "Dan", Inputs: []string{"Dn"}},
	{Code: "HOS", OSIS: "Hos", Name: "Hosea", Abbrev: "Hos"},
	{Code: "JOL", OSIS: "Joel", Name: "Joel", Abbrev: "Joel", Inputs: []string{"Jl"}},
	{Code: "AMO", OSIS: "Amos", Name: "Amos", Abbrev: "Amo"},
	{Code: "OBA", OSIS: "Obad", Name: "Obadiah", Abbrev: "Oba", Inputs: []string{"Ob"}},
	{Code: "JNA", OSIS: "Jonah", Name: "Jonah", Abbrev: "Jon", Inputs: []string{"Jnh"}},
	{Code: "MIC", OSIS: "Mic", Name: "Micah", Abbrev: "Mic"},
	{Code: "NAH", OSIS: "Nah", Name: "Nahum", Abbrev: "Nah"},
	{Code: "HAB", OSIS: "Hab", Name: "Habakkuk", Abbrev: "Hab"},
	{Code: "ZEP", OSIS: "Zeph", Name: "Zephaniah", Abbrev: "Zep"},
	{Code: "HAG", OSIS: "Hag", Name: "Haggai", Abbrev: "Hag"},
	{Code: "ZEC", OSIS: "Zech", Name: "Zechariah", Abbrev: "Zec"},
	{Code: "MAL", OSIS: "Mal", Name: "Malachi", Abbrev: "Mal"},
	// New Testament
	{Code: "MAT", OSIS: "Matt", Name: "Matthew", Abbrev: "Mat", Inputs: []string{"Mt"}},
	{Code: "MRK", OSIS: "Mark", Name: "Mark", Abbrev: "Mrk", Inputs: []string{"Mk", "Mr"}},
	{Code: "LUK", OSIS: "Luke", Name: "Luke", Abbrev: "Luk", Inputs: []string{"Lk"}},
	{Code: "JHN", OSIS: "John", Name: "John", Abbrev: "Jhn", Inputs: []string{"Jn", "Joh"}},
	{Code: "ACT", OSIS: "Acts", Name: "Acts", Abbrev: "Act", Inputs: []string{"Ac"}},
	{Code: "ROM", OSIS: "Rom", Name: "Romans", Abbrev: "Rom", Inputs: []string{"Rm"}},
	{Code: "CO1", OSIS: "1Cor", Name: "1 Corinthians", Abbrev: "1Co", Inputs: []string{"ICor"}},
	{Code: "CO2", OSIS: "2Cor", Name: "2 Corinthians", Abbrev: "2Co", Inputs: []string{"IICor"}},
	{Code: "GAL", OSIS: "Gal", Name: "Galatians", Abbrev: "Gal"},
	{Code: "EPH", OSIS: "Eph", Name: "Ephesians", Abbrev: "Eph"},
	{Code: "PHP", OSIS: "Phil", Name: "Philippians", Abbrev: "Php", Inputs: []string{"Pp"}},
	{Code: "COL", OSIS: "Col", Name: "Colossians", Abbrev: "Col"},
	{Code: "TH1", OSIS: "1Thess", Name: "1 Thessalonians", Abbrev: "1Th", Inputs: []string{"IThess"}},
	{Code: "TH2", OSIS: "2Thess", Name: "2 Thessalonians", Abbrev: "2Th", Inputs: []string{"IIThess"}},
	{Code: "TI1", OSIS: "1Tim", Name: "1 Timothy", Abbrev: "1Ti", Inputs: []string{"ITim"}},
	{Code: "TI2", OSIS: "2Tim", Name: "2 Timothy", Abbrev: "2Ti", Inputs: []string{"IITim"}},
	{Code: "TIT", OSIS: "Titus", Name: "Titus", Abbrev: "Tit"},
	{Code: "PHM", OSIS: "Phlm", Name: "Philemon", Abbrev: "Phm"},
	{Code: "HEB", OSIS: "Heb", Name: "Hebrews", Abbrev: "Heb"},
	{Code: "JAM", OSIS: "Jas", Name: "James", Abbrev: "Jam", Inputs: []string{"Jm"}},
	{Code: "PE1", OSIS: "1Pet", Name: "1 Peter", Abbrev: "1Pe", Inputs: []string{"1Pt", "IPet"}},
	{Code: "PE2", OSIS: "2Pet", Name: "2 Peter", Abbrev: "2Pe", Inputs: []string{"2Pt", "IIPet"}},
	{Code: "JN1", OSIS: "1John", Name: "1 John", Abbrev: "1Jn", Inputs: []string{"1Jhn", "IJohn"}},
	{Code: "JN2", OSIS: "2John", Name: "2 John", Abbrev: "2Jn", Inputs: []string{"2Jhn", "IIJohn"}},
	{Code: "JN3", OSIS: "3John", Name: "3 John", Abbrev: "3Jn", Inputs: []string{"3Jhn", "IIIJohn"}},
	{Code: "JDE", OSIS: "Jude", Name: "Jude", Abbrev: "Jde", Inputs: []string{"Jud"}},
	{Code: "REV", OSIS: "Rev", Name: "Revelation", Abbrev: "Rev", Inputs: []string{"Rv", "Apoc"}},
	// Deuterocanon
	{Code: "TOB", OSIS: "Tob", Name: "Tobit", Abbrev: "Tob"},
	{Code: "JDT", OSIS: "Jdt", Name: "Judith", Abbrev: "Jdt"},
	{Code: "WIS", OSIS: "Wis", Name: "Wisdom", Abbrev: "Wis", Inputs: []string{"WisdomofSolomon"}},
	{Code: "SIR", OSIS: "Sir", Name: "Sirach", Abbrev: "Sir", Inputs: []string{"Ecclesiasticus"}},
	{Code: "BAR", OSIS: "Bar", Name: "Baruch", Abbrev: "Bar"},
	{Code: "MA1", OSIS: "1Macc", Name: "1 Maccabees", Abbrev: "1Ma", Inputs: []string{"IMacc"}},
	{Code: "MA2", OSIS: "2Macc", Name: "2 Maccabees", Abbrev: "2Ma", Inputs: []string{"IIMacc"}},
}
